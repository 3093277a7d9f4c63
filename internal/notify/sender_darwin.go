//go:build darwin

package notify

import (
	"context"
	"os/exec"
)

// darwinSender implements Sender for macOS using osascript
type darwinSender struct {
	available bool
}

// newNativeSender creates a new macOS notification sender
func newNativeSender() Sender {
	return &darwinSender{
		available: toolAvailable("osascript"),
	}
}

func (s *darwinSender) Name() string { return "osascript" }

// Available returns true if osascript is available
func (s *darwinSender) Available() bool { return s.available }

// Send sends a visual notification using osascript
func (s *darwinSender) Send(ctx context.Context, n Notification) error {
	if !s.available {
		return ErrUnavailable
	}

	cmd := exec.CommandContext(ctx, "osascript", "-e", appleScript(n))
	return cmd.Run()
}
