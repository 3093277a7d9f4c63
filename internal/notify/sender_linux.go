//go:build linux

package notify

import (
	"context"
	"os"
	"os/exec"
)

// linuxSender implements Sender for Linux using notify-send
type linuxSender struct {
	available bool
}

// newNativeSender creates a new Linux notification sender
func newNativeSender() Sender {
	return &linuxSender{
		available: toolAvailable("notify-send") && hasDisplay(),
	}
}

// hasDisplay checks if an X11 or Wayland display is available
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func (s *linuxSender) Name() string { return "notify-send" }

// Available returns true if notify-send is available and a display is present
func (s *linuxSender) Available() bool { return s.available }

// Send sends a visual notification using notify-send
func (s *linuxSender) Send(ctx context.Context, n Notification) error {
	if !s.available {
		return ErrUnavailable
	}

	cmd := exec.CommandContext(ctx, "notify-send", notifySendArgs(n)...)
	return cmd.Run()
}
