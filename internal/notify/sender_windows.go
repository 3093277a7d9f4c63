//go:build windows

package notify

import (
	"context"
	"os/exec"
)

// windowsSender implements Sender for Windows using PowerShell toasts
type windowsSender struct {
	available bool
}

// newNativeSender creates a new Windows notification sender
func newNativeSender() Sender {
	return &windowsSender{
		available: toolAvailable("powershell"),
	}
}

func (s *windowsSender) Name() string { return "powershell" }

// Available returns true if PowerShell is available
func (s *windowsSender) Available() bool { return s.available }

// Send shows a toast notification using PowerShell
func (s *windowsSender) Send(ctx context.Context, n Notification) error {
	if !s.available {
		return ErrUnavailable
	}

	cmd := exec.CommandContext(ctx, "powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", toastScript(n))
	return cmd.Run()
}
