package notify

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
)

// ErrUnavailable is returned by a Sender when the host has no usable
// notification backend.
var ErrUnavailable = errors.New("no notification backend available")

// Sender defines the interface for notification backends
type Sender interface {
	// Name identifies the backend in log output
	Name() string

	// Available returns true if the backend can deliver notifications
	Available() bool

	// Send delivers the notification
	Send(ctx context.Context, n Notification) error
}

// NewDesktopSender creates the desktop notification sender for the current OS.
// The native tool for the platform is preferred; when it is missing the beeep
// backend is used on platforms beeep supports. Elsewhere the returned sender
// reports ErrUnavailable.
func NewDesktopSender() Sender {
	if s := newNativeSender(); s.Available() {
		return s
	}
	if beeepSupported(runtime.GOOS) {
		return &beeepSender{}
	}
	return unavailableSender{}
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// unavailableSender is used when the platform has no backend at all
type unavailableSender struct{}

func (unavailableSender) Name() string    { return "none" }
func (unavailableSender) Available() bool { return false }
func (unavailableSender) Send(context.Context, Notification) error {
	return ErrUnavailable
}
