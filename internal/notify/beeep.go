package notify

import (
	"context"
	"errors"

	"github.com/gen2brain/beeep"
)

// beeepSender delivers notifications through github.com/gen2brain/beeep,
// which talks to D-Bus, the macOS notification center or Windows toasts
// directly instead of shelling out.
type beeepSender struct{}

// beeepSupported reports whether beeep has a notification backend for goos.
func beeepSupported(goos string) bool {
	switch goos {
	case "darwin", "linux", "windows", "freebsd", "netbsd", "openbsd", "dragonfly", "illumos", "solaris":
		return true
	default:
		return false
	}
}

func (s *beeepSender) Name() string    { return "beeep" }
func (s *beeepSender) Available() bool { return true }

// Send shows the notification. beeep has no cancellation, so ctx is only
// checked before the call.
func (s *beeepSender) Send(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	beeep.AppName = appName(n)
	if err := beeep.Notify(n.Title, n.Message, ""); err != nil {
		if errors.Is(err, beeep.ErrUnsupported) {
			return ErrUnavailable
		}
		return err
	}
	return nil
}
