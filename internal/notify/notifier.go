package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/notifyfinish/nf/internal/config"
)

// Notifier renders command results and dispatches them through a Sender.
// It never returns an error: failures are logged to the injected logger.
type Notifier struct {
	sender  Sender
	logger  *log.Logger
	timeout time.Duration
}

// NewNotifier creates a Notifier. A nil logger discards log output; a
// non-positive timeout leaves sends unbounded.
func NewNotifier(sender Sender, logger *log.Logger, timeout time.Duration) *Notifier {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Notifier{
		sender:  sender,
		logger:  logger,
		timeout: timeout,
	}
}

// Sender returns the backend this Notifier dispatches through
func (n *Notifier) Sender() Sender {
	return n.sender
}

// Notify sends the completion notification for command.
func (n *Notifier) Notify(ctx context.Context, command string, duration time.Duration, exitCode int) {
	n.Send(ctx, NewNotification(command, duration, exitCode))
}

// Send dispatches an already rendered notification.
func (n *Notifier) Send(ctx context.Context, notification Notification) {
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	err := n.sender.Send(ctx, notification)
	switch {
	case err == nil:
		n.logger.Printf("[notify] notification sent via %s", n.sender.Name())
	case errors.Is(err, ErrUnavailable):
		n.logger.Printf("[notify] warning: desktop notifications not supported on this system, install a notification backend (notify-send, osascript or PowerShell)")
	default:
		n.logger.Printf("[notify] error: failed to send notification via %s: %v", n.sender.Name(), err)
	}
}

// SenderFor returns the Sender selected by cfg.Notifier.
func SenderFor(cfg *config.Configuration) (Sender, error) {
	switch cfg.Notifier {
	case config.NotifierOS, "":
		return NewDesktopSender(), nil
	case config.NotifierSlack:
		if cfg.SlackWebhook == "" {
			return nil, fmt.Errorf("slack notifier selected but no webhook URL provided (set slack_webhook)")
		}
		return NewSlackSender(cfg.SlackWebhook), nil
	case config.NotifierTeams:
		if cfg.TeamsWebhook == "" {
			return nil, fmt.Errorf("teams notifier selected but no webhook URL provided (set teams_webhook)")
		}
		return NewTeamsSender(cfg.TeamsWebhook), nil
	case config.NotifierApp:
		if cfg.APIURL == "" {
			return nil, fmt.Errorf("app notifier selected but no API URL provided (set api_url)")
		}
		return NewAppSender(cfg.APIURL, cfg.APIToken), nil
	case config.NotifierNone:
		return disabledSender{}, nil
	default:
		return nil, fmt.Errorf("unknown notifier: %s", cfg.Notifier)
	}
}

// disabledSender drops every notification without error
type disabledSender struct{}

func (disabledSender) Name() string                             { return config.NotifierNone }
func (disabledSender) Available() bool                          { return true }
func (disabledSender) Send(context.Context, Notification) error { return nil }
