// Package notify sends a completion notification for a finished command.
//
// A Notifier renders the title and body from the command line, its duration
// and its exit code, then hands the result to a Sender. Senders are the
// backends:
//
//   - macOS: osascript
//   - Linux: notify-send (needs DISPLAY or WAYLAND_DISPLAY)
//   - Windows: PowerShell toast notifications
//   - anywhere else, or when the native tool is missing: beeep
//   - Slack, Teams and a custom HTTP API via webhooks
//
// The desktop backend is picked once by NewDesktopSender from runtime.GOOS
// and the build-tagged sender_<os>.go files. Notification failures never
// propagate: the Notifier logs them and returns.
//
// # Usage
//
//	sender, err := notify.SenderFor(cfg)
//	if err != nil {
//		return err
//	}
//	n := notify.NewNotifier(sender, log.New(os.Stderr, "", log.LstdFlags), 5*time.Second)
//	n.Notify(ctx, "make build", 42*time.Second, 0)
package notify
