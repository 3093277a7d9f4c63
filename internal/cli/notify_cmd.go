package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/notifyfinish/nf/internal/cli/shared"
	"github.com/spf13/cobra"
)

func newNotifyCmd(deps Deps, global *globalOptions) *cobra.Command {
	var (
		command  string
		duration string
		exitCode int
	)

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send a notification for a command measured elsewhere",
		Long: `Send one completion notification through the configured backend.
Used by the shell hooks; the caller has already applied its threshold.`,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDuration(duration)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd, global, nil)
			if err != nil {
				return err
			}

			notifier, err := newNotifier(deps, cfg)
			if err != nil {
				return fmt.Errorf("failed to get notifier: %w", err)
			}

			notifier.Notify(cmd.Context(), command, d, exitCode)
			return nil
		},
	}
	cmd.GroupID = shared.GroupShell
	cmd.Flags().StringVar(&command, "command", "", "The command that was executed")
	cmd.Flags().StringVar(&duration, "duration", "0", "The execution duration (seconds or a Go duration such as 1m30s)")
	cmd.Flags().IntVar(&exitCode, "exit-code", 0, "The command's exit code")
	return cmd
}

// parseDuration accepts plain seconds ("12", "3.5") or Go duration syntax ("1m30s").
func parseDuration(s string) (time.Duration, error) {
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("invalid duration %q: must not be negative", s)
		}
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid duration %q: must not be negative", s)
	}
	return d, nil
}
