package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/notifyfinish/nf/internal/cli/shared"
	"github.com/notifyfinish/nf/internal/config"
	"github.com/notifyfinish/nf/internal/progress"
	"github.com/spf13/cobra"
)

// runOptions holds the root command's own flags
type runOptions struct {
	threshold int
	progress  bool
}

// runRoot runs the child command, relays its output, notifies when the run
// reached the threshold and returns the child's exit code as an exitError.
func runRoot(cmd *cobra.Command, deps Deps, global *globalOptions, opts *runOptions, argv []string) error {
	if len(argv) == 0 {
		shared.PrintError(deps.Stderr, "Missing command.")
		fmt.Fprint(deps.Stderr, cmd.UsageString())
		return shared.NewExitError(shared.ExitUsage)
	}

	cfg, err := loadConfig(cmd, global, func(cfg *config.Configuration) {
		if cmd.Flags().Changed("threshold") {
			cfg.Threshold = opts.threshold
		}
		if cmd.Flags().Changed("progress") {
			cfg.Progress = opts.progress
		}
	})
	if err != nil {
		shared.PrintError(deps.Stderr, "%v", err)
		return shared.NewExitError(shared.ExitUsage)
	}

	notifier, err := newNotifier(deps, cfg)
	if err != nil {
		shared.PrintError(deps.Stderr, "%v", err)
		return shared.NewExitError(shared.ExitUsage)
	}

	command := strings.Join(argv, " ")

	var display *progress.Display
	if cfg.Progress && deps.Terminal != nil {
		display = progress.NewDisplay(deps.Terminal(), deps.Stderr)
		display.Start("running " + command)
	}

	result := deps.Run(argv)

	if display != nil {
		display.Stop()
	}

	// The standard streams are unbuffered *os.File values, so a completed
	// write is already flushed.
	io.WriteString(deps.Stdout, result.Stdout)
	io.WriteString(deps.Stderr, result.Stderr)

	if cfg.Notifier != config.NotifierNone && result.Duration.Seconds() >= float64(cfg.Threshold) {
		notifier.Notify(cmd.Context(), command, result.Duration, result.ExitCode)
	}

	if result.ExitCode != shared.ExitSuccess {
		return shared.NewExitError(result.ExitCode)
	}
	return nil
}
