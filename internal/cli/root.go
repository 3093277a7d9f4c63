// Package cli provides the Cobra-based command line for nf: the root command
// that runs a child command and notifies on completion, plus the shell hook,
// notify and version subcommands.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/notifyfinish/nf/internal/cli/shared"
	"github.com/notifyfinish/nf/internal/cli/util"
	"github.com/notifyfinish/nf/internal/config"
	"github.com/notifyfinish/nf/internal/notify"
	"github.com/notifyfinish/nf/internal/progress"
	"github.com/notifyfinish/nf/internal/runner"
	"github.com/spf13/cobra"
)

// Deps are the collaborators the commands drive. Tests replace them to
// avoid spawning processes or raising real notifications.
type Deps struct {
	// Run executes the child command
	Run func(argv []string) runner.Result

	// NewSender picks the notification backend for the loaded configuration
	NewSender func(cfg *config.Configuration) (notify.Sender, error)

	// Terminal reports the capabilities of the stream the spinner draws on
	Terminal func() progress.TerminalCapabilities

	Stdout io.Writer
	Stderr io.Writer
}

// DefaultDeps wires the real runner, notification backends and process streams.
func DefaultDeps() Deps {
	return Deps{
		Run:       runner.Run,
		NewSender: notify.SenderFor,
		Terminal: func() progress.TerminalCapabilities {
			return progress.DetectTerminalCapabilities(int(os.Stderr.Fd()))
		},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// globalOptions holds the flags shared by the root command and subcommands
type globalOptions struct {
	configPath string
	notifier   string
	quiet      bool
}

// NewRootCmd builds the nf command tree around deps.
func NewRootCmd(deps Deps) *cobra.Command {
	global := &globalOptions{}
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:   "nf [flags] [--] COMMAND [ARGS...]",
		Short: "Run a command and notify when it finishes",
		Long: `nf runs a command, relays its output and exit code, and sends a desktop
notification when the command took at least --threshold seconds.

Everything after the first non-flag argument (or after --) is the command,
passed through unmodified. Use -- to run a program that shares a name with
an nf subcommand.`,
		Example: `  # Notify whenever the build finishes
  nf make build

  # Only notify for runs of a minute or longer
  nf -t 60 -- ./long-running-build.sh --verbose

  # Post to Slack instead of the desktop
  nf --config ~/.config/nf/config.yaml --notifier slack -- go test ./...`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, deps, global, opts, args)
		},
	}

	rootCmd.AddGroup(&cobra.Group{ID: shared.GroupShell, Title: "Shell Integration:"})
	rootCmd.AddGroup(&cobra.Group{ID: shared.GroupGeneral, Title: "General:"})
	rootCmd.SetHelpCommandGroupID(shared.GroupGeneral)
	rootCmd.SetCompletionCommandGroupID(shared.GroupGeneral)

	// Stop at the first non-flag argument: it and everything after it
	// belong to the child command.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().IntVarP(&opts.threshold, "threshold", "t", 0, "Notify only if the command ran at least this many seconds")
	rootCmd.Flags().BoolVar(&opts.progress, "progress", false, "Show a spinner on stderr while the command runs (terminals only)")

	rootCmd.PersistentFlags().StringVarP(&global.configPath, "config", "c", "", "Path to a JSON or YAML config file (none is read by default)")
	rootCmd.PersistentFlags().StringVar(&global.notifier, "notifier", "", "Notification backend: os, slack, teams, app or none")
	rootCmd.PersistentFlags().BoolVarP(&global.quiet, "quiet", "q", false, "Do not log notification delivery")

	rootCmd.AddCommand(newHookCmd())
	rootCmd.AddCommand(newNotifyCmd(deps, global))
	util.Register(rootCmd)

	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)
	return rootCmd
}

// Execute runs nf with the process arguments and returns the exit code.
func Execute() int {
	return ExecuteArgs(DefaultDeps(), os.Args[1:])
}

// ExecuteArgs runs the command tree on args and maps the outcome to an exit code.
func ExecuteArgs(deps Deps, args []string) int {
	if args == nil {
		args = []string{}
	}
	rootCmd := NewRootCmd(deps)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err != nil && !shared.IsExitError(err) {
		shared.PrintError(deps.Stderr, "%v", err)
		fmt.Fprintf(deps.Stderr, "Run '%s --help' for usage.\n", rootCmd.CommandPath())
	}
	return shared.ExitCode(err)
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, global *globalOptions, override func(*config.Configuration)) (*config.Configuration, error) {
	cfg, err := config.Load(global.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("notifier") {
		cfg.Notifier = global.notifier
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Quiet = global.quiet
	}
	if override != nil {
		override(cfg)
	}

	if err := config.ValidateConfigValues(cfg, global.configPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newNotifier builds the Notifier for cfg. Log lines go to stderr unless quiet.
func newNotifier(deps Deps, cfg *config.Configuration) (*notify.Notifier, error) {
	sender, err := deps.NewSender(cfg)
	if err != nil {
		return nil, err
	}

	logOut := deps.Stderr
	if cfg.Quiet {
		logOut = io.Discard
	}
	logger := log.New(logOut, "", log.LstdFlags)

	return notify.NewNotifier(sender, logger, cfg.NotifyTimeout), nil
}
