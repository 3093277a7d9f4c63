package cli

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/notifyfinish/nf/internal/cli/shared"
	"github.com/spf13/cobra"
)

// defaultHookThreshold is the hook threshold in seconds. It is higher than
// the root default because the hook watches every interactive command.
const defaultHookThreshold = 10

// hookData fills the shell hook templates
type hookData struct {
	Binary    string
	Threshold int
}

var hookTemplates = map[string]*template.Template{
	"bash": template.Must(template.New("bash").Parse(bashHookScript)),
	"zsh":  template.Must(template.New("zsh").Parse(zshHookScript)),
}

func newHookCmd() *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "hook SHELL",
		Short: "Print a shell hook that notifies on long-running commands",
		Long: `Print a script that hooks into your shell prompt so every interactive
command that runs at least --threshold seconds triggers a notification,
without prefixing it with nf.

Supported shells: bash, zsh`,
		Example: `  # ~/.bashrc
  eval "$(nf hook bash)"

  # ~/.zshrc, notify after 30 seconds
  eval "$(nf hook zsh -t 30)"`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if threshold < 0 {
				return fmt.Errorf("threshold must not be negative: %d", threshold)
			}
			script, err := renderHook(args[0], hookData{Binary: executablePath(), Threshold: threshold})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		},
	}
	cmd.GroupID = shared.GroupShell
	cmd.Flags().IntVarP(&threshold, "threshold", "t", defaultHookThreshold, "Notify only for commands that ran at least this many seconds")
	return cmd
}

// renderHook renders the hook script for shell.
func renderHook(shell string, data hookData) (string, error) {
	tmpl, ok := hookTemplates[strings.ToLower(shell)]
	if !ok {
		return "", fmt.Errorf("unsupported shell: %s. supported shells are 'bash' and 'zsh'", shell)
	}

	data.Binary = shellQuote(data.Binary)
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering %s hook: %w", shell, err)
	}
	return b.String(), nil
}

// executablePath returns the absolute path of the running binary, or "nf"
// when it cannot be determined.
func executablePath() string {
	path, err := os.Executable()
	if err != nil {
		return "nf"
	}
	return path
}

// shellQuote wraps s in single quotes for POSIX shells
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

const zshHookScript = `# nf shell hook (zsh)
_nf_preexec() {
    _nf_command="$1"
    _nf_start=$SECONDS
}

_nf_precmd() {
    local exit_code=$?
    [[ -z "$_nf_start" ]] && return
    local duration=$(( SECONDS - _nf_start ))
    local command="$_nf_command"
    unset _nf_start _nf_command
    if (( duration >= {{.Threshold}} )); then
        ( {{.Binary}} notify --command "$command" --duration "$duration" --exit-code "$exit_code" >/dev/null 2>&1 & )
    fi
}

autoload -Uz add-zsh-hook
add-zsh-hook preexec _nf_preexec
add-zsh-hook precmd _nf_precmd
`

const bashHookScript = `# nf shell hook (bash)
_nf_precmd() {
    local exit_code=$?
    if [[ -n "$_nf_start" ]]; then
        local duration=$(( SECONDS - _nf_start ))
        if (( duration >= {{.Threshold}} )); then
            ( {{.Binary}} notify --command "$_nf_command" --duration "$duration" --exit-code "$exit_code" >/dev/null 2>&1 & )
        fi
        unset _nf_start _nf_command
    fi
    return $exit_code
}

_nf_arm() {
    _nf_armed=1
}

_nf_debug_trap() {
    [[ -z "$_nf_armed" || -n "$COMP_LINE" ]] && return
    _nf_armed=
    # An empty prompt line runs nothing before PROMPT_COMMAND.
    [[ "$BASH_COMMAND" == _nf_precmd ]] && return
    _nf_start=$SECONDS
    _nf_command="$BASH_COMMAND"
}

trap '_nf_debug_trap' DEBUG
PROMPT_COMMAND="_nf_precmd${PROMPT_COMMAND:+;$PROMPT_COMMAND};_nf_arm"
`
