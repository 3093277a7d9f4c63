package runner

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		argv       []string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		"success captures stdout": {
			argv:       []string{"sh", "-c", "echo hello"},
			wantCode:   0,
			wantStdout: "hello\n",
		},
		"stderr is captured separately": {
			argv:       []string{"sh", "-c", "echo oops >&2"},
			wantCode:   0,
			wantStderr: "oops\n",
		},
		"non-zero exit code is propagated": {
			argv:     []string{"sh", "-c", "exit 3"},
			wantCode: 3,
		},
		"killed by signal reports negated signal": {
			argv:     []string{"sh", "-c", "kill -TERM $$"},
			wantCode: -15,
		},
		"stdin is forwarded": {
			argv:       []string{"cat"},
			stdin:      "piped input",
			wantCode:   0,
			wantStdout: "piped input",
		},
		"missing executable": {
			argv:       []string{"nf-definitely-not-a-real-binary"},
			wantCode:   NotRunExitCode,
			wantStderr: "Command not found: nf-definitely-not-a-real-binary",
		},
		"missing explicit path": {
			argv:       []string{"/nonexistent/dir/tool", "--flag"},
			wantCode:   NotRunExitCode,
			wantStderr: "Command not found: /nonexistent/dir/tool",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := &Runner{Stdin: strings.NewReader(tt.stdin)}
			result := r.Run(tt.argv)

			assert.Equal(t, tt.wantCode, result.ExitCode)
			assert.Equal(t, tt.wantStdout, result.Stdout)
			assert.Equal(t, tt.wantStderr, result.Stderr)
			assert.GreaterOrEqual(t, result.Duration, time.Duration(0))
		})
	}
}

func TestRun_EmptyArgv(t *testing.T) {
	t.Parallel()

	result := (&Runner{}).Run(nil)

	assert.Equal(t, NotRunExitCode, result.ExitCode)
	assert.Empty(t, result.Stdout)
	assert.Contains(t, result.Stderr, "An unexpected error occurred")
}

func TestRun_NotExecutable(t *testing.T) {
	t.Parallel()

	// A directory exists but cannot be executed.
	result := (&Runner{}).Run([]string{t.TempDir()})

	assert.Equal(t, NotRunExitCode, result.ExitCode)
	assert.Empty(t, result.Stdout)
	assert.Contains(t, result.Stderr, "An unexpected error occurred")
}

func TestRun_MeasuresDuration(t *testing.T) {
	t.Parallel()

	result := (&Runner{}).Run([]string{"sleep", "0.2"})

	require.Equal(t, 0, result.ExitCode)
	assert.GreaterOrEqual(t, result.Duration, 200*time.Millisecond)
	assert.True(t, result.Succeeded())
}

func TestResult_Succeeded(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		code int
		want bool
	}{
		"zero":    {code: 0, want: true},
		"one":     {code: 1, want: false},
		"not run": {code: NotRunExitCode, want: false},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Result{ExitCode: tt.code}.Succeeded())
		})
	}
}
