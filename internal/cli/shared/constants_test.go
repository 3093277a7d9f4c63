package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil is success":       {err: nil, want: ExitSuccess},
		"exit error":           {err: NewExitError(42), want: 42},
		"negative code":        {err: NewExitError(-1), want: -1},
		"wrapped exit error":   {err: fmt.Errorf("run: %w", NewExitError(3)), want: 3},
		"plain error is usage": {err: errors.New("bad flag"), want: ExitUsage},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestIsExitError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsExitError(NewExitError(1)))
	assert.False(t, IsExitError(errors.New("plain")))
	assert.False(t, IsExitError(nil))
	assert.Equal(t, "exit code 7", NewExitError(7).Error())
}
