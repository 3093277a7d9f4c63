//go:build unix

package runner

import (
	"os"
	"syscall"
)

// exitCode returns the child's exit status, or the negated signal number
// when the child was killed by a signal.
func exitCode(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return -int(ws.Signal())
	}
	return state.ExitCode()
}
