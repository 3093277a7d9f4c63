// Package runner executes a single child command to completion, capturing its
// output and measuring how long it took.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"time"
)

// Runner executes commands with the given stdin.
type Runner struct {
	Stdin io.Reader
}

// New returns a Runner that forwards the process stdin to the child.
func New() *Runner {
	return &Runner{Stdin: os.Stdin}
}

// Run executes argv with a Runner wired to os.Stdin.
func Run(argv []string) Result {
	return New().Run(argv)
}

// Run executes argv and blocks until it exits. The first element is the
// binary name (resolved via PATH), the rest are arguments.
// It never returns an error: spawn failures are reported as a Result with
// ExitCode NotRunExitCode and a descriptive Stderr.
func (r *Runner) Run(argv []string) Result {
	start := time.Now()

	if len(argv) == 0 {
		return failed(start, "An unexpected error occurred: empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = r.Stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	duration := time.Since(start)

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			if isNotFound(runErr) {
				return failed(start, "Command not found: "+argv[0])
			}
			return failed(start, fmt.Sprintf("An unexpected error occurred: %v", runErr))
		}
	}

	return Result{
		ExitCode: exitCode(cmd.ProcessState),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: duration,
	}
}

// isNotFound reports whether err means the executable does not exist,
// either as a PATH lookup miss or as a missing explicit path.
func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

func failed(start time.Time, msg string) Result {
	return Result{
		ExitCode: NotRunExitCode,
		Stderr:   msg,
		Duration: time.Since(start),
	}
}
