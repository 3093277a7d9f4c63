package runner

import "time"

// NotRunExitCode is reported when the command could not be started at all.
const NotRunExitCode = -1

// Result holds the outcome of a finished command.
type Result struct {
	ExitCode int           // exit code, -signal if killed, NotRunExitCode if it never ran
	Stdout   string        // captured stdout
	Stderr   string        // captured stderr, or a synthetic message on spawn failure
	Duration time.Duration // wall-clock time from spawn to exit
}

// Succeeded reports whether the command exited with code 0.
func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}
