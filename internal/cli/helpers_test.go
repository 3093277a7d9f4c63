package cli

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/notifyfinish/nf/internal/config"
	"github.com/notifyfinish/nf/internal/notify"
	"github.com/notifyfinish/nf/internal/progress"
	"github.com/notifyfinish/nf/internal/runner"
)

// recordingSender captures notifications instead of showing them.
type recordingSender struct {
	mu    sync.Mutex
	calls []notify.Notification
	err   error
}

func (s *recordingSender) Name() string    { return "recording" }
func (s *recordingSender) Available() bool { return true }

func (s *recordingSender) Send(_ context.Context, n notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, n)
	return s.err
}

func (s *recordingSender) Calls() []notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notify.Notification(nil), s.calls...)
}

// fakeRunner returns a canned result and records the argv it was given.
type fakeRunner struct {
	result runner.Result
	calls  [][]string
}

func (r *fakeRunner) Run(argv []string) runner.Result {
	r.calls = append(r.calls, append([]string(nil), argv...))
	return r.result
}

// harness bundles the fakes wired into Deps.
type harness struct {
	runner  *fakeRunner
	sender  *recordingSender
	configs []*config.Configuration
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
}

func newHarness(result runner.Result) *harness {
	return &harness{
		runner: &fakeRunner{result: result},
		sender: &recordingSender{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
}

func (h *harness) deps() Deps {
	return Deps{
		Run: h.runner.Run,
		NewSender: func(cfg *config.Configuration) (notify.Sender, error) {
			h.configs = append(h.configs, cfg)
			return h.sender, nil
		},
		Terminal: func() progress.TerminalCapabilities { return progress.TerminalCapabilities{} },
		Stdout:   h.stdout,
		Stderr:   h.stderr,
	}
}

func (h *harness) execute(args ...string) int {
	return ExecuteArgs(h.deps(), args)
}

func seconds(n float64) time.Duration {
	return time.Duration(n * float64(time.Second))
}
