package progress

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Display owns at most one running spinner.
type Display struct {
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	writer       io.Writer
	spinner      *spinner.Spinner
}

// NewDisplay creates a display drawing to w with the given terminal capabilities
func NewDisplay(caps TerminalCapabilities, w io.Writer) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		writer:       w,
	}
}

// Start begins animating msg. It does nothing when the stream is not a
// terminal or a spinner is already running.
func (d *Display) Start(msg string) {
	if !d.capabilities.IsTTY || d.spinner != nil {
		return
	}

	d.spinner = spinner.New(
		spinner.CharSets[d.symbols.SpinnerSet],
		100*time.Millisecond,
		spinner.WithWriter(d.writer),
	)
	d.spinner.Suffix = " " + truncate(msg, d.capabilities.Width-4)
	d.spinner.Start()
}

// Stop stops the spinner and clears its line
func (d *Display) Stop() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}

// Running reports whether a spinner is active
func (d *Display) Running() bool {
	return d.spinner != nil
}

// truncate shortens msg to width runes, marking the cut with "...".
// A non-positive width means unknown and leaves msg alone.
func truncate(msg string, width int) string {
	r := []rune(msg)
	if width <= 0 || len(r) <= width {
		return msg
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
