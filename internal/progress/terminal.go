package progress

import (
	"golang.org/x/term"
)

// DetectTerminalCapabilities detects terminal features of the file descriptor fd
func DetectTerminalCapabilities(fd int) TerminalCapabilities {
	isTTY := term.IsTerminal(fd)

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsUnicode: isTTY,
		Width:           width,
	}
}

// SelectSymbols returns the appropriate symbol set based on terminal capabilities
func SelectSymbols(caps TerminalCapabilities) ProgressSymbols {
	if caps.SupportsUnicode {
		return ProgressSymbols{SpinnerSet: 14} // ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
	}
	return ProgressSymbols{SpinnerSet: 9} // | / - \
}
