// Package progress shows a spinner on the terminal while a command runs.
// Nothing is drawn unless the target stream is a terminal, so redirected
// output stays byte-for-byte the command's own.
package progress

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether the stream is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsUnicode indicates whether Unicode spinner frames can be drawn
	SupportsUnicode bool
	// Width is the terminal width in columns (0 if unknown/pipe)
	Width int
}

// ProgressSymbols defines the character set for visual indicators
type ProgressSymbols struct {
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
