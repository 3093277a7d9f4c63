package shared

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Colors provides reusable color functions for CLI output.
type Colors struct {
	Cyan   func(a ...interface{}) string
	Yellow func(a ...interface{}) string
	Red    func(a ...interface{}) string
	Dim    func(a ...interface{}) string
	White  func(a ...interface{}) string
}

// NewColors creates a new Colors instance with standard terminal colors.
func NewColors() *Colors {
	return &Colors{
		Cyan:   color.New(color.FgCyan, color.Bold).SprintFunc(),
		Yellow: color.New(color.FgYellow).SprintFunc(),
		Red:    color.New(color.FgRed, color.Bold).SprintFunc(),
		Dim:    color.New(color.Faint).SprintFunc(),
		White:  color.New(color.FgWhite, color.Bold).SprintFunc(),
	}
}

// PrintError writes "Error: <msg>" with a red prefix.
func PrintError(out io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(out, "%s %s\n", NewColors().Red("Error:"), fmt.Sprintf(format, args...))
}
