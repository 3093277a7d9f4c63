// Package util provides utility CLI commands for nf.
package util

import (
	"github.com/spf13/cobra"
)

// Register adds all utility commands to the root command.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newVersionCmd())
}
