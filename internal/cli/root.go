// Package cli provides the command-line interface for logexcerpt.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logexcerpt/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logexcerpt",
		Short: "Extract anomalous excerpts from log files",
		Long: `logexcerpt is a batch log tool that isolates runs of lines NOT starting
with an expected daily date prefix and extracts them together with a
bounded window of surrounding normal lines.

Typical uses:
  - Pull stack traces and their surrounding context out of a day's log
  - Produce a compact excerpt file for sharing or archiving
  - Emit structured JSON Lines records for downstream tooling

Define what a normal line looks like (the date prefix), and logexcerpt
extracts everything that doesn't.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewExtractCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
