// Package cmd implements the CLI commands for chatconv using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chatconv",
	Short: "chatconv — normalize chat transcripts into Markdown or workbench JSON",
	Long: `chatconv converts chat transcripts from playground JSON, workbench JSON,
or exported chat-page HTML into Markdown or canonical workbench JSON.

Usage:
  chatconv convert <file> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
