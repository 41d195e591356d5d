// Package cmd implements the lume command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lume",
	Short: "a fast keyboard launcher for the terminal",
	Long: `lume - a fast keyboard launcher for the terminal
  - search installed programs, packages, and launch history at once
  - type a URL or path to open it directly`,
	RunE: runPicker,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}
