// Package main provides the entry point for the statistical CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JeffBelgum/statistical/cmd/statistical/commands"
	"github.com/JeffBelgum/statistical/pkg/version"
)

var quiet bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "statistical",
		Short: "Statistical - Descriptive statistics for numeric samples",
		Long: `Statistical summarizes numeric samples read from files or stdin.

Commands:
  describe  Full descriptive summary of a sample
  scores    Standard scores (z-scores) for every sample value
  plot      Histogram of a sample as a standalone HTML page`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")

	// Add commands.
	rootCmd.AddCommand(commands.NewDescribeCommand())
	rootCmd.AddCommand(commands.NewScoresCommand())
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "statistical %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
