// Package cli implements the command-line interface for Sentinel. Commands
// are thin: they parse references, call the analyzer port, and render the
// resulting report.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sneaxhuh/sentinel/internal/core/ports/driving"
	"github.com/sneaxhuh/sentinel/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// analyzerService is the driving port the commands invoke. It is injected
// by the composition root before Execute runs.
var analyzerService driving.Analyzer

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "AI-assisted GitHub repository and pull request analysis",
	Long: `Sentinel analyzes GitHub repositories and pull requests.

Given a repository URL it classifies the project, gathers improvement
opinions from marketplace agents, and synthesizes a single enhancement
suggestion ready to file as an issue. Given a pull request URL it
classifies the change, summarizes the diff, and assesses review priority.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// SetAnalyzer injects the analyzer implementation used by all commands.
func SetAnalyzer(a driving.Analyzer) {
	analyzerService = a
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose progress logging")
}
