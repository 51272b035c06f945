package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [url]",
	Short: "Analyze a GitHub repository or pull request",
	Long: `Analyzes the given GitHub URL and prints a report.

Repository URLs run the full pipeline: classification, agent discovery,
opinion gathering, and suggestion synthesis. Pull request URLs run the
knowledge-base flow: change classification, diff summary, and review
priority assessment. The URL kind is detected automatically.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errors.New("analyzer not configured")
	}
	return analyzeURL(cmd, args[0])
}

// analyzeURL routes a URL to the repository or pull request flow and
// renders the resulting report.
func analyzeURL(cmd *cobra.Command, url string) error {
	ctx := context.Background()

	if domain.IsPRURL(url) {
		ref, err := domain.ParsePRURL(url)
		if err != nil {
			return err
		}
		report, err := analyzerService.AnalyzePR(ctx, ref)
		if err != nil {
			return fmt.Errorf("pull request analysis failed: %w", err)
		}
		cmd.Println(renderPRReport(report))
		return nil
	}

	ref, err := domain.ParseRepoURL(url)
	if err != nil {
		return err
	}
	report, err := analyzerService.AnalyzeRepository(ctx, ref)
	if err != nil {
		return fmt.Errorf("repository analysis failed: %w", err)
	}
	cmd.Println(renderRepositoryReport(report))
	return nil
}
