package driving

import (
	"context"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

// Analyzer turns a repository or pull request reference into a synthesized
// improvement suggestion and, optionally, a created issue.
type Analyzer interface {
	// AnalyzeRepository runs the full repository flow: discovery,
	// opinion gathering, synthesis, payload construction.
	AnalyzeRepository(ctx context.Context, ref domain.RepoRef) (*domain.RepositoryReport, error)

	// AnalyzePR runs the pull request flow: metadata fetch, dual
	// classification, fact expansion, synthesis.
	AnalyzePR(ctx context.Context, ref domain.PRRef) (*domain.PRReport, error)
}
