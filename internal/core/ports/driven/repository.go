package driven

import (
	"context"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

// RepositoryService is the GitHub API surface the analysis flows consume.
type RepositoryService interface {
	// FetchRepoMetadata returns the classification-relevant metadata for a
	// repository. A non-200 upstream response yields ErrNoRepositoryData,
	// which callers treat as "no data", not a terminal failure.
	FetchRepoMetadata(ctx context.Context, ref domain.RepoRef) (*domain.RepoMetadata, error)

	// FetchPRMetadata returns PR detail plus the changed file list with
	// truncated patch excerpts and comment counts.
	FetchPRMetadata(ctx context.Context, ref domain.PRRef) (*domain.PRMetadata, error)

	// CreateIssue posts the payload to the repository's issues endpoint.
	// A non-2xx response surfaces as a propagated failure.
	CreateIssue(ctx context.Context, ref domain.RepoRef, payload domain.IssuePayload) (*domain.CreatedIssue, error)
}
