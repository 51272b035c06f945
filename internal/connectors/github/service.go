package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
	"github.com/sneaxhuh/sentinel/internal/core/ports/driven"
	"github.com/sneaxhuh/sentinel/internal/logger"
)

// Ensure Service implements the interface.
var _ driven.RepositoryService = (*Service)(nil)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// maxPatchExcerpt caps the diff excerpt carried per changed file.
	maxPatchExcerpt = 500

	// filesPerPage is the page size for the changed-files listing.
	filesPerPage = 100
)

// Service provides GitHub repository operations backed by go-github.
type Service struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewService creates a GitHub service with a static access token. An
// empty token yields an unauthenticated client with the lower rate
// limit, which is enough for public repository reads.
func NewService(ctx context.Context, token string) *Service {
	httpClient := &http.Client{}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}
	httpClient.Timeout = DefaultTimeout

	return &Service{
		gh:          gh.NewClient(httpClient),
		rateLimiter: NewRateLimiter(),
	}
}

// NewServiceWithClient creates a Service around an existing go-github
// client. Used by tests to point at a local server.
func NewServiceWithClient(client *gh.Client) *Service {
	return &Service{
		gh:          client,
		rateLimiter: NewRateLimiter(),
	}
}

// FetchRepoMetadata returns the classification-relevant repository
// metadata. Upstream API errors collapse into ErrNoRepositoryData so the
// analysis flows can degrade instead of aborting.
func (s *Service) FetchRepoMetadata(ctx context.Context, ref domain.RepoRef) (*domain.RepoMetadata, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	repo, resp, err := s.gh.Repositories.Get(ctx, ref.Owner, ref.Name)
	s.updateRateLimit(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrNoRepositoryData, ref.String(), s.wrapError(err, "get repository"))
	}

	meta := &domain.RepoMetadata{
		Name:        repo.GetName(),
		Language:    repo.GetLanguage(),
		Description: repo.GetDescription(),
		Topics:      repo.Topics,
	}
	logger.Debug("github: fetched metadata for %s (language=%s)", ref.String(), meta.Language)
	return meta, nil
}

// FetchPRMetadata returns pull request detail plus the changed file list
// with truncated patch excerpts.
func (s *Service) FetchPRMetadata(ctx context.Context, ref domain.PRRef) (*domain.PRMetadata, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	pr, resp, err := s.gh.PullRequests.Get(ctx, ref.Owner, ref.Name, ref.Number)
	s.updateRateLimit(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s#%d: %v", domain.ErrNoPullRequestData, ref.Owner+"/"+ref.Name, ref.Number, s.wrapError(err, "get pull request"))
	}

	meta := &domain.PRMetadata{
		Title:              pr.GetTitle(),
		Body:               pr.GetBody(),
		State:              pr.GetState(),
		Number:             pr.GetNumber(),
		Author:             pr.GetUser().GetLogin(),
		CreatedAt:          pr.GetCreatedAt().Format(time.RFC3339),
		UpdatedAt:          pr.GetUpdatedAt().Format(time.RFC3339),
		Mergeable:          pr.Mergeable,
		Additions:          pr.GetAdditions(),
		Deletions:          pr.GetDeletions(),
		ChangedFilesCount:  pr.GetChangedFiles(),
		Commits:            pr.GetCommits(),
		CommentsCount:      pr.GetComments(),
		ReviewCommentCount: pr.GetReviewComments(),
		BaseBranch:         pr.GetBase().GetRef(),
		HeadBranch:         pr.GetHead().GetRef(),
		URL:                pr.GetHTMLURL(),
	}
	for _, label := range pr.Labels {
		meta.Labels = append(meta.Labels, label.GetName())
	}
	for _, user := range pr.Assignees {
		meta.Assignees = append(meta.Assignees, user.GetLogin())
	}
	for _, user := range pr.RequestedReviewers {
		meta.RequestedReviewers = append(meta.RequestedReviewers, user.GetLogin())
	}

	changes, err := s.listFiles(ctx, ref)
	if err != nil {
		return nil, err
	}
	meta.FileChanges = changes
	for _, change := range changes {
		meta.ChangedFiles = append(meta.ChangedFiles, change.Filename)
	}

	logger.Debug("github: fetched PR %s#%d (%d files)", ref.Owner+"/"+ref.Name, ref.Number, len(changes))
	return meta, nil
}

// listFiles pages through the changed files of a pull request.
func (s *Service) listFiles(ctx context.Context, ref domain.PRRef) ([]domain.FileChange, error) {
	var changes []domain.FileChange
	opts := &gh.ListOptions{PerPage: filesPerPage}

	for {
		select {
		case <-ctx.Done():
			return changes, ctx.Err()
		default:
		}

		if err := s.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		files, resp, err := s.gh.PullRequests.ListFiles(ctx, ref.Owner, ref.Name, ref.Number, opts)
		s.updateRateLimit(resp)
		if err != nil {
			return nil, fmt.Errorf("%w: list files: %v", domain.ErrNoPullRequestData, s.wrapError(err, "list files"))
		}

		for _, f := range files {
			patch := f.GetPatch()
			if len(patch) > maxPatchExcerpt {
				patch = patch[:maxPatchExcerpt]
			}
			changes = append(changes, domain.FileChange{
				Filename:  f.GetFilename(),
				Status:    f.GetStatus(),
				Additions: f.GetAdditions(),
				Deletions: f.GetDeletions(),
				Patch:     patch,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return changes, nil
}

// CreateIssue posts the payload to the repository's issues endpoint.
func (s *Service) CreateIssue(ctx context.Context, ref domain.RepoRef, payload domain.IssuePayload) (*domain.CreatedIssue, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req := &gh.IssueRequest{
		Title: gh.Ptr(payload.Title),
		Body:  gh.Ptr(payload.Body),
	}
	if len(payload.Labels) > 0 {
		req.Labels = &payload.Labels
	}
	if len(payload.Assignees) > 0 {
		req.Assignees = &payload.Assignees
	}

	issue, resp, err := s.gh.Issues.Create(ctx, ref.Owner, ref.Name, req)
	s.updateRateLimit(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrIssueCreation, ref.String(), s.wrapError(err, "create issue"))
	}

	created := &domain.CreatedIssue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		URL:    issue.GetHTMLURL(),
	}
	logger.Info("github: created issue #%d in %s", created.Number, ref.String())
	return created, nil
}

// updateRateLimit feeds response headers to the rate limiter.
func (s *Service) updateRateLimit(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	s.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to the connector's error types.
func (s *Service) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   s.rateLimiter.ResetTime(),
			Remaining: s.rateLimiter.Remaining(),
			Limit:     s.rateLimiter.Limit(),
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}
