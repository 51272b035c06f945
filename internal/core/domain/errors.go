package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidReference indicates a supplied URL does not match the
	// expected repository or pull request URL grammar.
	ErrInvalidReference = errors.New("invalid repository reference")

	// ErrConfigMissing indicates a required credential or setting is absent
	// at startup. This is fatal: no request is processed without it.
	ErrConfigMissing = errors.New("required configuration missing")

	// ErrNoRepositoryData indicates the repository metadata fetch returned
	// nothing usable. Classification falls back to defaults.
	ErrNoRepositoryData = errors.New("no repository data")

	// ErrNoPullRequestData indicates the PR metadata fetch returned nothing
	// usable.
	ErrNoPullRequestData = errors.New("no pull request data")

	// ErrChatUnavailable indicates the model transport failed or is not
	// configured.
	ErrChatUnavailable = errors.New("chat service unavailable")

	// ErrIssueCreation indicates the issue creation call was rejected.
	ErrIssueCreation = errors.New("issue creation failed")
)
