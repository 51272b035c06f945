package driven

import (
	"context"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

// Discovery searches the agent marketplace index.
type Discovery interface {
	// Search returns agent descriptors matching a free-text query.
	// An empty result is not an error.
	Search(ctx context.Context, query string) ([]domain.AgentDescriptor, error)
}

// AgentMessenger delivers analysis requests to individual agents.
// Dispatch is fire-and-forget: there is no synchronous reply path.
type AgentMessenger interface {
	Dispatch(ctx context.Context, agent domain.AgentDescriptor, req domain.DispatchRequest) error
}

// OpinionCollector gathers opinion texts for previously dispatched
// requests. The production implementation is an explicit simulation: in
// the absence of a real reply channel it fabricates plausible opinion text
// per agent and marks it Simulated, rather than blocking indefinitely.
type OpinionCollector interface {
	Collect(ctx context.Context, agents []domain.AgentDescriptor, repo domain.RepoRef) []domain.Opinion
}
