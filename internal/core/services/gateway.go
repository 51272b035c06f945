package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
	"github.com/sneaxhuh/sentinel/internal/core/ports/driven"
	"github.com/sneaxhuh/sentinel/internal/logger"
)

const (
	// maxSelectionCandidates caps how many discovered agents are summarized
	// for the model when selecting.
	maxSelectionCandidates = 10

	// selectCount is how many agents the model is asked to pick.
	selectCount = 3

	// discoveryPace is the fixed pacing between discovery queries, a
	// rate-limit courtesy to the marketplace index.
	discoveryPace = rate.Limit(1)
)

// discoveryQueries is the fixed sequence of marketplace searches. The
// first embeds the repository URL; the rest are generic capability
// queries.
func discoveryQueries(repo domain.RepoRef) []string {
	return []string{
		fmt.Sprintf("analyze repository code structure and suggest features for %s", repo.URL()),
		"code analysis repository feature suggestions",
		"langchain code analyzer",
		"repository analysis AI agent",
		"GitHub repository feature enhancement",
	}
}

// AdvisorGateway gathers raw opinions from external advisors: either the
// marketplace strategy (discover, select, dispatch, collect) or a single
// direct model call.
type AdvisorGateway struct {
	discovery driven.Discovery
	messenger driven.AgentMessenger
	collector driven.OpinionCollector
	chat      driven.ChatService
	pace      *rate.Limiter
}

// NewAdvisorGateway creates a gateway over the given marketplace ports.
func NewAdvisorGateway(
	discovery driven.Discovery,
	messenger driven.AgentMessenger,
	collector driven.OpinionCollector,
	chat driven.ChatService,
) *AdvisorGateway {
	return &AdvisorGateway{
		discovery: discovery,
		messenger: messenger,
		collector: collector,
		chat:      chat,
		pace:      rate.NewLimiter(discoveryPace, 1),
	}
}

// DiscoverAgents issues the fixed query sequence against the marketplace
// index, deduplicating agents by address across queries. Individual query
// failures are logged and skipped; pacing between queries respects the
// index's rate limits.
func (g *AdvisorGateway) DiscoverAgents(ctx context.Context, repo domain.RepoRef) []domain.AgentDescriptor {
	logger.Section("Agent Discovery")

	var all []domain.AgentDescriptor
	seen := map[string]bool{}

	for _, query := range discoveryQueries(repo) {
		if err := g.pace.Wait(ctx); err != nil {
			logger.Warn("discovery pacing interrupted: %v", err)
			break
		}

		logger.Debug("searching marketplace: %q", query)
		agents, err := g.discovery.Search(ctx, query)
		if err != nil {
			logger.Warn("discovery query failed: %v", err)
			continue
		}

		for _, agent := range agents {
			if agent.Address == "" || seen[agent.Address] {
				continue
			}
			seen[agent.Address] = true
			agent.SearchQuery = query
			all = append(all, agent)
			logger.Debug("discovered %s (%s)", agent.DisplayName(), agent.Address)
		}
	}

	logger.Info("total unique agents discovered: %d", len(all))
	return all
}

// selectionCandidate is the compact agent summary embedded in the
// selection prompt.
type selectionCandidate struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Readme      string `json:"readme"`
	SearchQuery string `json:"search_query"`
}

var indicesPattern = regexp.MustCompile(`\[([\d,\s]+)\]`)

// SelectAgents asks the model to pick the best agents for the repository,
// expecting a bracketed list of zero-based indices back. On any failure
// it falls back to the first selectCount discovered agents.
func (g *AdvisorGateway) SelectAgents(ctx context.Context, agents []domain.AgentDescriptor, repo domain.RepoRef) []domain.AgentDescriptor {
	if len(agents) == 0 {
		return nil
	}

	candidates := make([]selectionCandidate, 0, maxSelectionCandidates)
	for i, agent := range agents {
		if i >= maxSelectionCandidates {
			break
		}
		candidates = append(candidates, selectionCandidate{
			Index:       i,
			Name:        agent.DisplayName(),
			Address:     agent.Address,
			Readme:      agent.Readme,
			SearchQuery: agent.SearchQuery,
		})
	}

	summary, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return firstN(agents, selectCount)
	}

	prompt := fmt.Sprintf(`I need to analyze a GitHub repository: %s

Below are available AI agents from the marketplace. Please select the TOP %d agents that would be best for:
1. Analyzing the repository structure and code
2. Suggesting new features and improvements
3. Providing implementation difficulty assessments

Available agents:
%s

Please respond with ONLY a JSON array of the selected agent indices (0-based), like: [0, 2, 5]
Choose agents that have the most relevant capabilities for repository analysis and feature suggestion.`,
		repo.URL(), selectCount, summary)

	response, err := g.chat.Chat(ctx, uuid.NewString(), []driven.ChatMessage{{Role: "user", Content: prompt}})
	if err != nil {
		logger.Warn("agent selection call failed: %v", err)
		return firstN(agents, selectCount)
	}

	selected := parseIndexSelection(response, agents)
	if len(selected) == 0 {
		logger.Warn("agent selection response unparseable, using first %d", selectCount)
		return firstN(agents, selectCount)
	}

	for _, agent := range selected {
		logger.Debug("selected agent %s", agent.DisplayName())
	}
	return selected
}

// parseIndexSelection extracts a bracketed index list from the model
// response and maps valid indices to agents.
func parseIndexSelection(response string, agents []domain.AgentDescriptor) []domain.AgentDescriptor {
	m := indicesPattern.FindStringSubmatch(response)
	if m == nil {
		return nil
	}

	var selected []domain.AgentDescriptor
	for _, part := range strings.Split(m[1], ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || idx < 0 || idx >= len(agents) {
			continue
		}
		selected = append(selected, agents[idx])
	}
	return selected
}

func firstN(agents []domain.AgentDescriptor, n int) []domain.AgentDescriptor {
	if len(agents) <= n {
		return agents
	}
	return agents[:n]
}

// DispatchAll sends the structured analysis request to each selected
// agent. Failures are reported per agent and never abort the batch; there
// is no ordering requirement across agents.
func (g *AdvisorGateway) DispatchAll(ctx context.Context, agents []domain.AgentDescriptor, repo domain.RepoRef) {
	req := domain.DispatchRequest{
		RepositoryURL: repo.URL(),
		RequestType:   "feature_analysis",
		Requirements: map[string]any{
			"analyze_structure": true,
			"suggest_features":  true,
			"assess_difficulty": true,
			"max_features":      5,
		},
		Query: fmt.Sprintf("Analyze this repository: %s and suggest 3-5 specific features that could be added. "+
			"For each feature, provide: title, description, implementation difficulty (Easy/Medium/Hard), and implementation steps.", repo.URL()),
	}

	for _, agent := range agents {
		if err := g.messenger.Dispatch(ctx, agent, req); err != nil {
			logger.Warn("dispatch to %s failed: %v", agent.DisplayName(), err)
			continue
		}
		logger.Debug("dispatched analysis request to %s", agent.DisplayName())
	}
}

// CollectOpinions gathers opinion texts for the dispatched requests.
// The collection step is best-effort: the production collector fabricates
// clearly-labeled simulated opinions instead of blocking on a reply
// channel that does not exist.
func (g *AdvisorGateway) CollectOpinions(ctx context.Context, agents []domain.AgentDescriptor, repo domain.RepoRef) []domain.Opinion {
	opinions := g.collector.Collect(ctx, agents, repo)
	logger.Info("collected %d opinions", len(opinions))
	return opinions
}
