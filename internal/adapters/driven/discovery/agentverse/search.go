// Package agentverse provides marketplace adapters for the Agentverse API:
// agent search, message dispatch, and opinion collection.
package agentverse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
	"github.com/sneaxhuh/sentinel/internal/core/ports/driven"
	"github.com/sneaxhuh/sentinel/internal/logger"
)

// Ensure SearchClient implements the interface.
var _ driven.Discovery = (*SearchClient)(nil)

// Default configuration values.
const (
	DefaultBaseURL       = "https://agentverse.ai"
	DefaultSearchTimeout = 30 * time.Second

	// searchTop caps the number of results requested per query.
	searchTop = 10
)

// SearchConfig holds configuration for the Agentverse search client.
type SearchConfig struct {
	// APIKey is the Agentverse API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://agentverse.ai).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// SearchClient searches the Agentverse marketplace index.
type SearchClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// searchRequest is the /v1/search/agents request format.
type searchRequest struct {
	SearchText string `json:"search_text"`
	Sort       string `json:"sort"`
	Top        int    `json:"top"`
}

// searchResponse is the /v1/search/agents response format.
type searchResponse struct {
	Agents []struct {
		Address string `json:"address"`
		Name    string `json:"name"`
		Readme  string `json:"readme"`
	} `json:"agents"`
}

// NewSearchClient creates a new Agentverse search client.
func NewSearchClient(cfg SearchConfig) (*SearchClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("agentverse: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultSearchTimeout
	}

	return &SearchClient{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}, nil
}

// Search returns agent descriptors matching a free-text query.
func (c *SearchClient) Search(ctx context.Context, query string) ([]domain.AgentDescriptor, error) {
	jsonBody, err := json.Marshal(searchRequest{
		SearchText: query,
		Sort:       "relevancy",
		Top:        searchTop,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/search/agents",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agentverse search: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	agents := make([]domain.AgentDescriptor, 0, len(searchResp.Agents))
	for _, a := range searchResp.Agents {
		agents = append(agents, domain.AgentDescriptor{
			Address: a.Address,
			Name:    a.Name,
			Readme:  a.Readme,
		})
	}
	logger.Debug("agentverse: %d agents for query %q", len(agents), query)
	return agents, nil
}
