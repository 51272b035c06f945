package agentverse

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

type stubIdentity struct{}

func (stubIdentity) Address() string                { return "agent1qsender" }
func (stubIdentity) SignDigest(digest []byte) string { return "sig-" + string(digest[:4]) }

func TestNewSearchClient_RequiresAPIKey(t *testing.T) {
	_, err := NewSearchClient(SearchConfig{})
	assert.Error(t, err)
}

func TestSearchClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search/agents", r.URL.Path)
		assert.Equal(t, "Bearer av-key", r.Header.Get("Authorization"))

		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "code analysis", req.SearchText)
		assert.Equal(t, searchTop, req.Top)

		_, _ = w.Write([]byte(`{"agents":[
			{"address":"agent1qaaa","name":"CodeScout","readme":"Analyzes repositories"},
			{"address":"agent1qbbb","name":"","readme":""}
		]}`))
	}))
	defer server.Close()

	client, err := NewSearchClient(SearchConfig{APIKey: "av-key", BaseURL: server.URL})
	require.NoError(t, err)

	agents, err := client.Search(context.Background(), "code analysis")
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "agent1qaaa", agents[0].Address)
	assert.Equal(t, "CodeScout", agents[0].Name)
	assert.Equal(t, "Unknown", agents[1].DisplayName())
}

func TestSearchClient_Search_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("forbidden"))
	}))
	defer server.Close()

	client, err := NewSearchClient(SearchConfig{APIKey: "av-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestMessenger_Dispatch(t *testing.T) {
	var got envelope
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/submit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	m := NewMessenger(MessengerConfig{BaseURL: server.URL}, stubIdentity{})

	req := domain.DispatchRequest{
		RepositoryURL: "https://github.com/acme/widgets",
		RequestType:   "feature_analysis",
		Requirements: map[string]any{
			"analyze_structure": true,
			"max_features":      5,
		},
		Query: "Analyze this repository",
	}
	err := m.Dispatch(context.Background(), domain.AgentDescriptor{Address: "agent1qtarget", Name: "Scout"}, req)
	require.NoError(t, err)

	assert.Equal(t, "agent1qsender", got.Sender)
	assert.Equal(t, "agent1qtarget", got.Target)
	assert.Equal(t, analysisRequestSchema, got.Schema)
	assert.NotEmpty(t, got.Session)
	assert.NotEmpty(t, got.Signature)

	payload, err := base64.StdEncoding.DecodeString(got.Payload)
	require.NoError(t, err)
	var decoded domain.DispatchRequest
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "https://github.com/acme/widgets", decoded.RepositoryURL)
	assert.Equal(t, "feature_analysis", decoded.RequestType)
}

func TestMessenger_Dispatch_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	m := NewMessenger(MessengerConfig{BaseURL: server.URL}, stubIdentity{})
	err := m.Dispatch(context.Background(), domain.AgentDescriptor{Address: "agent1qtarget"}, domain.DispatchRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestSimulatedCollector_Collect(t *testing.T) {
	collector := NewSimulatedCollector(1)
	repo := domain.RepoRef{Owner: "acme", Name: "widgets"}
	agents := []domain.AgentDescriptor{
		{Address: "agent1qaaa", Name: "Scout"},
		{Address: "agent1qbbb"},
	}

	opinions := collector.Collect(context.Background(), agents, repo)
	require.Len(t, opinions, 2)

	assert.Equal(t, "Scout", opinions[0].Source)
	assert.True(t, opinions[0].Simulated)
	assert.Contains(t, opinions[0].Text, "Analysis from Scout")
	assert.Contains(t, opinions[0].Text, repo.URL())
	assert.Contains(t, opinions[0].Text, "Suggested Features:")
	assert.Contains(t, opinions[0].Text, "Enhanced Developer Experience")

	assert.Equal(t, "Unknown", opinions[1].Source)
	assert.True(t, opinions[1].Simulated)
}

func TestSimulatedCollector_Collect_Empty(t *testing.T) {
	collector := NewSimulatedCollector(1)
	opinions := collector.Collect(context.Background(), nil, domain.RepoRef{Owner: "a", Name: "b"})
	assert.Empty(t, opinions)
}
