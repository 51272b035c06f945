package domain

// AgentDescriptor describes one marketplace agent returned by discovery.
type AgentDescriptor struct {
	// Address is the agent's unique marketplace address. Discovery
	// deduplicates on it across queries.
	Address string

	// Name is the agent's display name. May be empty.
	Name string

	// Readme is a free-text capability description. May be empty.
	Readme string

	// SearchQuery records which discovery query surfaced this agent.
	SearchQuery string
}

// DisplayName returns the agent name, or a placeholder when unset.
func (a AgentDescriptor) DisplayName() string {
	if a.Name == "" {
		return "Unknown"
	}
	return a.Name
}

// DispatchRequest is the structured analysis request sent to an agent.
// Fire-and-forget: no synchronous reply path exists.
type DispatchRequest struct {
	RepositoryURL string         `json:"repository_url"`
	RequestType   string         `json:"request_type"`
	Requirements  map[string]any `json:"requirements"`
	Query         string         `json:"query"`
}
