package agentverse

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
	"github.com/sneaxhuh/sentinel/internal/core/ports/driven"
	"github.com/sneaxhuh/sentinel/internal/logger"
)

// Ensure Messenger implements the interface.
var _ driven.AgentMessenger = (*Messenger)(nil)

// DefaultDispatchTimeout bounds a single dispatch request.
const DefaultDispatchTimeout = 30 * time.Second

// analysisRequestSchema identifies the payload schema inside an envelope.
const analysisRequestSchema = "feature-analysis-request/v1"

// MessengerConfig holds configuration for the Agentverse messenger.
type MessengerConfig struct {
	// BaseURL is the API base URL (default: https://agentverse.ai).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Messenger delivers signed analysis requests to marketplace agents.
// Delivery is fire-and-forget: an accepted submission is a success even
// though no reply will arrive on this channel.
type Messenger struct {
	client   *http.Client
	baseURL  string
	identity driven.Identity
}

// envelope is the signed message submission format.
type envelope struct {
	Version   int    `json:"version"`
	Sender    string `json:"sender"`
	Target    string `json:"target"`
	Session   string `json:"session"`
	Schema    string `json:"schema_digest"`
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
}

// NewMessenger creates a messenger that signs envelopes with the given
// identity.
func NewMessenger(cfg MessengerConfig, identity driven.Identity) *Messenger {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultDispatchTimeout
	}

	return &Messenger{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  cfg.BaseURL,
		identity: identity,
	}
}

// Dispatch submits one analysis request envelope addressed to the agent.
func (m *Messenger) Dispatch(ctx context.Context, agent domain.AgentDescriptor, req domain.DispatchRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	digest := sha256.Sum256(payload)
	env := envelope{
		Version:   1,
		Sender:    m.identity.Address(),
		Target:    agent.Address,
		Session:   uuid.NewString(),
		Schema:    analysisRequestSchema,
		Payload:   base64.StdEncoding.EncodeToString(payload),
		Signature: m.identity.SignDigest(digest[:]),
	}

	jsonBody, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.baseURL+"/v1/submit",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("agentverse submit: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	logger.Debug("agentverse: dispatched to %s (%s)", agent.DisplayName(), agent.Address)
	return nil
}
