// Package asione provides a chat service adapter for the ASI:One API.
package asione

import (
	"bufio"
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
	"github.com/sneaxhuh/sentinel/internal/core/services"
	"github.com/sneaxhuh/sentinel/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driven.ChatService = (*ChatService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.asi1.ai/v1"
	DefaultModel   = "asi1-agentic"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the ASI:One chat service.
type Config struct {
	// APIKey is the ASI:One API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.asi1.ai/v1).
	BaseURL string

	// Model is the chat model to use (default: asi1-agentic).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// ChatService provides chat completions against the ASI:One API. Each
// conversation id is mapped to a stable session token sent in the
// x-session-id header so the remote side can correlate turns.
type ChatService struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	model    string
	sessions *services.SessionCache
}

// chatRequest is the /chat/completions request format.
type chatRequest struct {
	Model    string    `json:"model"`
	Messages []chatMsg `json:"messages"`
	Stream   bool      `json:"stream"`
}

// chatMsg is the wire chat message format.
type chatMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the non-streaming /chat/completions response format.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// streamChunk is a single SSE data frame of the streaming variant.
type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content *string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// NewChatService creates a new ASI:One chat service.
func NewChatService(cfg Config) (*ChatService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("asione: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &ChatService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		sessions: services.NewSessionCache(services.DefaultSessionCapacity),
	}, nil
}

// Chat sends the messages and returns the single completion text.
func (s *ChatService) Chat(ctx context.Context, convID string, messages []driven.ChatMessage) (string, error) {
	resp, err := s.send(ctx, convID, messages, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrChatUnavailable, chatResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrChatUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response choices returned", domain.ErrChatUnavailable)
	}

	content := chatResp.Choices[0].Message.Content
	logger.Debug("asione: response received (%d characters)", len(content))
	return content, nil
}

// ChatStream consumes the SSE framed stream variant, accumulating delta
// tokens until the [DONE] sentinel. Malformed frames are skipped.
func (s *ChatService) ChatStream(ctx context.Context, convID string, messages []driven.ChatMessage) (string, error) {
	resp, err := s.send(ctx, convID, messages, true)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrChatUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var full strings.Builder
	frames := 0
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		line = strings.TrimPrefix(line, "data: ")
		if line == "[DONE]" {
			break
		}
		var chunk streamChunk
		if err := json.Unmarshal([]byte(line), &chunk); err != nil {
			continue
		}
		if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != nil {
			full.WriteString(*chunk.Choices[0].Delta.Content)
			frames++
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stream: %w", err)
	}

	logger.Debug("asione: stream complete (%d frames, %d characters)", frames, full.Len())
	return full.String(), nil
}

// send issues the completion request with the session header for convID.
func (s *ChatService) send(ctx context.Context, convID string, messages []driven.ChatMessage, stream bool) (*http.Response, error) {
	wireMessages := make([]chatMsg, len(messages))
	for i, msg := range messages {
		wireMessages[i] = chatMsg{Role: msg.Role, Content: msg.Content}
	}

	jsonBody, err := json.Marshal(chatRequest{
		Model:    s.model,
		Messages: wireMessages,
		Stream:   stream,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	sessionID := s.sessions.Token(convID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("x-session-id", sessionID)

	logger.Debug("asione: request conv=%s session=%s messages=%d stream=%v", convID, sessionID, len(messages), stream)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrChatUnavailable, err)
	}
	return resp, nil
}

// ModelName returns the name of the chat model being used.
func (s *ChatService) ModelName() string {
	return s.model
}
