package driven

import "context"

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// ChatService is the model advisory transport. Every call is grouped under
// a conversation id; the adapter maps the id to a stable correlation token
// for the remote session header.
//
// Implementations may include:
//   - ASI:One (agentic chat completions)
//   - any OpenAI-compatible /chat/completions endpoint
type ChatService interface {
	// Chat sends the messages and returns the single completion text.
	Chat(ctx context.Context, convID string, messages []ChatMessage) (string, error)

	// ChatStream consumes the server-sent-event framed stream variant,
	// accumulating delta tokens until the terminal sentinel. Malformed
	// frames are skipped, not fatal.
	ChatStream(ctx context.Context, convID string, messages []ChatMessage) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string
}
