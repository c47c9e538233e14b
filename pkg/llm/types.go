// Package llm defines the unified request/response language spoken
// between the CLI and any chat-completion backend.
package llm

import "fmt"

// Role identifies the author of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatRequest is a unified request to any chat-completion model.
type ChatRequest struct {
	Model       string
	Temperature *float64 // nil leaves the provider default in place; 0 is a valid value
	MaxTokens   int
	Messages    []Message // Ordered conversation history
}

// Message is a single role-tagged message.
type Message struct {
	Role    Role
	Content string
}

// String renders the message as "role: content".
func (m Message) String() string {
	return fmt.Sprintf("%s: %s", m.Role, m.Content)
}

// Usage carries the token accounting reported by the provider.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ChatResponse is the result of a successful completion call.
type ChatResponse struct {
	Text  string // Full completion text, never partial
	Model string // Model name the provider actually served
	Usage Usage
}
