package llm

import (
	"fmt"
	"strings"
)

// Conversation is the message sequence sent in a single invocation.
// It is seeded from either a system prompt or a preloaded message list,
// never both and never neither.
type Conversation struct {
	messages []Message
}

// NewConversation builds a conversation from a system prompt or a
// preloaded message list.
func NewConversation(systemPrompt string, preload []Message) (*Conversation, error) {
	if systemPrompt == "" && len(preload) == 0 {
		return nil, &InvalidRequestError{Message: "either a system prompt or preloaded messages must be provided"}
	}
	if systemPrompt != "" && len(preload) > 0 {
		return nil, &InvalidRequestError{Message: "a system prompt and preloaded messages cannot both be provided"}
	}

	c := &Conversation{}
	if systemPrompt != "" {
		c.messages = append(c.messages, Message{Role: RoleSystem, Content: systemPrompt})
		return c, nil
	}

	for _, m := range preload {
		switch m.Role {
		case RoleSystem, RoleUser, RoleAssistant:
		default:
			return nil, &InvalidRequestError{Parameter: "message", Message: fmt.Sprintf("unknown role %q", m.Role)}
		}
		c.messages = append(c.messages, m)
	}
	return c, nil
}

// Add appends a user or assistant message.
func (c *Conversation) Add(role Role, content string) error {
	if role != RoleUser && role != RoleAssistant {
		return &InvalidRequestError{Parameter: "role", Message: fmt.Sprintf("role must be %q or %q, got %q", RoleUser, RoleAssistant, role)}
	}
	c.messages = append(c.messages, Message{Role: role, Content: content})
	return nil
}

// Messages returns a copy of the conversation history.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// ParseMessage parses the CLI preload syntax "role: content" where role
// is "user" or "assistant". The content keeps any further colons.
func ParseMessage(raw string) (Message, error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return Message{}, &InvalidRequestError{Parameter: "message", Message: fmt.Sprintf("%q must be in \"role: content\" form", raw)}
	}

	role := Role(strings.TrimSpace(parts[0]))
	content := strings.TrimSpace(parts[1])

	if role != RoleUser && role != RoleAssistant {
		return Message{}, &InvalidRequestError{Parameter: "message", Message: fmt.Sprintf("message role must be %q or %q, got %q", RoleUser, RoleAssistant, role)}
	}
	if content == "" {
		return Message{}, &InvalidRequestError{Parameter: "message", Message: fmt.Sprintf("%q has no content", raw)}
	}

	return Message{Role: role, Content: content}, nil
}
