package llm

import "context"

// Provider is the contract every chat-completion backend implements.
type Provider interface {
	// Chat issues exactly one remote call and blocks until the provider
	// answers or fails. It never retries and never returns partial text.
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}
