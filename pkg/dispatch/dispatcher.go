// Package dispatch implements the request dispatcher: validate the
// command-line parameters locally, call the chat-completion provider
// exactly once, and hand back either the full completion or a
// classified failure.
package dispatch

import (
	"context"
	"strings"

	"askgpt/pkg/config"
	"askgpt/pkg/llm"
	"askgpt/pkg/models"
	"askgpt/pkg/utils"
)

// DefaultSystemPrompt is used when the caller supplies neither a system
// prompt nor preloaded messages.
const DefaultSystemPrompt = "You are a helpful CLI assistant. Keep answers concise."

// Provider sampling bounds. The OpenAI-compatible APIs accept
// temperatures in [0, 2].
const (
	minTemperature = 0.0
	maxTemperature = 2.0
)

// Params are the validated inputs of one invocation.
type Params struct {
	// Model is the config alias; empty selects the default chat model.
	Model string

	// Prompt is the user prompt. Must be non-empty after trimming.
	Prompt string

	// SystemPrompt seeds the conversation. Mutually exclusive with
	// Preload; when both are empty, DefaultSystemPrompt is used.
	SystemPrompt string

	// Preload is an ordered list of role-tagged messages to send ahead
	// of the prompt.
	Preload []llm.Message

	// Temperature and MaxTokens override the model defaults when
	// non-nil.
	Temperature *float64
	MaxTokens   *int
}

// Dispatcher issues one chat-completion request per Dispatch call.
type Dispatcher struct {
	registry     *models.Registry
	defaultModel string
}

// New creates a dispatcher over the given registry.
func New(registry *models.Registry, defaultModel string) *Dispatcher {
	return &Dispatcher{
		registry:     registry,
		defaultModel: defaultModel,
	}
}

// Dispatch validates the parameters, then calls the provider exactly
// once and returns the completion. Validation failures (empty prompt,
// unknown model, missing credential, out-of-range sampling values) are
// reported before any network traffic happens.
func (d *Dispatcher) Dispatch(ctx context.Context, p Params) (llm.ChatResponse, error) {
	provider, modelDef, alias, err := d.validate(&p)
	if err != nil {
		return llm.ChatResponse{}, err
	}

	conv, err := llm.NewConversation(p.SystemPrompt, p.Preload)
	if err != nil {
		return llm.ChatResponse{}, err
	}
	if err := conv.Add(llm.RoleUser, p.Prompt); err != nil {
		return llm.ChatResponse{}, err
	}

	req := llm.ChatRequest{
		Model:     modelDef.ModelName,
		MaxTokens: modelDef.MaxTokens,
		Messages:  conv.Messages(),
	}
	// An explicit override wins, including an explicit 0. Otherwise the
	// model default applies, where 0 means "not configured".
	if p.Temperature != nil {
		req.Temperature = p.Temperature
	} else if modelDef.Temperature != 0 {
		temp := modelDef.Temperature
		req.Temperature = &temp
	}
	if p.MaxTokens != nil {
		req.MaxTokens = *p.MaxTokens
	}

	utils.Info("dispatching request",
		"model", alias,
		"provider", modelDef.Provider,
		"messages_count", len(req.Messages))

	return provider.Chat(ctx, req)
}

// ModelDef exposes the resolved model definition for an alias, so the
// CLI can pick up per-model timeouts before dispatching.
func (d *Dispatcher) ModelDef(alias string) (config.ModelDef, string, error) {
	_, modelDef, resolved, err := d.registry.GetWithFallback(alias, d.defaultModel)
	if err != nil {
		return config.ModelDef{}, "", &llm.InvalidRequestError{Parameter: "model", Message: err.Error()}
	}
	return modelDef, resolved, nil
}

// validate rejects bad input locally and resolves the provider. No
// network call is made here.
func (d *Dispatcher) validate(p *Params) (llm.Provider, config.ModelDef, string, error) {
	p.Prompt = strings.TrimSpace(p.Prompt)
	if p.Prompt == "" {
		return nil, config.ModelDef{}, "", &llm.InvalidRequestError{Parameter: "prompt", Message: "prompt must not be empty"}
	}

	provider, modelDef, alias, err := d.registry.GetWithFallback(p.Model, d.defaultModel)
	if err != nil {
		return nil, config.ModelDef{}, "", &llm.InvalidRequestError{Parameter: "model", Message: err.Error()}
	}

	if modelDef.APIKey == "" {
		return nil, config.ModelDef{}, "", &llm.AuthenticationError{
			Message: "no API key configured for model " + alias + " (set it in config.yaml or the referenced environment variable)",
		}
	}

	if p.Temperature != nil && (*p.Temperature < minTemperature || *p.Temperature > maxTemperature) {
		return nil, config.ModelDef{}, "", &llm.InvalidRequestError{Parameter: "temperature", Message: "temperature must be between 0 and 2"}
	}
	if p.MaxTokens != nil && *p.MaxTokens < 0 {
		return nil, config.ModelDef{}, "", &llm.InvalidRequestError{Parameter: "max-tokens", Message: "max tokens must not be negative"}
	}

	if p.SystemPrompt != "" && len(p.Preload) > 0 {
		return nil, config.ModelDef{}, "", &llm.InvalidRequestError{Message: "a system prompt and preloaded messages cannot both be provided"}
	}
	if p.SystemPrompt == "" && len(p.Preload) == 0 {
		p.SystemPrompt = DefaultSystemPrompt
	}

	return provider, modelDef, alias, nil
}
