// Package openai adapts OpenAI-compatible chat-completion APIs to the
// llm.Provider interface. A custom base URL covers compatible vendors
// (Zai, DeepSeek, OpenRouter and so on).
package openai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"askgpt/pkg/config"
	"askgpt/pkg/llm"
	"askgpt/pkg/utils"

	openai "github.com/sashabaranov/go-openai"
)

// Client implements llm.Provider on top of the go-openai SDK.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a client from one model definition. All settings
// come from the configuration, nothing is hardcoded.
func NewClient(modelDef config.ModelDef) *Client {
	cfg := openai.DefaultConfig(modelDef.APIKey)
	if modelDef.BaseURL != "" {
		cfg.BaseURL = modelDef.BaseURL
	}

	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: modelDef.ModelName,
	}
}

// Chat sends the request and returns the completion. The SDK call is
// made exactly once; every failure is classified into the llm error
// taxonomy before being returned.
func (c *Client) Chat(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
	start := time.Now()

	model := req.Model
	if model == "" {
		model = c.model
	}

	sdkReq := openai.ChatCompletionRequest{
		Model:     model,
		Messages:  mapMessages(req.Messages),
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature != nil {
		temp := float32(*req.Temperature)
		if temp == 0 {
			// The SDK field carries omitempty, which would drop an
			// explicit 0 from the wire. This stand-in is the SDK's
			// own smallest representable value for exact zero.
			temp = math.SmallestNonzeroFloat32
		}
		sdkReq.Temperature = temp
	}

	utils.Debug("chat request started",
		"model", model,
		"messages_count", len(req.Messages),
		"max_tokens", req.MaxTokens)

	resp, err := c.api.CreateChatCompletion(ctx, sdkReq)
	if err != nil {
		utils.Error("chat request failed",
			"model", model,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return llm.ChatResponse{}, classifyErr(err)
	}

	if len(resp.Choices) == 0 {
		return llm.ChatResponse{}, &llm.TransportError{Message: "provider returned no choices"}
	}

	result := llm.ChatResponse{
		Text:  resp.Choices[0].Message.Content,
		Model: resp.Model,
		Usage: llm.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}

	utils.Info("chat response received",
		"model", result.Model,
		"content_length", len(result.Text),
		"total_tokens", result.Usage.TotalTokens,
		"duration_ms", time.Since(start).Milliseconds())

	return result, nil
}

// mapMessages converts unified messages into the SDK format.
func mapMessages(messages []llm.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}
	return out
}

// classifyErr maps SDK and network failures into the llm taxonomy.
//
// HTTP status is the discriminator when present: 401/403 are credential
// failures, 429 is throttling, other 4xx are malformed requests, 5xx and
// everything without a status (DNS, refused connection, timeout) are
// transport failures.
func classifyErr(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, apiErr.Message, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, reqErr.Error(), err)
	}

	return &llm.TransportError{Err: err}
}

func classifyStatus(status int, message string, cause error) error {
	switch {
	case status == 0:
		// No HTTP exchange happened at all.
		return &llm.TransportError{Err: cause}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &llm.AuthenticationError{Message: message}
	case status == http.StatusTooManyRequests:
		return &llm.RateLimitError{Message: message}
	case status >= 400 && status < 500:
		return &llm.InvalidRequestError{Message: message}
	default:
		return &llm.TransportError{Message: fmt.Sprintf("provider request failed (HTTP %d)", status), Err: cause}
	}
}
