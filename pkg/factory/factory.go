// Package factory constructs provider clients from model definitions.
package factory

import (
	"fmt"

	"askgpt/pkg/config"
	"askgpt/pkg/llm"
	"askgpt/pkg/llm/openai"
)

// NewLLMProvider creates a provider for the given model definition.
// All supported vendors speak the OpenAI wire format; they differ only
// in base URL and credentials.
func NewLLMProvider(modelDef config.ModelDef) (llm.Provider, error) {
	switch modelDef.Provider {
	case "openai", "zai", "deepseek", "openrouter":
		return openai.NewClient(modelDef), nil

	default:
		return nil, fmt.Errorf("unknown provider type: %s", modelDef.Provider)
	}
}
