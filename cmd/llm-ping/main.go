// llm-ping — utility to verify that a configured model is reachable.
//
// Usage:
//   ./llm-ping                 pings the default chat model
//   ./llm-ping -model <alias>  pings a specific alias
//   ./llm-ping -config <path>  uses an alternative config.yaml
//
// Sends a one-token request and reports availability, latency and the
// failure class when the provider cannot be reached.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"askgpt/pkg/config"
	"askgpt/pkg/llm"
	"askgpt/pkg/models"
)

const pingTimeout = 15 * time.Second

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to config.yaml")
		modelName  = flag.String("model", "", "Model alias to ping (default: models.default_chat)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config from %s: %v", *configPath, err)
	}

	registry, err := models.NewRegistryFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to create model registry: %v", err)
	}

	provider, modelDef, alias, err := registry.GetWithFallback(*modelName, cfg.Models.DefaultChat)
	if err != nil {
		log.Fatalf("Failed to resolve model: %v", err)
	}

	fmt.Printf("🔍 Pinging model: %s (provider: %s)\n\n", alias, modelDef.Provider)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	req := llm.ChatRequest{
		Model:     modelDef.ModelName,
		MaxTokens: 8,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "ping"},
		},
	}

	start := time.Now()
	resp, err := provider.Chat(ctx, req)
	latency := time.Since(start)

	if err != nil {
		fmt.Printf("❌ Status: UNAVAILABLE\n")
		fmt.Printf("   Provider: %s\n", modelDef.Provider)
		fmt.Printf("   Model: %s\n", modelDef.ModelName)
		fmt.Printf("   Error Type: %s\n", errClass(err))
		fmt.Printf("   Error: %v\n", err)
		fmt.Printf("   Latency: %dms\n", latency.Milliseconds())
		os.Exit(1)
	}

	fmt.Printf("✅ Status: AVAILABLE\n")
	fmt.Printf("   Provider: %s\n", modelDef.Provider)
	fmt.Printf("   Model: %s\n", resp.Model)
	fmt.Printf("   Latency: %dms\n", latency.Milliseconds())
	fmt.Printf("   Tokens: %d\n", resp.Usage.TotalTokens)
}

// errClass names the failure class for display.
func errClass(err error) string {
	var authErr *llm.AuthenticationError
	var invalidErr *llm.InvalidRequestError
	var rateErr *llm.RateLimitError
	var transportErr *llm.TransportError

	switch {
	case errors.As(err, &authErr):
		return "authentication"
	case errors.As(err, &invalidErr):
		return "invalid_request"
	case errors.As(err, &rateErr):
		return "rate_limit"
	case errors.As(err, &transportErr):
		return "transport"
	default:
		return "unknown"
	}
}
