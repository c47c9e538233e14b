// Package models provides a registry of provider clients keyed by the
// model aliases from config.yaml. The registry is built once at startup
// and resolves the alias requested on the command line.
package models

import (
	"fmt"
	"sync"

	"askgpt/pkg/config"
	"askgpt/pkg/factory"
	"askgpt/pkg/llm"
)

// Registry is a thread-safe store of provider clients.
type Registry struct {
	mu     sync.RWMutex
	models map[string]ModelEntry
}

// ModelEntry pairs a constructed provider with its configuration.
type ModelEntry struct {
	Provider llm.Provider
	Config   config.ModelDef
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[string]ModelEntry),
	}
}

// NewRegistryFromConfig builds a registry with every model defined in
// the configuration.
func NewRegistryFromConfig(cfg *config.AppConfig) (*Registry, error) {
	r := NewRegistry()
	for alias, def := range cfg.Models.Definitions {
		provider, err := factory.NewLLMProvider(def)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", alias, err)
		}
		if err := r.Register(alias, def, provider); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a model. Returns an error on duplicate aliases.
func (r *Registry) Register(alias string, modelDef config.ModelDef, provider llm.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.models[alias]; exists {
		return fmt.Errorf("model %q already registered", alias)
	}

	r.models[alias] = ModelEntry{
		Provider: provider,
		Config:   modelDef,
	}
	return nil
}

// Get returns the provider and definition for an alias.
func (r *Registry) Get(alias string) (llm.Provider, config.ModelDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.models[alias]
	if !ok {
		return nil, config.ModelDef{}, fmt.Errorf("model %q not found in registry", alias)
	}
	return entry.Provider, entry.Config, nil
}

// GetWithFallback resolves the requested alias, falling back to the
// default one when the request is empty. An unknown requested alias is
// an error, not a silent fallback.
//
// Returns (provider, modelDef, resolved alias, error).
func (r *Registry) GetWithFallback(requested, defaultAlias string) (llm.Provider, config.ModelDef, string, error) {
	alias := requested
	if alias == "" {
		alias = defaultAlias
	}
	if alias == "" {
		return nil, config.ModelDef{}, "", fmt.Errorf("no model requested and no default model configured")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.models[alias]
	if !ok {
		return nil, config.ModelDef{}, "", fmt.Errorf("model %q not found in registry", alias)
	}
	return entry.Provider, entry.Config, alias, nil
}

// Aliases returns the registered alias names.
func (r *Registry) Aliases() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.models))
	for alias := range r.models {
		out = append(out, alias)
	}
	return out
}
