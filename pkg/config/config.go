// Package config loads the YAML configuration for the CLI.
//
// Secrets are referenced as ${VAR} and substituted from the process
// environment (a .env file next to the binary is picked up first).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig mirrors the structure of config.yaml.
type AppConfig struct {
	Models ModelsConfig `yaml:"models"`
	App    AppSpecific  `yaml:"app"`
}

// ModelsConfig holds the model alias definitions.
type ModelsConfig struct {
	DefaultChat string              `yaml:"default_chat"` // Alias used when no -model flag is given
	Definitions map[string]ModelDef `yaml:"definitions"`  // Alias -> model definition
}

// ModelDef describes one model the CLI can talk to.
type ModelDef struct {
	Provider    string        `yaml:"provider"`   // "openai", "zai", "deepseek", "openrouter"
	ModelName   string        `yaml:"model_name"` // Real name sent over the wire
	APIKey      string        `yaml:"api_key"`    // Supports ${VAR}
	BaseURL     string        `yaml:"base_url"`   // Empty means the provider default
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"` // Parses "60s", "2m"
}

// AppSpecific holds general application settings.
type AppSpecific struct {
	Debug bool `yaml:"debug"` // Enables the file logger
}

// Load reads the YAML file, substitutes environment variables and
// returns the validated configuration.
func Load(path string) (*AppConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found at: %s", path)
	}

	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pull in a .env file if one exists, then expand ${VAR} references.
	_ = godotenv.Load()
	contentWithEnv := os.ExpandEnv(string(rawBytes))

	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(contentWithEnv), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// validate checks the fields the CLI cannot run without. A missing
// api_key is deliberately not checked here: it is reported as an
// authentication failure at dispatch time, before any network call.
func (c *AppConfig) validate() error {
	if len(c.Models.Definitions) == 0 {
		return fmt.Errorf("models.definitions must define at least one model")
	}
	for alias, def := range c.Models.Definitions {
		if def.ModelName == "" {
			return fmt.Errorf("model %q has no model_name", alias)
		}
	}
	if c.Models.DefaultChat != "" {
		if _, ok := c.Models.Definitions[c.Models.DefaultChat]; !ok {
			return fmt.Errorf("default_chat model %q is not defined in definitions", c.Models.DefaultChat)
		}
	}
	return nil
}

// GetChatModel returns the definition for the given alias, falling back
// to the default chat model when the alias is empty.
func (c *AppConfig) GetChatModel(alias string) (ModelDef, bool) {
	if alias == "" {
		alias = c.Models.DefaultChat
	}
	m, ok := c.Models.Definitions[alias]
	return m, ok
}
