package models_test

import (
	"context"
	"testing"

	"askgpt/pkg/config"
	"askgpt/pkg/llm"
	"askgpt/pkg/models"
)

type stubProvider struct{}

func (stubProvider) Chat(_ context.Context, _ llm.ChatRequest) (llm.ChatResponse, error) {
	return llm.ChatResponse{Text: "ok"}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := models.NewRegistry()
	def := config.ModelDef{Provider: "openai", ModelName: "gpt-4o-mini", APIKey: "key"}

	if err := r.Register("mini", def, stubProvider{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider, gotDef, err := r.Get("mini")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if gotDef.ModelName != "gpt-4o-mini" {
		t.Errorf("expected model gpt-4o-mini, got %s", gotDef.ModelName)
	}
}

func TestRegistry_DuplicateRegister(t *testing.T) {
	r := models.NewRegistry()
	def := config.ModelDef{ModelName: "gpt-4o-mini"}

	if err := r.Register("mini", def, stubProvider{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register("mini", def, stubProvider{}); err == nil {
		t.Fatal("expected error on duplicate alias")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := models.NewRegistry()
	if _, _, err := r.Get("nope"); err == nil {
		t.Fatal("expected error for unknown alias")
	}
}

func TestRegistry_GetWithFallback(t *testing.T) {
	r := models.NewRegistry()
	if err := r.Register("default", config.ModelDef{ModelName: "gpt-4o-mini"}, stubProvider{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register("other", config.ModelDef{ModelName: "gpt-4o"}, stubProvider{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		requested string
		wantAlias string
		wantErr   bool
	}{
		{name: "requested alias wins", requested: "other", wantAlias: "other"},
		{name: "empty request falls back to default", requested: "", wantAlias: "default"},
		{name: "unknown request is an error, not a fallback", requested: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, alias, err := r.GetWithFallback(tt.requested, "default")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if alias != tt.wantAlias {
				t.Errorf("expected alias %s, got %s", tt.wantAlias, alias)
			}
		})
	}
}

func TestRegistry_GetWithFallback_NoDefault(t *testing.T) {
	r := models.NewRegistry()
	if _, _, _, err := r.GetWithFallback("", ""); err == nil {
		t.Fatal("expected error when nothing is requested and no default exists")
	}
}

func TestNewRegistryFromConfig(t *testing.T) {
	cfg := &config.AppConfig{
		Models: config.ModelsConfig{
			DefaultChat: "mini",
			Definitions: map[string]config.ModelDef{
				"mini": {Provider: "openai", ModelName: "gpt-4o-mini", APIKey: "key"},
				"glm":  {Provider: "zai", ModelName: "glm-4.6", APIKey: "key"},
			},
		},
	}

	r, err := models.NewRegistryFromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(r.Aliases()); got != 2 {
		t.Errorf("expected 2 aliases, got %d", got)
	}
}

func TestNewRegistryFromConfig_UnknownProvider(t *testing.T) {
	cfg := &config.AppConfig{
		Models: config.ModelsConfig{
			Definitions: map[string]config.ModelDef{
				"bad": {Provider: "carrier-pigeon", ModelName: "pigeon-1"},
			},
		},
	}

	if _, err := models.NewRegistryFromConfig(cfg); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
