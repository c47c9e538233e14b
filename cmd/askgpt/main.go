// askgpt — CLI wrapper over OpenAI-compatible chat-completion APIs.
//
// Usage:
//   ./askgpt "your prompt"
//   ./askgpt -model gpt-4o -temperature 0.2 "your prompt"
//   ./askgpt -system-prompt "You are a pirate." "your prompt"
//   ./askgpt -message "user: hi" -message "assistant: hello" "continue"
//
// config.yaml must be located next to the binary or passed via -config.
// API keys are referenced in the config as ${VAR} and read from the
// environment (a .env file is picked up too).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"askgpt/pkg/config"
	"askgpt/pkg/dispatch"
	"askgpt/pkg/llm"
	"askgpt/pkg/models"
	"askgpt/pkg/utils"
)

// Version is filled in at build time.
var Version = "dev"

const defaultTimeout = 60 * time.Second

// messageList collects repeated -message flags.
type messageList []string

func (m *messageList) String() string {
	return strings.Join(*m, ", ")
}

func (m *messageList) Set(value string) error {
	*m = append(*m, value)
	return nil
}

func main() {
	var preloadRaw messageList
	var (
		configPath   = flag.String("config", "", "Path to config.yaml (default: ./config.yaml)")
		modelName    = flag.String("model", "", "Model alias from config (default: models.default_chat)")
		systemPrompt = flag.String("system-prompt", "", "System prompt for the conversation")
		temperature  = flag.Float64("temperature", -1, "Sampling temperature override (0..2)")
		maxTokens    = flag.Int("max-tokens", -1, "Completion length limit override")
		timeout      = flag.Duration("timeout", 0, "Request timeout (default: model timeout or 60s)")
		jsonOutput   = flag.Bool("json", false, "Output in JSON format (text, model, usage)")
		debugFlag    = flag.Bool("debug", false, "Enable debug logging to a file")
		noColor      = flag.Bool("no-color", false, "Disable colors in output")
		showHelp     = flag.Bool("help", false, "Show help")
		showVersion  = flag.Bool("version", false, "Show version")
	)
	flag.Var(&preloadRaw, "message", "Preload a message, \"user: ...\" or \"assistant: ...\" (repeatable)")
	// -h and flag-parse errors must render the same text as -help.
	flag.Usage = printHelp
	flag.Parse()

	if *showVersion {
		fmt.Printf("askgpt version %s\n", Version)
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: prompt argument is required")
		fmt.Fprintln(os.Stderr, "Usage: askgpt [flags] \"prompt\"")
		fmt.Fprintln(os.Stderr, "Run 'askgpt -help' for more information")
		os.Exit(1)
	}

	userPrompt := strings.Join(flag.Args(), " ")

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = findConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config from %s: %v\n", cfgPath, err)
		os.Exit(1)
	}

	if *debugFlag || cfg.App.Debug {
		if err := utils.InitLogger(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug logger unavailable: %v\n", err)
		}
		defer utils.Close()
	}

	registry, err := models.NewRegistryFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building model registry: %v\n", err)
		os.Exit(1)
	}

	preload, err := parsePreload(preloadRaw)
	if err != nil {
		printError(err, *noColor)
		os.Exit(1)
	}

	params := dispatch.Params{
		Model:        *modelName,
		Prompt:       userPrompt,
		SystemPrompt: *systemPrompt,
		Preload:      preload,
	}
	if *temperature >= 0 {
		params.Temperature = temperature
	}
	if *maxTokens >= 0 {
		params.MaxTokens = maxTokens
	}

	dispatcher := dispatch.New(registry, cfg.Models.DefaultChat)

	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout(*timeout, dispatcher, *modelName))
	defer cancel()

	resp, err := dispatcher.Dispatch(ctx, params)
	if err != nil {
		printError(err, *noColor)
		os.Exit(1)
	}

	if *jsonOutput {
		printJSON(resp)
		return
	}
	fmt.Println(resp.Text)
}

// parsePreload converts the raw -message values into llm messages.
func parsePreload(raw []string) ([]llm.Message, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]llm.Message, 0, len(raw))
	for _, r := range raw {
		msg, err := llm.ParseMessage(r)
		if err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, nil
}

// resolveTimeout picks the flag value, then the per-model timeout from
// the config, then the built-in default.
func resolveTimeout(flagValue time.Duration, dispatcher *dispatch.Dispatcher, modelAlias string) time.Duration {
	if flagValue > 0 {
		return flagValue
	}
	if dispatcher != nil {
		if modelDef, _, err := dispatcher.ModelDef(modelAlias); err == nil && modelDef.Timeout > 0 {
			return modelDef.Timeout
		}
	}
	return defaultTimeout
}

// findConfigPath looks for config.yaml in the working directory first,
// then next to the binary.
func findConfigPath() string {
	const name = "config.yaml"
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return name
}
