// askgpt — output rendering for the CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"askgpt/pkg/llm"

	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// printError writes one classified failure message to stderr. The
// message prefix ("authentication error", "rate limit exceeded", ...)
// comes from the error type itself, so every class stays identifiable.
func printError(err error, noColor bool) {
	msg := fmt.Sprintf("Error: %v", err)
	if noColor {
		fmt.Fprintln(os.Stderr, msg)
		return
	}
	fmt.Fprintln(os.Stderr, errorStyle.Render(msg))
}

// printJSON writes the completion with model and usage metadata.
func printJSON(resp llm.ChatResponse) {
	result := struct {
		Text  string `json:"text"`
		Model string `json:"model"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}{
		Text:  resp.Text,
		Model: resp.Model,
	}
	result.Usage.PromptTokens = resp.Usage.PromptTokens
	result.Usage.CompletionTokens = resp.Usage.CompletionTokens
	result.Usage.TotalTokens = resp.Usage.TotalTokens

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}

// printHelp prints the full usage text.
func printHelp() {
	fmt.Println(`askgpt — send a prompt to a chat-completion API and print the answer

Usage:
  askgpt [flags] "prompt"

Flags:
  -config string        Path to config.yaml (default: ./config.yaml)
  -model string         Model alias from config (default: models.default_chat)
  -system-prompt string System prompt for the conversation
  -message value        Preload a message, "user: ..." or "assistant: ..." (repeatable)
  -temperature float    Sampling temperature override (0..2)
  -max-tokens int       Completion length limit override
  -timeout duration     Request timeout (default: model timeout or 60s)
  -json                 Output in JSON format (text, model, usage)
  -debug                Enable debug logging to a file
  -no-color             Disable colors in output
  -version              Show version
  -help                 Show this help

Examples:
  askgpt "What is the capital of France?"
  askgpt -model gpt-4o -temperature 0.2 "Summarize this in one line"
  askgpt -system-prompt "You are a code reviewer." "Review: func main() {}"
  askgpt -message "user: 2+2?" -message "assistant: 4" "and times 3?"

A model needs an API key in config.yaml; reference it as ` + "`api_key: ${OPENAI_API_KEY}`" + `
and export the variable (or put it in a .env file next to the binary).`)
}
