package main

import (
	"io"
	"os"
	"testing"
	"time"

	"askgpt/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreload(t *testing.T) {
	msgs, err := parsePreload([]string{"user: 2+2?", "assistant: 4"})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "2+2?"}, msgs[0])
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "4"}, msgs[1])
}

func TestParsePreload_Empty(t *testing.T) {
	msgs, err := parsePreload(nil)
	require.NoError(t, err)
	assert.Nil(t, msgs)
}

func TestParsePreload_BadRole(t *testing.T) {
	_, err := parsePreload([]string{"system: sneaky"})
	require.Error(t, err)
}

func TestMessageList_Set(t *testing.T) {
	var list messageList
	require.NoError(t, list.Set("user: hi"))
	require.NoError(t, list.Set("assistant: hello"))
	assert.Equal(t, "user: hi, assistant: hello", list.String())
}

// printHelp backs flag.Usage, so -h, -help and flag-parse errors all
// render the same text; it has to mention every registered flag.
func TestPrintHelp_ListsEveryFlag(t *testing.T) {
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	printHelp()

	require.NoError(t, w.Close())
	os.Stdout = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	help := string(out)

	for _, name := range []string{
		"-config", "-model", "-system-prompt", "-message", "-temperature",
		"-max-tokens", "-timeout", "-json", "-debug", "-no-color",
		"-version", "-help",
	} {
		assert.Contains(t, help, name)
	}
}

func TestResolveTimeout_FlagWins(t *testing.T) {
	got := resolveTimeout(5*time.Second, nil, "")
	assert.Equal(t, 5*time.Second, got)
}
