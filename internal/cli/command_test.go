package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "tarjimon [text]" {
		t.Errorf("Expected Use to be 'tarjimon [text]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Uzbek") {
		t.Errorf("Expected Short description to mention Uzbek, got %s", cmd.Short)
	}

	// Test that flags are set up
	flagTests := []string{
		"config",
		"to",
		"tone",
		"batch",
		"history",
		"clear-history",
		"history-db",
		"provider",
		"model",
		"timeout",
		"breaker",
	}

	for _, name := range flagTests {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %q to be registered", name)
			}
		})
	}
}

func TestGetGeminiKey_EnvWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	if key := GetGeminiKey(); key != "env-key" {
		t.Errorf("GetGeminiKey() = %q, want 'env-key'", key)
	}
}

func TestGetOpenAIKey_EnvWins(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	if key := GetOpenAIKey(); key != "env-key" {
		t.Errorf("GetOpenAIKey() = %q, want 'env-key'", key)
	}
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("OPENAI_API_KEY", "oai-key")

	tests := []struct {
		provider string
		want     string
	}{
		{"gemini", "gem-key"},
		{"", "gem-key"},
		{"openai", "oai-key"},
		{"stub", ""},
	}

	for _, tt := range tests {
		if got := ResolveAPIKey(tt.provider); got != tt.want {
			t.Errorf("ResolveAPIKey(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}
