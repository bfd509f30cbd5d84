package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("AI_MODEL", "")
	t.Setenv("AI_MAX_TOKENS", "")
	t.Setenv("AI_TIMEOUT_SECONDS", "")
	t.Setenv("AI_API_URL", "")
	t.Setenv("CEREBRAS_API_URL", "")

	c := Load()
	if c.Completion.Provider != "openai" {
		t.Fatalf("provider: got %q", c.Completion.Provider)
	}
	if c.Completion.Model != "llama3.1-8b" {
		t.Fatalf("model: got %q", c.Completion.Model)
	}
	if c.Completion.MaxTokens != 3000 {
		t.Fatalf("max tokens: got %d", c.Completion.MaxTokens)
	}
	if c.Completion.Timeout != 60*time.Second {
		t.Fatalf("timeout: got %s", c.Completion.Timeout)
	}
	if c.Completion.BaseURL != "https://api.cerebras.ai/v1" {
		t.Fatalf("base url: got %q", c.Completion.BaseURL)
	}
	if c.BodyLimitBytes != 16*1024 {
		t.Fatalf("body limit: got %d", c.BodyLimitBytes)
	}
}

func TestLoad_LegacyCerebrasKeys(t *testing.T) {
	t.Setenv("AI_API_URL", "")
	t.Setenv("AI_API_KEY", "")
	t.Setenv("CEREBRAS_API_URL", "https://example.test/v1/chat/completions")
	t.Setenv("CEREBRAS_API_KEY", "secret")

	c := Load()
	if c.Completion.BaseURL != "https://example.test/v1/chat/completions" {
		t.Fatalf("base url: got %q", c.Completion.BaseURL)
	}
	if c.Completion.APIKey != "secret" {
		t.Fatalf("api key not picked up from CEREBRAS_API_KEY")
	}
}

func TestLoad_GeminiDefaultModelAndBadInts(t *testing.T) {
	t.Setenv("AI_PROVIDER", "Gemini")
	t.Setenv("AI_MODEL", "")
	t.Setenv("AI_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("GENERATE_RATE_PER_MINUTE", "-3")

	c := Load()
	if c.Completion.Provider != "gemini" {
		t.Fatalf("provider: got %q", c.Completion.Provider)
	}
	if c.Completion.Model != "gemini-1.5-flash" {
		t.Fatalf("model: got %q", c.Completion.Model)
	}
	if c.Completion.Timeout != 60*time.Second {
		t.Fatalf("timeout should fall back to default, got %s", c.Completion.Timeout)
	}
	if c.GenerateRatePerMinute != 5 {
		t.Fatalf("rate should fall back to default, got %d", c.GenerateRatePerMinute)
	}
}
