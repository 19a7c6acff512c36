package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, DefaultChatModel, cfg.LLMModel)
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, DefaultEdgarUserAgent, cfg.EdgarUserAgent)
	assert.NotEmpty(t, cfg.RegistryPath)
}

func TestLoad_ChatConfigured(t *testing.T) {
	t.Setenv("AGENT_LLM_API_KEY", "test-key")
	t.Setenv("AGENT_BASE_URL", "https://llm.example.com/v1")

	cfg := Load()

	assert.True(t, cfg.ChatConfigured())
	assert.Equal(t, "test-key", cfg.LLMAPIKey)
	assert.Equal(t, "https://llm.example.com/v1", cfg.LLMBaseURL)
}

func TestLoad_GeminiKeyPrecedence(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg := Load()
	assert.Equal(t, "google-key", cfg.GeminiAPIKey)

	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg = Load()
	assert.Equal(t, "gemini-key", cfg.GeminiAPIKey)
	assert.True(t, cfg.GeminiConfigured())
}

func TestLoad_Unconfigured(t *testing.T) {
	t.Setenv("AGENT_LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	cfg := Load()

	assert.False(t, cfg.ChatConfigured())
	assert.False(t, cfg.GeminiConfigured())
}

func TestLoad_RegistryPathFollowsDataRoot(t *testing.T) {
	t.Setenv("COGNEE_DATA_ROOT", "/var/lib/findocgpt/data")

	cfg := Load()

	assert.Equal(t, "/var/lib/findocgpt/data/document_registry.json", cfg.RegistryPath)
}
