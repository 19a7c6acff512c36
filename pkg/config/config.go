// Package config builds the process-wide configuration from the environment.
// The Config struct is constructed once at startup and passed to components
// explicitly; nothing in this package mutates global state.
package config

import (
	"os"
	"path/filepath"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultHTTPAddr       = ":8000"
	DefaultChatModel      = "gemini-2.0-flash"
	DefaultGeminiModel    = "gemini-2.0-flash"
	DefaultEdgarUserAgent = "FinDocGPT (demo@example.com)"
)

// Config holds every setting the service reads from the environment.
type Config struct {
	// HTTP server
	HTTPAddr string

	// Chat-completion LLM (OpenAI-compatible endpoint).
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string

	// Grounded-search and grading LLM (Gemini).
	GeminiAPIKey string
	GeminiModel  string

	// Filings source.
	EdgarUserAgent string

	// RAG store (cognee sidecar) and its on-disk state.
	CogneeBaseURL    string
	CogneeDataRoot   string
	CogneeSystemRoot string
	GraphDBProvider  string
	VectorDBProvider string
	DBProvider       string

	// Document registry persistence.
	RegistryPath string
}

// Load reads the configuration from the environment. Missing credentials do
// not fail startup: components report themselves unconfigured and the service
// runs with reduced capabilities.
func Load() *Config {
	dataRoot := getEnvOrDefault("COGNEE_DATA_ROOT", filepath.Join(".cognee", "data"))

	return &Config{
		HTTPAddr: getEnvOrDefault("HTTP_ADDR", DefaultHTTPAddr),

		LLMAPIKey:  os.Getenv("AGENT_LLM_API_KEY"),
		LLMBaseURL: os.Getenv("AGENT_BASE_URL"),
		LLMModel:   getEnvOrDefault("AGENT_LLM_MODEL", DefaultChatModel),

		GeminiAPIKey: geminiKey(),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", DefaultGeminiModel),

		EdgarUserAgent: getEnvOrDefault("EDGAR_USER_AGENT", DefaultEdgarUserAgent),

		CogneeBaseURL:    getEnvOrDefault("COGNEE_BASE_URL", "http://localhost:8765"),
		CogneeDataRoot:   dataRoot,
		CogneeSystemRoot: getEnvOrDefault("COGNEE_SYSTEM_ROOT", filepath.Join(".cognee", "system")),
		GraphDBProvider:  getEnvOrDefault("GRAPH_DATABASE_PROVIDER", "kuzu"),
		VectorDBProvider: getEnvOrDefault("VECTOR_DB_PROVIDER", "lancedb"),
		DBProvider:       getEnvOrDefault("DB_PROVIDER", "sqlite"),

		RegistryPath: getEnvOrDefault("REGISTRY_PATH", filepath.Join(dataRoot, "document_registry.json")),
	}
}

// ChatConfigured reports whether the chat-completion LLM is usable.
func (c *Config) ChatConfigured() bool {
	return c.LLMAPIKey != ""
}

// GeminiConfigured reports whether grounded search and grading are usable.
func (c *Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

// GEMINI_API_KEY wins over the legacy GOOGLE_API_KEY alias.
func geminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
