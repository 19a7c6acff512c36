// Package llm provides the chat-completion client used for analysis drafting,
// evaluation, retrieval-query generation, refinement, and document summaries.
// The provider is any OpenAI-compatible endpoint; the base URL and key come
// from AGENT_BASE_URL / AGENT_LLM_API_KEY.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is returned when no API key was provided at startup.
var ErrNotConfigured = errors.New("chat LLM is not configured")

// Client is the chat-completion capability consumed by higher layers.
// Implementations must be safe for concurrent use.
type Client interface {
	// Complete sends a system+user prompt pair and returns the raw
	// assistant text. JSON extraction is the caller's concern.
	Complete(ctx context.Context, system, user string) (string, error)
}

// Unconfigured is the Client used when no API key was provided; every call
// fails with ErrNotConfigured so jobs surface a clear error instead of
// panicking on a nil client.
type Unconfigured struct{}

// Complete implements Client.
func (Unconfigured) Complete(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

// OpenAIClient implements Client against an OpenAI-compatible REST endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAIClient builds a chat client. baseURL may be empty to use the
// provider's default endpoint.
func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: slog.Default(),
	}
}

// Complete implements Client.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	content := resp.Choices[0].Message.Content
	c.logger.Debug("Chat completion finished",
		"model", c.model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return content, nil
}
