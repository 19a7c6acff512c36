// Package websearch grades RAG answers with an LLM rubric and, when they
// fail, augments them with a grounded web-search completion scored against a
// fixed source-quality heuristic.
package websearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// Validator produces a plain completion used for rubric grading.
type Validator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Searcher produces a grounded completion with a live web-search tool.
type Searcher interface {
	GroundedSearch(ctx context.Context, prompt string) (string, error)
}

// GeminiClient implements both Validator and Searcher on the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGeminiClient creates a Gemini client for grading and grounded search.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		logger: slog.Default(),
	}, nil
}

// Complete implements Validator with a plain generation call.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini completion: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini returned empty response")
	}
	return text, nil
}

// GroundedSearch implements Searcher with the GoogleSearch tool attached.
func (c *GeminiClient) GroundedSearch(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini grounded search: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini grounded search returned empty response")
	}

	c.logger.Debug("Grounded search finished", "model", c.model, "chars", len(text))
	return text, nil
}
