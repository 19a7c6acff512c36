package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Store-level search types understood by the cognee sidecar.
const (
	StoreTypeGraphCompletion = "GRAPH_COMPLETION"
	StoreTypeRAGCompletion   = "RAG_COMPLETION"
	StoreTypeChunks          = "CHUNKS"
	StoreTypeInsights        = "INSIGHTS"
	StoreTypeSummaries       = "SUMMARIES"
)

// datasetName is the single dataset all documents are added to.
const datasetName = "main_dataset"

// Store is the opaque vector/graph engine contract: add text, cognify to
// build derived structures, search by mode, prune everything.
type Store interface {
	Add(ctx context.Context, text string) error
	Cognify(ctx context.Context) error
	Search(ctx context.Context, query, storeType string) ([]Result, error)
	Prune(ctx context.Context) error
}

// CogneeClient talks to a cognee sidecar over its REST API.
type CogneeClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCogneeClient creates a store client for the sidecar at baseURL.
func NewCogneeClient(baseURL string) *CogneeClient {
	return &CogneeClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		logger:     slog.Default(),
	}
}

// Add submits one text blob for indexing.
func (c *CogneeClient) Add(ctx context.Context, text string) error {
	payload := map[string]any{
		"data":        text,
		"datasetName": datasetName,
	}
	if _, err := c.post(ctx, "/api/v1/add", payload); err != nil {
		return fmt.Errorf("cognee add: %w", err)
	}
	return nil
}

// Cognify asks the store to rebuild its derived structures after a batch of
// adds.
func (c *CogneeClient) Cognify(ctx context.Context) error {
	payload := map[string]any{
		"datasets": []string{datasetName},
	}
	if _, err := c.post(ctx, "/api/v1/cognify", payload); err != nil {
		return fmt.Errorf("cognee cognify: %w", err)
	}
	return nil
}

// Search runs one query with a store-level search type and decodes the
// heterogeneous result list.
func (c *CogneeClient) Search(ctx context.Context, query, storeType string) ([]Result, error) {
	payload := map[string]any{
		"query":      query,
		"searchType": storeType,
	}
	body, err := c.post(ctx, "/api/v1/search", payload)
	if err != nil {
		return nil, fmt.Errorf("cognee search: %w", err)
	}

	var raw []any
	if err := json.Unmarshal(body, &raw); err != nil {
		// Some deployments wrap results in an object.
		var wrapped struct {
			Results []any `json:"results"`
		}
		if err2 := json.Unmarshal(body, &wrapped); err2 != nil {
			return nil, fmt.Errorf("decode search response: %w", err)
		}
		raw = wrapped.Results
	}

	results := make([]Result, 0, len(raw))
	for _, v := range raw {
		results = append(results, DecodeResult(v))
	}
	return results, nil
}

// Prune deletes all indexed data and system state in the store.
func (c *CogneeClient) Prune(ctx context.Context) error {
	if _, err := c.post(ctx, "/api/v1/prune", map[string]any{}); err != nil {
		return fmt.Errorf("cognee prune: %w", err)
	}
	return nil
}

func (c *CogneeClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cognee returned HTTP %d for %s", resp.StatusCode, path)
	}
	return body, nil
}
