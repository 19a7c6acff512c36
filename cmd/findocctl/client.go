package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/findocgpt/findocgpt/pkg/version"
)

const requestTimeout = 30 * time.Second

// apiClient is a thin JSON client for the server's HTTP API.
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient() *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(serverURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

func (c *apiClient) get(path string) (map[string]any, error) {
	return c.do(http.MethodGet, path, nil)
}

func (c *apiClient) post(path string, payload any) (map[string]any, error) {
	return c.do(http.MethodPost, path, payload)
}

func (c *apiClient) delete(path string) (map[string]any, error) {
	return c.do(http.MethodDelete, path, nil)
}

func (c *apiClient) do(method, path string, payload any) (map[string]any, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "findocctl/"+version.GitCommit)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var decoded map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil && resp.StatusCode < 300 {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}

	if resp.StatusCode >= 300 {
		if msg, ok := decoded["error"].(string); ok && msg != "" {
			return decoded, fmt.Errorf("server returned %d: %s", resp.StatusCode, msg)
		}
		return decoded, fmt.Errorf("server returned %d", resp.StatusCode)
	}
	return decoded, nil
}

// printJSON renders a response body as indented JSON on stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
