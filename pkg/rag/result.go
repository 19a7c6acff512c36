package rag

import (
	"encoding/json"
	"fmt"
)

// maxOpaqueLength bounds the string form of results with no text field.
const maxOpaqueLength = 500

// Result is one value returned by the store. The store's payloads are
// heterogeneous; the three variants cover a bare text, a mapping carrying a
// "text" key, and anything else rendered opaquely.
type Result interface {
	// Project returns the stable string form used in prompts and caching.
	Project() string
}

// TextResult is a store result that is already plain text.
type TextResult struct {
	Text string
}

func (r TextResult) Project() string { return r.Text }

// KeyedResult is a mapping-shaped store result. Projection prefers its
// "text" key and falls back to the opaque rendering.
type KeyedResult struct {
	Fields map[string]any
}

func (r KeyedResult) Project() string {
	if text, ok := r.Fields["text"].(string); ok && text != "" {
		return text
	}
	return truncateOpaque(renderOpaque(r.Fields))
}

// OpaqueResult is any other store value, rendered to its canonical string
// form and truncated.
type OpaqueResult struct {
	Raw string
}

func (r OpaqueResult) Project() string { return truncateOpaque(r.Raw) }

// DecodeResult classifies one decoded JSON value from the store.
func DecodeResult(v any) Result {
	switch val := v.(type) {
	case string:
		return TextResult{Text: val}
	case map[string]any:
		return KeyedResult{Fields: val}
	default:
		return OpaqueResult{Raw: renderOpaque(val)}
	}
}

// Project converts a batch of results to their string forms.
func Project(results []Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Project())
	}
	return out
}

func renderOpaque(v any) string {
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}

func truncateOpaque(s string) string {
	if len(s) <= maxOpaqueLength {
		return s
	}
	return s[:maxOpaqueLength] + "..."
}
