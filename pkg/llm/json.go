package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripFences removes a surrounding markdown code fence from an LLM response.
// Handles ```json ... ``` and bare ``` ... ``` blocks; anything outside the
// fence is discarded. Text without a fence is returned trimmed.
func StripFences(s string) string {
	trimmed := strings.TrimSpace(s)

	start := strings.Index(trimmed, "```")
	if start == -1 {
		return trimmed
	}

	rest := trimmed[start+3:]
	if nl := strings.Index(rest, "\n"); nl != -1 {
		// Drop the language tag line (e.g. "json").
		firstLine := strings.TrimSpace(rest[:nl])
		if firstLine == "json" || firstLine == "JSON" || firstLine == "" {
			rest = rest[nl+1:]
		}
	}

	if end := strings.Index(rest, "```"); end != -1 {
		rest = rest[:end]
	}

	return strings.TrimSpace(rest)
}

// ParseObject parses an LLM response expected to contain a single JSON
// object, tolerating code fences and surrounding prose.
func ParseObject(s string) (map[string]any, error) {
	cleaned := extractDelimited(StripFences(s), '{', '}')
	if cleaned == "" {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, fmt.Errorf("parse JSON object: %w", err)
	}
	return out, nil
}

// ParseInto parses an LLM response into the given typed destination.
func ParseInto(s string, dst any) error {
	cleaned := extractDelimited(StripFences(s), '{', '}')
	if cleaned == "" {
		return fmt.Errorf("no JSON object found in response")
	}
	if err := json.Unmarshal([]byte(cleaned), dst); err != nil {
		return fmt.Errorf("parse JSON object: %w", err)
	}
	return nil
}

// ParseStringArray parses an LLM response expected to contain a JSON array
// of strings. Non-string elements are skipped.
func ParseStringArray(s string) ([]string, error) {
	cleaned := extractDelimited(StripFences(s), '[', ']')
	if cleaned == "" {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var raw []any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("parse JSON array: %w", err)
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok && strings.TrimSpace(str) != "" {
			out = append(out, str)
		}
	}
	return out, nil
}

// extractDelimited returns the substring from the first open delimiter to the
// last close delimiter, or "" when the pair is absent or inverted.
func extractDelimited(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}
