package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeResult_Text(t *testing.T) {
	r := DecodeResult("Apple reported strong revenue growth.")
	assert.Equal(t, "Apple reported strong revenue growth.", r.Project())
	assert.IsType(t, TextResult{}, r)
}

func TestDecodeResult_KeyedWithText(t *testing.T) {
	r := DecodeResult(map[string]any{
		"text":  "Chunk text here",
		"score": 0.92,
	})
	assert.Equal(t, "Chunk text here", r.Project())
	assert.IsType(t, KeyedResult{}, r)
}

func TestDecodeResult_KeyedWithoutText(t *testing.T) {
	r := DecodeResult(map[string]any{"node": "Apple", "relation": "files"})
	projected := r.Project()
	assert.Contains(t, projected, "Apple")
	assert.Contains(t, projected, "files")
}

func TestDecodeResult_OpaqueTruncated(t *testing.T) {
	long := make([]any, 0, 200)
	for i := 0; i < 200; i++ {
		long = append(long, "segment")
	}

	r := DecodeResult(long)
	projected := r.Project()
	assert.True(t, strings.HasSuffix(projected, "..."))
	assert.Len(t, projected, maxOpaqueLength+3)
}

func TestDecodeResult_ShortOpaqueNotTruncated(t *testing.T) {
	r := DecodeResult(42.0)
	assert.Equal(t, "42", r.Project())
}

func TestProject_Batch(t *testing.T) {
	results := []Result{
		TextResult{Text: "a"},
		KeyedResult{Fields: map[string]any{"text": "b"}},
	}
	assert.Equal(t, []string{"a", "b"}, Project(results))
}
