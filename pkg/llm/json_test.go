package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences_JSONFence(t *testing.T) {
	in := "```json\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, StripFences(in))
}

func TestStripFences_BareFence(t *testing.T) {
	in := "```\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, StripFences(in))
}

func TestStripFences_NoFence(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, StripFences("  {\"a\": 1}\n"))
}

func TestStripFences_ProseBeforeFence(t *testing.T) {
	in := "Here is the analysis:\n```json\n{\"a\": 1}\n```\nLet me know if you need more."
	assert.Equal(t, `{"a": 1}`, StripFences(in))
}

func TestParseObject_SurroundingProse(t *testing.T) {
	obj, err := ParseObject(`The result is {"score": 7, "ok": true} as requested.`)
	require.NoError(t, err)
	assert.Equal(t, float64(7), obj["score"])
	assert.Equal(t, true, obj["ok"])
}

func TestParseObject_NotJSON(t *testing.T) {
	_, err := ParseObject("I am unable to produce JSON for this request.")
	assert.Error(t, err)
}

func TestParseInto_Typed(t *testing.T) {
	var dst struct {
		Score int  `json:"score"`
		Done  bool `json:"done"`
	}
	err := ParseInto("```json\n{\"score\": 9, \"done\": true}\n```", &dst)
	require.NoError(t, err)
	assert.Equal(t, 9, dst.Score)
	assert.True(t, dst.Done)
}

func TestParseStringArray(t *testing.T) {
	queries, err := ParseStringArray("```json\n[\"q1\", \"q2\", \"q3\"]\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2", "q3"}, queries)
}

func TestParseStringArray_SkipsNonStrings(t *testing.T) {
	queries, err := ParseStringArray(`["q1", 42, "", "q2"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2"}, queries)
}

func TestParseStringArray_NoArray(t *testing.T) {
	_, err := ParseStringArray("no further queries are needed")
	assert.Error(t, err)
}
