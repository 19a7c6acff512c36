package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findocgpt/findocgpt/pkg/models"
)

// scriptedLLM returns a fixed response or error.
type scriptedLLM struct {
	response string
	err      error
	prompts  []string
}

func (s *scriptedLLM) Complete(_ context.Context, _, user string) (string, error) {
	s.prompts = append(s.prompts, user)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testMeta() models.DocumentMetadata {
	return models.DocumentMetadata{
		AccessionNumber: "acc-1",
		FormType:        "10-K",
		CompanyName:     "Apple Inc.",
		FilingDate:      "2024-11-01",
	}
}

func TestSummarize_ParsesLLMResponse(t *testing.T) {
	client := &scriptedLLM{response: "```json\n" + `{
		"executiveSummary": "Strong fiscal year.",
		"financialHighlights": "Revenue grew 8%.",
		"investmentInsights": "Services momentum continues.",
		"riskFactors": "Supply chain concentration."
	}` + "\n```"}

	gen := New(client)
	summary, fromLLM := gen.Summarize(context.Background(), "full content", testMeta())

	assert.True(t, fromLLM)
	assert.Equal(t, "Strong fiscal year.", summary.ExecutiveSummary)
	assert.Equal(t, "Revenue grew 8%.", summary.FinancialHighlights)
	assert.Equal(t, "Services momentum continues.", summary.InvestmentInsights)
	assert.Equal(t, "Supply chain concentration.", summary.RiskFactors)
}

func TestSummarize_FillsMissingKeys(t *testing.T) {
	client := &scriptedLLM{response: `{"executiveSummary": "Only one key."}`}

	gen := New(client)
	summary, fromLLM := gen.Summarize(context.Background(), "content", testMeta())

	assert.True(t, fromLLM)
	assert.Equal(t, "Only one key.", summary.ExecutiveSummary)
	assert.Equal(t, models.SummaryPlaceholder, summary.FinancialHighlights)
	assert.Equal(t, models.SummaryPlaceholder, summary.InvestmentInsights)
	assert.Equal(t, models.SummaryPlaceholder, summary.RiskFactors)
}

func TestSummarize_SendsFullContent(t *testing.T) {
	client := &scriptedLLM{response: `{"executiveSummary": "ok"}`}
	gen := New(client)

	longContent := "START very long filing body END"
	gen.Summarize(context.Background(), longContent, testMeta())

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], longContent)
	assert.Contains(t, client.prompts[0], "Apple Inc.")
}

func TestSummarize_LLMErrorFallsBack(t *testing.T) {
	client := &scriptedLLM{err: errors.New("provider down")}
	gen := New(client)

	summary, fromLLM := gen.Summarize(context.Background(), "revenue and debt discussion with litigation risk", testMeta())

	assert.False(t, fromLLM)
	assert.Contains(t, summary.FinancialHighlights, "revenue")
	assert.Contains(t, summary.RiskFactors, "litigation")
}

func TestSummarize_UnparseableFallsBack(t *testing.T) {
	client := &scriptedLLM{response: "I cannot summarize this document."}
	gen := New(client)

	_, fromLLM := gen.Summarize(context.Background(), "content", testMeta())
	assert.False(t, fromLLM)
}

func TestSummarize_NilClientFallsBack(t *testing.T) {
	gen := New(nil)

	summary, fromLLM := gen.Summarize(context.Background(), "cash flow and assets", testMeta())

	assert.False(t, fromLLM)
	assert.Contains(t, summary.FinancialHighlights, "cash flow")
}

func TestFallback_TermLimits(t *testing.T) {
	content := "revenue net income earnings cash flow assets debt profit loss"
	s := Fallback(content)

	// At most four terms are mentioned.
	assert.Contains(t, s.FinancialHighlights, "revenue")
	assert.Contains(t, s.FinancialHighlights, "cash flow")
	assert.NotContains(t, s.FinancialHighlights, "profit")
}

func TestFallback_NoTerms(t *testing.T) {
	s := Fallback("completely unrelated text about gardening")

	assert.Equal(t, models.SummaryPlaceholder, s.FinancialHighlights)
	assert.Equal(t, models.SummaryPlaceholder, s.InvestmentInsights)
	assert.Equal(t, models.SummaryPlaceholder, s.RiskFactors)
	assert.NotEmpty(t, s.ExecutiveSummary)
}

func TestFallback_TwoTermJoin(t *testing.T) {
	s := Fallback("the company reported revenue and holds significant debt")
	assert.Equal(t, "The filing discusses revenue and debt.", s.FinancialHighlights)
}
