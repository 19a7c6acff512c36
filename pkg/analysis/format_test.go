package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/findocgpt/findocgpt/pkg/models"
)

func TestFormatDocuments(t *testing.T) {
	docs := []models.DocumentSummary{
		{
			Metadata: models.DocumentMetadata{
				CompanyName: "Apple Inc.",
				FormType:    "10-K",
				FilingDate:  "2024-11-01",
			},
			Summary: models.StructuredSummary{
				ExecutiveSummary:    "Annual report covering fiscal 2024.",
				FinancialHighlights: "Revenue $391B, up 2%.",
				InvestmentInsights:  "Services now 25% of revenue.",
				RiskFactors:         "China concentration.",
			},
			ContentLength: 250000,
		},
		{
			Metadata: models.DocumentMetadata{
				CompanyName: "Apple Inc.",
				FormType:    "10-Q",
				FilingDate:  "2025-02-01",
			},
			Summary:       models.StructuredSummary{ExecutiveSummary: "Quarterly update."},
			ContentLength: 90000,
		},
	}

	text := FormatDocuments(docs)

	assert.Contains(t, text, "Document 1: Apple Inc. - 10-K (2024-11-01)")
	assert.Contains(t, text, "Document 2: Apple Inc. - 10-Q (2025-02-01)")
	assert.Contains(t, text, "- Executive Summary: Annual report covering fiscal 2024.")
	assert.Contains(t, text, "- Financial Highlights: Revenue $391B, up 2%.")
	assert.Contains(t, text, "- Content Length: 250000 characters")
}

func TestFormatDocuments_Empty(t *testing.T) {
	assert.Equal(t, "No documents available.", FormatDocuments(nil))
}

func TestFormatDocuments_MissingMetadata(t *testing.T) {
	text := FormatDocuments([]models.DocumentSummary{{}})
	assert.Contains(t, text, "Document 1: Unknown - Unknown (Unknown)")
}

func TestFormatRagResults(t *testing.T) {
	results := []models.QueryResult{
		{
			Query:        "Apple services margin",
			FinalAnswers: []string{"a1", "a2", "a3", "a4", "a5"},
		},
		{
			Query:        "Apple China revenue",
			FinalAnswers: []string{"b1"},
		},
	}

	text := FormatRagResults(results)

	assert.Contains(t, text, `RAG Query 1: "Apple services margin"`)
	assert.Contains(t, text, "Results (5 total):")
	// Only the top three answers are included.
	assert.Contains(t, text, "a1\na2\na3")
	assert.NotContains(t, text, "a4")
	assert.Contains(t, text, `RAG Query 2: "Apple China revenue"`)
	assert.Contains(t, text, "Results (1 total):\nb1")
}

func TestFormatRagResults_Empty(t *testing.T) {
	assert.Equal(t, "No RAG results available.", FormatRagResults(nil))
}

func TestPromptsCarryInputs(t *testing.T) {
	system, user := BuildDraftPrompt("Should I invest in Apple?", "doc text")
	assert.Contains(t, system, "senior financial analyst")
	assert.Contains(t, user, `INVESTMENT QUERY: "Should I invest in Apple?"`)
	assert.Contains(t, user, "doc text")
	for _, key := range models.AnalysisKeys {
		assert.Contains(t, user, `"`+key+`"`, "draft prompt must request key %s", key)
	}

	current := map[string]any{"executiveSummary": "Buy."}
	system, user = BuildEvaluatePrompt("Should I invest in Apple?", current)
	assert.Contains(t, system, "investment committee chair")
	assert.Contains(t, user, `"executiveSummary": "Buy."`)
	assert.Contains(t, user, "completenessScore")

	system, user = BuildQueriesPrompt(&models.Evaluation{MissingAreas: []string{"margins"}}, "doc text")
	assert.Contains(t, system, "database queries")
	assert.Contains(t, user, "margins")
	assert.True(t, strings.Contains(user, "JSON array of strings"))

	system, user = BuildRefinePrompt("Should I invest in Apple?", current, "rag context")
	assert.Contains(t, system, "integrating new information")
	assert.Contains(t, user, "rag context")
	assert.Contains(t, user, "same JSON structure")
}
