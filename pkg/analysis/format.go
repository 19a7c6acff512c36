package analysis

import (
	"fmt"
	"strings"

	"github.com/findocgpt/findocgpt/pkg/models"
)

// maxResultsPerQuery bounds how many answers per retrieval query reach the
// refinement prompt.
const maxResultsPerQuery = 3

// FormatDocuments renders document summaries for LLM consumption. Both the
// draft and query-generation prompts share this format so the model sees a
// stable picture of the corpus.
func FormatDocuments(docs []models.DocumentSummary) string {
	if len(docs) == 0 {
		return "No documents available."
	}

	blocks := make([]string, 0, len(docs))
	for i, doc := range docs {
		block := fmt.Sprintf(`Document %d: %s - %s (%s)
- Executive Summary: %s
- Financial Highlights: %s
- Investment Insights: %s
- Risk Factors: %s
- Content Length: %d characters`,
			i+1,
			orUnknown(doc.Metadata.CompanyName),
			orUnknown(doc.Metadata.FormType),
			orUnknown(doc.Metadata.FilingDate),
			doc.Summary.ExecutiveSummary,
			doc.Summary.FinancialHighlights,
			doc.Summary.InvestmentInsights,
			doc.Summary.RiskFactors,
			doc.ContentLength,
		)
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

// FormatRagResults renders retrieval results for the refinement prompt:
// each query followed by its top answers.
func FormatRagResults(results []models.QueryResult) string {
	if len(results) == 0 {
		return "No RAG results available."
	}

	blocks := make([]string, 0, len(results))
	for i, res := range results {
		answers := res.FinalAnswers
		if len(answers) > maxResultsPerQuery {
			answers = answers[:maxResultsPerQuery]
		}
		block := fmt.Sprintf("RAG Query %d: %q\nResults (%d total):\n%s",
			i+1, res.Query, len(res.FinalAnswers), strings.Join(answers, "\n"))
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
