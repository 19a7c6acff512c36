// Package summary produces the fixed four-field structured summary for every
// ingested document. The LLM sees the complete document text; when the LLM is
// unavailable or returns something unparseable, a deterministic term-scan
// fallback keeps ingestion moving.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/findocgpt/findocgpt/pkg/llm"
	"github.com/findocgpt/findocgpt/pkg/models"
)

const systemPrompt = "You are a financial analyst assistant. You summarize SEC filings " +
	"into concise, decision-ready synopses. Respond with JSON only."

const userPromptTemplate = `Summarize the following SEC filing for an investment analyst.

Company: %s
Form type: %s
Filing date: %s

Respond with a JSON object containing exactly these keys:
- "executiveSummary": 2-3 sentence overview of the filing
- "financialHighlights": key financial figures and trends
- "investmentInsights": what this filing means for investors
- "riskFactors": the most material risks disclosed

Filing content:
%s`

// Financial and risk vocabularies driving the deterministic fallback.
var (
	financialTerms = []string{"revenue", "net income", "earnings", "cash flow", "assets", "debt", "profit", "loss"}
	riskTerms      = []string{"risk", "uncertainty", "challenge", "competition", "regulatory", "litigation"}
)

// maxFallbackTerms bounds how many matched terms each fallback field mentions.
const maxFallbackTerms = 4

// Generator produces structured summaries.
type Generator struct {
	llm    llm.Client
	logger *slog.Logger
}

// New creates a generator. client may be nil when the chat LLM is not
// configured; every call then takes the fallback path.
func New(client llm.Client) *Generator {
	return &Generator{
		llm:    client,
		logger: slog.Default(),
	}
}

// Summarize returns the four-field summary for one document. The second
// return value reports whether the LLM produced it (false means fallback).
func (g *Generator) Summarize(ctx context.Context, content string, meta models.DocumentMetadata) (models.StructuredSummary, bool) {
	if g.llm == nil {
		return Fallback(content), false
	}

	// The complete content goes to the LLM; the latency cost is accepted to
	// preserve fidelity.
	user := fmt.Sprintf(userPromptTemplate, meta.CompanyName, meta.FormType, meta.FilingDate, content)

	response, err := g.llm.Complete(ctx, systemPrompt, user)
	if err != nil {
		g.logger.Warn("Summary LLM call failed, using fallback",
			"company", meta.CompanyName, "accession", meta.AccessionNumber, "error", err)
		return Fallback(content), false
	}

	parsed, err := parseSummary(response)
	if err != nil {
		g.logger.Warn("Summary response unparseable, using fallback",
			"company", meta.CompanyName, "accession", meta.AccessionNumber, "error", err)
		return Fallback(content), false
	}
	return parsed, true
}

// parseSummary decodes the LLM response and fills missing keys with the
// placeholder so the shape stays invariant.
func parseSummary(response string) (models.StructuredSummary, error) {
	obj, err := llm.ParseObject(response)
	if err != nil {
		return models.StructuredSummary{}, err
	}

	return models.StructuredSummary{
		ExecutiveSummary:    stringField(obj, "executiveSummary"),
		FinancialHighlights: stringField(obj, "financialHighlights"),
		InvestmentInsights:  stringField(obj, "investmentInsights"),
		RiskFactors:         stringField(obj, "riskFactors"),
	}, nil
}

func stringField(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return models.SummaryPlaceholder
}

// Fallback derives a templated summary by scanning the content for known
// financial and risk terms.
func Fallback(content string) models.StructuredSummary {
	lower := strings.ToLower(content)

	foundFinancial := matchTerms(lower, financialTerms)
	foundRisk := matchTerms(lower, riskTerms)

	s := models.StructuredSummary{
		ExecutiveSummary:    "This document contains financial information and business disclosures.",
		FinancialHighlights: models.SummaryPlaceholder,
		InvestmentInsights:  models.SummaryPlaceholder,
		RiskFactors:         models.SummaryPlaceholder,
	}

	if len(foundFinancial) > 0 {
		s.FinancialHighlights = "The filing discusses " + joinTerms(foundFinancial) + "."
		s.InvestmentInsights = "Investors should review the sections covering " + joinTerms(foundFinancial) + "."
	}
	if len(foundRisk) > 0 {
		s.RiskFactors = "Disclosed risk areas include " + joinTerms(foundRisk) + "."
	}
	return s
}

func matchTerms(lower string, terms []string) []string {
	var found []string
	for _, term := range terms {
		if len(found) == maxFallbackTerms {
			break
		}
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

func joinTerms(terms []string) string {
	switch len(terms) {
	case 1:
		return terms[0]
	case 2:
		return terms[0] + " and " + terms[1]
	default:
		return strings.Join(terms[:len(terms)-1], ", ") + ", and " + terms[len(terms)-1]
	}
}
