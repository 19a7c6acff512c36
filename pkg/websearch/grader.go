package websearch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/findocgpt/findocgpt/pkg/llm"
	"github.com/findocgpt/findocgpt/pkg/models"
)

// maxGradeChars bounds the RAG text offered to the grading LLM. Grading is
// the only path allowed to truncate document content.
const maxGradeChars = 15000

// WarningSuffix is appended to web answers that fail the quality standard.
const WarningSuffix = "\n\n[Note: This information from web search may not meet all financial data quality standards. Please verify with authoritative sources.]"

const validationPromptTemplate = `You are a strict financial data validator reviewing an answer produced from internal document retrieval.

User question:
%s

Retrieved answer:
%s

Judge the answer against these standards for financial content:
1. Specificity: concrete companies, filings, metrics, not generic statements.
2. Numeric support: actual figures, growth rates, or ratios where the question calls for them.
3. Timeframe: a clear as-of date or reporting period.
4. Source grounding: the answer is traceable to filings or reputable financial sources.

Respond with only a JSON object:
{
  "validationPassed": true or false,
  "reasoning": "one or two sentences",
  "confidenceScore": 0.0 to 1.0,
  "missingAspects": ["list of gaps, empty if none"],
  "requiresCurrentData": true if the question needs live market data
}`

const searchPromptTemplate = `You are a financial research assistant with live web search. Answer the question below using only trusted financial sources: major wire services (Reuters, Bloomberg), the Wall Street Journal, the Financial Times, SEC filings (10-K, 10-Q), Federal Reserve and Treasury publications, Yahoo Finance, or MarketWatch.

Question:
%s

Requirements:
- Cite the source of every figure ("According to Reuters..." or "Source: ...").
- Include specific numbers with their reporting period.
- State the as-of date for any market data.
- If reliable data is unavailable, say so briefly instead of speculating.`

// Augmenter is the two-stage grading pipeline. Either collaborator may be
// nil when Gemini is unconfigured; the pipeline then degrades gracefully.
type Augmenter struct {
	validator Validator
	searcher  Searcher
	logger    *slog.Logger
}

// NewAugmenter creates the pipeline.
func NewAugmenter(validator Validator, searcher Searcher) *Augmenter {
	return &Augmenter{
		validator: validator,
		searcher:  searcher,
		logger:    slog.Default(),
	}
}

// Answer grades the RAG answers and, if they fail, attempts a grounded web
// augmentation. Grader outages never block progress: infrastructure failures
// default to passing and any augmentation error falls back to the RAG
// answers.
func (a *Augmenter) Answer(ctx context.Context, userQuery string, ragAnswers []string) models.GradedAnswer {
	verdict := a.grade(ctx, userQuery, ragAnswers)

	if verdict.ValidationPassed {
		return models.GradedAnswer{
			FinalAnswers: ragAnswers,
			Source:       models.AnswerSourceRAG,
			Validation:   verdict,
		}
	}

	webText, quality := a.augment(ctx, userQuery)
	if webText == "" {
		return models.GradedAnswer{
			FinalAnswers: ragAnswers,
			Source:       models.AnswerSourceRAG,
			Validation:   verdict,
		}
	}

	if !quality.MeetsStandards {
		webText += WarningSuffix
	}
	return models.GradedAnswer{
		FinalAnswers: []string{webText},
		Source:       models.AnswerSourceWeb,
		Validation:   verdict,
		WebQuality:   quality,
	}
}

// grade runs the rubric. Parse failures fail the validation with zero
// confidence; infrastructure failures default to passing with 0.5.
func (a *Augmenter) grade(ctx context.Context, userQuery string, ragAnswers []string) models.ValidationVerdict {
	if a.validator == nil {
		return defaultPassVerdict("validator not configured")
	}

	ragText := strings.Join(ragAnswers, "\n\n")
	if len(ragText) > maxGradeChars {
		ragText = ragText[:maxGradeChars]
	}

	prompt := fmt.Sprintf(validationPromptTemplate, userQuery, ragText)
	response, err := a.validator.Complete(ctx, prompt)
	if err != nil {
		a.logger.Warn("Grader call failed, defaulting to pass", "error", err)
		return defaultPassVerdict("grader unavailable")
	}

	var verdict models.ValidationVerdict
	if err := llm.ParseInto(response, &verdict); err != nil {
		a.logger.Warn("Grader response unparseable, treating as failed", "error", err)
		return models.ValidationVerdict{
			ValidationPassed: false,
			Reasoning:        "Grader response could not be parsed",
			ConfidenceScore:  0.0,
		}
	}
	return verdict
}

// augment runs the grounded search and scores the result. Any error yields
// an empty answer so the caller falls back to RAG.
func (a *Augmenter) augment(ctx context.Context, userQuery string) (string, *models.WebQualityReport) {
	if a.searcher == nil {
		return "", nil
	}

	text, err := a.searcher.GroundedSearch(ctx, fmt.Sprintf(searchPromptTemplate, userQuery))
	if err != nil {
		a.logger.Warn("Grounded search failed, falling back to RAG answers", "error", err)
		return "", nil
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	quality := AssessQuality(text)
	return text, &quality
}

func defaultPassVerdict(reason string) models.ValidationVerdict {
	return models.ValidationVerdict{
		ValidationPassed: true,
		Reasoning:        reason,
		ConfidenceScore:  0.5,
	}
}
