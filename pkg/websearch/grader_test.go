package websearch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findocgpt/findocgpt/pkg/models"
)

type stubValidator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubValidator) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

type stubSearcher struct {
	response string
	err      error
	calls    int
}

func (s *stubSearcher) GroundedSearch(context.Context, string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

const failVerdict = `{"validationPassed": false, "reasoning": "too generic", "confidenceScore": 0.2, "missingAspects": ["revenue figures"], "requiresCurrentData": true}`
const passVerdict = `{"validationPassed": true, "reasoning": "specific and sourced", "confidenceScore": 0.9}`

func TestAnswer_ValidationPassesKeepsRAG(t *testing.T) {
	validator := &stubValidator{response: passVerdict}
	searcher := &stubSearcher{}
	aug := NewAugmenter(validator, searcher)

	ragAnswers := []string{"Apple revenue grew 8% to $391 billion in fiscal 2024 per the 10-K."}
	answer := aug.Answer(context.Background(), "What is Apple's revenue?", ragAnswers)

	assert.Equal(t, models.AnswerSourceRAG, answer.Source)
	assert.Equal(t, ragAnswers, answer.FinalAnswers)
	assert.True(t, answer.Validation.ValidationPassed)
	assert.Equal(t, 0, searcher.calls)
}

func TestAnswer_FailedValidationAugmentsFromWeb(t *testing.T) {
	// Stub web answer containing "$", "2024", and "Reuters" meets the
	// quality standard.
	webText := "According to Reuters, Apple's revenue growth rate was 2% in fiscal 2024, " +
		"reaching $391 billion as of the September quarter. Services revenue grew 13%."

	validator := &stubValidator{response: failVerdict}
	searcher := &stubSearcher{response: webText}
	aug := NewAugmenter(validator, searcher)

	answer := aug.Answer(context.Background(), "What is Apple's current revenue growth rate?",
		[]string{"Apple is a tech company."})

	assert.Equal(t, models.AnswerSourceWeb, answer.Source)
	require.Len(t, answer.FinalAnswers, 1)
	assert.Equal(t, webText, answer.FinalAnswers[0])
	require.NotNil(t, answer.WebQuality)
	assert.True(t, answer.WebQuality.MeetsStandards)
	assert.False(t, answer.Validation.ValidationPassed)
}

func TestAnswer_LowQualityWebGetsWarning(t *testing.T) {
	vague := strings.Repeat("The company appears to be performing adequately in its market. ", 3)

	validator := &stubValidator{response: failVerdict}
	searcher := &stubSearcher{response: vague}
	aug := NewAugmenter(validator, searcher)

	answer := aug.Answer(context.Background(), "Revenue?", []string{"rag answer"})

	assert.Equal(t, models.AnswerSourceWeb, answer.Source)
	require.Len(t, answer.FinalAnswers, 1)
	assert.True(t, strings.HasSuffix(answer.FinalAnswers[0], WarningSuffix))
	require.NotNil(t, answer.WebQuality)
	assert.False(t, answer.WebQuality.MeetsStandards)
}

func TestAnswer_SearcherErrorFallsBackToRAG(t *testing.T) {
	validator := &stubValidator{response: failVerdict}
	searcher := &stubSearcher{err: errors.New("search quota exceeded")}
	aug := NewAugmenter(validator, searcher)

	ragAnswers := []string{"rag answer"}
	answer := aug.Answer(context.Background(), "Revenue?", ragAnswers)

	assert.Equal(t, models.AnswerSourceRAG, answer.Source)
	assert.Equal(t, ragAnswers, answer.FinalAnswers)
}

func TestAnswer_GraderInfraFailureDefaultsToPass(t *testing.T) {
	validator := &stubValidator{err: errors.New("gemini unreachable")}
	searcher := &stubSearcher{}
	aug := NewAugmenter(validator, searcher)

	answer := aug.Answer(context.Background(), "Revenue?", []string{"rag answer"})

	assert.Equal(t, models.AnswerSourceRAG, answer.Source)
	assert.True(t, answer.Validation.ValidationPassed)
	assert.Equal(t, 0.5, answer.Validation.ConfidenceScore)
	assert.Equal(t, 0, searcher.calls)
}

func TestAnswer_UnparseableVerdictFailsValidation(t *testing.T) {
	webText := "Source: Bloomberg. Revenue reached $391 billion in fiscal 2024, the latest reported period. " +
		"Gross margin held at 46% for the year."

	validator := &stubValidator{response: "this is not json at all"}
	searcher := &stubSearcher{response: webText}
	aug := NewAugmenter(validator, searcher)

	answer := aug.Answer(context.Background(), "Revenue?", []string{"rag answer"})

	// Parse failure means failed validation, so augmentation runs.
	assert.Equal(t, models.AnswerSourceWeb, answer.Source)
	assert.False(t, answer.Validation.ValidationPassed)
	assert.Equal(t, 0.0, answer.Validation.ConfidenceScore)
}

func TestAnswer_NoValidatorDefaultsToPass(t *testing.T) {
	aug := NewAugmenter(nil, nil)

	ragAnswers := []string{"rag answer"}
	answer := aug.Answer(context.Background(), "Revenue?", ragAnswers)

	assert.Equal(t, models.AnswerSourceRAG, answer.Source)
	assert.True(t, answer.Validation.ValidationPassed)
}

func TestGrade_TruncatesLongRAGText(t *testing.T) {
	validator := &stubValidator{response: passVerdict}
	aug := NewAugmenter(validator, nil)

	long := strings.Repeat("x", maxGradeChars*2)
	aug.Answer(context.Background(), "Revenue?", []string{long})

	require.Len(t, validator.prompts, 1)
	assert.Less(t, len(validator.prompts[0]), maxGradeChars+1000)
}
