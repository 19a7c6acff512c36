package websearch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessQuality_HighQualityAnswer(t *testing.T) {
	text := "According to Reuters, Apple reported revenue of $391 billion for fiscal year 2024, " +
		"up 2% year over year as of the latest quarterly filing. " +
		"The services segment grew to $96 billion, per the company's 10-K."

	report := AssessQuality(text)

	assert.True(t, report.HasSources)
	assert.True(t, report.HasSpecificData)
	assert.True(t, report.HasTimeframe)
	assert.True(t, report.AppropriateLength)
	assert.True(t, report.NotDisclaimerOnly)
	assert.Equal(t, 1.0, report.QualityScore)
	assert.True(t, report.MeetsStandards)
}

func TestAssessQuality_DisclaimerOnly(t *testing.T) {
	text := "I cannot provide current financial data for this company."

	report := AssessQuality(text)

	assert.False(t, report.NotDisclaimerOnly)
	assert.False(t, report.AppropriateLength)
	assert.False(t, report.MeetsStandards)
}

func TestAssessQuality_LongDisclaimerStillCounts(t *testing.T) {
	// A disclaimer phrase inside a long substantive answer does not fail the
	// disclaimer-only check.
	text := strings.Repeat("Apple revenue was $391 billion in 2024. ", 8) +
		"Note that I cannot provide intraday prices."

	report := AssessQuality(text)
	assert.True(t, report.NotDisclaimerOnly)
}

func TestAssessQuality_TooShort(t *testing.T) {
	report := AssessQuality("Revenue was $391 billion.")

	assert.True(t, report.HasSpecificData)
	assert.False(t, report.AppropriateLength)
	assert.False(t, report.MeetsStandards)
}

func TestAssessQuality_TooLong(t *testing.T) {
	report := AssessQuality(strings.Repeat("Apple revenue data $ 2024. ", 100))

	assert.False(t, report.AppropriateLength)
	assert.False(t, report.MeetsStandards)
}

func TestAssessQuality_VagueAnswer(t *testing.T) {
	text := strings.Repeat("The company is doing well and has a strong position in its industry. ", 3)

	report := AssessQuality(text)

	assert.False(t, report.HasSources)
	assert.False(t, report.HasSpecificData)
	assert.False(t, report.MeetsStandards)
}

func TestAssessQuality_ScoreIsMeanOfChecks(t *testing.T) {
	// Specific data and length only: 3 of 5 checks pass (incl. disclaimer).
	text := strings.Repeat("Generic text without dates or sources. ", 3) + "Revenue hit $10 billion."

	report := AssessQuality(text)

	assert.True(t, report.HasSpecificData)
	assert.True(t, report.AppropriateLength)
	assert.True(t, report.NotDisclaimerOnly)
	assert.False(t, report.HasSources)
	assert.False(t, report.HasTimeframe)
	assert.InDelta(t, 0.6, report.QualityScore, 0.001)
	assert.True(t, report.MeetsStandards)
}
