package websearch

import (
	"strings"

	"github.com/findocgpt/findocgpt/pkg/models"
)

// Token lists driving the source-quality heuristic. Matching is
// case-insensitive.
var (
	sourceTokens = []string{
		"reuters", "bloomberg", "wall street journal", "financial times",
		"sec filing", "10-k", "10-q", "federal reserve", "treasury",
		"yahoo finance", "marketwatch", "source:", "according to",
	}

	specificDataTokens = []string{
		"$", "%", "billion", "million", "quarter",
		"q1", "q2", "q3", "q4", "2024", "2025", "fiscal year",
	}

	timeframeTokens = []string{
		"as of", "current", "latest", "recent", "today", "this year",
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}

	disclaimerTokens = []string{
		"cannot provide", "unable to access", "no information available",
	}
)

// Length bounds for a useful web answer.
const (
	minUsefulLength     = 100
	maxUsefulLength     = 2000
	disclaimerMaxLength = 200
)

// minQualityScore is the mean-of-checks threshold for meeting standards.
const minQualityScore = 0.6

// AssessQuality scores a grounded-search answer. The quality score is the
// arithmetic mean of the five boolean checks; meeting standards additionally
// requires specific data, appropriate length, and a non-disclaimer answer.
func AssessQuality(text string) models.WebQualityReport {
	lower := strings.ToLower(text)

	report := models.WebQualityReport{
		HasSources:        containsAny(lower, sourceTokens),
		HasSpecificData:   containsAny(lower, specificDataTokens),
		HasTimeframe:      containsAny(lower, timeframeTokens),
		AppropriateLength: len(text) > minUsefulLength && len(text) < maxUsefulLength,
		NotDisclaimerOnly: !(len(text) < disclaimerMaxLength && containsAny(lower, disclaimerTokens)),
	}

	checks := []bool{
		report.HasSources,
		report.HasSpecificData,
		report.HasTimeframe,
		report.AppropriateLength,
		report.NotDisclaimerOnly,
	}
	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	report.QualityScore = float64(passed) / float64(len(checks))

	report.MeetsStandards = report.HasSpecificData &&
		report.AppropriateLength &&
		report.NotDisclaimerOnly &&
		report.QualityScore >= minQualityScore

	return report
}

func containsAny(lower string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
