package analysis

import (
	"fmt"

	"github.com/findocgpt/findocgpt/pkg/llm"
	"github.com/findocgpt/findocgpt/pkg/models"
)

// ParseAnalysis extracts the analysis object from an LLM response.
func ParseAnalysis(response string) (map[string]any, error) {
	obj, err := llm.ParseObject(response)
	if err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}
	if len(obj) == 0 {
		return nil, fmt.Errorf("parse analysis: empty object")
	}
	return obj, nil
}

// ParseEvaluation extracts the committee evaluation. Numeric and boolean
// fields are coerced leniently because models drift on types (a score of
// "7" or 7.0 both count as 7).
func ParseEvaluation(response string) (*models.Evaluation, error) {
	obj, err := llm.ParseObject(response)
	if err != nil {
		return nil, fmt.Errorf("parse evaluation: %w", err)
	}

	eval := &models.Evaluation{
		OverallAssessment:   asString(obj["overallAssessment"]),
		CompletenessScore:   asInt(obj["completenessScore"]),
		SpecificQuestions:   asStringSlice(obj["specificQuestions"]),
		MissingAreas:        asStringSlice(obj["missingAreas"]),
		DataNeeds:           asStringSlice(obj["dataNeeds"]),
		MethodologyConcerns: asStringSlice(obj["methodologyConcerns"]),
		Actionability:       asString(obj["actionability"]),
		NextSteps:           asStringSlice(obj["nextSteps"]),
		IsAnalysisComplete:  asBool(obj["isAnalysisComplete"]),
	}
	return eval, nil
}

// ParseQueries extracts the retrieval query list.
func ParseQueries(response string) ([]string, error) {
	queries, err := llm.ParseStringArray(response)
	if err != nil {
		return nil, fmt.Errorf("parse queries: %w", err)
	}
	return queries, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		var parsed int
		if _, err := fmt.Sscanf(n, "%d", &parsed); err == nil {
			return parsed
		}
	}
	return 0
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true" || b == "True"
	}
	return false
}

func asStringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
