package models

// Answer sources reported by the grader pipeline.
const (
	AnswerSourceRAG = "rag"
	AnswerSourceWeb = "web"
)

// ValidationVerdict is the grader's JSON verdict on a RAG answer.
type ValidationVerdict struct {
	ValidationPassed    bool     `json:"validationPassed"`
	Reasoning           string   `json:"reasoning"`
	ConfidenceScore     float64  `json:"confidenceScore"`
	MissingAspects      []string `json:"missingAspects,omitempty"`
	RequiresCurrentData bool     `json:"requiresCurrentData,omitempty"`
}

// WebQualityReport scores a grounded-search answer against the fixed
// source-quality heuristic. QualityScore is the mean of the five checks.
type WebQualityReport struct {
	HasSources        bool    `json:"hasSources"`
	HasSpecificData   bool    `json:"hasSpecificData"`
	HasTimeframe      bool    `json:"hasTimeframe"`
	AppropriateLength bool    `json:"appropriateLength"`
	NotDisclaimerOnly bool    `json:"notDisclaimerOnly"`
	QualityScore      float64 `json:"qualityScore"`
	MeetsStandards    bool    `json:"meetsStandards"`
}

// GradedAnswer is the grader pipeline's final output for one query.
type GradedAnswer struct {
	FinalAnswers []string          `json:"finalAnswers"`
	Source       string            `json:"source"`
	Validation   ValidationVerdict `json:"validation"`
	WebQuality   *WebQualityReport `json:"webQuality,omitempty"`
}
