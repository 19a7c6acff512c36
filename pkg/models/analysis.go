package models

import "time"

// JobStatus is the API-facing lifecycle state of an analysis job.
// PENDING -> IN_PROGRESS -> {COMPLETED | FAILED | CANCELLED}.
type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusFailed     JobStatus = "FAILED"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

// Terminal reports whether the status admits no further transitions.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// Iteration record types, in the order they appear within one iteration.
const (
	RecordInitialAnalysis = "initialAnalysis"
	RecordEvaluation      = "evaluation"
	RecordRagQueries      = "ragQueries"
	RecordRefinedAnalysis = "refinedAnalysis"
)

// Analysis keys the LLM is asked to produce for drafts and refinements.
var AnalysisKeys = []string{
	"executiveSummary",
	"financialAnalysis",
	"investmentOpportunities",
	"riskAssessment",
	"marketPosition",
	"valuationInsights",
	"recommendation",
	"confidenceLevel",
	"dataGaps",
}

// Evaluation is the committee-style critique of the current analysis.
type Evaluation struct {
	OverallAssessment   string   `json:"overallAssessment"`
	CompletenessScore   int      `json:"completenessScore"`
	SpecificQuestions   []string `json:"specificQuestions"`
	MissingAreas        []string `json:"missingAreas"`
	DataNeeds           []string `json:"dataNeeds"`
	MethodologyConcerns []string `json:"methodologyConcerns"`
	Actionability       string   `json:"actionability"`
	NextSteps           []string `json:"nextSteps"`
	IsAnalysisComplete  bool     `json:"isAnalysisComplete"`
}

// QueryResult captures one retrieval query's full provenance: the raw RAG
// answers, the grader verdict, and the answer that was finally used.
type QueryResult struct {
	Query        string            `json:"query"`
	RagAnswers   []string          `json:"ragAnswers"`
	Source       string            `json:"source"`
	FinalAnswers []string          `json:"finalAnswers"`
	Validation   ValidationVerdict `json:"validation"`
	WebQuality   *WebQualityReport `json:"webQuality,omitempty"`
}

// IterationRecord is one entry of a job's append-only iteration history.
// Exactly one payload group is populated depending on Type.
type IterationRecord struct {
	Iteration int       `json:"iteration"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	Analysis   map[string]any `json:"analysis,omitempty"`
	Evaluation *Evaluation    `json:"evaluation,omitempty"`
	Queries    []string       `json:"queries,omitempty"`
	Results    []QueryResult  `json:"results,omitempty"`
}

// LatestAnalysis scans history in reverse for the most recent draft or
// refinement and returns its analysis payload, or nil if none exists.
func LatestAnalysis(history []IterationRecord) map[string]any {
	for i := len(history) - 1; i >= 0; i-- {
		rec := history[i]
		if rec.Type == RecordInitialAnalysis || rec.Type == RecordRefinedAnalysis {
			return rec.Analysis
		}
	}
	return nil
}

// FinalCompletenessScore returns the score of the last evaluation record,
// or 0 if the history holds no evaluations.
func FinalCompletenessScore(history []IterationRecord) float64 {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Type == RecordEvaluation && history[i].Evaluation != nil {
			return float64(history[i].Evaluation.CompletenessScore)
		}
	}
	return 0
}
