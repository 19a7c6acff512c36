package api

import (
	"github.com/gin-gonic/gin"

	"github.com/findocgpt/findocgpt/ent"
	"github.com/findocgpt/findocgpt/pkg/models"
	"github.com/findocgpt/findocgpt/pkg/services"
)

// estimatedCompletion is the hint returned on job creation.
const estimatedCompletion = "2-5 minutes depending on complexity"

// jobSummary is the list-view shape of one job.
func jobSummary(job *ent.AnalysisJob) gin.H {
	out := gin.H{
		"id":                     job.ID,
		"status":                 services.StatusToAPI(job.Status),
		"query":                  job.Query,
		"createdAt":              job.CreatedAt,
		"totalIterations":        job.TotalIterations,
		"finalCompletenessScore": job.FinalCompletenessScore,
	}
	if job.CompanyFilter != nil {
		out["companyFilter"] = *job.CompanyFilter
	}
	return out
}

// jobStatus is the polling shape: identity, progress counters, and the
// terminal extras appropriate to the job's state.
func jobStatus(job *ent.AnalysisJob) gin.H {
	apiStatus := services.StatusToAPI(job.Status)

	out := gin.H{
		"id":              job.ID,
		"status":          apiStatus,
		"query":           job.Query,
		"cancelRequested": job.CancelRequested,
		"createdAt":       job.CreatedAt,
		"progress": gin.H{
			"totalIterations":        job.TotalIterations,
			"documentsAnalyzed":      job.DocumentsAnalyzed,
			"ragQueriesExecuted":     job.RagQueriesExecuted,
			"finalCompletenessScore": job.FinalCompletenessScore,
		},
	}
	if job.CompanyFilter != nil {
		out["companyFilter"] = *job.CompanyFilter
	}
	if job.CompletedAt != nil {
		out["completedAt"] = *job.CompletedAt
	}

	switch apiStatus {
	case models.JobStatusCompleted:
		out["finalRecommendation"] = analysisField(job.FinalAnalysis, "recommendation")
		out["confidenceLevel"] = analysisField(job.FinalAnalysis, "confidenceLevel")
	case models.JobStatusFailed, models.JobStatusCancelled:
		if job.ErrorMessage != nil {
			out["errorMessage"] = *job.ErrorMessage
		}
		hasPartials := services.HasPartialResults(job)
		out["hasPartialResults"] = hasPartials
		if hasPartials {
			if latest := services.LatestIterationAnalysis(job); latest != nil {
				out["latestIterationAnalysis"] = latest
			}
			out["terminationReason"] = services.TerminationReason(job)
		}
	}
	return out
}

// jobResults is the full payload of a finished job.
func jobResults(job *ent.AnalysisJob) gin.H {
	out := gin.H{
		"id":                     job.ID,
		"status":                 services.StatusToAPI(job.Status),
		"query":                  job.Query,
		"cancelRequested":        job.CancelRequested,
		"createdAt":              job.CreatedAt,
		"totalIterations":        job.TotalIterations,
		"documentsAnalyzed":      job.DocumentsAnalyzed,
		"ragQueriesExecuted":     job.RagQueriesExecuted,
		"finalCompletenessScore": job.FinalCompletenessScore,
		"finalAnalysis":          job.FinalAnalysis,
		"iterationHistory":       job.IterationHistory,
	}
	if job.CompanyFilter != nil {
		out["companyFilter"] = *job.CompanyFilter
	}
	if job.CompletedAt != nil {
		out["completedAt"] = *job.CompletedAt
	}
	if job.ErrorMessage != nil {
		out["errorMessage"] = *job.ErrorMessage
	}
	return out
}

// formatIterationRecord condenses one history record for display: analyses
// collapse to a summary line, evaluations and retrieval rounds surface their
// key numbers.
func formatIterationRecord(rec models.IterationRecord) gin.H {
	out := gin.H{
		"iteration": rec.Iteration,
		"type":      rec.Type,
		"timestamp": rec.Timestamp,
	}

	switch rec.Type {
	case models.RecordInitialAnalysis:
		out["summary"] = "Generated comprehensive initial analysis"
	case models.RecordEvaluation:
		if rec.Evaluation != nil {
			out["completenessScore"] = rec.Evaluation.CompletenessScore
			out["isComplete"] = rec.Evaluation.IsAnalysisComplete
			out["assessment"] = rec.Evaluation.OverallAssessment
			out["questionsRaised"] = len(rec.Evaluation.SpecificQuestions)
		}
	case models.RecordRagQueries:
		out["queriesExecuted"] = len(rec.Queries)
		out["queries"] = rec.Queries
	case models.RecordRefinedAnalysis:
		out["summary"] = "Analysis refined with RAG results"
	}
	return out
}

func analysisField(analysis map[string]any, key string) string {
	if analysis == nil {
		return ""
	}
	s, _ := analysis[key].(string)
	return s
}
