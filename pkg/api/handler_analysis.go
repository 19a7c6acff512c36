package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/findocgpt/findocgpt/pkg/models"
	"github.com/findocgpt/findocgpt/pkg/services"
)

// serviceCapabilities is the fixed capability list for the status probe.
var serviceCapabilities = []string{
	"Iterative analysis with self-improvement",
	"RAG-powered document querying",
	"Completeness evaluation and gap identification",
	"Targeted information retrieval",
	"Multi-iteration refinement",
}

// CreateAnalysis starts a new analysis job and returns immediately.
func (s *Server) CreateAnalysis(c *gin.Context) {
	var req CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job, err := s.analysis.CreateJob(c.Request.Context(), req.Query, req.CompanyFilter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := s.dispatcher.StartJob(job.ID, job.Query, req.CompanyFilter); err != nil {
		slog.Error("Failed to dispatch analysis job", "analysis_id", job.ID, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analysis could not be started"})
		return
	}

	resp := gin.H{
		"id":                  job.ID,
		"message":             "Iterative analysis started",
		"query":               job.Query,
		"status":              services.StatusToAPI(job.Status),
		"estimatedCompletion": estimatedCompletion,
	}
	if job.CompanyFilter != nil {
		resp["companyFilter"] = *job.CompanyFilter
	}
	c.JSON(http.StatusCreated, resp)
}

// ListAnalyses returns all jobs, newest first.
func (s *Server) ListAnalyses(c *gin.Context) {
	jobs, err := s.analysis.ListJobs(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	summaries := make([]gin.H, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, jobSummary(job))
	}
	c.JSON(http.StatusOK, gin.H{"analyses": summaries, "count": len(summaries)})
}

// AnalysisStatus reports lifecycle state and progress counters.
func (s *Server) AnalysisStatus(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := s.analysis.GetJob(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobStatus(job))
}

// AnalysisResults returns the full payload. Allowed for completed jobs, and
// for cancelled or failed ones that accumulated partial results.
func (s *Server) AnalysisResults(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := s.analysis.GetJob(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := services.StatusToAPI(job.Status)
	allowed := status == models.JobStatusCompleted ||
		(status.Terminal() && services.HasPartialResults(job))
	if !allowed {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  fmt.Sprintf("Analysis not completed and no partial results available. Current status: %s", status),
			"status": status,
		})
		return
	}
	c.JSON(http.StatusOK, jobResults(job))
}

// IterationDetails returns the formatted phase-by-phase history.
func (s *Server) IterationDetails(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := s.analysis.GetJob(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	formatted := make([]gin.H, 0, len(job.IterationHistory))
	for _, rec := range job.IterationHistory {
		formatted = append(formatted, formatIterationRecord(rec))
	}

	c.JSON(http.StatusOK, gin.H{
		"analysisId":       job.ID,
		"query":            job.Query,
		"totalIterations":  job.TotalIterations,
		"finalScore":       job.FinalCompletenessScore,
		"iterationHistory": formatted,
		"status":           services.StatusToAPI(job.Status),
	})
}

// CancelAnalysis requests cooperative cancellation. Idempotent; a no-op for
// terminal jobs.
func (s *Server) CancelAnalysis(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := s.analysis.RequestCancel(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := services.StatusToAPI(job.Status)
	if status.Terminal() {
		c.JSON(http.StatusOK, gin.H{
			"status":  status,
			"message": "Analysis is no longer running",
		})
		return
	}

	// Abort the in-flight run promptly; the persisted flag covers the case
	// where the job runs on another process.
	s.dispatcher.Cancel(id)

	c.JSON(http.StatusOK, gin.H{
		"id":              job.ID,
		"status":          status,
		"cancelRequested": true,
		"message":         "Cancellation requested",
	})
}

// DeleteAnalysis removes a terminal job.
func (s *Server) DeleteAnalysis(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	if err := s.analysis.DeleteJob(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkDeleteAnalyses removes a batch of terminal jobs; refused wholesale if
// any of them is still running.
func (s *Server) BulkDeleteAnalyses(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	deleted, running, err := s.analysis.BulkDelete(c.Request.Context(), req.AnalysisIds)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(running) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "Cannot delete running analyses. Please cancel them first.",
			"runningAnalyses": running,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      fmt.Sprintf("Successfully deleted %d analyses", len(deleted)),
		"deletedCount": len(deleted),
	})
}

// ServiceStatus is the capability probe.
func (s *Server) ServiceStatus(c *gin.Context) {
	if !s.chatConfigured {
		c.JSON(http.StatusOK, gin.H{
			"available": false,
			"error":     "chat LLM client not configured",
			"requires":  "AGENT_LLM_API_KEY environment variable",
		})
		return
	}

	stats := s.documents.DocumentStats()
	c.JSON(http.StatusOK, gin.H{
		"available":          true,
		"serviceReady":       true,
		"documentsAvailable": stats.TotalDocuments,
		"companiesAvailable": len(stats.Companies),
		"activeAnalyses":     s.dispatcher.ActiveCount(),
		"capabilities":       serviceCapabilities,
	})
}

func jobID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid analysis id"})
		return 0, false
	}
	return id, true
}
