package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/findocgpt/findocgpt/ent"
	"github.com/findocgpt/findocgpt/pkg/registry"
)

// AnalysisStore is the job-service surface the handlers use.
type AnalysisStore interface {
	CreateJob(ctx context.Context, query, companyFilter string) (*ent.AnalysisJob, error)
	GetJob(ctx context.Context, id int) (*ent.AnalysisJob, error)
	ListJobs(ctx context.Context) ([]*ent.AnalysisJob, error)
	RequestCancel(ctx context.Context, id int) (*ent.AnalysisJob, error)
	DeleteJob(ctx context.Context, id int) error
	BulkDelete(ctx context.Context, ids []int) (deleted, running []int, err error)
}

// DocumentStore is the document-service surface the handlers use.
type DocumentStore interface {
	StartSearchAndStore(ctx context.Context, query string, limit int) (found, queued int, err error)
	ListDocuments(companyFilter string) []*registry.Entry
	DocumentStats() registry.Stats
}

// JobDispatcher starts and aborts background analysis runs.
type JobDispatcher interface {
	StartJob(id int, query, companyFilter string) error
	Cancel(id int) bool
	ActiveCount() int
}

// Server holds the handler dependencies.
type Server struct {
	analysis   AnalysisStore
	documents  DocumentStore
	dispatcher JobDispatcher

	// pingDB reports database reachability for the health endpoint.
	pingDB func(ctx context.Context) error

	chatConfigured   bool
	geminiConfigured bool
}

// NewServer creates a new API server.
func NewServer(analysis AnalysisStore, documents DocumentStore, dispatcher JobDispatcher,
	pingDB func(ctx context.Context) error, chatConfigured, geminiConfigured bool) *Server {
	return &Server{
		analysis:         analysis,
		documents:        documents,
		dispatcher:       dispatcher,
		pingDB:           pingDB,
		chatConfigured:   chatConfigured,
		geminiConfigured: geminiConfigured,
	}
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(), securityHeaders())

	r.GET("/api/health", s.Health)

	analysis := r.Group("/analysis/iterative")
	{
		analysis.POST("", s.CreateAnalysis)
		analysis.GET("", s.ListAnalyses)
		analysis.GET("/service_status", s.ServiceStatus)
		analysis.POST("/bulk_delete", s.BulkDeleteAnalyses)
		analysis.GET("/:id/status", s.AnalysisStatus)
		analysis.GET("/:id/results", s.AnalysisResults)
		analysis.GET("/:id/iteration_details", s.IterationDetails)
		analysis.POST("/:id/cancel", s.CancelAnalysis)
		analysis.DELETE("/:id", s.DeleteAnalysis)
	}

	documents := r.Group("/api/documents")
	{
		documents.POST("/search_and_store", s.SearchAndStoreDocuments)
		documents.GET("", s.ListDocuments)
		documents.GET("/stats", s.DocumentStats)
	}

	return r
}
