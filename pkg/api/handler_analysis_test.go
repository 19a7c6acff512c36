package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findocgpt/findocgpt/ent"
	"github.com/findocgpt/findocgpt/ent/analysisjob"
	"github.com/findocgpt/findocgpt/pkg/models"
	"github.com/findocgpt/findocgpt/pkg/registry"
	"github.com/findocgpt/findocgpt/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAnalysisStore struct {
	jobs      map[int]*ent.AnalysisJob
	nextID    int
	deleted   []int
	cancelled []int
}

func newStubAnalysisStore() *stubAnalysisStore {
	return &stubAnalysisStore{jobs: make(map[int]*ent.AnalysisJob), nextID: 1}
}

func (s *stubAnalysisStore) CreateJob(_ context.Context, query, companyFilter string) (*ent.AnalysisJob, error) {
	if len(query) < 10 {
		return nil, services.NewValidationError("query", "must be at least 10 characters")
	}
	job := &ent.AnalysisJob{
		ID:        s.nextID,
		Query:     query,
		Status:    analysisjob.StatusInProgress,
		CreatedAt: time.Now(),
	}
	if companyFilter != "" {
		job.CompanyFilter = &companyFilter
	}
	s.jobs[job.ID] = job
	s.nextID++
	return job, nil
}

func (s *stubAnalysisStore) GetJob(_ context.Context, id int) (*ent.AnalysisJob, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return job, nil
}

func (s *stubAnalysisStore) ListJobs(context.Context) ([]*ent.AnalysisJob, error) {
	out := make([]*ent.AnalysisJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		out = append(out, job)
	}
	return out, nil
}

func (s *stubAnalysisStore) RequestCancel(_ context.Context, id int) (*ent.AnalysisJob, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	if !services.StatusToAPI(job.Status).Terminal() {
		job.CancelRequested = true
		s.cancelled = append(s.cancelled, id)
	}
	return job, nil
}

func (s *stubAnalysisStore) DeleteJob(_ context.Context, id int) error {
	job, ok := s.jobs[id]
	if !ok {
		return services.ErrNotFound
	}
	if !services.StatusToAPI(job.Status).Terminal() {
		return services.ErrJobRunning
	}
	delete(s.jobs, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubAnalysisStore) BulkDelete(_ context.Context, ids []int) (deleted, running []int, err error) {
	if len(ids) == 0 {
		return nil, nil, services.NewValidationError("analysisIds", "must not be empty")
	}
	for _, id := range ids {
		job, ok := s.jobs[id]
		if !ok {
			continue
		}
		if !services.StatusToAPI(job.Status).Terminal() {
			running = append(running, id)
		}
	}
	if len(running) > 0 {
		return nil, running, nil
	}
	for _, id := range ids {
		if _, ok := s.jobs[id]; ok {
			delete(s.jobs, id)
			deleted = append(deleted, id)
		}
	}
	return deleted, nil, nil
}

type stubDocStore struct {
	entries []*registry.Entry
	stats   registry.Stats
}

func (s *stubDocStore) StartSearchAndStore(_ context.Context, query string, _ int) (int, int, error) {
	if query == "" {
		return 0, 0, services.NewValidationError("query", "required")
	}
	return 3, 2, nil
}

func (s *stubDocStore) ListDocuments(string) []*registry.Entry { return s.entries }
func (s *stubDocStore) DocumentStats() registry.Stats          { return s.stats }

type stubDispatcher struct {
	started   []int
	cancelled []int
	startErr  error
}

func (d *stubDispatcher) StartJob(id int, _, _ string) error {
	if d.startErr != nil {
		return d.startErr
	}
	d.started = append(d.started, id)
	return nil
}

func (d *stubDispatcher) Cancel(id int) bool {
	d.cancelled = append(d.cancelled, id)
	return true
}

func (d *stubDispatcher) ActiveCount() int { return len(d.started) - len(d.cancelled) }

func newTestServer() (*Server, *stubAnalysisStore, *stubDispatcher) {
	store := newStubAnalysisStore()
	dispatcher := &stubDispatcher{}
	srv := NewServer(store, &stubDocStore{stats: registry.Stats{TotalDocuments: 4, Companies: []string{"Apple Inc."}}},
		dispatcher, func(context.Context) error { return nil }, true, true)
	return srv, store, dispatcher
}

func doRequest(srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateAnalysis(t *testing.T) {
	srv, _, dispatcher := newTestServer()

	w := doRequest(srv, http.MethodPost, "/analysis/iterative",
		CreateAnalysisRequest{Query: "Should I invest in Apple?", CompanyFilter: "Apple Inc."})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "IN_PROGRESS", body["status"])
	assert.Equal(t, "Apple Inc.", body["companyFilter"])
	assert.Equal(t, estimatedCompletion, body["estimatedCompletion"])
	assert.Equal(t, []int{1}, dispatcher.started)
}

func TestCreateAnalysis_ShortQuery(t *testing.T) {
	srv, _, dispatcher := newTestServer()

	w := doRequest(srv, http.MethodPost, "/analysis/iterative", CreateAnalysisRequest{Query: "short"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, dispatcher.started)
}

func TestAnalysisStatus_InProgress(t *testing.T) {
	srv, store, _ := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)
	store.jobs[1].DocumentsAnalyzed = 2
	store.jobs[1].TotalIterations = 1

	w := doRequest(srv, http.MethodGet, "/analysis/iterative/1/status", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "IN_PROGRESS", body["status"])
	progress := body["progress"].(map[string]any)
	assert.Equal(t, float64(2), progress["documentsAnalyzed"])
	assert.Equal(t, float64(1), progress["totalIterations"])
	assert.NotContains(t, body, "finalRecommendation")
	assert.NotContains(t, body, "hasPartialResults")
}

func TestAnalysisStatus_CompletedExtras(t *testing.T) {
	srv, store, _ := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)
	store.jobs[1].Status = analysisjob.StatusCompleted
	store.jobs[1].FinalAnalysis = map[string]any{"recommendation": "Buy", "confidenceLevel": "High"}

	body := decode(t, doRequest(srv, http.MethodGet, "/analysis/iterative/1/status", nil))

	assert.Equal(t, "Buy", body["finalRecommendation"])
	assert.Equal(t, "High", body["confidenceLevel"])
}

func TestAnalysisStatus_CancelledExtras(t *testing.T) {
	srv, store, _ := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)
	store.jobs[1].Status = analysisjob.StatusCancelled
	store.jobs[1].IterationHistory = []models.IterationRecord{
		{Iteration: 0, Type: models.RecordInitialAnalysis, Analysis: map[string]any{"recommendation": "Hold"}},
	}

	body := decode(t, doRequest(srv, http.MethodGet, "/analysis/iterative/1/status", nil))

	assert.Equal(t, true, body["hasPartialResults"])
	assert.Equal(t, "User cancelled the analysis", body["terminationReason"])
	latest := body["latestIterationAnalysis"].(map[string]any)
	assert.Equal(t, "Hold", latest["recommendation"])
}

func TestAnalysisStatus_NotFound(t *testing.T) {
	srv, _, _ := newTestServer()
	w := doRequest(srv, http.MethodGet, "/analysis/iterative/99/status", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalysisResults_GatedWhileRunning(t *testing.T) {
	srv, store, _ := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)

	w := doRequest(srv, http.MethodGet, "/analysis/iterative/1/results", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Contains(t, body["error"], "Current status: IN_PROGRESS")
}

func TestAnalysisResults_Completed(t *testing.T) {
	srv, store, _ := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)
	store.jobs[1].Status = analysisjob.StatusCompleted
	store.jobs[1].FinalAnalysis = map[string]any{"recommendation": "Buy"}

	w := doRequest(srv, http.MethodGet, "/analysis/iterative/1/results", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	final := body["finalAnalysis"].(map[string]any)
	assert.Equal(t, "Buy", final["recommendation"])
}

func TestAnalysisResults_FailedWithPartials(t *testing.T) {
	srv, store, _ := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)
	store.jobs[1].Status = analysisjob.StatusFailed
	store.jobs[1].IterationHistory = []models.IterationRecord{{Iteration: 0, Type: models.RecordInitialAnalysis}}

	w := doRequest(srv, http.MethodGet, "/analysis/iterative/1/results", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalysisResults_FailedWithoutPartials(t *testing.T) {
	srv, store, _ := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)
	store.jobs[1].Status = analysisjob.StatusFailed

	w := doRequest(srv, http.MethodGet, "/analysis/iterative/1/results", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIterationDetails_FormatsPerType(t *testing.T) {
	srv, store, _ := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)
	store.jobs[1].TotalIterations = 1
	store.jobs[1].FinalCompletenessScore = 8
	store.jobs[1].IterationHistory = []models.IterationRecord{
		{Iteration: 0, Type: models.RecordInitialAnalysis, Analysis: map[string]any{"recommendation": "Buy"}},
		{Iteration: 1, Type: models.RecordEvaluation, Evaluation: &models.Evaluation{
			CompletenessScore: 8, OverallAssessment: "Good", SpecificQuestions: []string{"a", "b"},
		}},
		{Iteration: 1, Type: models.RecordRagQueries, Queries: []string{"q1", "q2"}},
		{Iteration: 1, Type: models.RecordRefinedAnalysis, Analysis: map[string]any{"recommendation": "Buy"}},
	}

	body := decode(t, doRequest(srv, http.MethodGet, "/analysis/iterative/1/iteration_details", nil))

	assert.Equal(t, float64(1), body["analysisId"])
	assert.Equal(t, float64(8), body["finalScore"])
	history := body["iterationHistory"].([]any)
	require.Len(t, history, 4)

	initial := history[0].(map[string]any)
	assert.Equal(t, "Generated comprehensive initial analysis", initial["summary"])
	assert.NotContains(t, initial, "analysis")

	eval := history[1].(map[string]any)
	assert.Equal(t, float64(8), eval["completenessScore"])
	assert.Equal(t, "Good", eval["assessment"])
	assert.Equal(t, float64(2), eval["questionsRaised"])

	ragRec := history[2].(map[string]any)
	assert.Equal(t, float64(2), ragRec["queriesExecuted"])

	refined := history[3].(map[string]any)
	assert.Equal(t, "Analysis refined with RAG results", refined["summary"])
}

func TestIterationDetails_EmptyHistory(t *testing.T) {
	srv, store, _ := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)

	w := doRequest(srv, http.MethodGet, "/analysis/iterative/1/iteration_details", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, []any{}, body["iterationHistory"])
}

func TestCancelAnalysis(t *testing.T) {
	srv, store, dispatcher := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)

	w := doRequest(srv, http.MethodPost, "/analysis/iterative/1/cancel", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["cancelRequested"])
	assert.Equal(t, []int{1}, dispatcher.cancelled)
}

func TestCancelAnalysis_TerminalNoOp(t *testing.T) {
	srv, store, dispatcher := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)
	store.jobs[1].Status = analysisjob.StatusCompleted

	w := doRequest(srv, http.MethodPost, "/analysis/iterative/1/cancel", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Analysis is no longer running", body["message"])
	assert.Empty(t, dispatcher.cancelled)
}

func TestDeleteAnalysis(t *testing.T) {
	srv, store, _ := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)

	// Running jobs cannot be deleted.
	w := doRequest(srv, http.MethodDelete, "/analysis/iterative/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	store.jobs[1].Status = analysisjob.StatusCompleted
	w = doRequest(srv, http.MethodDelete, "/analysis/iterative/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestBulkDelete_RunningBlocksBatch(t *testing.T) {
	srv, store, _ := newTestServer()
	_, err := store.CreateJob(context.Background(), "Should I invest in Apple?", "")
	require.NoError(t, err)
	_, err = store.CreateJob(context.Background(), "Should I invest in Tesla instead?", "")
	require.NoError(t, err)
	store.jobs[1].Status = analysisjob.StatusCompleted

	w := doRequest(srv, http.MethodPost, "/analysis/iterative/bulk_delete", BulkDeleteRequest{AnalysisIds: []int{1, 2}})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, []any{float64(2)}, body["runningAnalyses"])

	store.jobs[2].Status = analysisjob.StatusCancelled
	w = doRequest(srv, http.MethodPost, "/analysis/iterative/bulk_delete", BulkDeleteRequest{AnalysisIds: []int{1, 2}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["deletedCount"])
}

func TestBulkDelete_EmptyIds(t *testing.T) {
	srv, _, _ := newTestServer()
	w := doRequest(srv, http.MethodPost, "/analysis/iterative/bulk_delete", BulkDeleteRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceStatus(t *testing.T) {
	srv, _, _ := newTestServer()

	body := decode(t, doRequest(srv, http.MethodGet, "/analysis/iterative/service_status", nil))

	assert.Equal(t, true, body["available"])
	assert.Equal(t, float64(4), body["documentsAvailable"])
	assert.Equal(t, float64(1), body["companiesAvailable"])
	caps := body["capabilities"].([]any)
	assert.Len(t, caps, 5)
}

func TestServiceStatus_Unconfigured(t *testing.T) {
	srv := NewServer(newStubAnalysisStore(), &stubDocStore{}, &stubDispatcher{}, nil, false, false)

	body := decode(t, doRequest(srv, http.MethodGet, "/analysis/iterative/service_status", nil))

	assert.Equal(t, false, body["available"])
	assert.Contains(t, body["requires"], "AGENT_LLM_API_KEY")
}
