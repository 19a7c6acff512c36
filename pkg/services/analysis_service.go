package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/findocgpt/findocgpt/ent"
	"github.com/findocgpt/findocgpt/ent/analysisjob"
	"github.com/findocgpt/findocgpt/pkg/analysis"
	"github.com/findocgpt/findocgpt/pkg/models"
)

// minQueryLength is the shortest accepted investment query.
const minQueryLength = 10

// writeTimeout bounds critical writes issued on a background context.
const writeTimeout = 10 * time.Second

// AnalysisService manages analysis job lifecycle and persistence.
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// StatusToAPI converts a stored status to its API representation.
func StatusToAPI(s analysisjob.Status) models.JobStatus {
	return models.JobStatus(strings.ToUpper(string(s)))
}

// CreateJob validates and persists a new job. Jobs are created in progress;
// the dispatcher picks them up immediately.
func (s *AnalysisService) CreateJob(httpCtx context.Context, query, companyFilter string) (*ent.AnalysisJob, error) {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return nil, NewValidationError("query", fmt.Sprintf("must be at least %d characters", minQueryLength))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	builder := s.client.AnalysisJob.Create().
		SetQuery(query).
		SetStatus(analysisjob.StatusInProgress)
	if companyFilter != "" {
		builder.SetCompanyFilter(companyFilter)
	}

	job, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis job: %w", err)
	}
	return job, nil
}

// GetJob fetches one job by id.
func (s *AnalysisService) GetJob(ctx context.Context, id int) (*ent.AnalysisJob, error) {
	job, err := s.client.AnalysisJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis job: %w", err)
	}
	return job, nil
}

// ListJobs returns all jobs, newest first.
func (s *AnalysisService) ListJobs(ctx context.Context) ([]*ent.AnalysisJob, error) {
	jobs, err := s.client.AnalysisJob.Query().
		Order(ent.Desc(analysisjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis jobs: %w", err)
	}
	return jobs, nil
}

// UpdateProgress applies an incremental progress step. Nil fields are left
// untouched so phases only write what they changed.
func (s *AnalysisService) UpdateProgress(ctx context.Context, id int, update analysis.ProgressUpdate) error {
	builder := s.client.AnalysisJob.UpdateOneID(id)

	if update.TotalIterations != nil {
		builder.SetTotalIterations(*update.TotalIterations)
	}
	if update.DocumentsAnalyzed != nil {
		builder.SetDocumentsAnalyzed(*update.DocumentsAnalyzed)
	}
	if update.RagQueriesExecuted != nil {
		builder.SetRagQueriesExecuted(*update.RagQueriesExecuted)
	}
	if update.FinalCompletenessScore != nil {
		builder.SetFinalCompletenessScore(*update.FinalCompletenessScore)
	}
	if update.IterationHistory != nil {
		builder.SetIterationHistory(update.IterationHistory)
	}
	if update.FinalAnalysis != nil {
		builder.SetFinalAnalysis(update.FinalAnalysis)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update analysis progress: %w", err)
	}
	return nil
}

// progressWriter adapts the service to the controller's updater interface
// for one job.
type progressWriter struct {
	svc   *AnalysisService
	jobID int
}

func (w *progressWriter) Update(ctx context.Context, update analysis.ProgressUpdate) error {
	return w.svc.UpdateProgress(ctx, w.jobID, update)
}

// ProgressWriter returns an updater bound to the given job.
func (s *AnalysisService) ProgressWriter(jobID int) analysis.JobUpdater {
	return &progressWriter{svc: s, jobID: jobID}
}

// ApplyOutcome writes the terminal state of a finished run. The update is
// conditional on the job still being in progress, so a concurrent terminal
// write cannot be clobbered.
func (s *AnalysisService) ApplyOutcome(_ context.Context, id int, out *analysis.Outcome) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	status, err := storedStatus(out.Status)
	if err != nil {
		return err
	}

	builder := s.client.AnalysisJob.Update().
		Where(
			analysisjob.IDEQ(id),
			analysisjob.StatusEQ(analysisjob.StatusInProgress),
		).
		SetStatus(status).
		SetTotalIterations(out.TotalIterations).
		SetDocumentsAnalyzed(out.DocumentsAnalyzed).
		SetRagQueriesExecuted(out.RagQueriesExecuted).
		SetFinalCompletenessScore(out.FinalCompletenessScore).
		SetCompletedAt(time.Now())

	if out.ErrorMessage != "" {
		builder.SetErrorMessage(out.ErrorMessage)
	}
	if out.History != nil {
		builder.SetIterationHistory(out.History)
	}
	if out.FinalAnalysis != nil {
		builder.SetFinalAnalysis(out.FinalAnalysis)
	}

	count, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finalize analysis job: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("analysis job %d was not in progress at completion", id)
	}
	return nil
}

// RequestCancel flags a running job for cooperative cancellation and returns
// the job's current state. Cancelling a terminal job is a no-op.
func (s *AnalysisService) RequestCancel(httpCtx context.Context, id int) (*ent.AnalysisJob, error) {
	job, err := s.GetJob(httpCtx, id)
	if err != nil {
		return nil, err
	}
	if StatusToAPI(job.Status).Terminal() {
		return job, nil
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err = s.client.AnalysisJob.Update().
		Where(
			analysisjob.IDEQ(id),
			analysisjob.StatusEQ(analysisjob.StatusInProgress),
		).
		SetCancelRequested(true).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to request cancellation: %w", err)
	}

	return s.GetJob(ctx, id)
}

// IsCancelRequested reports the persisted cancellation flag. Lookup errors
// read as not cancelled; the poller retries on its next tick.
func (s *AnalysisService) IsCancelRequested(ctx context.Context, id int) bool {
	flag, err := s.client.AnalysisJob.Query().
		Where(analysisjob.IDEQ(id)).
		Select(analysisjob.FieldCancelRequested).
		Bool(ctx)
	if err != nil {
		return false
	}
	return flag
}

// DeleteJob removes a terminal job. Running jobs must be cancelled first.
func (s *AnalysisService) DeleteJob(httpCtx context.Context, id int) error {
	job, err := s.GetJob(httpCtx, id)
	if err != nil {
		return err
	}
	if !StatusToAPI(job.Status).Terminal() {
		return ErrJobRunning
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := s.client.AnalysisJob.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete analysis job: %w", err)
	}
	return nil
}

// BulkDelete removes the given jobs. If any of them is still running,
// nothing is deleted and the running ids are returned.
func (s *AnalysisService) BulkDelete(httpCtx context.Context, ids []int) (deleted, running []int, err error) {
	if len(ids) == 0 {
		return nil, nil, NewValidationError("analysisIds", "must not be empty")
	}

	jobs, err := s.client.AnalysisJob.Query().
		Where(analysisjob.IDIn(ids...)).
		All(httpCtx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query analysis jobs: %w", err)
	}

	for _, job := range jobs {
		if !StatusToAPI(job.Status).Terminal() {
			running = append(running, job.ID)
		}
	}
	if len(running) > 0 {
		return nil, running, nil
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	for _, job := range jobs {
		if err := s.client.AnalysisJob.DeleteOneID(job.ID).Exec(ctx); err != nil && !ent.IsNotFound(err) {
			return deleted, nil, fmt.Errorf("failed to delete analysis job %d: %w", job.ID, err)
		}
		deleted = append(deleted, job.ID)
	}
	return deleted, nil, nil
}

// HasPartialResults reports whether a non-completed job accumulated any
// inspectable output before it stopped.
func HasPartialResults(job *ent.AnalysisJob) bool {
	return len(job.FinalAnalysis) > 0 || len(job.IterationHistory) > 0
}

// LatestIterationAnalysis returns the most recent draft or refinement from
// the job's history.
func LatestIterationAnalysis(job *ent.AnalysisJob) map[string]any {
	return models.LatestAnalysis(job.IterationHistory)
}

// TerminationReason derives the human-readable stop reason for a terminal
// job. Completed jobs have none.
func TerminationReason(job *ent.AnalysisJob) string {
	switch StatusToAPI(job.Status) {
	case models.JobStatusCancelled:
		return analysis.CancelledReason
	case models.JobStatusFailed:
		if job.ErrorMessage != nil && *job.ErrorMessage != "" {
			return "Analysis failed: " + *job.ErrorMessage
		}
		return "Analysis failed"
	}
	return ""
}

func storedStatus(s models.JobStatus) (analysisjob.Status, error) {
	status := analysisjob.Status(strings.ToLower(string(s)))
	if err := analysisjob.StatusValidator(status); err != nil {
		return "", fmt.Errorf("invalid job status %q: %w", s, err)
	}
	return status, nil
}
