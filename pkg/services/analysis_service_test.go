package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findocgpt/findocgpt/ent"
	"github.com/findocgpt/findocgpt/ent/analysisjob"
	"github.com/findocgpt/findocgpt/pkg/analysis"
	"github.com/findocgpt/findocgpt/pkg/models"
	"github.com/findocgpt/findocgpt/test/util"
)

func newTestService(t *testing.T) (*AnalysisService, *ent.Client) {
	client := util.SetupTestDatabase(t)
	return NewAnalysisService(client), client
}

func TestCreateJob(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, "Should I invest in Apple?", "Apple Inc.")
	require.NoError(t, err)

	assert.Equal(t, analysisjob.StatusInProgress, job.Status)
	assert.Equal(t, "Should I invest in Apple?", job.Query)
	require.NotNil(t, job.CompanyFilter)
	assert.Equal(t, "Apple Inc.", *job.CompanyFilter)
	assert.False(t, job.CancelRequested)
	assert.WithinDuration(t, time.Now(), job.CreatedAt, 5*time.Second)
}

func TestCreateJob_ValidatesQueryLength(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateJob(context.Background(), "too short", "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// Whitespace does not count toward the minimum.
	_, err = svc.CreateJob(context.Background(), "   short    ", "")
	assert.True(t, IsValidationError(err))
}

func TestGetJob_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetJob(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProgress_PartialFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, "Should I invest in Apple?", "")
	require.NoError(t, err)

	writer := svc.ProgressWriter(job.ID)
	docs := 3
	require.NoError(t, writer.Update(ctx, analysis.ProgressUpdate{DocumentsAnalyzed: &docs}))

	history := []models.IterationRecord{{
		Iteration: 0,
		Type:      models.RecordInitialAnalysis,
		Timestamp: time.Now().UTC(),
		Analysis:  map[string]any{"recommendation": "Buy"},
	}}
	require.NoError(t, writer.Update(ctx, analysis.ProgressUpdate{
		IterationHistory: history,
		FinalAnalysis:    history[0].Analysis,
	}))

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.DocumentsAnalyzed)
	require.Len(t, got.IterationHistory, 1)
	assert.Equal(t, models.RecordInitialAnalysis, got.IterationHistory[0].Type)
	assert.Equal(t, "Buy", got.FinalAnalysis["recommendation"])
	// Untouched fields keep their defaults.
	assert.Equal(t, 0, got.TotalIterations)
}

func TestApplyOutcome_Completed(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, "Should I invest in Apple?", "")
	require.NoError(t, err)

	out := &analysis.Outcome{
		Status:                 models.JobStatusCompleted,
		FinalAnalysis:          map[string]any{"recommendation": "Buy", "confidenceLevel": "High"},
		History:                []models.IterationRecord{{Iteration: 0, Type: models.RecordInitialAnalysis}},
		TotalIterations:        2,
		DocumentsAnalyzed:      3,
		RagQueriesExecuted:     5,
		FinalCompletenessScore: 8,
	}
	require.NoError(t, svc.ApplyOutcome(ctx, job.ID, out))

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCompleted, got.Status)
	assert.Equal(t, models.JobStatusCompleted, StatusToAPI(got.Status))
	assert.Equal(t, 2, got.TotalIterations)
	assert.Equal(t, 5, got.RagQueriesExecuted)
	assert.Equal(t, 8.0, got.FinalCompletenessScore)
	require.NotNil(t, got.CompletedAt)
	assert.Empty(t, TerminationReason(got))
}

func TestApplyOutcome_FailedCarriesReason(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, "Should I invest in Apple?", "")
	require.NoError(t, err)

	out := &analysis.Outcome{
		Status:       models.JobStatusFailed,
		ErrorMessage: "No documents available for analysis",
	}
	require.NoError(t, svc.ApplyOutcome(ctx, job.ID, out))

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "Analysis failed: No documents available for analysis", TerminationReason(got))
	assert.False(t, HasPartialResults(got))
}

func TestApplyOutcome_SecondTerminalWriteRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, "Should I invest in Apple?", "")
	require.NoError(t, err)

	require.NoError(t, svc.ApplyOutcome(ctx, job.ID, &analysis.Outcome{Status: models.JobStatusCancelled}))
	err = svc.ApplyOutcome(ctx, job.ID, &analysis.Outcome{Status: models.JobStatusCompleted})
	require.Error(t, err)

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCancelled, got.Status)
}

func TestRequestCancel(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, "Should I invest in Apple?", "")
	require.NoError(t, err)
	assert.False(t, svc.IsCancelRequested(ctx, job.ID))

	got, err := svc.RequestCancel(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, got.CancelRequested)
	assert.Equal(t, analysisjob.StatusInProgress, got.Status)
	assert.True(t, svc.IsCancelRequested(ctx, job.ID))
}

func TestRequestCancel_TerminalJobIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, "Should I invest in Apple?", "")
	require.NoError(t, err)
	require.NoError(t, svc.ApplyOutcome(ctx, job.ID, &analysis.Outcome{Status: models.JobStatusCompleted}))

	got, err := svc.RequestCancel(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCompleted, got.Status)
	assert.False(t, got.CancelRequested)
}

func TestDeleteJob(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, "Should I invest in Apple?", "")
	require.NoError(t, err)

	// Running jobs cannot be deleted.
	err = svc.DeleteJob(ctx, job.ID)
	assert.True(t, errors.Is(err, ErrJobRunning))

	require.NoError(t, svc.ApplyOutcome(ctx, job.ID, &analysis.Outcome{Status: models.JobStatusCompleted}))
	require.NoError(t, svc.DeleteJob(ctx, job.ID))

	_, err = svc.GetJob(ctx, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBulkDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	done, err := svc.CreateJob(ctx, "Should I invest in Apple?", "")
	require.NoError(t, err)
	require.NoError(t, svc.ApplyOutcome(ctx, done.ID, &analysis.Outcome{Status: models.JobStatusCompleted}))

	running, err := svc.CreateJob(ctx, "Should I invest in Tesla instead?", "")
	require.NoError(t, err)

	// A running job blocks the whole batch.
	deleted, blocked, err := svc.BulkDelete(ctx, []int{done.ID, running.ID})
	require.NoError(t, err)
	assert.Empty(t, deleted)
	assert.Equal(t, []int{running.ID}, blocked)

	_, err = svc.GetJob(ctx, done.ID)
	require.NoError(t, err, "nothing is deleted when the batch is blocked")

	require.NoError(t, svc.ApplyOutcome(ctx, running.ID, &analysis.Outcome{Status: models.JobStatusCancelled}))
	deleted, blocked, err = svc.BulkDelete(ctx, []int{done.ID, running.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{done.ID, running.ID}, deleted)
	assert.Empty(t, blocked)
}

func TestBulkDelete_EmptyInput(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.BulkDelete(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestListJobs_NewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateJob(ctx, "Should I invest in Apple?", "")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := svc.CreateJob(ctx, "Should I invest in Microsoft?", "")
	require.NoError(t, err)

	jobs, err := svc.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, second.ID, jobs[0].ID)
	assert.Equal(t, first.ID, jobs[1].ID)
}

func TestPartialResultHelpers(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, "Should I invest in Apple?", "")
	require.NoError(t, err)

	history := []models.IterationRecord{
		{Iteration: 0, Type: models.RecordInitialAnalysis, Analysis: map[string]any{"recommendation": "Hold"}},
		{Iteration: 1, Type: models.RecordEvaluation, Evaluation: &models.Evaluation{CompletenessScore: 5}},
	}
	require.NoError(t, svc.ApplyOutcome(ctx, job.ID, &analysis.Outcome{
		Status:  models.JobStatusCancelled,
		History: history,
	}))

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, HasPartialResults(got))
	latest := LatestIterationAnalysis(got)
	require.NotNil(t, latest)
	assert.Equal(t, "Hold", latest["recommendation"])
	assert.Equal(t, analysis.CancelledReason, TerminationReason(got))
}
