package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/findocgpt/findocgpt/pkg/llm"
	"github.com/findocgpt/findocgpt/pkg/models"
)

const (
	// MaxIterations caps the refinement loop.
	MaxIterations = 10

	// CompletenessThreshold is the evaluation score at which the analysis is
	// considered sufficient for a decision.
	CompletenessThreshold = 7

	// retrieveMode is the search mode used for gap-filling queries.
	retrieveMode = "graph"

	// noDocumentsMessage is the client-visible error for an empty registry.
	noDocumentsMessage = "No documents available for analysis"
)

// DocumentSource lists document summaries, optionally filtered by company.
type DocumentSource interface {
	ListSummaries(companyFilter string) []models.DocumentSummary
}

// Retriever answers a query against the knowledge store.
type Retriever interface {
	Search(ctx context.Context, query, mode string) ([]string, error)
}

// Grader validates retrieval answers and augments failed ones.
type Grader interface {
	Answer(ctx context.Context, query string, ragAnswers []string) models.GradedAnswer
}

// CancelSignal reports whether a cancellation has been requested for the
// running job. Checked at loop boundaries, never mid-call.
type CancelSignal func(ctx context.Context) bool

// ProgressUpdate carries an incremental persistence step. Nil pointer fields
// are left untouched.
type ProgressUpdate struct {
	TotalIterations        *int
	DocumentsAnalyzed      *int
	RagQueriesExecuted     *int
	FinalCompletenessScore *float64
	IterationHistory       []models.IterationRecord
	FinalAnalysis          map[string]any
}

// JobUpdater persists progress between loop phases so a crash or cancellation
// leaves inspectable partial results.
type JobUpdater interface {
	Update(ctx context.Context, update ProgressUpdate) error
}

// Outcome is the terminal result of one analysis run.
type Outcome struct {
	Status                 models.JobStatus
	FinalAnalysis          map[string]any
	History                []models.IterationRecord
	TotalIterations        int
	DocumentsAnalyzed      int
	RagQueriesExecuted     int
	FinalCompletenessScore float64
	ErrorMessage           string
	TerminationReason      string
}

// CancelledReason is the termination reason recorded for user cancellations.
const CancelledReason = "User cancelled the analysis"

// Controller runs the iterative critique-and-refine loop: draft from
// document summaries, evaluate, generate gap queries, retrieve and grade,
// refine, repeat until complete or capped.
type Controller struct {
	llm           llm.Client
	docs          DocumentSource
	retriever     Retriever
	grader        Grader
	maxIterations int
	logger        *slog.Logger
}

// NewController wires the loop's collaborators.
func NewController(client llm.Client, docs DocumentSource, retriever Retriever, grader Grader) *Controller {
	return &Controller{
		llm:           client,
		docs:          docs,
		retriever:     retriever,
		grader:        grader,
		maxIterations: MaxIterations,
		logger:        slog.Default(),
	}
}

// Run executes the full loop for one job. It always returns a terminal
// outcome; errors surface as a FAILED outcome carrying whatever partial
// results accumulated before the failure.
func (c *Controller) Run(ctx context.Context, query, companyFilter string, cancelled CancelSignal, updater JobUpdater) *Outcome {
	var (
		history      []models.IterationRecord
		current      map[string]any
		docCount     int
		ragExecuted  int
		wasCancelled bool
	)

	isCancelled := func() bool {
		if ctx.Err() != nil {
			return true
		}
		return cancelled != nil && cancelled(ctx)
	}

	finish := func(status models.JobStatus, errMsg, reason string) *Outcome {
		out := &Outcome{
			Status:                 status,
			FinalAnalysis:          current,
			History:                history,
			TotalIterations:        countRecords(history, models.RecordEvaluation),
			DocumentsAnalyzed:      docCount,
			RagQueriesExecuted:     ragExecuted,
			FinalCompletenessScore: models.FinalCompletenessScore(history),
			ErrorMessage:           errMsg,
			TerminationReason:      reason,
		}
		return out
	}

	fail := func(err error) *Outcome {
		c.logger.Error("Analysis run failed", "query", query, "error", err)
		return finish(models.JobStatusFailed, err.Error(), "Analysis failed: "+err.Error())
	}

	docs := c.docs.ListSummaries(companyFilter)
	if len(docs) == 0 {
		return fail(errors.New(noDocumentsMessage))
	}
	docCount = len(docs)
	docsText := FormatDocuments(docs)
	c.progress(ctx, updater, ProgressUpdate{DocumentsAnalyzed: intPtr(docCount)})

	if isCancelled() {
		return finish(models.JobStatusCancelled, "", CancelledReason)
	}

	// Initial draft from the document summaries.
	system, user := BuildDraftPrompt(query, docsText)
	response, err := c.llm.Complete(ctx, system, user)
	if err != nil {
		return fail(fmt.Errorf("initial analysis: %w", err))
	}
	current, err = ParseAnalysis(response)
	if err != nil {
		return fail(fmt.Errorf("initial analysis: %w", err))
	}
	history = append(history, models.IterationRecord{
		Iteration: 0,
		Type:      models.RecordInitialAnalysis,
		Timestamp: time.Now().UTC(),
		Analysis:  current,
	})
	c.progress(ctx, updater, ProgressUpdate{IterationHistory: history, FinalAnalysis: current})

	for iteration := 1; iteration <= c.maxIterations; iteration++ {
		if isCancelled() {
			wasCancelled = true
			break
		}

		eval, err := c.evaluate(ctx, query, current)
		if err != nil {
			c.logger.Warn("Evaluation failed, stopping refinement", "iteration", iteration, "error", err)
			break
		}
		history = append(history, models.IterationRecord{
			Iteration:  iteration,
			Type:       models.RecordEvaluation,
			Timestamp:  time.Now().UTC(),
			Evaluation: eval,
		})
		c.progress(ctx, updater, ProgressUpdate{
			TotalIterations:        intPtr(iteration),
			FinalCompletenessScore: floatPtr(float64(eval.CompletenessScore)),
			IterationHistory:       history,
		})

		if eval.IsAnalysisComplete || eval.CompletenessScore >= CompletenessThreshold {
			c.logger.Info("Analysis complete",
				"iteration", iteration,
				"completeness_score", eval.CompletenessScore,
				"marked_complete", eval.IsAnalysisComplete)
			break
		}

		queries, err := c.generateQueries(ctx, eval, docsText)
		if err != nil {
			c.logger.Warn("Query generation failed, stopping refinement", "iteration", iteration, "error", err)
			break
		}
		if len(queries) == 0 {
			c.logger.Info("No gap queries generated, stopping refinement", "iteration", iteration)
			break
		}

		results := make([]models.QueryResult, 0, len(queries))
		for _, q := range queries {
			if isCancelled() {
				wasCancelled = true
				break
			}
			results = append(results, c.retrieve(ctx, q))
		}
		// The counter tracks generated queries so it always equals the sum
		// of len(queries) across ragQueries records, even when cancellation
		// cut the batch short.
		ragExecuted += len(queries)
		history = append(history, models.IterationRecord{
			Iteration: iteration,
			Type:      models.RecordRagQueries,
			Timestamp: time.Now().UTC(),
			Queries:   queries,
			Results:   results,
		})
		c.progress(ctx, updater, ProgressUpdate{
			RagQueriesExecuted: intPtr(ragExecuted),
			IterationHistory:   history,
		})
		if wasCancelled || isCancelled() {
			wasCancelled = true
			break
		}

		refined, err := c.refine(ctx, query, current, results)
		if err != nil {
			c.logger.Warn("Refinement failed, keeping previous analysis", "iteration", iteration, "error", err)
			break
		}
		current = refined
		history = append(history, models.IterationRecord{
			Iteration: iteration,
			Type:      models.RecordRefinedAnalysis,
			Timestamp: time.Now().UTC(),
			Analysis:  current,
		})
		c.progress(ctx, updater, ProgressUpdate{IterationHistory: history, FinalAnalysis: current})
	}

	out := finish(models.JobStatusCompleted, "", "")
	if wasCancelled || isCancelled() {
		out.Status = models.JobStatusCancelled
		out.TerminationReason = CancelledReason
	}
	return out
}

func (c *Controller) evaluate(ctx context.Context, query string, current map[string]any) (*models.Evaluation, error) {
	system, user := BuildEvaluatePrompt(query, current)
	response, err := c.llm.Complete(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("evaluate analysis: %w", err)
	}
	return ParseEvaluation(response)
}

func (c *Controller) generateQueries(ctx context.Context, eval *models.Evaluation, docsText string) ([]string, error) {
	system, user := BuildQueriesPrompt(eval, docsText)
	response, err := c.llm.Complete(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("generate queries: %w", err)
	}
	return ParseQueries(response)
}

// retrieve runs one gap query through the store and the grader. Retrieval
// errors degrade to an empty answer set so a flaky store never aborts the
// whole run.
func (c *Controller) retrieve(ctx context.Context, query string) models.QueryResult {
	ragAnswers, err := c.retriever.Search(ctx, query, retrieveMode)
	if err != nil {
		c.logger.Warn("Retrieval query failed", "rag_query", query, "error", err)
		ragAnswers = nil
	}

	graded := c.grader.Answer(ctx, query, ragAnswers)
	return models.QueryResult{
		Query:        query,
		RagAnswers:   ragAnswers,
		Source:       graded.Source,
		FinalAnswers: graded.FinalAnswers,
		Validation:   graded.Validation,
		WebQuality:   graded.WebQuality,
	}
}

func (c *Controller) refine(ctx context.Context, query string, current map[string]any, results []models.QueryResult) (map[string]any, error) {
	system, user := BuildRefinePrompt(query, current, FormatRagResults(results))
	response, err := c.llm.Complete(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("refine analysis: %w", err)
	}
	return ParseAnalysis(response)
}

// progress persists a step. Persistence failures are logged and the run
// continues; the terminal write is what matters.
func (c *Controller) progress(ctx context.Context, updater JobUpdater, update ProgressUpdate) {
	if updater == nil {
		return
	}
	if err := updater.Update(ctx, update); err != nil {
		c.logger.Warn("Progress update failed", "error", err)
	}
}

func countRecords(history []models.IterationRecord, recordType string) int {
	n := 0
	for _, rec := range history {
		if rec.Type == recordType {
			n++
		}
	}
	return n
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
