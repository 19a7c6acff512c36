package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findocgpt/findocgpt/pkg/models"
)

const (
	draftResponse   = `{"executiveSummary": "Buy Apple on services growth.", "financialAnalysis": "Revenue up 2%.", "investmentOpportunities": "Services expansion.", "riskAssessment": "China exposure.", "marketPosition": "Dominant in premium.", "valuationInsights": "Rich multiple.", "recommendation": "Buy", "confidenceLevel": "Medium", "dataGaps": "Segment margins."}`
	refinedResponse = `{"executiveSummary": "Buy Apple, refined with segment data.", "financialAnalysis": "Services margin 74%.", "investmentOpportunities": "Services expansion.", "riskAssessment": "China exposure.", "marketPosition": "Dominant in premium.", "valuationInsights": "Rich multiple.", "recommendation": "Buy", "confidenceLevel": "High", "dataGaps": "None material."}`
	queriesResponse = `["Apple services segment margin", "Apple China revenue trend", "Apple capital return program"]`
)

func evalResponse(score int, complete bool) string {
	return fmt.Sprintf(`{"overallAssessment": "Fair", "completenessScore": %d, "specificQuestions": ["What is the services margin?"], "missingAreas": ["segment detail"], "dataNeeds": ["margin data"], "methodologyConcerns": [], "actionability": "Medium", "nextSteps": ["dig into segments"], "isAnalysisComplete": %t}`, score, complete)
}

// scriptedLLM routes each call by its system prompt so one stub covers all
// four call sites. Evaluation responses are consumed in order, repeating the
// last one when exhausted.
type scriptedLLM struct {
	mu        sync.Mutex
	evals     []string
	evalCalls int
	draftErr  error
	calls     int
}

func (s *scriptedLLM) Complete(_ context.Context, system, user string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	switch system {
	case systemDraft:
		if s.draftErr != nil {
			return "", s.draftErr
		}
		return draftResponse, nil
	case systemEvaluate:
		idx := s.evalCalls
		if idx >= len(s.evals) {
			idx = len(s.evals) - 1
		}
		s.evalCalls++
		return s.evals[idx], nil
	case systemQueries:
		return queriesResponse, nil
	case systemRefine:
		return refinedResponse, nil
	}
	return "", fmt.Errorf("unexpected system prompt: %s", system)
}

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fakeDocs struct {
	docs       []models.DocumentSummary
	lastFilter string
}

func (f *fakeDocs) ListSummaries(companyFilter string) []models.DocumentSummary {
	f.lastFilter = companyFilter
	return f.docs
}

type fakeRetriever struct {
	queries []string
	err     error
}

func (f *fakeRetriever) Search(_ context.Context, query, mode string) ([]string, error) {
	f.queries = append(f.queries, query+"|"+mode)
	if f.err != nil {
		return nil, f.err
	}
	return []string{"answer for " + query}, nil
}

// passGrader passes everything through as RAG answers.
type passGrader struct{}

func (passGrader) Answer(_ context.Context, _ string, ragAnswers []string) models.GradedAnswer {
	return models.GradedAnswer{
		FinalAnswers: ragAnswers,
		Source:       models.AnswerSourceRAG,
		Validation:   models.ValidationVerdict{ValidationPassed: true, ConfidenceScore: 0.9},
	}
}

type recordingUpdater struct {
	updates []ProgressUpdate
}

func (r *recordingUpdater) Update(_ context.Context, update ProgressUpdate) error {
	r.updates = append(r.updates, update)
	return nil
}

func sampleDocs(n int) []models.DocumentSummary {
	docs := make([]models.DocumentSummary, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, models.DocumentSummary{
			Metadata: models.DocumentMetadata{
				CompanyName: "Apple Inc.",
				FormType:    "10-K",
				FilingDate:  fmt.Sprintf("2024-0%d-01", i+1),
			},
			Summary: models.StructuredSummary{
				ExecutiveSummary:    "Annual report.",
				FinancialHighlights: "Revenue $391B.",
				InvestmentInsights:  "Services growing.",
				RiskFactors:         "Supply chain.",
			},
			ContentLength: 120000,
		})
	}
	return docs
}

func newTestController(llm *scriptedLLM, docs *fakeDocs, retriever *fakeRetriever) *Controller {
	return NewController(llm, docs, retriever, passGrader{})
}

func TestRun_RefinesUntilThresholdMet(t *testing.T) {
	llm := &scriptedLLM{evals: []string{evalResponse(5, false), evalResponse(8, false)}}
	docs := &fakeDocs{docs: sampleDocs(2)}
	retriever := &fakeRetriever{}
	updater := &recordingUpdater{}

	out := newTestController(llm, docs, retriever).Run(
		context.Background(), "Should I invest in Apple?", "Apple Inc.", nil, updater)

	assert.Equal(t, models.JobStatusCompleted, out.Status)
	assert.Equal(t, 2, out.TotalIterations)
	assert.Equal(t, 2, out.DocumentsAnalyzed)
	assert.Equal(t, 3, out.RagQueriesExecuted)
	assert.Equal(t, 8.0, out.FinalCompletenessScore)
	assert.Empty(t, out.TerminationReason)
	assert.Equal(t, "Apple Inc.", docs.lastFilter)

	// initial, eval(5), ragQueries, refined, eval(8)
	require.Len(t, out.History, 5)
	assert.Equal(t, models.RecordInitialAnalysis, out.History[0].Type)
	assert.Equal(t, 0, out.History[0].Iteration)
	assert.Equal(t, models.RecordEvaluation, out.History[1].Type)
	assert.Equal(t, models.RecordRagQueries, out.History[2].Type)
	assert.Equal(t, models.RecordRefinedAnalysis, out.History[3].Type)
	assert.Equal(t, models.RecordEvaluation, out.History[4].Type)
	assert.Equal(t, 2, out.History[4].Iteration)

	// The refined draft is the final analysis.
	assert.Equal(t, "High", out.FinalAnalysis["confidenceLevel"])

	// Every retrieval ran in graph mode.
	require.Len(t, retriever.queries, 3)
	assert.Equal(t, "Apple services segment margin|graph", retriever.queries[0])

	// Retrieval provenance is recorded per query.
	require.Len(t, out.History[2].Results, 3)
	assert.Equal(t, models.AnswerSourceRAG, out.History[2].Results[0].Source)
}

func TestRun_CompletesImmediatelyOnHighScore(t *testing.T) {
	llm := &scriptedLLM{evals: []string{evalResponse(9, true)}}
	docs := &fakeDocs{docs: sampleDocs(1)}
	retriever := &fakeRetriever{}

	out := newTestController(llm, docs, retriever).Run(
		context.Background(), "Should I invest in Apple?", "", nil, nil)

	assert.Equal(t, models.JobStatusCompleted, out.Status)
	assert.Equal(t, 1, out.TotalIterations)
	assert.Equal(t, 0, out.RagQueriesExecuted)
	assert.Equal(t, 9.0, out.FinalCompletenessScore)
	require.Len(t, out.History, 2)
	assert.Empty(t, retriever.queries)
	assert.Equal(t, "Medium", out.FinalAnalysis["confidenceLevel"])
}

func TestRun_StopsAtIterationCap(t *testing.T) {
	llm := &scriptedLLM{evals: []string{evalResponse(4, false)}}
	docs := &fakeDocs{docs: sampleDocs(1)}
	retriever := &fakeRetriever{}

	out := newTestController(llm, docs, retriever).Run(
		context.Background(), "Should I invest in Apple?", "", nil, nil)

	assert.Equal(t, models.JobStatusCompleted, out.Status)
	assert.Equal(t, MaxIterations, out.TotalIterations)
	assert.Equal(t, MaxIterations*3, out.RagQueriesExecuted)
	assert.Equal(t, 4.0, out.FinalCompletenessScore)
	// Per iteration: evaluation, ragQueries, refined; plus the initial draft.
	assert.Len(t, out.History, 1+MaxIterations*3)
}

func TestRun_CancellationAfterEvaluation(t *testing.T) {
	llm := &scriptedLLM{evals: []string{evalResponse(5, false)}}
	docs := &fakeDocs{docs: sampleDocs(1)}
	retriever := &fakeRetriever{}

	// Trip the signal once the evaluation call has happened (draft + eval).
	cancelled := func(context.Context) bool {
		return llm.callCount() >= 2
	}

	out := newTestController(llm, docs, retriever).Run(
		context.Background(), "Should I invest in Apple?", "", cancelled, nil)

	assert.Equal(t, models.JobStatusCancelled, out.Status)
	assert.Equal(t, CancelledReason, out.TerminationReason)
	assert.Equal(t, 1, out.TotalIterations)
	assert.Empty(t, retriever.queries)

	// The partial history keeps the initial draft as the latest analysis.
	latest := models.LatestAnalysis(out.History)
	require.NotNil(t, latest)
	assert.Equal(t, "Medium", latest["confidenceLevel"])
}

func TestRun_CancellationDuringRetrievalKeepsCounterConsistent(t *testing.T) {
	llm := &scriptedLLM{evals: []string{evalResponse(5, false)}}
	docs := &fakeDocs{docs: sampleDocs(1)}
	retriever := &fakeRetriever{}

	// Trip the signal after the first retrieval so the batch stops early.
	cancelled := func(context.Context) bool {
		return len(retriever.queries) >= 1
	}

	out := newTestController(llm, docs, retriever).Run(
		context.Background(), "Should I invest in Apple?", "", cancelled, nil)

	assert.Equal(t, models.JobStatusCancelled, out.Status)
	assert.Equal(t, CancelledReason, out.TerminationReason)

	// initial, eval(5), ragQueries; no refinement after cancellation.
	require.Len(t, out.History, 3)
	ragRecord := out.History[2]
	assert.Equal(t, models.RecordRagQueries, ragRecord.Type)
	assert.Len(t, ragRecord.Results, 1)

	// The counter equals the sum of len(queries) over ragQueries records
	// even though only one query actually ran.
	assert.Equal(t, len(ragRecord.Queries), out.RagQueriesExecuted)
	assert.Equal(t, 3, out.RagQueriesExecuted)

	// draft, evaluate, generate queries; never refine.
	assert.Equal(t, 3, llm.callCount())
}

func TestRun_CancellationAfterRetrievalSkipsRefine(t *testing.T) {
	llm := &scriptedLLM{evals: []string{evalResponse(5, false)}}
	docs := &fakeDocs{docs: sampleDocs(1)}
	retriever := &fakeRetriever{}

	// Trip the signal only once the whole retrieval batch has run.
	cancelled := func(context.Context) bool {
		return len(retriever.queries) >= 3
	}

	out := newTestController(llm, docs, retriever).Run(
		context.Background(), "Should I invest in Apple?", "", cancelled, nil)

	assert.Equal(t, models.JobStatusCancelled, out.Status)
	assert.Equal(t, CancelledReason, out.TerminationReason)
	assert.Equal(t, 3, out.RagQueriesExecuted)
	require.Len(t, retriever.queries, 3)

	// The ragQueries record is kept, but no refinement ran after it.
	require.Len(t, out.History, 3)
	assert.Equal(t, models.RecordRagQueries, out.History[2].Type)
	assert.Len(t, out.History[2].Results, 3)
	assert.Equal(t, 3, llm.callCount())

	// The initial draft remains the latest analysis.
	latest := models.LatestAnalysis(out.History)
	require.NotNil(t, latest)
	assert.Equal(t, "Medium", latest["confidenceLevel"])
}

func TestRun_CancelledContextStopsBeforeDraft(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	llm := &scriptedLLM{evals: []string{evalResponse(9, true)}}
	out := newTestController(llm, &fakeDocs{docs: sampleDocs(1)}, &fakeRetriever{}).
		Run(ctx, "Should I invest in Apple?", "", nil, nil)

	assert.Equal(t, models.JobStatusCancelled, out.Status)
	assert.Equal(t, CancelledReason, out.TerminationReason)
	assert.Empty(t, out.History)
	assert.Equal(t, 0, llm.callCount())
}

func TestRun_NoDocumentsFails(t *testing.T) {
	llm := &scriptedLLM{}
	out := newTestController(llm, &fakeDocs{}, &fakeRetriever{}).
		Run(context.Background(), "Should I invest in Apple?", "", nil, nil)

	assert.Equal(t, models.JobStatusFailed, out.Status)
	assert.Equal(t, "No documents available for analysis", out.ErrorMessage)
	assert.Equal(t, "Analysis failed: No documents available for analysis", out.TerminationReason)
	assert.Equal(t, 0, llm.callCount())
}

func TestRun_DraftFailureReturnsFailed(t *testing.T) {
	llm := &scriptedLLM{draftErr: errors.New("model overloaded")}
	out := newTestController(llm, &fakeDocs{docs: sampleDocs(1)}, &fakeRetriever{}).
		Run(context.Background(), "Should I invest in Apple?", "", nil, nil)

	assert.Equal(t, models.JobStatusFailed, out.Status)
	assert.Contains(t, out.ErrorMessage, "model overloaded")
	assert.Contains(t, out.TerminationReason, "Analysis failed:")
	assert.Equal(t, 1, out.DocumentsAnalyzed)
	assert.Empty(t, out.History)
}

func TestRun_RetrievalErrorDegradesToEmptyAnswers(t *testing.T) {
	llm := &scriptedLLM{evals: []string{evalResponse(5, false), evalResponse(8, false)}}
	retriever := &fakeRetriever{err: errors.New("store unavailable")}

	out := newTestController(llm, &fakeDocs{docs: sampleDocs(1)}, retriever).
		Run(context.Background(), "Should I invest in Apple?", "", nil, nil)

	// The run still completes; failed retrievals carry empty answers.
	assert.Equal(t, models.JobStatusCompleted, out.Status)
	assert.Equal(t, 3, out.RagQueriesExecuted)
	require.Len(t, out.History, 5)
	assert.Empty(t, out.History[2].Results[0].RagAnswers)
}

func TestRun_PersistsProgressIncrementally(t *testing.T) {
	llm := &scriptedLLM{evals: []string{evalResponse(9, true)}}
	updater := &recordingUpdater{}

	newTestController(llm, &fakeDocs{docs: sampleDocs(2)}, &fakeRetriever{}).
		Run(context.Background(), "Should I invest in Apple?", "", nil, updater)

	require.NotEmpty(t, updater.updates)

	first := updater.updates[0]
	require.NotNil(t, first.DocumentsAnalyzed)
	assert.Equal(t, 2, *first.DocumentsAnalyzed)

	// The draft is persisted before any evaluation runs.
	second := updater.updates[1]
	require.Len(t, second.IterationHistory, 1)
	assert.NotNil(t, second.FinalAnalysis)

	last := updater.updates[len(updater.updates)-1]
	require.NotNil(t, last.FinalCompletenessScore)
	assert.Equal(t, 9.0, *last.FinalCompletenessScore)
	assert.Len(t, last.IterationHistory, 2)
}
