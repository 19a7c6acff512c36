// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/findocgpt/findocgpt/ent/analysisjob"
	"github.com/findocgpt/findocgpt/ent/predicate"
	"github.com/findocgpt/findocgpt/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisJob = "AnalysisJob"
)

// AnalysisJobMutation represents an operation that mutates the AnalysisJob nodes in the graph.
type AnalysisJobMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	query                       *string
	company_filter              *string
	status                      *analysisjob.Status
	cancel_requested            *bool
	error_message               *string
	total_iterations            *int
	addtotal_iterations         *int
	documents_analyzed          *int
	adddocuments_analyzed       *int
	rag_queries_executed        *int
	addrag_queries_executed     *int
	final_completeness_score    *float64
	addfinal_completeness_score *float64
	final_analysis              *map[string]interface{}
	iteration_history           *[]models.IterationRecord
	appenditeration_history     []models.IterationRecord
	created_at                  *time.Time
	completed_at                *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*AnalysisJob, error)
	predicates                  []predicate.AnalysisJob
}

var _ ent.Mutation = (*AnalysisJobMutation)(nil)

// analysisjobOption allows management of the mutation configuration using functional options.
type analysisjobOption func(*AnalysisJobMutation)

// newAnalysisJobMutation creates new mutation for the AnalysisJob entity.
func newAnalysisJobMutation(c config, op Op, opts ...analysisjobOption) *AnalysisJobMutation {
	m := &AnalysisJobMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisJobID sets the ID field of the mutation.
func withAnalysisJobID(id int) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisJob
		)
		m.oldValue = func(ctx context.Context) (*AnalysisJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisJob sets the old AnalysisJob of the mutation.
func withAnalysisJob(node *AnalysisJob) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		m.oldValue = func(context.Context) (*AnalysisJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisJobMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisJobMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuery sets the "query" field.
func (m *AnalysisJobMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *AnalysisJobMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *AnalysisJobMutation) ResetQuery() {
	m.query = nil
}

// SetCompanyFilter sets the "company_filter" field.
func (m *AnalysisJobMutation) SetCompanyFilter(s string) {
	m.company_filter = &s
}

// CompanyFilter returns the value of the "company_filter" field in the mutation.
func (m *AnalysisJobMutation) CompanyFilter() (r string, exists bool) {
	v := m.company_filter
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyFilter returns the old "company_filter" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCompanyFilter(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyFilter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyFilter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyFilter: %w", err)
	}
	return oldValue.CompanyFilter, nil
}

// ClearCompanyFilter clears the value of the "company_filter" field.
func (m *AnalysisJobMutation) ClearCompanyFilter() {
	m.company_filter = nil
	m.clearedFields[analysisjob.FieldCompanyFilter] = struct{}{}
}

// CompanyFilterCleared returns if the "company_filter" field was cleared in this mutation.
func (m *AnalysisJobMutation) CompanyFilterCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldCompanyFilter]
	return ok
}

// ResetCompanyFilter resets all changes to the "company_filter" field.
func (m *AnalysisJobMutation) ResetCompanyFilter() {
	m.company_filter = nil
	delete(m.clearedFields, analysisjob.FieldCompanyFilter)
}

// SetStatus sets the "status" field.
func (m *AnalysisJobMutation) SetStatus(a analysisjob.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisJobMutation) Status() (r analysisjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldStatus(ctx context.Context) (v analysisjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalysisJobMutation) ResetStatus() {
	m.status = nil
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *AnalysisJobMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *AnalysisJobMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *AnalysisJobMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AnalysisJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnalysisJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AnalysisJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[analysisjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnalysisJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnalysisJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, analysisjob.FieldErrorMessage)
}

// SetTotalIterations sets the "total_iterations" field.
func (m *AnalysisJobMutation) SetTotalIterations(i int) {
	m.total_iterations = &i
	m.addtotal_iterations = nil
}

// TotalIterations returns the value of the "total_iterations" field in the mutation.
func (m *AnalysisJobMutation) TotalIterations() (r int, exists bool) {
	v := m.total_iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalIterations returns the old "total_iterations" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldTotalIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalIterations: %w", err)
	}
	return oldValue.TotalIterations, nil
}

// AddTotalIterations adds i to the "total_iterations" field.
func (m *AnalysisJobMutation) AddTotalIterations(i int) {
	if m.addtotal_iterations != nil {
		*m.addtotal_iterations += i
	} else {
		m.addtotal_iterations = &i
	}
}

// AddedTotalIterations returns the value that was added to the "total_iterations" field in this mutation.
func (m *AnalysisJobMutation) AddedTotalIterations() (r int, exists bool) {
	v := m.addtotal_iterations
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalIterations resets all changes to the "total_iterations" field.
func (m *AnalysisJobMutation) ResetTotalIterations() {
	m.total_iterations = nil
	m.addtotal_iterations = nil
}

// SetDocumentsAnalyzed sets the "documents_analyzed" field.
func (m *AnalysisJobMutation) SetDocumentsAnalyzed(i int) {
	m.documents_analyzed = &i
	m.adddocuments_analyzed = nil
}

// DocumentsAnalyzed returns the value of the "documents_analyzed" field in the mutation.
func (m *AnalysisJobMutation) DocumentsAnalyzed() (r int, exists bool) {
	v := m.documents_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentsAnalyzed returns the old "documents_analyzed" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldDocumentsAnalyzed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentsAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentsAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentsAnalyzed: %w", err)
	}
	return oldValue.DocumentsAnalyzed, nil
}

// AddDocumentsAnalyzed adds i to the "documents_analyzed" field.
func (m *AnalysisJobMutation) AddDocumentsAnalyzed(i int) {
	if m.adddocuments_analyzed != nil {
		*m.adddocuments_analyzed += i
	} else {
		m.adddocuments_analyzed = &i
	}
}

// AddedDocumentsAnalyzed returns the value that was added to the "documents_analyzed" field in this mutation.
func (m *AnalysisJobMutation) AddedDocumentsAnalyzed() (r int, exists bool) {
	v := m.adddocuments_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// ResetDocumentsAnalyzed resets all changes to the "documents_analyzed" field.
func (m *AnalysisJobMutation) ResetDocumentsAnalyzed() {
	m.documents_analyzed = nil
	m.adddocuments_analyzed = nil
}

// SetRagQueriesExecuted sets the "rag_queries_executed" field.
func (m *AnalysisJobMutation) SetRagQueriesExecuted(i int) {
	m.rag_queries_executed = &i
	m.addrag_queries_executed = nil
}

// RagQueriesExecuted returns the value of the "rag_queries_executed" field in the mutation.
func (m *AnalysisJobMutation) RagQueriesExecuted() (r int, exists bool) {
	v := m.rag_queries_executed
	if v == nil {
		return
	}
	return *v, true
}

// OldRagQueriesExecuted returns the old "rag_queries_executed" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldRagQueriesExecuted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRagQueriesExecuted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRagQueriesExecuted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRagQueriesExecuted: %w", err)
	}
	return oldValue.RagQueriesExecuted, nil
}

// AddRagQueriesExecuted adds i to the "rag_queries_executed" field.
func (m *AnalysisJobMutation) AddRagQueriesExecuted(i int) {
	if m.addrag_queries_executed != nil {
		*m.addrag_queries_executed += i
	} else {
		m.addrag_queries_executed = &i
	}
}

// AddedRagQueriesExecuted returns the value that was added to the "rag_queries_executed" field in this mutation.
func (m *AnalysisJobMutation) AddedRagQueriesExecuted() (r int, exists bool) {
	v := m.addrag_queries_executed
	if v == nil {
		return
	}
	return *v, true
}

// ResetRagQueriesExecuted resets all changes to the "rag_queries_executed" field.
func (m *AnalysisJobMutation) ResetRagQueriesExecuted() {
	m.rag_queries_executed = nil
	m.addrag_queries_executed = nil
}

// SetFinalCompletenessScore sets the "final_completeness_score" field.
func (m *AnalysisJobMutation) SetFinalCompletenessScore(f float64) {
	m.final_completeness_score = &f
	m.addfinal_completeness_score = nil
}

// FinalCompletenessScore returns the value of the "final_completeness_score" field in the mutation.
func (m *AnalysisJobMutation) FinalCompletenessScore() (r float64, exists bool) {
	v := m.final_completeness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalCompletenessScore returns the old "final_completeness_score" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldFinalCompletenessScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalCompletenessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalCompletenessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalCompletenessScore: %w", err)
	}
	return oldValue.FinalCompletenessScore, nil
}

// AddFinalCompletenessScore adds f to the "final_completeness_score" field.
func (m *AnalysisJobMutation) AddFinalCompletenessScore(f float64) {
	if m.addfinal_completeness_score != nil {
		*m.addfinal_completeness_score += f
	} else {
		m.addfinal_completeness_score = &f
	}
}

// AddedFinalCompletenessScore returns the value that was added to the "final_completeness_score" field in this mutation.
func (m *AnalysisJobMutation) AddedFinalCompletenessScore() (r float64, exists bool) {
	v := m.addfinal_completeness_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinalCompletenessScore resets all changes to the "final_completeness_score" field.
func (m *AnalysisJobMutation) ResetFinalCompletenessScore() {
	m.final_completeness_score = nil
	m.addfinal_completeness_score = nil
}

// SetFinalAnalysis sets the "final_analysis" field.
func (m *AnalysisJobMutation) SetFinalAnalysis(value map[string]interface{}) {
	m.final_analysis = &value
}

// FinalAnalysis returns the value of the "final_analysis" field in the mutation.
func (m *AnalysisJobMutation) FinalAnalysis() (r map[string]interface{}, exists bool) {
	v := m.final_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalAnalysis returns the old "final_analysis" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldFinalAnalysis(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalAnalysis: %w", err)
	}
	return oldValue.FinalAnalysis, nil
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (m *AnalysisJobMutation) ClearFinalAnalysis() {
	m.final_analysis = nil
	m.clearedFields[analysisjob.FieldFinalAnalysis] = struct{}{}
}

// FinalAnalysisCleared returns if the "final_analysis" field was cleared in this mutation.
func (m *AnalysisJobMutation) FinalAnalysisCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldFinalAnalysis]
	return ok
}

// ResetFinalAnalysis resets all changes to the "final_analysis" field.
func (m *AnalysisJobMutation) ResetFinalAnalysis() {
	m.final_analysis = nil
	delete(m.clearedFields, analysisjob.FieldFinalAnalysis)
}

// SetIterationHistory sets the "iteration_history" field.
func (m *AnalysisJobMutation) SetIterationHistory(mr []models.IterationRecord) {
	m.iteration_history = &mr
	m.appenditeration_history = nil
}

// IterationHistory returns the value of the "iteration_history" field in the mutation.
func (m *AnalysisJobMutation) IterationHistory() (r []models.IterationRecord, exists bool) {
	v := m.iteration_history
	if v == nil {
		return
	}
	return *v, true
}

// OldIterationHistory returns the old "iteration_history" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldIterationHistory(ctx context.Context) (v []models.IterationRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterationHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterationHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterationHistory: %w", err)
	}
	return oldValue.IterationHistory, nil
}

// AppendIterationHistory adds mr to the "iteration_history" field.
func (m *AnalysisJobMutation) AppendIterationHistory(mr []models.IterationRecord) {
	m.appenditeration_history = append(m.appenditeration_history, mr...)
}

// AppendedIterationHistory returns the list of values that were appended to the "iteration_history" field in this mutation.
func (m *AnalysisJobMutation) AppendedIterationHistory() ([]models.IterationRecord, bool) {
	if len(m.appenditeration_history) == 0 {
		return nil, false
	}
	return m.appenditeration_history, true
}

// ClearIterationHistory clears the value of the "iteration_history" field.
func (m *AnalysisJobMutation) ClearIterationHistory() {
	m.iteration_history = nil
	m.appenditeration_history = nil
	m.clearedFields[analysisjob.FieldIterationHistory] = struct{}{}
}

// IterationHistoryCleared returns if the "iteration_history" field was cleared in this mutation.
func (m *AnalysisJobMutation) IterationHistoryCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldIterationHistory]
	return ok
}

// ResetIterationHistory resets all changes to the "iteration_history" field.
func (m *AnalysisJobMutation) ResetIterationHistory() {
	m.iteration_history = nil
	m.appenditeration_history = nil
	delete(m.clearedFields, analysisjob.FieldIterationHistory)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AnalysisJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AnalysisJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AnalysisJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[analysisjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AnalysisJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AnalysisJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, analysisjob.FieldCompletedAt)
}

// Where appends a list predicates to the AnalysisJobMutation builder.
func (m *AnalysisJobMutation) Where(ps ...predicate.AnalysisJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisJob).
func (m *AnalysisJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisJobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.query != nil {
		fields = append(fields, analysisjob.FieldQuery)
	}
	if m.company_filter != nil {
		fields = append(fields, analysisjob.FieldCompanyFilter)
	}
	if m.status != nil {
		fields = append(fields, analysisjob.FieldStatus)
	}
	if m.cancel_requested != nil {
		fields = append(fields, analysisjob.FieldCancelRequested)
	}
	if m.error_message != nil {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.total_iterations != nil {
		fields = append(fields, analysisjob.FieldTotalIterations)
	}
	if m.documents_analyzed != nil {
		fields = append(fields, analysisjob.FieldDocumentsAnalyzed)
	}
	if m.rag_queries_executed != nil {
		fields = append(fields, analysisjob.FieldRagQueriesExecuted)
	}
	if m.final_completeness_score != nil {
		fields = append(fields, analysisjob.FieldFinalCompletenessScore)
	}
	if m.final_analysis != nil {
		fields = append(fields, analysisjob.FieldFinalAnalysis)
	}
	if m.iteration_history != nil {
		fields = append(fields, analysisjob.FieldIterationHistory)
	}
	if m.created_at != nil {
		fields = append(fields, analysisjob.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, analysisjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisjob.FieldQuery:
		return m.Query()
	case analysisjob.FieldCompanyFilter:
		return m.CompanyFilter()
	case analysisjob.FieldStatus:
		return m.Status()
	case analysisjob.FieldCancelRequested:
		return m.CancelRequested()
	case analysisjob.FieldErrorMessage:
		return m.ErrorMessage()
	case analysisjob.FieldTotalIterations:
		return m.TotalIterations()
	case analysisjob.FieldDocumentsAnalyzed:
		return m.DocumentsAnalyzed()
	case analysisjob.FieldRagQueriesExecuted:
		return m.RagQueriesExecuted()
	case analysisjob.FieldFinalCompletenessScore:
		return m.FinalCompletenessScore()
	case analysisjob.FieldFinalAnalysis:
		return m.FinalAnalysis()
	case analysisjob.FieldIterationHistory:
		return m.IterationHistory()
	case analysisjob.FieldCreatedAt:
		return m.CreatedAt()
	case analysisjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisjob.FieldQuery:
		return m.OldQuery(ctx)
	case analysisjob.FieldCompanyFilter:
		return m.OldCompanyFilter(ctx)
	case analysisjob.FieldStatus:
		return m.OldStatus(ctx)
	case analysisjob.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case analysisjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case analysisjob.FieldTotalIterations:
		return m.OldTotalIterations(ctx)
	case analysisjob.FieldDocumentsAnalyzed:
		return m.OldDocumentsAnalyzed(ctx)
	case analysisjob.FieldRagQueriesExecuted:
		return m.OldRagQueriesExecuted(ctx)
	case analysisjob.FieldFinalCompletenessScore:
		return m.OldFinalCompletenessScore(ctx)
	case analysisjob.FieldFinalAnalysis:
		return m.OldFinalAnalysis(ctx)
	case analysisjob.FieldIterationHistory:
		return m.OldIterationHistory(ctx)
	case analysisjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysisjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisjob.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case analysisjob.FieldCompanyFilter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyFilter(v)
		return nil
	case analysisjob.FieldStatus:
		v, ok := value.(analysisjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysisjob.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case analysisjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case analysisjob.FieldTotalIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalIterations(v)
		return nil
	case analysisjob.FieldDocumentsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentsAnalyzed(v)
		return nil
	case analysisjob.FieldRagQueriesExecuted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRagQueriesExecuted(v)
		return nil
	case analysisjob.FieldFinalCompletenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalCompletenessScore(v)
		return nil
	case analysisjob.FieldFinalAnalysis:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalAnalysis(v)
		return nil
	case analysisjob.FieldIterationHistory:
		v, ok := value.([]models.IterationRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterationHistory(v)
		return nil
	case analysisjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysisjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisJobMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_iterations != nil {
		fields = append(fields, analysisjob.FieldTotalIterations)
	}
	if m.adddocuments_analyzed != nil {
		fields = append(fields, analysisjob.FieldDocumentsAnalyzed)
	}
	if m.addrag_queries_executed != nil {
		fields = append(fields, analysisjob.FieldRagQueriesExecuted)
	}
	if m.addfinal_completeness_score != nil {
		fields = append(fields, analysisjob.FieldFinalCompletenessScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisjob.FieldTotalIterations:
		return m.AddedTotalIterations()
	case analysisjob.FieldDocumentsAnalyzed:
		return m.AddedDocumentsAnalyzed()
	case analysisjob.FieldRagQueriesExecuted:
		return m.AddedRagQueriesExecuted()
	case analysisjob.FieldFinalCompletenessScore:
		return m.AddedFinalCompletenessScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisjob.FieldTotalIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalIterations(v)
		return nil
	case analysisjob.FieldDocumentsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDocumentsAnalyzed(v)
		return nil
	case analysisjob.FieldRagQueriesExecuted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRagQueriesExecuted(v)
		return nil
	case analysisjob.FieldFinalCompletenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalCompletenessScore(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisjob.FieldCompanyFilter) {
		fields = append(fields, analysisjob.FieldCompanyFilter)
	}
	if m.FieldCleared(analysisjob.FieldErrorMessage) {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.FieldCleared(analysisjob.FieldFinalAnalysis) {
		fields = append(fields, analysisjob.FieldFinalAnalysis)
	}
	if m.FieldCleared(analysisjob.FieldIterationHistory) {
		fields = append(fields, analysisjob.FieldIterationHistory)
	}
	if m.FieldCleared(analysisjob.FieldCompletedAt) {
		fields = append(fields, analysisjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ClearField(name string) error {
	switch name {
	case analysisjob.FieldCompanyFilter:
		m.ClearCompanyFilter()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case analysisjob.FieldFinalAnalysis:
		m.ClearFinalAnalysis()
		return nil
	case analysisjob.FieldIterationHistory:
		m.ClearIterationHistory()
		return nil
	case analysisjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ResetField(name string) error {
	switch name {
	case analysisjob.FieldQuery:
		m.ResetQuery()
		return nil
	case analysisjob.FieldCompanyFilter:
		m.ResetCompanyFilter()
		return nil
	case analysisjob.FieldStatus:
		m.ResetStatus()
		return nil
	case analysisjob.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case analysisjob.FieldTotalIterations:
		m.ResetTotalIterations()
		return nil
	case analysisjob.FieldDocumentsAnalyzed:
		m.ResetDocumentsAnalyzed()
		return nil
	case analysisjob.FieldRagQueriesExecuted:
		m.ResetRagQueriesExecuted()
		return nil
	case analysisjob.FieldFinalCompletenessScore:
		m.ResetFinalCompletenessScore()
		return nil
	case analysisjob.FieldFinalAnalysis:
		m.ResetFinalAnalysis()
		return nil
	case analysisjob.FieldIterationHistory:
		m.ResetIterationHistory()
		return nil
	case analysisjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysisjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnalysisJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnalysisJob edge %s", name)
}
