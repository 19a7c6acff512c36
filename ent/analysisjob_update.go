// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/findocgpt/findocgpt/ent/analysisjob"
	"github.com/findocgpt/findocgpt/ent/predicate"
	"github.com/findocgpt/findocgpt/pkg/models"
)

// AnalysisJobUpdate is the builder for updating AnalysisJob entities.
type AnalysisJobUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdate) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuery sets the "query" field.
func (_u *AnalysisJobUpdate) SetQuery(v string) *AnalysisJobUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableQuery(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetCompanyFilter sets the "company_filter" field.
func (_u *AnalysisJobUpdate) SetCompanyFilter(v string) *AnalysisJobUpdate {
	_u.mutation.SetCompanyFilter(v)
	return _u
}

// SetNillableCompanyFilter sets the "company_filter" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCompanyFilter(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCompanyFilter(*v)
	}
	return _u
}

// ClearCompanyFilter clears the value of the "company_filter" field.
func (_u *AnalysisJobUpdate) ClearCompanyFilter() *AnalysisJobUpdate {
	_u.mutation.ClearCompanyFilter()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdate) SetStatus(v analysisjob.Status) *AnalysisJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableStatus(v *analysisjob.Status) *AnalysisJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *AnalysisJobUpdate) SetCancelRequested(v bool) *AnalysisJobUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCancelRequested(v *bool) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdate) SetErrorMessage(v string) *AnalysisJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableErrorMessage(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdate) ClearErrorMessage() *AnalysisJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTotalIterations sets the "total_iterations" field.
func (_u *AnalysisJobUpdate) SetTotalIterations(v int) *AnalysisJobUpdate {
	_u.mutation.ResetTotalIterations()
	_u.mutation.SetTotalIterations(v)
	return _u
}

// SetNillableTotalIterations sets the "total_iterations" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableTotalIterations(v *int) *AnalysisJobUpdate {
	if v != nil {
		_u.SetTotalIterations(*v)
	}
	return _u
}

// AddTotalIterations adds value to the "total_iterations" field.
func (_u *AnalysisJobUpdate) AddTotalIterations(v int) *AnalysisJobUpdate {
	_u.mutation.AddTotalIterations(v)
	return _u
}

// SetDocumentsAnalyzed sets the "documents_analyzed" field.
func (_u *AnalysisJobUpdate) SetDocumentsAnalyzed(v int) *AnalysisJobUpdate {
	_u.mutation.ResetDocumentsAnalyzed()
	_u.mutation.SetDocumentsAnalyzed(v)
	return _u
}

// SetNillableDocumentsAnalyzed sets the "documents_analyzed" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableDocumentsAnalyzed(v *int) *AnalysisJobUpdate {
	if v != nil {
		_u.SetDocumentsAnalyzed(*v)
	}
	return _u
}

// AddDocumentsAnalyzed adds value to the "documents_analyzed" field.
func (_u *AnalysisJobUpdate) AddDocumentsAnalyzed(v int) *AnalysisJobUpdate {
	_u.mutation.AddDocumentsAnalyzed(v)
	return _u
}

// SetRagQueriesExecuted sets the "rag_queries_executed" field.
func (_u *AnalysisJobUpdate) SetRagQueriesExecuted(v int) *AnalysisJobUpdate {
	_u.mutation.ResetRagQueriesExecuted()
	_u.mutation.SetRagQueriesExecuted(v)
	return _u
}

// SetNillableRagQueriesExecuted sets the "rag_queries_executed" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableRagQueriesExecuted(v *int) *AnalysisJobUpdate {
	if v != nil {
		_u.SetRagQueriesExecuted(*v)
	}
	return _u
}

// AddRagQueriesExecuted adds value to the "rag_queries_executed" field.
func (_u *AnalysisJobUpdate) AddRagQueriesExecuted(v int) *AnalysisJobUpdate {
	_u.mutation.AddRagQueriesExecuted(v)
	return _u
}

// SetFinalCompletenessScore sets the "final_completeness_score" field.
func (_u *AnalysisJobUpdate) SetFinalCompletenessScore(v float64) *AnalysisJobUpdate {
	_u.mutation.ResetFinalCompletenessScore()
	_u.mutation.SetFinalCompletenessScore(v)
	return _u
}

// SetNillableFinalCompletenessScore sets the "final_completeness_score" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableFinalCompletenessScore(v *float64) *AnalysisJobUpdate {
	if v != nil {
		_u.SetFinalCompletenessScore(*v)
	}
	return _u
}

// AddFinalCompletenessScore adds value to the "final_completeness_score" field.
func (_u *AnalysisJobUpdate) AddFinalCompletenessScore(v float64) *AnalysisJobUpdate {
	_u.mutation.AddFinalCompletenessScore(v)
	return _u
}

// SetFinalAnalysis sets the "final_analysis" field.
func (_u *AnalysisJobUpdate) SetFinalAnalysis(v map[string]interface{}) *AnalysisJobUpdate {
	_u.mutation.SetFinalAnalysis(v)
	return _u
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (_u *AnalysisJobUpdate) ClearFinalAnalysis() *AnalysisJobUpdate {
	_u.mutation.ClearFinalAnalysis()
	return _u
}

// SetIterationHistory sets the "iteration_history" field.
func (_u *AnalysisJobUpdate) SetIterationHistory(v []models.IterationRecord) *AnalysisJobUpdate {
	_u.mutation.SetIterationHistory(v)
	return _u
}

// AppendIterationHistory appends value to the "iteration_history" field.
func (_u *AnalysisJobUpdate) AppendIterationHistory(v []models.IterationRecord) *AnalysisJobUpdate {
	_u.mutation.AppendIterationHistory(v)
	return _u
}

// ClearIterationHistory clears the value of the "iteration_history" field.
func (_u *AnalysisJobUpdate) ClearIterationHistory() *AnalysisJobUpdate {
	_u.mutation.ClearIterationHistory()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisJobUpdate) SetCompletedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCompletedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisJobUpdate) ClearCompletedAt() *AnalysisJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdate) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdate) check() error {
	if v, ok := _u.mutation.Query(); ok {
		if err := analysisjob.QueryValidator(v); err != nil {
			return &ValidationError{Name: "query", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.query": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(analysisjob.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyFilter(); ok {
		_spec.SetField(analysisjob.FieldCompanyFilter, field.TypeString, value)
	}
	if _u.mutation.CompanyFilterCleared() {
		_spec.ClearField(analysisjob.FieldCompanyFilter, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(analysisjob.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TotalIterations(); ok {
		_spec.SetField(analysisjob.FieldTotalIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalIterations(); ok {
		_spec.AddField(analysisjob.FieldTotalIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentsAnalyzed(); ok {
		_spec.SetField(analysisjob.FieldDocumentsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocumentsAnalyzed(); ok {
		_spec.AddField(analysisjob.FieldDocumentsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RagQueriesExecuted(); ok {
		_spec.SetField(analysisjob.FieldRagQueriesExecuted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRagQueriesExecuted(); ok {
		_spec.AddField(analysisjob.FieldRagQueriesExecuted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalCompletenessScore(); ok {
		_spec.SetField(analysisjob.FieldFinalCompletenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalCompletenessScore(); ok {
		_spec.AddField(analysisjob.FieldFinalCompletenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalAnalysis(); ok {
		_spec.SetField(analysisjob.FieldFinalAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.FinalAnalysisCleared() {
		_spec.ClearField(analysisjob.FieldFinalAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.IterationHistory(); ok {
		_spec.SetField(analysisjob.FieldIterationHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIterationHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisjob.FieldIterationHistory, value)
		})
	}
	if _u.mutation.IterationHistoryCleared() {
		_spec.ClearField(analysisjob.FieldIterationHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisjob.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisJobUpdateOne is the builder for updating a single AnalysisJob entity.
type AnalysisJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// SetQuery sets the "query" field.
func (_u *AnalysisJobUpdateOne) SetQuery(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableQuery(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetCompanyFilter sets the "company_filter" field.
func (_u *AnalysisJobUpdateOne) SetCompanyFilter(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetCompanyFilter(v)
	return _u
}

// SetNillableCompanyFilter sets the "company_filter" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCompanyFilter(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCompanyFilter(*v)
	}
	return _u
}

// ClearCompanyFilter clears the value of the "company_filter" field.
func (_u *AnalysisJobUpdateOne) ClearCompanyFilter() *AnalysisJobUpdateOne {
	_u.mutation.ClearCompanyFilter()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdateOne) SetStatus(v analysisjob.Status) *AnalysisJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableStatus(v *analysisjob.Status) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *AnalysisJobUpdateOne) SetCancelRequested(v bool) *AnalysisJobUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCancelRequested(v *bool) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdateOne) SetErrorMessage(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableErrorMessage(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdateOne) ClearErrorMessage() *AnalysisJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTotalIterations sets the "total_iterations" field.
func (_u *AnalysisJobUpdateOne) SetTotalIterations(v int) *AnalysisJobUpdateOne {
	_u.mutation.ResetTotalIterations()
	_u.mutation.SetTotalIterations(v)
	return _u
}

// SetNillableTotalIterations sets the "total_iterations" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableTotalIterations(v *int) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetTotalIterations(*v)
	}
	return _u
}

// AddTotalIterations adds value to the "total_iterations" field.
func (_u *AnalysisJobUpdateOne) AddTotalIterations(v int) *AnalysisJobUpdateOne {
	_u.mutation.AddTotalIterations(v)
	return _u
}

// SetDocumentsAnalyzed sets the "documents_analyzed" field.
func (_u *AnalysisJobUpdateOne) SetDocumentsAnalyzed(v int) *AnalysisJobUpdateOne {
	_u.mutation.ResetDocumentsAnalyzed()
	_u.mutation.SetDocumentsAnalyzed(v)
	return _u
}

// SetNillableDocumentsAnalyzed sets the "documents_analyzed" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableDocumentsAnalyzed(v *int) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetDocumentsAnalyzed(*v)
	}
	return _u
}

// AddDocumentsAnalyzed adds value to the "documents_analyzed" field.
func (_u *AnalysisJobUpdateOne) AddDocumentsAnalyzed(v int) *AnalysisJobUpdateOne {
	_u.mutation.AddDocumentsAnalyzed(v)
	return _u
}

// SetRagQueriesExecuted sets the "rag_queries_executed" field.
func (_u *AnalysisJobUpdateOne) SetRagQueriesExecuted(v int) *AnalysisJobUpdateOne {
	_u.mutation.ResetRagQueriesExecuted()
	_u.mutation.SetRagQueriesExecuted(v)
	return _u
}

// SetNillableRagQueriesExecuted sets the "rag_queries_executed" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableRagQueriesExecuted(v *int) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetRagQueriesExecuted(*v)
	}
	return _u
}

// AddRagQueriesExecuted adds value to the "rag_queries_executed" field.
func (_u *AnalysisJobUpdateOne) AddRagQueriesExecuted(v int) *AnalysisJobUpdateOne {
	_u.mutation.AddRagQueriesExecuted(v)
	return _u
}

// SetFinalCompletenessScore sets the "final_completeness_score" field.
func (_u *AnalysisJobUpdateOne) SetFinalCompletenessScore(v float64) *AnalysisJobUpdateOne {
	_u.mutation.ResetFinalCompletenessScore()
	_u.mutation.SetFinalCompletenessScore(v)
	return _u
}

// SetNillableFinalCompletenessScore sets the "final_completeness_score" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableFinalCompletenessScore(v *float64) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetFinalCompletenessScore(*v)
	}
	return _u
}

// AddFinalCompletenessScore adds value to the "final_completeness_score" field.
func (_u *AnalysisJobUpdateOne) AddFinalCompletenessScore(v float64) *AnalysisJobUpdateOne {
	_u.mutation.AddFinalCompletenessScore(v)
	return _u
}

// SetFinalAnalysis sets the "final_analysis" field.
func (_u *AnalysisJobUpdateOne) SetFinalAnalysis(v map[string]interface{}) *AnalysisJobUpdateOne {
	_u.mutation.SetFinalAnalysis(v)
	return _u
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (_u *AnalysisJobUpdateOne) ClearFinalAnalysis() *AnalysisJobUpdateOne {
	_u.mutation.ClearFinalAnalysis()
	return _u
}

// SetIterationHistory sets the "iteration_history" field.
func (_u *AnalysisJobUpdateOne) SetIterationHistory(v []models.IterationRecord) *AnalysisJobUpdateOne {
	_u.mutation.SetIterationHistory(v)
	return _u
}

// AppendIterationHistory appends value to the "iteration_history" field.
func (_u *AnalysisJobUpdateOne) AppendIterationHistory(v []models.IterationRecord) *AnalysisJobUpdateOne {
	_u.mutation.AppendIterationHistory(v)
	return _u
}

// ClearIterationHistory clears the value of the "iteration_history" field.
func (_u *AnalysisJobUpdateOne) ClearIterationHistory() *AnalysisJobUpdateOne {
	_u.mutation.ClearIterationHistory()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisJobUpdateOne) SetCompletedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCompletedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisJobUpdateOne) ClearCompletedAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdateOne) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdateOne) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisJobUpdateOne) Select(field string, fields ...string) *AnalysisJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisJob entity.
func (_u *AnalysisJobUpdateOne) Save(ctx context.Context) (*AnalysisJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) SaveX(ctx context.Context) *AnalysisJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdateOne) check() error {
	if v, ok := _u.mutation.Query(); ok {
		if err := analysisjob.QueryValidator(v); err != nil {
			return &ValidationError{Name: "query", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.query": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisJobUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisjob.FieldID)
		for _, f := range fields {
			if !analysisjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(analysisjob.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyFilter(); ok {
		_spec.SetField(analysisjob.FieldCompanyFilter, field.TypeString, value)
	}
	if _u.mutation.CompanyFilterCleared() {
		_spec.ClearField(analysisjob.FieldCompanyFilter, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(analysisjob.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TotalIterations(); ok {
		_spec.SetField(analysisjob.FieldTotalIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalIterations(); ok {
		_spec.AddField(analysisjob.FieldTotalIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentsAnalyzed(); ok {
		_spec.SetField(analysisjob.FieldDocumentsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocumentsAnalyzed(); ok {
		_spec.AddField(analysisjob.FieldDocumentsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RagQueriesExecuted(); ok {
		_spec.SetField(analysisjob.FieldRagQueriesExecuted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRagQueriesExecuted(); ok {
		_spec.AddField(analysisjob.FieldRagQueriesExecuted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalCompletenessScore(); ok {
		_spec.SetField(analysisjob.FieldFinalCompletenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalCompletenessScore(); ok {
		_spec.AddField(analysisjob.FieldFinalCompletenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalAnalysis(); ok {
		_spec.SetField(analysisjob.FieldFinalAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.FinalAnalysisCleared() {
		_spec.ClearField(analysisjob.FieldFinalAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.IterationHistory(); ok {
		_spec.SetField(analysisjob.FieldIterationHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIterationHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisjob.FieldIterationHistory, value)
		})
	}
	if _u.mutation.IterationHistoryCleared() {
		_spec.ClearField(analysisjob.FieldIterationHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisjob.FieldCompletedAt, field.TypeTime)
	}
	_node = &AnalysisJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
