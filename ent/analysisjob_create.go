// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/findocgpt/findocgpt/ent/analysisjob"
	"github.com/findocgpt/findocgpt/pkg/models"
)

// AnalysisJobCreate is the builder for creating a AnalysisJob entity.
type AnalysisJobCreate struct {
	config
	mutation *AnalysisJobMutation
	hooks    []Hook
}

// SetQuery sets the "query" field.
func (_c *AnalysisJobCreate) SetQuery(v string) *AnalysisJobCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetCompanyFilter sets the "company_filter" field.
func (_c *AnalysisJobCreate) SetCompanyFilter(v string) *AnalysisJobCreate {
	_c.mutation.SetCompanyFilter(v)
	return _c
}

// SetNillableCompanyFilter sets the "company_filter" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCompanyFilter(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetCompanyFilter(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisJobCreate) SetStatus(v analysisjob.Status) *AnalysisJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableStatus(v *analysisjob.Status) *AnalysisJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *AnalysisJobCreate) SetCancelRequested(v bool) *AnalysisJobCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCancelRequested(v *bool) *AnalysisJobCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisJobCreate) SetErrorMessage(v string) *AnalysisJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableErrorMessage(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTotalIterations sets the "total_iterations" field.
func (_c *AnalysisJobCreate) SetTotalIterations(v int) *AnalysisJobCreate {
	_c.mutation.SetTotalIterations(v)
	return _c
}

// SetNillableTotalIterations sets the "total_iterations" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableTotalIterations(v *int) *AnalysisJobCreate {
	if v != nil {
		_c.SetTotalIterations(*v)
	}
	return _c
}

// SetDocumentsAnalyzed sets the "documents_analyzed" field.
func (_c *AnalysisJobCreate) SetDocumentsAnalyzed(v int) *AnalysisJobCreate {
	_c.mutation.SetDocumentsAnalyzed(v)
	return _c
}

// SetNillableDocumentsAnalyzed sets the "documents_analyzed" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableDocumentsAnalyzed(v *int) *AnalysisJobCreate {
	if v != nil {
		_c.SetDocumentsAnalyzed(*v)
	}
	return _c
}

// SetRagQueriesExecuted sets the "rag_queries_executed" field.
func (_c *AnalysisJobCreate) SetRagQueriesExecuted(v int) *AnalysisJobCreate {
	_c.mutation.SetRagQueriesExecuted(v)
	return _c
}

// SetNillableRagQueriesExecuted sets the "rag_queries_executed" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableRagQueriesExecuted(v *int) *AnalysisJobCreate {
	if v != nil {
		_c.SetRagQueriesExecuted(*v)
	}
	return _c
}

// SetFinalCompletenessScore sets the "final_completeness_score" field.
func (_c *AnalysisJobCreate) SetFinalCompletenessScore(v float64) *AnalysisJobCreate {
	_c.mutation.SetFinalCompletenessScore(v)
	return _c
}

// SetNillableFinalCompletenessScore sets the "final_completeness_score" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableFinalCompletenessScore(v *float64) *AnalysisJobCreate {
	if v != nil {
		_c.SetFinalCompletenessScore(*v)
	}
	return _c
}

// SetFinalAnalysis sets the "final_analysis" field.
func (_c *AnalysisJobCreate) SetFinalAnalysis(v map[string]interface{}) *AnalysisJobCreate {
	_c.mutation.SetFinalAnalysis(v)
	return _c
}

// SetIterationHistory sets the "iteration_history" field.
func (_c *AnalysisJobCreate) SetIterationHistory(v []models.IterationRecord) *AnalysisJobCreate {
	_c.mutation.SetIterationHistory(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisJobCreate) SetCreatedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCreatedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AnalysisJobCreate) SetCompletedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCompletedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_c *AnalysisJobCreate) Mutation() *AnalysisJobMutation {
	return _c.mutation
}

// Save creates the AnalysisJob in the database.
func (_c *AnalysisJobCreate) Save(ctx context.Context) (*AnalysisJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisJobCreate) SaveX(ctx context.Context) *AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := analysisjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := analysisjob.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.TotalIterations(); !ok {
		v := analysisjob.DefaultTotalIterations
		_c.mutation.SetTotalIterations(v)
	}
	if _, ok := _c.mutation.DocumentsAnalyzed(); !ok {
		v := analysisjob.DefaultDocumentsAnalyzed
		_c.mutation.SetDocumentsAnalyzed(v)
	}
	if _, ok := _c.mutation.RagQueriesExecuted(); !ok {
		v := analysisjob.DefaultRagQueriesExecuted
		_c.mutation.SetRagQueriesExecuted(v)
	}
	if _, ok := _c.mutation.FinalCompletenessScore(); !ok {
		v := analysisjob.DefaultFinalCompletenessScore
		_c.mutation.SetFinalCompletenessScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisJobCreate) check() error {
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "AnalysisJob.query"`)}
	}
	if v, ok := _c.mutation.Query(); ok {
		if err := analysisjob.QueryValidator(v); err != nil {
			return &ValidationError{Name: "query", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.query": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "AnalysisJob.cancel_requested"`)}
	}
	if _, ok := _c.mutation.TotalIterations(); !ok {
		return &ValidationError{Name: "total_iterations", err: errors.New(`ent: missing required field "AnalysisJob.total_iterations"`)}
	}
	if _, ok := _c.mutation.DocumentsAnalyzed(); !ok {
		return &ValidationError{Name: "documents_analyzed", err: errors.New(`ent: missing required field "AnalysisJob.documents_analyzed"`)}
	}
	if _, ok := _c.mutation.RagQueriesExecuted(); !ok {
		return &ValidationError{Name: "rag_queries_executed", err: errors.New(`ent: missing required field "AnalysisJob.rag_queries_executed"`)}
	}
	if _, ok := _c.mutation.FinalCompletenessScore(); !ok {
		return &ValidationError{Name: "final_completeness_score", err: errors.New(`ent: missing required field "AnalysisJob.final_completeness_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisJob.created_at"`)}
	}
	return nil
}

func (_c *AnalysisJobCreate) sqlSave(ctx context.Context) (*AnalysisJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisJobCreate) createSpec() (*AnalysisJob, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisjob.Table, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(analysisjob.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.CompanyFilter(); ok {
		_spec.SetField(analysisjob.FieldCompanyFilter, field.TypeString, value)
		_node.CompanyFilter = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(analysisjob.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.TotalIterations(); ok {
		_spec.SetField(analysisjob.FieldTotalIterations, field.TypeInt, value)
		_node.TotalIterations = value
	}
	if value, ok := _c.mutation.DocumentsAnalyzed(); ok {
		_spec.SetField(analysisjob.FieldDocumentsAnalyzed, field.TypeInt, value)
		_node.DocumentsAnalyzed = value
	}
	if value, ok := _c.mutation.RagQueriesExecuted(); ok {
		_spec.SetField(analysisjob.FieldRagQueriesExecuted, field.TypeInt, value)
		_node.RagQueriesExecuted = value
	}
	if value, ok := _c.mutation.FinalCompletenessScore(); ok {
		_spec.SetField(analysisjob.FieldFinalCompletenessScore, field.TypeFloat64, value)
		_node.FinalCompletenessScore = value
	}
	if value, ok := _c.mutation.FinalAnalysis(); ok {
		_spec.SetField(analysisjob.FieldFinalAnalysis, field.TypeJSON, value)
		_node.FinalAnalysis = value
	}
	if value, ok := _c.mutation.IterationHistory(); ok {
		_spec.SetField(analysisjob.FieldIterationHistory, field.TypeJSON, value)
		_node.IterationHistory = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(analysisjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// AnalysisJobCreateBulk is the builder for creating many AnalysisJob entities in bulk.
type AnalysisJobCreateBulk struct {
	config
	err      error
	builders []*AnalysisJobCreate
}

// Save creates the AnalysisJob entities in the database.
func (_c *AnalysisJobCreateBulk) Save(ctx context.Context) ([]*AnalysisJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisJobCreateBulk) SaveX(ctx context.Context) []*AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
