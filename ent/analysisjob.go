// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/findocgpt/findocgpt/ent/analysisjob"
	"github.com/findocgpt/findocgpt/pkg/models"
)

// AnalysisJob is the model entity for the AnalysisJob schema.
type AnalysisJob struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Natural-language investment query
	Query string `json:"query,omitempty"`
	// Restricts document selection by company name substring
	CompanyFilter *string `json:"company_filter,omitempty"`
	// Status holds the value of the "status" field.
	Status analysisjob.Status `json:"status,omitempty"`
	// Cooperative cancellation flag, polled by the controller
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Number of evaluation records appended so far
	TotalIterations int `json:"total_iterations,omitempty"`
	// DocumentsAnalyzed holds the value of the "documents_analyzed" field.
	DocumentsAnalyzed int `json:"documents_analyzed,omitempty"`
	// RagQueriesExecuted holds the value of the "rag_queries_executed" field.
	RagQueriesExecuted int `json:"rag_queries_executed,omitempty"`
	// Score of the most recent evaluation, 0..10
	FinalCompletenessScore float64 `json:"final_completeness_score,omitempty"`
	// Latest draft or refined analysis
	FinalAnalysis map[string]interface{} `json:"final_analysis,omitempty"`
	// Append-only phase records, ordered
	IterationHistory []models.IterationRecord `json:"iteration_history,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisjob.FieldFinalAnalysis, analysisjob.FieldIterationHistory:
			values[i] = new([]byte)
		case analysisjob.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case analysisjob.FieldFinalCompletenessScore:
			values[i] = new(sql.NullFloat64)
		case analysisjob.FieldID, analysisjob.FieldTotalIterations, analysisjob.FieldDocumentsAnalyzed, analysisjob.FieldRagQueriesExecuted:
			values[i] = new(sql.NullInt64)
		case analysisjob.FieldQuery, analysisjob.FieldCompanyFilter, analysisjob.FieldStatus, analysisjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case analysisjob.FieldCreatedAt, analysisjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisJob fields.
func (_m *AnalysisJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisjob.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisjob.FieldQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query", values[i])
			} else if value.Valid {
				_m.Query = value.String
			}
		case analysisjob.FieldCompanyFilter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_filter", values[i])
			} else if value.Valid {
				_m.CompanyFilter = new(string)
				*_m.CompanyFilter = value.String
			}
		case analysisjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = analysisjob.Status(value.String)
			}
		case analysisjob.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case analysisjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case analysisjob.FieldTotalIterations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_iterations", values[i])
			} else if value.Valid {
				_m.TotalIterations = int(value.Int64)
			}
		case analysisjob.FieldDocumentsAnalyzed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field documents_analyzed", values[i])
			} else if value.Valid {
				_m.DocumentsAnalyzed = int(value.Int64)
			}
		case analysisjob.FieldRagQueriesExecuted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rag_queries_executed", values[i])
			} else if value.Valid {
				_m.RagQueriesExecuted = int(value.Int64)
			}
		case analysisjob.FieldFinalCompletenessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_completeness_score", values[i])
			} else if value.Valid {
				_m.FinalCompletenessScore = value.Float64
			}
		case analysisjob.FieldFinalAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field final_analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FinalAnalysis); err != nil {
					return fmt.Errorf("unmarshal field final_analysis: %w", err)
				}
			}
		case analysisjob.FieldIterationHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field iteration_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IterationHistory); err != nil {
					return fmt.Errorf("unmarshal field iteration_history: %w", err)
				}
			}
		case analysisjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case analysisjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisJob.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisJob.
// Note that you need to call AnalysisJob.Unwrap() before calling this method if this AnalysisJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisJob) Update() *AnalysisJobUpdateOne {
	return NewAnalysisJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisJob) Unwrap() *AnalysisJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisJob) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("query=")
	builder.WriteString(_m.Query)
	builder.WriteString(", ")
	if v := _m.CompanyFilter; v != nil {
		builder.WriteString("company_filter=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("total_iterations=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalIterations))
	builder.WriteString(", ")
	builder.WriteString("documents_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentsAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("rag_queries_executed=")
	builder.WriteString(fmt.Sprintf("%v", _m.RagQueriesExecuted))
	builder.WriteString(", ")
	builder.WriteString("final_completeness_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalCompletenessScore))
	builder.WriteString(", ")
	builder.WriteString("final_analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalAnalysis))
	builder.WriteString(", ")
	builder.WriteString("iteration_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.IterationHistory))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisJobs is a parsable slice of AnalysisJob.
type AnalysisJobs []*AnalysisJob
