// Code generated by ent, DO NOT EDIT.

package analysisjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the analysisjob type in the database.
	Label = "analysis_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuery holds the string denoting the query field in the database.
	FieldQuery = "query"
	// FieldCompanyFilter holds the string denoting the company_filter field in the database.
	FieldCompanyFilter = "company_filter"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldTotalIterations holds the string denoting the total_iterations field in the database.
	FieldTotalIterations = "total_iterations"
	// FieldDocumentsAnalyzed holds the string denoting the documents_analyzed field in the database.
	FieldDocumentsAnalyzed = "documents_analyzed"
	// FieldRagQueriesExecuted holds the string denoting the rag_queries_executed field in the database.
	FieldRagQueriesExecuted = "rag_queries_executed"
	// FieldFinalCompletenessScore holds the string denoting the final_completeness_score field in the database.
	FieldFinalCompletenessScore = "final_completeness_score"
	// FieldFinalAnalysis holds the string denoting the final_analysis field in the database.
	FieldFinalAnalysis = "final_analysis"
	// FieldIterationHistory holds the string denoting the iteration_history field in the database.
	FieldIterationHistory = "iteration_history"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the analysisjob in the database.
	Table = "analysis_jobs"
)

// Columns holds all SQL columns for analysisjob fields.
var Columns = []string{
	FieldID,
	FieldQuery,
	FieldCompanyFilter,
	FieldStatus,
	FieldCancelRequested,
	FieldErrorMessage,
	FieldTotalIterations,
	FieldDocumentsAnalyzed,
	FieldRagQueriesExecuted,
	FieldFinalCompletenessScore,
	FieldFinalAnalysis,
	FieldIterationHistory,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// QueryValidator is a validator for the "query" field. It is called by the builders before save.
	QueryValidator func(string) error
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultTotalIterations holds the default value on creation for the "total_iterations" field.
	DefaultTotalIterations int
	// DefaultDocumentsAnalyzed holds the default value on creation for the "documents_analyzed" field.
	DefaultDocumentsAnalyzed int
	// DefaultRagQueriesExecuted holds the default value on creation for the "rag_queries_executed" field.
	DefaultRagQueriesExecuted int
	// DefaultFinalCompletenessScore holds the default value on creation for the "final_completeness_score" field.
	DefaultFinalCompletenessScore float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("analysisjob: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AnalysisJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuery orders the results by the query field.
func ByQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuery, opts...).ToFunc()
}

// ByCompanyFilter orders the results by the company_filter field.
func ByCompanyFilter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyFilter, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTotalIterations orders the results by the total_iterations field.
func ByTotalIterations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalIterations, opts...).ToFunc()
}

// ByDocumentsAnalyzed orders the results by the documents_analyzed field.
func ByDocumentsAnalyzed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentsAnalyzed, opts...).ToFunc()
}

// ByRagQueriesExecuted orders the results by the rag_queries_executed field.
func ByRagQueriesExecuted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRagQueriesExecuted, opts...).ToFunc()
}

// ByFinalCompletenessScore orders the results by the final_completeness_score field.
func ByFinalCompletenessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalCompletenessScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
