// Code generated by ent, DO NOT EDIT.

package analysisjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/findocgpt/findocgpt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldID, id))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldQuery, v))
}

// CompanyFilter applies equality check predicate on the "company_filter" field. It's identical to CompanyFilterEQ.
func CompanyFilter(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCompanyFilter, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCancelRequested, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldErrorMessage, v))
}

// TotalIterations applies equality check predicate on the "total_iterations" field. It's identical to TotalIterationsEQ.
func TotalIterations(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldTotalIterations, v))
}

// DocumentsAnalyzed applies equality check predicate on the "documents_analyzed" field. It's identical to DocumentsAnalyzedEQ.
func DocumentsAnalyzed(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldDocumentsAnalyzed, v))
}

// RagQueriesExecuted applies equality check predicate on the "rag_queries_executed" field. It's identical to RagQueriesExecutedEQ.
func RagQueriesExecuted(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldRagQueriesExecuted, v))
}

// FinalCompletenessScore applies equality check predicate on the "final_completeness_score" field. It's identical to FinalCompletenessScoreEQ.
func FinalCompletenessScore(v float64) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldFinalCompletenessScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCompletedAt, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContainsFold(FieldQuery, v))
}

// CompanyFilterEQ applies the EQ predicate on the "company_filter" field.
func CompanyFilterEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCompanyFilter, v))
}

// CompanyFilterNEQ applies the NEQ predicate on the "company_filter" field.
func CompanyFilterNEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldCompanyFilter, v))
}

// CompanyFilterIn applies the In predicate on the "company_filter" field.
func CompanyFilterIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldCompanyFilter, vs...))
}

// CompanyFilterNotIn applies the NotIn predicate on the "company_filter" field.
func CompanyFilterNotIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldCompanyFilter, vs...))
}

// CompanyFilterGT applies the GT predicate on the "company_filter" field.
func CompanyFilterGT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldCompanyFilter, v))
}

// CompanyFilterGTE applies the GTE predicate on the "company_filter" field.
func CompanyFilterGTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldCompanyFilter, v))
}

// CompanyFilterLT applies the LT predicate on the "company_filter" field.
func CompanyFilterLT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldCompanyFilter, v))
}

// CompanyFilterLTE applies the LTE predicate on the "company_filter" field.
func CompanyFilterLTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldCompanyFilter, v))
}

// CompanyFilterContains applies the Contains predicate on the "company_filter" field.
func CompanyFilterContains(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContains(FieldCompanyFilter, v))
}

// CompanyFilterHasPrefix applies the HasPrefix predicate on the "company_filter" field.
func CompanyFilterHasPrefix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasPrefix(FieldCompanyFilter, v))
}

// CompanyFilterHasSuffix applies the HasSuffix predicate on the "company_filter" field.
func CompanyFilterHasSuffix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasSuffix(FieldCompanyFilter, v))
}

// CompanyFilterIsNil applies the IsNil predicate on the "company_filter" field.
func CompanyFilterIsNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIsNull(FieldCompanyFilter))
}

// CompanyFilterNotNil applies the NotNil predicate on the "company_filter" field.
func CompanyFilterNotNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotNull(FieldCompanyFilter))
}

// CompanyFilterEqualFold applies the EqualFold predicate on the "company_filter" field.
func CompanyFilterEqualFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEqualFold(FieldCompanyFilter, v))
}

// CompanyFilterContainsFold applies the ContainsFold predicate on the "company_filter" field.
func CompanyFilterContainsFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContainsFold(FieldCompanyFilter, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldStatus, vs...))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldCancelRequested, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// TotalIterationsEQ applies the EQ predicate on the "total_iterations" field.
func TotalIterationsEQ(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldTotalIterations, v))
}

// TotalIterationsNEQ applies the NEQ predicate on the "total_iterations" field.
func TotalIterationsNEQ(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldTotalIterations, v))
}

// TotalIterationsIn applies the In predicate on the "total_iterations" field.
func TotalIterationsIn(vs ...int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldTotalIterations, vs...))
}

// TotalIterationsNotIn applies the NotIn predicate on the "total_iterations" field.
func TotalIterationsNotIn(vs ...int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldTotalIterations, vs...))
}

// TotalIterationsGT applies the GT predicate on the "total_iterations" field.
func TotalIterationsGT(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldTotalIterations, v))
}

// TotalIterationsGTE applies the GTE predicate on the "total_iterations" field.
func TotalIterationsGTE(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldTotalIterations, v))
}

// TotalIterationsLT applies the LT predicate on the "total_iterations" field.
func TotalIterationsLT(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldTotalIterations, v))
}

// TotalIterationsLTE applies the LTE predicate on the "total_iterations" field.
func TotalIterationsLTE(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldTotalIterations, v))
}

// DocumentsAnalyzedEQ applies the EQ predicate on the "documents_analyzed" field.
func DocumentsAnalyzedEQ(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldDocumentsAnalyzed, v))
}

// DocumentsAnalyzedNEQ applies the NEQ predicate on the "documents_analyzed" field.
func DocumentsAnalyzedNEQ(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldDocumentsAnalyzed, v))
}

// DocumentsAnalyzedIn applies the In predicate on the "documents_analyzed" field.
func DocumentsAnalyzedIn(vs ...int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldDocumentsAnalyzed, vs...))
}

// DocumentsAnalyzedNotIn applies the NotIn predicate on the "documents_analyzed" field.
func DocumentsAnalyzedNotIn(vs ...int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldDocumentsAnalyzed, vs...))
}

// DocumentsAnalyzedGT applies the GT predicate on the "documents_analyzed" field.
func DocumentsAnalyzedGT(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldDocumentsAnalyzed, v))
}

// DocumentsAnalyzedGTE applies the GTE predicate on the "documents_analyzed" field.
func DocumentsAnalyzedGTE(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldDocumentsAnalyzed, v))
}

// DocumentsAnalyzedLT applies the LT predicate on the "documents_analyzed" field.
func DocumentsAnalyzedLT(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldDocumentsAnalyzed, v))
}

// DocumentsAnalyzedLTE applies the LTE predicate on the "documents_analyzed" field.
func DocumentsAnalyzedLTE(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldDocumentsAnalyzed, v))
}

// RagQueriesExecutedEQ applies the EQ predicate on the "rag_queries_executed" field.
func RagQueriesExecutedEQ(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldRagQueriesExecuted, v))
}

// RagQueriesExecutedNEQ applies the NEQ predicate on the "rag_queries_executed" field.
func RagQueriesExecutedNEQ(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldRagQueriesExecuted, v))
}

// RagQueriesExecutedIn applies the In predicate on the "rag_queries_executed" field.
func RagQueriesExecutedIn(vs ...int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldRagQueriesExecuted, vs...))
}

// RagQueriesExecutedNotIn applies the NotIn predicate on the "rag_queries_executed" field.
func RagQueriesExecutedNotIn(vs ...int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldRagQueriesExecuted, vs...))
}

// RagQueriesExecutedGT applies the GT predicate on the "rag_queries_executed" field.
func RagQueriesExecutedGT(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldRagQueriesExecuted, v))
}

// RagQueriesExecutedGTE applies the GTE predicate on the "rag_queries_executed" field.
func RagQueriesExecutedGTE(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldRagQueriesExecuted, v))
}

// RagQueriesExecutedLT applies the LT predicate on the "rag_queries_executed" field.
func RagQueriesExecutedLT(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldRagQueriesExecuted, v))
}

// RagQueriesExecutedLTE applies the LTE predicate on the "rag_queries_executed" field.
func RagQueriesExecutedLTE(v int) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldRagQueriesExecuted, v))
}

// FinalCompletenessScoreEQ applies the EQ predicate on the "final_completeness_score" field.
func FinalCompletenessScoreEQ(v float64) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldFinalCompletenessScore, v))
}

// FinalCompletenessScoreNEQ applies the NEQ predicate on the "final_completeness_score" field.
func FinalCompletenessScoreNEQ(v float64) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldFinalCompletenessScore, v))
}

// FinalCompletenessScoreIn applies the In predicate on the "final_completeness_score" field.
func FinalCompletenessScoreIn(vs ...float64) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldFinalCompletenessScore, vs...))
}

// FinalCompletenessScoreNotIn applies the NotIn predicate on the "final_completeness_score" field.
func FinalCompletenessScoreNotIn(vs ...float64) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldFinalCompletenessScore, vs...))
}

// FinalCompletenessScoreGT applies the GT predicate on the "final_completeness_score" field.
func FinalCompletenessScoreGT(v float64) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldFinalCompletenessScore, v))
}

// FinalCompletenessScoreGTE applies the GTE predicate on the "final_completeness_score" field.
func FinalCompletenessScoreGTE(v float64) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldFinalCompletenessScore, v))
}

// FinalCompletenessScoreLT applies the LT predicate on the "final_completeness_score" field.
func FinalCompletenessScoreLT(v float64) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldFinalCompletenessScore, v))
}

// FinalCompletenessScoreLTE applies the LTE predicate on the "final_completeness_score" field.
func FinalCompletenessScoreLTE(v float64) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldFinalCompletenessScore, v))
}

// FinalAnalysisIsNil applies the IsNil predicate on the "final_analysis" field.
func FinalAnalysisIsNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIsNull(FieldFinalAnalysis))
}

// FinalAnalysisNotNil applies the NotNil predicate on the "final_analysis" field.
func FinalAnalysisNotNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotNull(FieldFinalAnalysis))
}

// IterationHistoryIsNil applies the IsNil predicate on the "iteration_history" field.
func IterationHistoryIsNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIsNull(FieldIterationHistory))
}

// IterationHistoryNotNil applies the NotNil predicate on the "iteration_history" field.
func IterationHistoryNotNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotNull(FieldIterationHistory))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisJob) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisJob) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisJob) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.NotPredicates(p))
}
