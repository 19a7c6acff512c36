// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisJobsColumns holds the columns for the "analysis_jobs" table.
	AnalysisJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "company_filter", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "total_iterations", Type: field.TypeInt, Default: 0},
		{Name: "documents_analyzed", Type: field.TypeInt, Default: 0},
		{Name: "rag_queries_executed", Type: field.TypeInt, Default: 0},
		{Name: "final_completeness_score", Type: field.TypeFloat64, Default: 0},
		{Name: "final_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "iteration_history", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AnalysisJobsTable holds the schema information for the "analysis_jobs" table.
	AnalysisJobsTable = &schema.Table{
		Name:       "analysis_jobs",
		Columns:    AnalysisJobsColumns,
		PrimaryKey: []*schema.Column{AnalysisJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisjob_status",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[3]},
			},
			{
				Name:    "analysisjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[3], AnalysisJobsColumns[12]},
			},
			{
				Name:    "analysisjob_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisJobsTable,
	}
)

func init() {
}
