package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/findocgpt/findocgpt/pkg/models"
)

// AnalysisJob holds the schema definition for one iterative analysis run.
type AnalysisJob struct {
	ent.Schema
}

// Fields of the AnalysisJob.
func (AnalysisJob) Fields() []ent.Field {
	return []ent.Field{
		field.Text("query").
			NotEmpty().
			Comment("Natural-language investment query"),
		field.String("company_filter").
			Optional().
			Nillable().
			Comment("Restricts document selection by company name substring"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "cancelled").
			Default("pending"),
		field.Bool("cancel_requested").
			Default(false).
			Comment("Cooperative cancellation flag, polled by the controller"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("total_iterations").
			Default(0).
			Comment("Number of evaluation records appended so far"),
		field.Int("documents_analyzed").
			Default(0),
		field.Int("rag_queries_executed").
			Default(0),
		field.Float("final_completeness_score").
			Default(0).
			Comment("Score of the most recent evaluation, 0..10"),
		field.JSON("final_analysis", map[string]interface{}{}).
			Optional().
			Comment("Latest draft or refined analysis"),
		field.JSON("iteration_history", []models.IterationRecord{}).
			Optional().
			Comment("Append-only phase records, ordered"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AnalysisJob.
func (AnalysisJob) Edges() []ent.Edge {
	return nil
}

// Indexes of the AnalysisJob.
func (AnalysisJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("created_at"),
	}
}
