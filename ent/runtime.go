// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/findocgpt/findocgpt/ent/analysisjob"
	"github.com/findocgpt/findocgpt/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisjobFields := schema.AnalysisJob{}.Fields()
	_ = analysisjobFields
	// analysisjobDescQuery is the schema descriptor for query field.
	analysisjobDescQuery := analysisjobFields[0].Descriptor()
	// analysisjob.QueryValidator is a validator for the "query" field. It is called by the builders before save.
	analysisjob.QueryValidator = analysisjobDescQuery.Validators[0].(func(string) error)
	// analysisjobDescCancelRequested is the schema descriptor for cancel_requested field.
	analysisjobDescCancelRequested := analysisjobFields[3].Descriptor()
	// analysisjob.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	analysisjob.DefaultCancelRequested = analysisjobDescCancelRequested.Default.(bool)
	// analysisjobDescTotalIterations is the schema descriptor for total_iterations field.
	analysisjobDescTotalIterations := analysisjobFields[5].Descriptor()
	// analysisjob.DefaultTotalIterations holds the default value on creation for the total_iterations field.
	analysisjob.DefaultTotalIterations = analysisjobDescTotalIterations.Default.(int)
	// analysisjobDescDocumentsAnalyzed is the schema descriptor for documents_analyzed field.
	analysisjobDescDocumentsAnalyzed := analysisjobFields[6].Descriptor()
	// analysisjob.DefaultDocumentsAnalyzed holds the default value on creation for the documents_analyzed field.
	analysisjob.DefaultDocumentsAnalyzed = analysisjobDescDocumentsAnalyzed.Default.(int)
	// analysisjobDescRagQueriesExecuted is the schema descriptor for rag_queries_executed field.
	analysisjobDescRagQueriesExecuted := analysisjobFields[7].Descriptor()
	// analysisjob.DefaultRagQueriesExecuted holds the default value on creation for the rag_queries_executed field.
	analysisjob.DefaultRagQueriesExecuted = analysisjobDescRagQueriesExecuted.Default.(int)
	// analysisjobDescFinalCompletenessScore is the schema descriptor for final_completeness_score field.
	analysisjobDescFinalCompletenessScore := analysisjobFields[8].Descriptor()
	// analysisjob.DefaultFinalCompletenessScore holds the default value on creation for the final_completeness_score field.
	analysisjob.DefaultFinalCompletenessScore = analysisjobDescFinalCompletenessScore.Default.(float64)
	// analysisjobDescCreatedAt is the schema descriptor for created_at field.
	analysisjobDescCreatedAt := analysisjobFields[11].Descriptor()
	// analysisjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisjob.DefaultCreatedAt = analysisjobDescCreatedAt.Default.(func() time.Time)
}
