// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisJob is the predicate function for analysisjob builders.
type AnalysisJob func(*sql.Selector)
