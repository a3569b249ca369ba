// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Insight is the predicate function for insight builders.
type Insight func(*sql.Selector)

// Page is the predicate function for page builders.
type Page func(*sql.Selector)

// Revision is the predicate function for revision builders.
type Revision func(*sql.Selector)
