package types

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// PredicateAll is the predicate value that matches every record, equivalent
// to the predicate being unset.
const PredicateAll = "all"

// FieldPredicate is a field-scoped filter: equality by default, substring
// when Substring is set. An empty value or PredicateAll matches everything.
type FieldPredicate struct {
	Field     string
	Value     string
	Substring bool
}

// Matches reports whether the record satisfies the predicate. The record
// field is coerced to its string form before comparison; a missing or nil
// field only matches the empty predicate.
func (p FieldPredicate) Matches(r Record) bool {
	if p.Value == "" || p.Value == PredicateAll {
		return true
	}
	got, ok := r.StringField(p.Field)
	if !ok {
		return false
	}
	if p.Substring {
		return containsFold(got, p.Value)
	}
	return got == p.Value
}

// FilterState holds the free-text search string, the active field predicates
// (combined with AND), and an optional expression predicate evaluated by the
// view pipeline.
type FilterState struct {
	Search     string
	Predicates []FieldPredicate
	Expr       string
}

// Active reports whether any part of the filter can exclude records.
func (f FilterState) Active() bool {
	if f.Search != "" || f.Expr != "" {
		return true
	}
	for _, p := range f.Predicates {
		if p.Value != "" && p.Value != PredicateAll {
			return true
		}
	}
	return false
}

// SortState selects the sort key and direction. An empty key keeps the
// collection in its fetch order.
type SortState struct {
	Key       string
	Direction string
}

// PageState selects the visible page. Index is 1-based. The page count is
// always derived by the view pipeline, never stored here.
type PageState struct {
	Index int
	Size  int
}
