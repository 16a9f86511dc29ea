package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldPredicateMatches(t *testing.T) {
	rec := Record{"status": "SHIPPED", "total": float64(42), "note": nil}

	tests := []struct {
		name string
		pred FieldPredicate
		want bool
	}{
		{name: "equality match", pred: FieldPredicate{Field: "status", Value: "SHIPPED"}, want: true},
		{name: "equality mismatch", pred: FieldPredicate{Field: "status", Value: "PENDING"}, want: false},
		{name: "empty value matches all", pred: FieldPredicate{Field: "status", Value: ""}, want: true},
		{name: "all sentinel matches all", pred: FieldPredicate{Field: "status", Value: PredicateAll}, want: true},
		{name: "substring match", pred: FieldPredicate{Field: "status", Value: "ship", Substring: true}, want: true},
		{name: "substring mismatch", pred: FieldPredicate{Field: "status", Value: "return", Substring: true}, want: false},
		{name: "numeric field compared as string", pred: FieldPredicate{Field: "total", Value: "42"}, want: true},
		{name: "nil field never matches active predicate", pred: FieldPredicate{Field: "note", Value: "x"}, want: false},
		{name: "missing field never matches active predicate", pred: FieldPredicate{Field: "ghost", Value: "x"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pred.Matches(rec))
		})
	}
}

func TestFilterStateActive(t *testing.T) {
	tests := []struct {
		name   string
		filter FilterState
		want   bool
	}{
		{name: "empty", filter: FilterState{}, want: false},
		{name: "search set", filter: FilterState{Search: "cat"}, want: true},
		{name: "expr set", filter: FilterState{Expr: "total > 1"}, want: true},
		{
			name:   "only inactive predicates",
			filter: FilterState{Predicates: []FieldPredicate{{Field: "status", Value: PredicateAll}}},
			want:   false,
		},
		{
			name:   "active predicate",
			filter: FilterState{Predicates: []FieldPredicate{{Field: "status", Value: "SHIPPED"}}},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Active())
		})
	}
}
