// Package view implements the in-memory list-view pipeline: free-text
// search, field filters, declarative sort, and pagination over a raw
// collection, with foreign-key fields read through the reference cache.
package view

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fathomline/gridview/pkg/resolve"
	"github.com/fathomline/gridview/pkg/types"
)

// Result is the output of one pipeline evaluation.
type Result struct {
	Visible    []types.Record // The records of the requested page, in order.
	TotalPages int            // ceil(filtered/pageSize), at least 1.
	Filtered   int            // Record count after search and filters.
}

// Projector evaluates the pipeline for one resource. It holds the resource
// schema, a locale-aware collator for string comparison, and a cache of
// compiled filter expressions. Projection itself is pure: identical inputs
// yield value-identical output, and no input is mutated.
type Projector struct {
	schema   types.Schema
	collator *collate.Collator
	programs *programCache
}

// NewProjector creates a projector for the given schema. locale is a BCP 47
// tag; an empty or unparseable locale falls back to English collation.
func NewProjector(schema types.Schema, locale string) *Projector {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Projector{
		schema:   schema,
		collator: collate.New(tag),
		programs: newProgramCache(),
	}
}

// Project applies search, field filters, sort, and pagination in that order
// and returns the visible page. It performs no I/O and never fails:
// malformed field values are treated as absent for every step.
func (p *Projector) Project(records []types.Record, cache *resolve.Cache,
	filter types.FilterState, sortState types.SortState, page types.PageState) Result {

	kept := p.applySearch(records, cache, filter.Search)
	kept = applyPredicates(kept, filter.Predicates)
	kept = p.applyExpr(kept, filter.Expr)
	kept = p.applySort(kept, cache, sortState)
	return paginate(kept, page)
}

// applySearch keeps records where any searchable field contains the query,
// case-insensitively. Reference fields match against the resolved display
// value, falling back to the raw id while resolution is pending.
func (p *Projector) applySearch(records []types.Record, cache *resolve.Cache, query string) []types.Record {
	if query == "" {
		return records
	}
	fields := p.schema.SearchableFields()
	out := make([]types.Record, 0, len(records))
	for _, rec := range records {
		if searchMatch(rec, cache, fields, query) {
			out = append(out, rec)
		}
	}
	return out
}

// searchMatch reports whether any of the fields contains the query.
func searchMatch(rec types.Record, cache *resolve.Cache, fields []types.FieldSpec, query string) bool {
	for _, f := range fields {
		var text string
		if f.Ref != nil {
			id, ok := rec.StringField(f.Ref.SourceField)
			if !ok || id == "" {
				continue
			}
			text = cache.SearchText(f.Ref.TargetResource, id)
		} else {
			s, ok := rec.StringField(f.Name)
			if !ok {
				continue
			}
			text = s
		}
		if types.ContainsFold(text, query) {
			return true
		}
	}
	return false
}

// applyPredicates keeps records matching every active field predicate.
func applyPredicates(records []types.Record, preds []types.FieldPredicate) []types.Record {
	active := preds[:0:0]
	for _, p := range preds {
		if p.Value != "" && p.Value != types.PredicateAll {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return records
	}
	out := make([]types.Record, 0, len(records))
	for _, rec := range records {
		ok := true
		for _, p := range active {
			if !p.Matches(rec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out
}

// paginate clamps the page index into [1, totalPages] and slices out the
// requested page. A non-positive page size yields a single page holding the
// whole filtered set.
func paginate(records []types.Record, page types.PageState) Result {
	n := len(records)
	size := page.Size
	if size <= 0 {
		size = n
		if size == 0 {
			size = 1
		}
	}

	totalPages := (n + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	index := page.Index
	if index < 1 {
		index = 1
	}
	if index > totalPages {
		index = totalPages
	}

	lo := (index - 1) * size
	hi := lo + size
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}
	return Result{Visible: records[lo:hi], TotalPages: totalPages, Filtered: n}
}
