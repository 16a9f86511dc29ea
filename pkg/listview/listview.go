package listview

import (
	"context"
	"log/slog"

	"github.com/fathomline/gridview/pkg/resolve"
	"github.com/fathomline/gridview/pkg/types"
	"github.com/fathomline/gridview/pkg/view"
)

// ListView is one list-view session for a single resource: the raw
// collection, the reference cache, and the current filter, sort, and page
// state. Filter and sort changes reset the page index to 1; the page count
// is always derived by the pipeline, never stored.
//
// A ListView is not safe for concurrent use. It models a single screen
// driven by one event loop; the concurrency lives inside Load (stale-load
// protection) and the resolver (reference fan-out).
type ListView struct {
	schema    types.Schema
	store     *Store
	cache     *resolve.Cache
	resolver  *resolve.Resolver
	projector *view.Projector

	filter types.FilterState
	sort   types.SortState
	page   types.PageState
}

// New creates a session for the schema's resource. The cache starts empty
// and lives for the lifetime of the session.
func New(schema types.Schema, lister Lister, fetcher resolve.Fetcher, cfg types.Config, logger *slog.Logger) *ListView {
	cfg = cfg.Normalize()
	cache := resolve.NewCache()
	return &ListView{
		schema:    schema,
		store:     NewStore(lister, schema.Resource),
		cache:     cache,
		resolver:  resolve.NewResolver(fetcher, cache, logger),
		projector: view.NewProjector(schema, cfg.Locale),
		page:      types.PageState{Index: 1, Size: cfg.PageSize},
	}
}

// Load fetches the raw collection. A refresh failure keeps the previous
// collection; already-resolved references survive a refresh, and only ids
// not previously seen are fetched afterwards.
func (v *ListView) Load(ctx context.Context) error {
	return v.store.Load(ctx)
}

// SetSearch sets the free-text search string and resets to the first page.
func (v *ListView) SetSearch(query string) {
	v.filter.Search = query
	v.page.Index = 1
}

// SetFilter sets the equality predicate for a field and resets to the first
// page. An empty value or "all" clears the predicate.
func (v *ListView) SetFilter(field, value string) {
	preds := v.filter.Predicates[:0]
	for _, p := range v.filter.Predicates {
		if p.Field != field {
			preds = append(preds, p)
		}
	}
	if value != "" && value != types.PredicateAll {
		preds = append(preds, types.FieldPredicate{Field: field, Value: value})
	}
	v.filter.Predicates = preds
	v.page.Index = 1
}

// SetExpr sets the expression predicate and resets to the first page.
func (v *ListView) SetExpr(expression string) {
	v.filter.Expr = expression
	v.page.Index = 1
}

// SetSort sets the sort key and direction and resets to the first page.
// Any direction other than "desc" sorts ascending; an empty key restores
// fetch order.
func (v *ListView) SetSort(key, direction string) {
	if direction != types.SortDesc {
		direction = types.SortAsc
	}
	v.sort = types.SortState{Key: key, Direction: direction}
	v.page.Index = 1
}

// SetPage moves to the given 1-based page index. The pipeline clamps it
// into the valid range on the next evaluation.
func (v *ListView) SetPage(index int) {
	v.page.Index = index
}

// SetPageSize changes the page size and resets to the first page.
func (v *ListView) SetPageSize(size int) {
	v.page.Size = size
	v.page.Index = 1
}

// Page evaluates the pipeline and returns the visible page. References for
// the visible records are resolved before the final evaluation; when the
// search or sort reads reference display values the whole collection's
// references are resolved first, so matching is not limited to what happens
// to be cached. Reference failures degrade to placeholders, never to an
// error.
func (v *ListView) Page(ctx context.Context) view.Result {
	records := v.store.Records()
	specs := v.schema.References()

	if len(specs) > 0 && v.needsFullResolution() {
		v.resolver.Resolve(ctx, records, specs)
	}

	result := v.projector.Project(records, v.cache, v.filter, v.sort, v.page)
	if len(specs) > 0 {
		// Lazy expansion: only the visible page's ids are fetched here;
		// settled ids are skipped by the cache.
		v.resolver.Resolve(ctx, result.Visible, specs)
		result = v.projector.Project(records, v.cache, v.filter, v.sort, v.page)
	}
	return result
}

// needsFullResolution reports whether the current state reads reference
// display values beyond the visible page: a free-text search over a
// searchable reference field, or a sort keyed on a reference field.
func (v *ListView) needsFullResolution() bool {
	if v.filter.Search != "" {
		for _, f := range v.schema.SearchableFields() {
			if f.Ref != nil {
				return true
			}
		}
	}
	if v.sort.Key != "" {
		if f, ok := v.schema.Field(v.sort.Key); ok && f.Ref != nil {
			return true
		}
	}
	return false
}

// Display returns the rendering value for one field of a record: the
// resolved display value for reference fields (Placeholder when failed or
// pending), the string form otherwise.
func (v *ListView) Display(rec types.Record, field types.FieldSpec) string {
	if field.Ref != nil {
		id, ok := rec.StringField(field.Ref.SourceField)
		if !ok || id == "" {
			return ""
		}
		return v.cache.Display(field.Ref.TargetResource, id)
	}
	s, _ := rec.StringField(field.Name)
	return s
}

// Schema returns the session's resource schema.
func (v *ListView) Schema() types.Schema { return v.schema }

// Cache returns the session's reference cache.
func (v *ListView) Cache() *resolve.Cache { return v.cache }

// Generation returns the store's commit counter.
func (v *ListView) Generation() uint64 { return v.store.Generation() }

// Filter returns the current filter state.
func (v *ListView) Filter() types.FilterState { return v.filter }

// Sort returns the current sort state.
func (v *ListView) Sort() types.SortState { return v.sort }

// PageState returns the current page state.
func (v *ListView) PageState() types.PageState { return v.page }
