package resolve

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/fathomline/gridview/pkg/types"
)

// defaultFanout bounds the number of in-flight reference fetches.
const defaultFanout = 8

// Fetcher loads referenced records from the backend. FetchBatch returns
// types.ErrBatchUnsupported when the resource has no batch endpoint; the
// resolver then falls back to per-id fetches.
type Fetcher interface {
	FetchOne(ctx context.Context, resource, id string) (types.Record, error)
	FetchBatch(ctx context.Context, resource string, ids []string) ([]types.Record, error)
}

// Resolver resolves foreign-key references into the session cache.
// It is the cache's sole writer.
type Resolver struct {
	fetcher Fetcher
	cache   *Cache
	logger  *slog.Logger
	fanout  int
}

// NewResolver creates a resolver writing into cache. A nil logger disables
// logging.
func NewResolver(fetcher Fetcher, cache *Cache, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger,
		fanout:  defaultFanout,
	}
}

// Resolve fetches display values for every reference the given records hold
// that has no settled cache entry yet. Distinct ids are fetched once; a
// batch endpoint is preferred over per-id fetches; per-id failures are
// recorded as failed entries and never abort the remaining fetches. Resolve
// returns once every outstanding fetch has settled. It never returns an
// error: reference failures degrade to placeholders at render time.
func (r *Resolver) Resolve(ctx context.Context, records []types.Record, specs []types.ReferenceSpec) {
	for _, spec := range specs {
		ids := r.cache.Missing(spec.TargetResource, collectIDs(records, spec.SourceField))
		if len(ids) == 0 {
			continue
		}
		sort.Strings(ids)
		r.resolveResource(ctx, spec, ids)
	}
}

// collectIDs gathers the non-empty values of the source field across records.
// Deduplication happens in Cache.Missing.
func collectIDs(records []types.Record, field string) []string {
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if id, ok := rec.StringField(field); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// resolveResource settles the given ids for one target resource.
func (r *Resolver) resolveResource(ctx context.Context, spec types.ReferenceSpec, ids []string) {
	if r.resolveBatch(ctx, spec, ids) {
		return
	}

	g := new(errgroup.Group)
	g.SetLimit(r.fanout)
	for _, id := range ids {
		g.Go(func() error {
			rec, err := r.fetcher.FetchOne(ctx, spec.TargetResource, id)
			if err != nil {
				r.logger.Warn("reference fetch failed",
					"resource", spec.TargetResource, "id", id, "error", err)
				r.cache.MarkFailed(spec.TargetResource, id)
				return nil
			}
			r.cache.MarkResolved(spec.TargetResource, id, displayValue(rec, spec, id))
			return nil
		})
	}
	// Goroutines always return nil; Wait is a pure fan-in barrier.
	_ = g.Wait()
}

// resolveBatch attempts a single batch call for all ids. Returns false when
// the resource has no batch endpoint, leaving the ids to the per-id path.
func (r *Resolver) resolveBatch(ctx context.Context, spec types.ReferenceSpec, ids []string) bool {
	items, err := r.fetcher.FetchBatch(ctx, spec.TargetResource, ids)
	if errors.Is(err, types.ErrBatchUnsupported) {
		return false
	}
	if err != nil {
		r.logger.Warn("batch reference fetch failed",
			"resource", spec.TargetResource, "ids", len(ids), "error", err)
		for _, id := range ids {
			r.cache.MarkFailed(spec.TargetResource, id)
		}
		return true
	}

	returned := make(map[string]bool, len(items))
	for _, rec := range items {
		id := rec.ID()
		if id == "" {
			continue
		}
		returned[id] = true
		r.cache.MarkResolved(spec.TargetResource, id, displayValue(rec, spec, id))
	}
	// Ids the batch response omitted settle as failed so they are not
	// refetched on every re-render.
	for _, id := range ids {
		if !returned[id] {
			r.cache.MarkFailed(spec.TargetResource, id)
		}
	}
	return true
}

// displayValue extracts the display field from a resolved record, falling
// back to the raw id when the field is absent.
func displayValue(rec types.Record, spec types.ReferenceSpec, id string) string {
	if v, ok := rec.StringField(spec.DisplayField); ok && v != "" {
		return v
	}
	return id
}
