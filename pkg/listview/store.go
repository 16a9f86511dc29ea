// Package listview ties the list-view controller together: a raw collection
// store with stale-load protection, and a session object owning the filter,
// sort, and page state plus the reference cache.
package listview

import (
	"context"
	"sync"

	"github.com/fathomline/gridview/pkg/types"
)

// Lister fetches the full collection for a resource.
type Lister interface {
	List(ctx context.Context, resource string) ([]types.Record, int, error)
}

// Store holds the latest fetched collection for one resource. Each Load
// carries a generation token; a load that finishes after a newer one began
// is discarded silently, so a slow refresh can never clobber fresher data.
// A failed load keeps the previous collection.
type Store struct {
	mu       sync.Mutex
	resource string
	lister   Lister

	issued     uint64 // Tokens handed to in-flight loads.
	generation uint64 // Advances once per committed load.
	records    []types.Record
}

// NewStore creates an empty store for the resource.
func NewStore(lister Lister, resource string) *Store {
	return &Store{lister: lister, resource: resource}
}

// Load fetches the collection and commits it if no newer load has started
// in the meantime. A superseded result is dropped without error. On fetch
// failure the held collection is retained and the error returned.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	token := s.issued
	s.mu.Unlock()

	records, _, err := s.lister.List(ctx, s.resource)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.issued {
		// A newer load is in flight or already committed; this result
		// is stale regardless of whether it succeeded.
		return nil
	}
	if err != nil {
		return err
	}
	s.records = records
	s.generation++
	return nil
}

// Records returns the held collection. The slice is shared; callers treat
// it as read-only.
func (s *Store) Records() []types.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records
}

// Generation returns the commit counter: zero until the first successful
// load, advancing once per committed collection.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}
