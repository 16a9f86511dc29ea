// Package resolve turns foreign-key ids into display values: a per-session
// reference cache plus a resolver that fetches missing ids concurrently,
// preferring a single batch call when the backend offers one.
package resolve

import "sync"

// Entry states for a (resource, id) pair in the cache.
const (
	StateUnresolved = "unresolved"
	StateResolved   = "resolved"
	StateFailed     = "failed"
)

// Placeholder is rendered for failed and unresolved references.
const Placeholder = "Unknown"

// Entry is the cached resolution outcome for one id.
type Entry struct {
	State string
	Value string // Display value; set only when State is StateResolved.
}

// Cache maps (resource, id) to a resolution entry. It is created empty per
// list-view session and grows monotonically: a successful resolution is
// never evicted or overwritten. Safe for concurrent use; the resolver's
// fan-out goroutines merge entries as they arrive.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]map[string]Entry
}

// NewCache creates an empty reference cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]map[string]Entry)}
}

// Lookup returns the entry for the given resource and id.
func (c *Cache) Lookup(resource, id string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[resource][id]
	return e, ok
}

// Has reports whether the id has a settled outcome (resolved or failed).
// Settled ids are never fetched again within the session.
func (c *Cache) Has(resource, id string) bool {
	e, ok := c.Lookup(resource, id)
	return ok && e.State != StateUnresolved
}

// Display returns the resolved display value, or Placeholder when the id is
// unresolved or failed.
func (c *Cache) Display(resource, id string) string {
	e, ok := c.Lookup(resource, id)
	if !ok || e.State != StateResolved {
		return Placeholder
	}
	return e.Value
}

// SearchText returns the resolved display value, falling back to the raw id
// when the reference has not resolved. Free-text search matches against
// this form so rows stay findable before resolution completes.
func (c *Cache) SearchText(resource, id string) string {
	e, ok := c.Lookup(resource, id)
	if !ok || e.State != StateResolved {
		return id
	}
	return e.Value
}

// MarkResolved records a successful resolution. A previously resolved id is
// left untouched; resolution is additive, never a downgrade.
func (c *Cache) MarkResolved(resource, id, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.entries[resource]
	if m == nil {
		m = make(map[string]Entry)
		c.entries[resource] = m
	}
	if e, ok := m[id]; ok && e.State == StateResolved {
		return
	}
	m[id] = Entry{State: StateResolved, Value: value}
}

// MarkFailed records a failed resolution. A previously resolved id is left
// untouched.
func (c *Cache) MarkFailed(resource, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.entries[resource]
	if m == nil {
		m = make(map[string]Entry)
		c.entries[resource] = m
	}
	if e, ok := m[id]; ok && e.State == StateResolved {
		return
	}
	m[id] = Entry{State: StateFailed}
}

// Missing returns the subset of ids with no settled outcome, preserving
// input order and skipping duplicates and empties.
func (c *Cache) Missing(resource string, ids []string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if e, ok := c.entries[resource][id]; ok && e.State != StateUnresolved {
			continue
		}
		out = append(out, id)
	}
	return out
}

// Len returns the number of settled entries for the resource.
func (c *Cache) Len(resource string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries[resource])
}
