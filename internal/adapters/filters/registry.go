// Package filters implements the filter registry and the built-in filters.
package filters

import (
	"sort"
	"sync"

	"go.trai.ch/pak/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FilterRegistry = (*Registry)(nil)

// Registry maps filter names to AssetFilter implementations. Registrations
// happen before a pack run begins; lookups during a run are read-only.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]ports.AssetFilter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		filters: make(map[string]ports.AssetFilter),
	}
}

// NewDefaultRegistry creates a Registry with the built-in filters registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register("concat", NewConcat())
	_ = r.Register("replace", NewReplace())
	return r
}

// Register adds a filter under name.
// It returns an error if the name is already taken.
func (r *Registry) Register(name string, f ports.AssetFilter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.filters[name]; exists {
		return zerr.With(zerr.New("filter already registered"), "filter", name)
	}
	r.filters[name] = f
	return nil
}

// Lookup returns the filter registered under name.
func (r *Registry) Lookup(name string) (ports.AssetFilter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.filters[name]
	return f, ok
}

// Names returns all registered filter names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
