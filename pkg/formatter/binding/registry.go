package binding

import (
	"sync"

	"github.com/randalmurphal/formatter/pkg/formatter/value"
)

// Registry holds the named values a formatter resolves paths against.
// It remembers association order and uses sync.RWMutex so individual
// calls are safe from multiple goroutines.
type Registry struct {
	mu      sync.RWMutex
	entries *value.OrderedMap
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: value.NewOrderedMap(),
	}
}

// FromOrdered creates a registry holding every pair of m, in m's order.
func FromOrdered(m *value.OrderedMap) *Registry {
	r := New()
	r.AssociateAll(m)
	return r
}

// Associate binds name to v, overwriting any previous binding.
// Names are used verbatim; any name and any value are accepted.
func (r *Registry) Associate(name string, v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries.Set(name, v)
}

// AssociateAll binds every pair of m in order.
func (r *Registry) AssociateAll(m *value.OrderedMap) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.Range(func(name string, v any) bool {
		r.entries.Set(name, v)
		return true
	})
}

// Lookup returns the value bound to name and whether name is registered.
// A registered name may be bound to nil.
func (r *Registry) Lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries.Get(name)
}

// Has returns true if name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered names in association order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries.Keys()
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries.Len()
}

// Range iterates over the bindings in association order. If fn returns
// false, iteration stops.
//
// Range iterates over a snapshot, so fn may call Associate without
// affecting the current iteration.
func (r *Registry) Range(fn func(name string, v any) bool) {
	r.mu.RLock()
	names := r.entries.Keys()
	snapshot := make([]any, len(names))
	for i, name := range names {
		snapshot[i], _ = r.entries.Get(name)
	}
	r.mu.RUnlock()

	for i, name := range names {
		if !fn(name, snapshot[i]) {
			return
		}
	}
}
