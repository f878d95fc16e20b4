package catalog

import (
	"maps"
	"slices"
	"sync"
	"time"
)

// MemoryStore is an in-memory template store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu        sync.RWMutex
	templates map[string]storedTemplate
	closed    bool
}

type storedTemplate struct {
	body    string
	updated time.Time
}

// NewMemoryStore creates a new in-memory template store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		templates: make(map[string]storedTemplate),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(name, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.templates[name] = storedTemplate{
		body:    body,
		updated: time.Now().UTC(),
	}
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStoreClosed
	}

	tpl, ok := m.templates[name]
	if !ok {
		return "", ErrNotFound
	}
	return tpl.body, nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.templates))
	for _, name := range slices.Sorted(maps.Keys(m.templates)) {
		tpl := m.templates[name]
		infos = append(infos, Info{
			Name:    name,
			Size:    int64(len(tpl.body)),
			Updated: tpl.updated,
		})
	}
	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.templates, name)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.templates = nil
	return nil
}

// Len returns the number of stored templates.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.templates)
}
