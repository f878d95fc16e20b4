package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Store persists message templates by name.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a template body under name.
	// Overwrites if a template with that name already exists.
	Save(name, body string) error

	// Load retrieves a template body.
	// Returns ErrNotFound if the template doesn't exist.
	Load(name string) (string, error)

	// List returns every stored template, ordered by name.
	// Returns empty slice (not error) if the store is empty.
	List() ([]Info, error)

	// Delete removes a template.
	// Returns nil if the template doesn't exist.
	Delete(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides metadata without loading the template body.
type Info struct {
	Name    string
	Size    int64
	Updated time.Time
}

// Sentinel errors for catalog operations.
var (
	// ErrNotFound indicates a template doesn't exist.
	ErrNotFound = errors.New("template not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("template store closed")
)

// UnresolvedError is returned by RenderStrict when placeholders are left
// in the rendered output.
type UnresolvedError struct {
	Name        string
	Expressions []string
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("template %s: unresolved placeholders: %s", e.Name, strings.Join(e.Expressions, ", "))
}
