// Package binding provides the registry of named values a formatter
// resolves placeholder paths against.
//
// Registry keeps association order and never case-normalizes names. A later
// Associate for the same name overwrites the earlier value in place.
//
// # Basic Usage
//
//	r := binding.New()
//	r.Associate("user", map[string]any{"name": "Ann"})
//	r.Associate("count", 3)
//
//	v, ok := r.Lookup("user")
//
// # Initial Bindings
//
// Bindings loaded from a document keep the document's order:
//
//	doc := value.NewOrderedMap()
//	_ = yaml.Unmarshal(data, doc)
//	r := binding.FromOrdered(doc)
//
// # Thread Safety
//
// Each call takes the registry lock, so concurrent Associate and Lookup
// calls are safe. A format call performs several lookups without holding
// the lock in between; callers that associate while formatting on another
// goroutine must serialize the two to get a consistent result.
package binding
