// Package store defines the exact code→target mapping collaborator and an
// in-memory implementation.
//
// The store is authoritative: allocators persist every mapping here and
// lookups read from here. A code's target is immutable once written; there
// is no overwrite or delete surface.
package store

// Store is the exact mapping from short codes to their targets.
//
// Implementations must be safe for concurrent use and must reject a Save
// for a code that is already present.
type Store interface {
	// Save persists a (code, target) pair. Saving an existing code fails
	// with ErrCodeExists; the stored target is never replaced.
	Save(code, target string) error

	// Get returns the target for code, or false if code was never saved.
	Get(code string) (string, bool)

	// Len returns the number of stored mappings.
	Len() int
}
