// Package allocator defines the code-allocation strategy contract shared by
// the concrete allocators.
//
// An allocator turns a target into a short code and persists the mapping in
// its exact store. The two implementations differ in how candidates are
// derived: digest computes them deterministically from the target and
// resolves collisions by rehashing; sequential derives them from a
// monotonic ID generator and never collides.
package allocator

import "errors"

// ErrExhausted is returned when collision resolution gives up after the
// configured number of candidates.
//
// This is an allocator-layer sentinel used internally; the shorty package
// may translate it into its public error contract.
var ErrExhausted = errors.New("allocation exhausted")

// Allocator is the allocation strategy capability.
//
// Implementations own their exact store and membership filter; two
// allocator instances share state only when constructed over the same
// collaborators.
type Allocator interface {
	// Allocate derives a code for target, persists the mapping, and
	// returns the code.
	Allocate(target string) (string, error)

	// Resolve returns the target stored under code, or false if the code
	// was never allocated here.
	Resolve(code string) (string, bool)

	// Name identifies the strategy for logs and stats output.
	Name() string

	// Stats returns allocation counters.
	Stats() Stats
}

// Stats reports counters accumulated by an allocator.
type Stats struct {
	// Allocated is the number of codes successfully allocated.
	Allocated int64

	// Collisions is the number of rehash steps taken while resolving
	// candidate collisions. Always zero for the sequential strategy.
	Collisions int64
}
