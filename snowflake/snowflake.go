// Package snowflake generates monotonically increasing 64-bit IDs from a
// single process, combining a millisecond timestamp with a per-tick sequence
// counter. Generation is safe for concurrent callers and never fails.
package snowflake

import (
	"sync"
	"time"
)

// Generator produces unique, time-ordered IDs.
//
// The timestamp/sequence pair is updated as one critical section under a
// single mutex, so concurrent callers never observe or produce duplicates.
// The zero value is not usable; construct with New.
type Generator struct {
	mu       sync.Mutex
	last     int64  // last observed millisecond tick
	sequence uint64 // counter within the current tick

	// now is the clock source, swappable in tests.
	now func() int64
}

// New creates a Generator backed by the wall clock.
func New() *Generator {
	return &Generator{
		last: -1, // no tick observed yet
		now:  func() int64 { return time.Now().UnixMilli() },
	}
}

// Generate returns the next ID.
//
// Within one millisecond tick the sequence counter increments, giving up to
// 4096 IDs per tick. When the counter wraps, Generate spins until the clock
// reaches the next tick instead of overflowing into the timestamp bits. If
// the clock moves backwards, generation stays on the last observed tick so
// IDs remain monotonic; a regression lasting longer than the sequence space
// stalls callers until the clock catches up.
func (g *Generator) Generate() ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if now < g.last {
		now = g.last
	}

	if now == g.last {
		g.sequence = (g.sequence + 1) & sequenceMask
		if g.sequence == 0 {
			// Tick exhausted. Wait for the clock to advance.
			for now <= g.last {
				now = g.now()
			}
		}
	} else {
		g.sequence = 0
	}

	g.last = now
	return NewID(now, g.sequence)
}
