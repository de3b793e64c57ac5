// Package sequential implements the ID-based allocation strategy.
//
// Codes are base62 renderings of snowflake IDs. Uniqueness is inherited
// from the generator, so there is no collision detection and no retry: the
// membership filter is updated purely as a diagnostic record.
package sequential

import (
	"sync/atomic"

	"github.com/hupe1980/shorty/allocator"
	"github.com/hupe1980/shorty/base62"
	"github.com/hupe1980/shorty/bloom"
	"github.com/hupe1980/shorty/snowflake"
	"github.com/hupe1980/shorty/store"
)

// Compile-time check to ensure Allocator satisfies the strategy interface.
var _ allocator.Allocator = (*Allocator)(nil)

// Options contains configuration options for the sequential allocator.
type Options struct {
	// Generator is the unique ID source. Defaults to a fresh generator;
	// allocators sharing a process should share one to keep IDs globally
	// ordered.
	Generator *snowflake.Generator

	// Store is the exact code→target mapping. Defaults to a fresh
	// in-memory store.
	Store store.Store

	// Membership receives every allocated code as a diagnostic record.
	// Defaults to a fresh filter with bloom.DefaultSlots slots.
	Membership *bloom.Filter
}

// DefaultOptions contains the default configuration options for the
// sequential allocator.
var DefaultOptions = Options{}

// Allocator derives codes from monotonic snowflake IDs.
type Allocator struct {
	gen     *snowflake.Generator
	store   store.Store
	members *bloom.Filter

	allocated atomic.Int64
}

// New creates a sequential allocator.
func New(optFns ...func(o *Options)) (*Allocator, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Generator == nil {
		opts.Generator = snowflake.New()
	}
	if opts.Store == nil {
		opts.Store = store.NewMapStore()
	}
	if opts.Membership == nil {
		opts.Membership = bloom.New(bloom.DefaultSlots)
	}

	return &Allocator{
		gen:     opts.Generator,
		store:   opts.Store,
		members: opts.Membership,
	}, nil
}

// Allocate derives a code from the next snowflake ID and persists the
// mapping. Identical targets always receive fresh codes.
func (a *Allocator) Allocate(target string) (string, error) {
	code := base62.Encode(uint64(a.gen.Generate()))

	if err := a.store.Save(code, target); err != nil {
		return "", err
	}

	a.members.Add(code)
	a.allocated.Add(1)
	return code, nil
}

// Resolve returns the target stored under code.
func (a *Allocator) Resolve(code string) (string, bool) {
	return a.store.Get(code)
}

// Name identifies the strategy.
func (a *Allocator) Name() string {
	return "sequential"
}

// Stats returns allocation counters. Collisions is always zero for this
// strategy.
func (a *Allocator) Stats() allocator.Stats {
	return allocator.Stats{
		Allocated: a.allocated.Load(),
	}
}
