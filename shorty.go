// Package shorty provides an embedded short-code allocation core for URL shorteners.
//
// Shorty turns target URLs into compact base62 codes and resolves them back,
// with production-ready features including:
//
//   - Two allocation strategies: digest hashing (MD5, SHA-1, CRC32) and snowflake sequence IDs
//   - Fluent builders: Hash(), Snowflake()
//   - Deterministic collision chaining for digest-based allocation
//   - Bloom filter membership probing for O(1) candidate checks
//   - Thread-safe allocation with per-strategy statistics
//   - Pluggable code storage behind a small Store interface (in-memory MapStore included)
//   - Structured logging (log/slog) and pluggable metrics collection
//
// # Strategy Selection
//
// Choose the right strategy for your workload:
//   - Hash: deterministic candidates, fixed-length codes (7 chars by default),
//     collision chaining when candidates are taken
//   - Snowflake: a fresh time-ordered code per call, no collision handling needed,
//     codes grow slowly with time
//
// # Quick Start (Fluent API)
//
// Create a hash-based shortener with the fluent builder:
//
//	ctx := context.Background()
//	s, err := shorty.Hash().
//	    MD5().             // Digest method
//	    CodeLength(7).     // Code length in characters
//	    MaxRetries(1000).  // Collision chain budget
//	    Build()
//	if err != nil {
//	    panic(err)
//	}
//
//	code, err := s.Shorten(ctx, "https://example.com/a")
//	if err != nil {
//	    panic(err)
//	}
//
//	target, err := s.Resolve(ctx, code)
//
// Batch shorten to amortize bookkeeping across many targets:
//
//	result := s.BatchShorten(ctx, []string{
//	    "https://example.com/a",
//	    "https://example.com/b",
//	})
//
// Snowflake-based shortener:
//
//	s, err := shorty.Snowflake().
//	    Build()
//
// # Strategy Swapping
//
// The allocation strategy can be swapped at runtime. Build the replacement
// allocator directly and hand it over:
//
//	a, err := sequential.New(func(o *sequential.Options) {
//	    o.Store = sharedStore
//	})
//	if err != nil {
//	    panic(err)
//	}
//	if err := s.SetStrategy(a); err != nil {
//	    panic(err)
//	}
//
// Codes issued before the swap keep resolving only when both strategies share
// the same Store.
package shorty

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/shorty/allocator"
)

var (
	// ErrNotFound is returned when a code is not found.
	ErrNotFound = errors.New("not found")
)

// Shortener maps target URLs to short codes and resolves them back.
type Shortener struct {
	mu       sync.Mutex // Protects strategy
	strategy allocator.Allocator
	metrics  MetricsCollector
	logger   *Logger
}

// New creates a new Shortener using the given allocation strategy.
// Most users should prefer the builders (Hash(), Snowflake()) which assemble
// the strategy and its collaborators in one place.
func New(strategy allocator.Allocator, optFns ...Option) (*Shortener, error) {
	if strategy == nil {
		return nil, fmt.Errorf("shorty: strategy must not be nil")
	}

	opts := applyOptions(optFns)

	return &Shortener{
		strategy: strategy,
		metrics:  opts.metricsCollector,
		logger:   opts.logger,
	}, nil
}

// Shorten allocates a short code for the given target URL.
func (s *Shortener) Shorten(ctx context.Context, target string) (string, error) {
	start := time.Now()
	code, err := s.current().Allocate(target)
	duration := time.Since(start)
	err = translateError(err)
	s.metrics.RecordShorten(duration, err)
	s.logger.LogShorten(ctx, code, len(target), err)
	return code, err
}

// BatchShortenResult represents the result of a batch shorten.
// Codes and Errors are aligned with the input targets: Codes[i] holds the code
// for targets[i] when Errors[i] is nil, and is empty otherwise.
type BatchShortenResult struct {
	Codes  []string
	Errors []error
}

// BatchShorten allocates codes for multiple targets.
// Allocation continues past per-target failures; inspect Errors for the
// outcome of each target.
func (s *Shortener) BatchShorten(ctx context.Context, targets []string) BatchShortenResult {
	start := time.Now()
	result := BatchShortenResult{
		Codes:  make([]string, len(targets)),
		Errors: make([]error, len(targets)),
	}

	failed := 0
	for i, target := range targets {
		code, err := s.current().Allocate(target)
		if err != nil {
			result.Errors[i] = translateError(err)
			failed++
			continue
		}
		result.Codes[i] = code
	}

	duration := time.Since(start)
	s.metrics.RecordBatchShorten(len(targets), failed, duration)
	s.logger.LogBatchShorten(ctx, len(targets), failed)
	return result
}

// Resolve returns the target URL a code was allocated for.
func (s *Shortener) Resolve(ctx context.Context, code string) (string, error) {
	start := time.Now()
	target, ok := s.current().Resolve(code)

	var err error
	if !ok {
		err = ErrNotFound
	}

	duration := time.Since(start)
	s.metrics.RecordResolve(duration, err)
	s.logger.LogResolve(ctx, code, err)

	if err != nil {
		return "", err
	}

	return target, nil
}

// SetStrategy swaps the allocation strategy at runtime.
// Codes issued by the previous strategy keep resolving only when both
// strategies share the same Store.
func (s *Shortener) SetStrategy(strategy allocator.Allocator) error {
	if strategy == nil {
		return fmt.Errorf("shorty: strategy must not be nil")
	}

	s.mu.Lock()
	from := s.strategy.Name()
	s.strategy = strategy
	s.mu.Unlock()

	s.logger.LogSetStrategy(from, strategy.Name())
	return nil
}

// Strategy returns the name of the active allocation strategy.
func (s *Shortener) Strategy() string {
	return s.current().Name()
}

// Stats returns statistics about the active allocation strategy.
func (s *Shortener) Stats() allocator.Stats {
	return s.current().Stats()
}

func (s *Shortener) current() allocator.Allocator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strategy
}
