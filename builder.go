// Package shorty provides functionalities for an embedded short-code allocation core.
//
// This file implements strategy-specific fluent builder APIs for creating and configuring Shortener instances.
// Builders are immutable - each method returns a new builder with the updated configuration.
package shorty

import (
	"github.com/hupe1980/shorty/allocator/digest"
	"github.com/hupe1980/shorty/allocator/sequential"
	"github.com/hupe1980/shorty/bloom"
	"github.com/hupe1980/shorty/snowflake"
	"github.com/hupe1980/shorty/store"
)

// =============================================================================
// Hash Builder (Immutable)
// =============================================================================

// Hash creates a new digest-based strategy builder.
// Hash allocation derives a deterministic candidate code from the target and
// chains through salted rehashes on collision.
//
// The builder is immutable - each method returns a new builder with the updated configuration.
// This ensures thread-safety and prevents accidental state sharing.
//
// Example:
//
//	s, err := shorty.Hash().
//	    SHA1().
//	    CodeLength(7).
//	    MaxRetries(1000).
//	    Build()
func Hash() HashBuilder {
	return HashBuilder{
		method:     digest.DefaultOptions.Method,
		codeLength: digest.DefaultOptions.CodeLength,
		maxRetries: digest.DefaultOptions.MaxRetries,
		slots:      bloom.DefaultSlots,
	}
}

// HashBuilder is an immutable fluent builder for creating digest-based Shortener instances.
// Each method returns a new builder with the updated configuration.
type HashBuilder struct {
	method     digest.Method
	codeLength int
	maxRetries int
	slots      uint
	store      store.Store
	membership *bloom.Filter
	logger     *Logger
	metrics    MetricsCollector
}

// MD5 sets the digest method to MD5.
func (b HashBuilder) MD5() HashBuilder {
	b.method = digest.MethodMD5
	return b
}

// SHA1 sets the digest method to SHA-1.
func (b HashBuilder) SHA1() HashBuilder {
	b.method = digest.MethodSHA1
	return b
}

// CRC32 sets the digest method to CRC-32 (IEEE).
// CRC-32 candidates are hex digits of the checksum and may be shorter than
// the configured code length.
func (b HashBuilder) CRC32() HashBuilder {
	b.method = digest.MethodCRC32
	return b
}

// Method sets the digest method by name.
// Unknown methods silently fall back to MD5 at allocation time.
func (b HashBuilder) Method(m digest.Method) HashBuilder {
	b.method = m
	return b
}

// CodeLength sets the code length in characters.
// Default: 7. Must be positive.
func (b HashBuilder) CodeLength(n int) HashBuilder {
	b.codeLength = n
	return b
}

// MaxRetries sets the collision chain budget per allocation.
// A budget of n admits the initial candidate plus n rehashes.
// Negative values chain without bound.
// Default: 1000.
func (b HashBuilder) MaxRetries(n int) HashBuilder {
	b.maxRetries = n
	return b
}

// Slots sets the bloom filter slot count used for membership probing.
// Only consulted when no membership filter is supplied via Membership.
// Default: 10000.
func (b HashBuilder) Slots(n uint) HashBuilder {
	b.slots = n
	return b
}

// Store sets the backing store for code-to-target mappings.
// Share one store across strategies to keep codes resolvable after a
// strategy swap.
func (b HashBuilder) Store(s store.Store) HashBuilder {
	b.store = s
	return b
}

// Membership sets the bloom filter used for candidate probing.
// Share one filter across allocators that share a store.
func (b HashBuilder) Membership(f *bloom.Filter) HashBuilder {
	b.membership = f
	return b
}

// Logger sets the structured logger for operation tracing.
func (b HashBuilder) Logger(l *Logger) HashBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b HashBuilder) Metrics(mc MetricsCollector) HashBuilder {
	b.metrics = mc
	return b
}

// Build creates the digest-based Shortener instance.
func (b HashBuilder) Build() (*Shortener, error) {
	st := b.store
	if st == nil {
		st = store.NewMapStore()
	}

	members := b.membership
	if members == nil {
		members = bloom.New(b.slots)
	}

	a, err := digest.New(func(o *digest.Options) {
		o.Method = b.method
		o.CodeLength = b.codeLength
		o.MaxRetries = b.maxRetries
		o.Store = st
		o.Membership = members
	})
	if err != nil {
		return nil, translateError(err)
	}

	var shortyOpts []Option
	if b.logger != nil {
		shortyOpts = append(shortyOpts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		shortyOpts = append(shortyOpts, WithMetricsCollector(b.metrics))
	}

	return New(a, shortyOpts...)
}

// MustBuild creates the Shortener instance, panicking on error.
func (b HashBuilder) MustBuild() *Shortener {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// =============================================================================
// Snowflake Builder (Immutable)
// =============================================================================

// Snowflake creates a new snowflake strategy builder.
// Snowflake allocation issues a fresh time-ordered ID per call and encodes it
// as base62, so identical targets receive distinct codes.
//
// The builder is immutable - each method returns a new builder with the updated configuration.
//
// Example:
//
//	s, err := shorty.Snowflake().
//	    Generator(sharedGen).
//	    Build()
func Snowflake() SnowflakeBuilder {
	return SnowflakeBuilder{
		slots: bloom.DefaultSlots,
	}
}

// SnowflakeBuilder is an immutable fluent builder for creating snowflake-based Shortener instances.
// Each method returns a new builder with the updated configuration.
type SnowflakeBuilder struct {
	generator  *snowflake.Generator
	slots      uint
	store      store.Store
	membership *bloom.Filter
	logger     *Logger
	metrics    MetricsCollector
}

// Generator sets the snowflake ID generator.
// Share one generator across allocators to keep codes unique between them.
func (b SnowflakeBuilder) Generator(g *snowflake.Generator) SnowflakeBuilder {
	b.generator = g
	return b
}

// Slots sets the bloom filter slot count used for membership diagnostics.
// Only consulted when no membership filter is supplied via Membership.
// Default: 10000.
func (b SnowflakeBuilder) Slots(n uint) SnowflakeBuilder {
	b.slots = n
	return b
}

// Store sets the backing store for code-to-target mappings.
// Share one store across strategies to keep codes resolvable after a
// strategy swap.
func (b SnowflakeBuilder) Store(s store.Store) SnowflakeBuilder {
	b.store = s
	return b
}

// Membership sets the bloom filter that issued codes are recorded in.
// Share one filter across allocators that share a store.
func (b SnowflakeBuilder) Membership(f *bloom.Filter) SnowflakeBuilder {
	b.membership = f
	return b
}

// Logger sets the structured logger for operation tracing.
func (b SnowflakeBuilder) Logger(l *Logger) SnowflakeBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b SnowflakeBuilder) Metrics(mc MetricsCollector) SnowflakeBuilder {
	b.metrics = mc
	return b
}

// Build creates the snowflake-based Shortener instance.
func (b SnowflakeBuilder) Build() (*Shortener, error) {
	gen := b.generator
	if gen == nil {
		gen = snowflake.New()
	}

	st := b.store
	if st == nil {
		st = store.NewMapStore()
	}

	members := b.membership
	if members == nil {
		members = bloom.New(b.slots)
	}

	a, err := sequential.New(func(o *sequential.Options) {
		o.Generator = gen
		o.Store = st
		o.Membership = members
	})
	if err != nil {
		return nil, translateError(err)
	}

	var shortyOpts []Option
	if b.logger != nil {
		shortyOpts = append(shortyOpts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		shortyOpts = append(shortyOpts, WithMetricsCollector(b.metrics))
	}

	return New(a, shortyOpts...)
}

// MustBuild creates the Shortener instance, panicking on error.
func (b SnowflakeBuilder) MustBuild() *Shortener {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
