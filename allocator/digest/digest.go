// Package digest implements the deterministic hash allocation strategy.
//
// A candidate code is a fixed-length prefix of the target's digest. When
// the membership filter reports the candidate as possibly taken, the
// allocator derives the next candidate by appending a fixed salt and
// rehashing with md5, repeating until the filter reports the candidate as
// definitely absent. For a fixed method and a fresh store the same target
// therefore always yields the same code.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"hash/crc32"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/shorty/allocator"
	"github.com/hupe1980/shorty/bloom"
	"github.com/hupe1980/shorty/store"
)

// Compile-time check to ensure Allocator satisfies the strategy interface.
var _ allocator.Allocator = (*Allocator)(nil)

// Method selects the digest algorithm for the first candidate.
//
// Unrecognized values behave as MethodMD5: the fallback is silent and the
// caller is not notified of the substitution.
type Method string

const (
	// MethodMD5 uses the hex md5 digest of the target. This is the default.
	MethodMD5 Method = "md5"

	// MethodSHA1 uses the hex sha1 digest of the target.
	MethodSHA1 Method = "sha1"

	// MethodCRC32 uses the IEEE CRC-32 checksum rendered as unpadded
	// lowercase hex. The rendering can be shorter than the configured code
	// length; prefix truncation never pads.
	MethodCRC32 Method = "crc32"
)

const (
	// DefaultCodeLength is the candidate prefix length in symbols.
	DefaultCodeLength = 7

	// DefaultMaxRetries bounds the rehash steps after the initial
	// candidate before Allocate fails with ErrExhausted.
	DefaultMaxRetries = 1000

	// collisionSalt is appended to a taken candidate before rehashing.
	collisionSalt = "unique"
)

// Options contains configuration options for the digest allocator.
type Options struct {
	// Method is the digest algorithm for first candidates. Unrecognized
	// values fall back to md5 silently.
	Method Method

	// CodeLength is the number of digest symbols kept as the code.
	// It must be positive.
	CodeLength int

	// MaxRetries bounds collision-resolution rehashes per allocation.
	// Zero allows only the initial candidate; a negative value removes
	// the bound entirely.
	MaxRetries int

	// Store is the exact code→target mapping. Defaults to a fresh
	// in-memory store.
	Store store.Store

	// Membership is the filter consulted before every candidate probe.
	// Defaults to a fresh filter with bloom.DefaultSlots slots.
	Membership *bloom.Filter
}

// DefaultOptions contains the default configuration options for the digest
// allocator.
var DefaultOptions = Options{
	Method:     MethodMD5,
	CodeLength: DefaultCodeLength,
	MaxRetries: DefaultMaxRetries,
}

// Allocator derives codes deterministically from target digests.
//
// The probe-then-persist sequence runs under a single mutex, so two
// concurrent calls can never both observe a candidate as absent and both
// write it.
type Allocator struct {
	mu         sync.Mutex
	method     Method
	codeLength int
	maxRetries int
	store      store.Store
	members    *bloom.Filter

	allocated  atomic.Int64
	collisions atomic.Int64
}

// New creates a digest allocator.
func New(optFns ...func(o *Options)) (*Allocator, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.CodeLength <= 0 {
		return nil, fmt.Errorf("digest: code length must be positive, got %d", opts.CodeLength)
	}

	if opts.Store == nil {
		opts.Store = store.NewMapStore()
	}
	if opts.Membership == nil {
		opts.Membership = bloom.New(bloom.DefaultSlots)
	}

	return &Allocator{
		method:     opts.Method,
		codeLength: opts.CodeLength,
		maxRetries: opts.MaxRetries,
		store:      opts.Store,
		members:    opts.Membership,
	}, nil
}

// Allocate derives a code for target and persists the mapping.
//
// Candidates reported as possibly taken by the membership filter are
// skipped via the salt-and-rehash chain. The filter has no false negatives,
// so a code this allocator wrote is never picked twice; false positives
// only cost extra chain steps and keep the first-candidate determinism for
// fresh stores intact.
func (a *Allocator) Allocate(target string) (string, error) {
	code := truncate(a.digest(target), a.codeLength)

	a.mu.Lock()
	defer a.mu.Unlock()

	for attempt := 0; a.maxRetries < 0 || attempt <= a.maxRetries; attempt++ {
		if a.members.MayContain(code) {
			a.collisions.Add(1)
			code = a.rehash(code)
			continue
		}

		if err := a.store.Save(code, target); err != nil {
			if errors.Is(err, store.ErrCodeExists) {
				// A shared store holds codes this allocator's filter has
				// never seen. Record the stranger and keep chaining.
				a.members.Add(code)
				a.collisions.Add(1)
				code = a.rehash(code)
				continue
			}
			return "", err
		}

		a.members.Add(code)
		a.allocated.Add(1)
		return code, nil
	}

	return "", fmt.Errorf("%w after %d candidates", allocator.ErrExhausted, a.maxRetries+1)
}

// Resolve returns the target stored under code.
func (a *Allocator) Resolve(code string) (string, bool) {
	return a.store.Get(code)
}

// Name identifies the strategy, echoing the configured method verbatim.
func (a *Allocator) Name() string {
	return "hash-" + string(a.method)
}

// Stats returns allocation counters.
func (a *Allocator) Stats() allocator.Stats {
	return allocator.Stats{
		Allocated:  a.allocated.Load(),
		Collisions: a.collisions.Load(),
	}
}

// Method returns the configured digest method.
func (a *Allocator) Method() Method {
	return a.method
}

// digest computes the full textual digest of target under the configured
// method.
func (a *Allocator) digest(target string) string {
	switch a.method {
	case MethodSHA1:
		sum := sha1.Sum([]byte(target))
		return hex.EncodeToString(sum[:])
	case MethodCRC32:
		return strconv.FormatUint(uint64(crc32.ChecksumIEEE([]byte(target))), 16)
	default:
		// md5, and the silent fallback for unrecognized methods.
		sum := md5.Sum([]byte(target))
		return hex.EncodeToString(sum[:])
	}
}

// rehash derives the next candidate in the collision chain. The chain
// always uses md5 regardless of the configured method.
func (a *Allocator) rehash(code string) string {
	sum := md5.Sum([]byte(code + collisionSalt))
	return truncate(hex.EncodeToString(sum[:]), a.codeLength)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
