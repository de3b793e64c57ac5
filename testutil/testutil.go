package testutil

import (
	"math"
	"math/rand"
	"strings"
	"sync"
)

var hosts = []string{
	"example.com",
	"example.org",
	"go.dev",
	"pkg.go.dev",
	"github.com",
}

const pathAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// URL generates a random target URL.
func (r *RNG) URL() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.urlLocked()
}

// URLs generates num random target URLs.
// Locks only once per call (preferred over calling URL in a loop).
func (r *RNG) URLs(num int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	urls := make([]string, num)
	for i := range num {
		urls[i] = r.urlLocked()
	}

	return urls
}

// urlLocked is the internal implementation (caller must hold lock).
func (r *RNG) urlLocked() string {
	var sb strings.Builder

	sb.WriteString("https://")
	sb.WriteString(hosts[r.rand.Intn(len(hosts))])

	segments := 1 + r.rand.Intn(3)
	for range segments {
		sb.WriteByte('/')
		length := 4 + r.rand.Intn(8)
		for range length {
			sb.WriteByte(pathAlphabet[r.rand.Intn(len(pathAlphabet))])
		}
	}

	return sb.String()
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
// This is how real-world data is distributed (power law).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	// Use rejection sampling from uniform distribution
	// This is mathematically correct for Zipf distribution
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// ZipfURLs generates num target draws over a pool of distinct URLs with
// Zipfian skew. A handful of hot targets dominate (when s=1.5), which is how
// shortener traffic is distributed and what drives digest collision chains.
func (r *RNG) ZipfURLs(num, distinct int, s float64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	pool := make([]string, distinct)
	for i := range distinct {
		pool[i] = r.urlLocked()
	}

	targets := make([]string, num)
	for i := range num {
		targets[i] = pool[r.zipfLocked(distinct, s)]
	}

	return targets
}

// AllDistinct reports whether no value occurs twice in values.
func AllDistinct(values []string) bool {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}
