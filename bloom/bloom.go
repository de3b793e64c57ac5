// Package bloom provides a fixed-size probabilistic membership filter used
// as a prefilter over allocated short codes.
//
// The filter answers "definitely absent" or "maybe present". Inserted values
// are never reported absent (no false negatives); never-inserted values may
// be reported present with a probability that grows with the fill ratio.
// There is no resizing or rotation: the filter degrades as load increases
// and is advisory only, never authoritative.
package bloom

import (
	"crypto/md5"
	"encoding/binary"
	"hash/crc32"
	"hash/fnv"
	"math"
	"math/bits"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// DefaultSlots is the default bit-vector size.
const DefaultSlots = 10000

// Filter is a fixed-slot Bloom filter over strings, safe for concurrent use.
//
// Each value maps to three slots via three independent hash functions: a
// general-purpose 64-bit hash, a CRC-32 checksum, and an md5 digest reduced
// modulo the slot count. Add sets all three bits; MayContain requires all
// three to be set.
type Filter struct {
	mu    sync.RWMutex
	bits  *bitset.BitSet
	slots uint64
	count uint64
}

// New creates a Filter with the given number of slots.
// A slot count of zero selects DefaultSlots.
func New(slots uint) *Filter {
	if slots == 0 {
		slots = DefaultSlots
	}
	return &Filter{
		bits:  bitset.New(slots),
		slots: uint64(slots),
	}
}

// Add records value in the filter.
func (f *Filter) Add(value string) {
	i1, i2, i3 := f.indexes(value)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.bits.Set(i1)
	f.bits.Set(i2)
	f.bits.Set(i3)
	f.count++
}

// MayContain reports whether value may have been added.
// A false result is definitive; a true result may be a false positive.
func (f *Filter) MayContain(value string) bool {
	i1, i2, i3 := f.indexes(value)

	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.bits.Test(i1) && f.bits.Test(i2) && f.bits.Test(i3)
}

// Count returns the number of Add calls. Informational only: values added
// more than once are counted each time.
func (f *Filter) Count() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.count
}

// Slots returns the bit-vector size.
func (f *Filter) Slots() uint64 {
	return f.slots
}

// FillRatio returns the fraction of slots currently set, in [0, 1].
// The false-positive probability is approximately FillRatio cubed.
func (f *Filter) FillRatio() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return float64(f.bits.Count()) / float64(f.slots)
}

// EstimatedFalsePositiveRate derives the current false-positive probability
// from the fill ratio, assuming independent hash functions.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return math.Pow(f.FillRatio(), 3)
}

// indexes computes the three slot positions for value.
func (f *Filter) indexes(value string) (uint, uint, uint) {
	h := fnv.New64a()
	h.Write([]byte(value)) // never fails
	i1 := uint(h.Sum64() % f.slots)

	i2 := uint(uint64(crc32.ChecksumIEEE([]byte(value))) % f.slots)

	// The md5 digest is reduced as a 128-bit big-endian integer. Folding
	// the high word first keeps the two-word division in range.
	sum := md5.Sum([]byte(value))
	hi := binary.BigEndian.Uint64(sum[:8])
	lo := binary.BigEndian.Uint64(sum[8:])
	_, rem := bits.Div64(hi%f.slots, lo, f.slots)
	i3 := uint(rem)

	return i1, i2, i3
}
