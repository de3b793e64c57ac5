package snowflake

import "time"

// ID packs a wall-clock reading and a per-tick counter into 64 bits.
//
// Format: [Timestamp:52 bits][Sequence:12 bits]
//
//	→ unix milliseconds in the high bits
//	→ 4096 IDs per millisecond tick
//	→ numeric order equals generation order
//
// Keeping the timestamp in the high bits makes later IDs compare greater,
// so sorted IDs are also time-ordered without decoding.
type ID uint64

const (
	timestampBits = 52
	sequenceBits  = 12
	sequenceMask  = (1 << sequenceBits) - 1 // 0xFFF

	// MaxSequence is the highest sequence value within one millisecond tick.
	MaxSequence = sequenceMask // 4095
)

// NewID packs a unix-millisecond timestamp and a sequence counter.
//
// Example:
//
//	id := NewID(1700000000000, 7) // tick 1700000000000, 8th ID of that tick
func NewID(unixMilli int64, sequence uint64) ID {
	return ID(uint64(unixMilli)<<sequenceBits | sequence&sequenceMask)
}

// Timestamp extracts the unix-millisecond timestamp (high 52 bits).
func (id ID) Timestamp() int64 {
	return int64(id >> sequenceBits)
}

// Sequence extracts the per-tick counter (low 12 bits).
func (id ID) Sequence() uint64 {
	return uint64(id) & sequenceMask
}

// Time converts the timestamp component to a time.Time.
func (id ID) Time() time.Time {
	return time.UnixMilli(id.Timestamp())
}
