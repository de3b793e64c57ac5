// Package base62 implements positional re-encoding of unsigned 64-bit
// integers over the 62-symbol alphabet 0-9a-zA-Z.
//
// Encode produces the shortest representation with no leading zero symbols,
// most-significant symbol first; zero encodes as "0". Decode is the exact
// inverse for canonical input and reports invalid symbols and overflow
// explicitly.
package base62

import (
	"errors"
	"fmt"
	"math"
)

// Alphabet maps digit values 0..61 to their symbols, in order: decimal
// digits, lowercase letters, uppercase letters.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const base = uint64(len(Alphabet))

var (
	// ErrEmptyInput is returned when decoding an empty string.
	ErrEmptyInput = errors.New("empty base62 string")

	// ErrInvalidSymbol is returned when decoding encounters a byte outside
	// the alphabet.
	ErrInvalidSymbol = errors.New("invalid base62 symbol")

	// ErrOverflow is returned when the decoded value exceeds 64 bits.
	ErrOverflow = errors.New("base62 value overflows uint64")
)

// Encode renders n in base 62, most-significant symbol first.
func Encode(n uint64) string {
	if n == 0 {
		return "0"
	}

	// 62^11 > 2^64, so 11 symbols always suffice.
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = Alphabet[n%base]
		n /= base
	}

	return string(buf[i:])
}

// Decode parses a base62 string back into its integer value.
// Leading zero symbols are accepted even though Encode never emits them.
func Decode(s string) (uint64, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}

	var n uint64
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, s[i], i)
		}
		if n > (math.MaxUint64-d)/base {
			return 0, ErrOverflow
		}
		n = n*base + d
	}

	return n, nil
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 36, true
	default:
		return 0, false
	}
}
