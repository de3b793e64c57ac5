package shorty

import (
	"errors"
	"fmt"

	"github.com/hupe1980/shorty/allocator"
	"github.com/hupe1980/shorty/store"
)

var (
	// ErrExhausted is returned when Shorten gives up after exhausting its
	// collision chain budget without finding a free code.
	ErrExhausted = errors.New("code space exhausted")

	// ErrCodeExists is returned when a code cannot be stored because another
	// writer claimed it first. Digest-based allocation handles this internally
	// by chaining; it only surfaces from strategies without collision handling.
	ErrCodeExists = errors.New("code already taken")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Exhaustion unification.
	if errors.Is(err, allocator.ErrExhausted) {
		return fmt.Errorf("%w: %w", ErrExhausted, err)
	}

	// Store conflict unification.
	if errors.Is(err, store.ErrCodeExists) {
		return fmt.Errorf("%w: %w", ErrCodeExists, err)
	}

	return err
}
