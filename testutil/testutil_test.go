package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLs(t *testing.T) {
	rng := NewRNG(4711)

	urls := rng.URLs(100)

	assert.Equal(t, 100, len(urls))
	for _, u := range urls {
		assert.True(t, strings.HasPrefix(u, "https://"), "unexpected url %q", u)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	u1 := rng.URLs(10)

	rng.Reset()
	u2 := rng.URLs(10)

	assert.Equal(t, u1, u2)
}

func TestIntn(t *testing.T) {
	rng := NewRNG(4711)

	for i := 0; i < 100; i++ {
		v := rng.Intn(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}

func TestZipfURLs(t *testing.T) {
	rng := NewRNG(42)

	targets := rng.ZipfURLs(10000, 100, 1.5)

	assert.Equal(t, 10000, len(targets))

	counts := make(map[string]int)
	for _, target := range targets {
		counts[target]++
	}
	assert.LessOrEqual(t, len(counts), 100)

	// Find the most frequent target
	var maxCount int
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	// The hottest target should dominate the draw (heavy tail)
	hotRatio := float64(maxCount) / float64(len(targets))
	assert.Greater(t, hotRatio, 0.2, "hottest target should cover >20%% of draws")
}

func TestAllDistinct(t *testing.T) {
	assert.True(t, AllDistinct(nil))
	assert.True(t, AllDistinct([]string{"a", "b", "c"}))
	assert.False(t, AllDistinct([]string{"a", "b", "a"}))
}
