package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/shorty"
	"github.com/hupe1980/shorty/allocator/sequential"
	"github.com/hupe1980/shorty/bloom"
	"github.com/hupe1980/shorty/store"
	"github.com/hupe1980/shorty/testutil"
)

func TestAllocationLifecycle(t *testing.T) {
	testCases := []struct {
		name    string
		factory func(t *testing.T) *shorty.Shortener
	}{
		{
			name: "Hash",
			factory: func(t *testing.T) *shorty.Shortener {
				s, err := shorty.Hash().Build()
				require.NoError(t, err)
				return s
			},
		},
		{
			name: "Snowflake",
			factory: func(t *testing.T) *shorty.Shortener {
				s, err := shorty.Snowflake().Build()
				require.NoError(t, err)
				return s
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("RoundTrip", func(t *testing.T) {
				s := tc.factory(t)

				code, err := s.Shorten(ctx, "https://example.com/a")
				require.NoError(t, err)
				require.NotEmpty(t, code)

				target, err := s.Resolve(ctx, code)
				require.NoError(t, err)
				assert.Equal(t, "https://example.com/a", target)
			})

			t.Run("ResolveAbsent", func(t *testing.T) {
				s := tc.factory(t)

				_, err := s.Resolve(ctx, "doesNotExist")
				assert.ErrorIs(t, err, shorty.ErrNotFound)
			})

			t.Run("PairwiseDistinct", func(t *testing.T) {
				s := tc.factory(t)

				// Repeating the same target must still yield fresh codes.
				codes := make([]string, 0, 100)
				for i := 0; i < 100; i++ {
					code, err := s.Shorten(ctx, "https://example.com/a")
					require.NoError(t, err)
					codes = append(codes, code)
				}

				assert.True(t, testutil.AllDistinct(codes))
				assert.Equal(t, int64(100), s.Stats().Allocated)

				for _, code := range codes {
					target, err := s.Resolve(ctx, code)
					require.NoError(t, err)
					require.Equal(t, "https://example.com/a", target)
				}
			})
		})
	}
}

func TestHashDeterministicAcrossInstances(t *testing.T) {
	ctx := context.Background()

	// Two shorteners with independent stores derive the same candidate for
	// the same target.
	s1, err := shorty.Hash().Build()
	require.NoError(t, err)
	s2, err := shorty.Hash().Build()
	require.NoError(t, err)

	c1, err := s1.Shorten(ctx, "https://example.com/a")
	require.NoError(t, err)
	c2, err := s2.Shorten(ctx, "https://example.com/a")
	require.NoError(t, err)

	assert.Equal(t, "cd69b81", c1)
	assert.Equal(t, c1, c2)
}

func TestHashCollisionChainWalk(t *testing.T) {
	ctx := context.Background()

	s, err := shorty.Hash().Build()
	require.NoError(t, err)

	// The salted rehash chain from the base candidate is deterministic.
	want := []string{"cd69b81", "c8a518a", "96476f2", "a740b16"}
	for i, expected := range want {
		code, err := s.Shorten(ctx, "https://example.com/a")
		require.NoError(t, err)
		assert.Equal(t, expected, code, "allocation %d", i)
	}

	stats := s.Stats()
	assert.Equal(t, int64(4), stats.Allocated)
	assert.Equal(t, int64(6), stats.Collisions)
}

func TestStrategySwapLifecycle(t *testing.T) {
	ctx := context.Background()

	db := store.NewMapStore()
	members := bloom.New(bloom.DefaultSlots)

	s, err := shorty.Hash().
		Store(db).
		Membership(members).
		Build()
	require.NoError(t, err)

	hashCodes := make([]string, 0, 3)
	for _, target := range []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	} {
		code, err := s.Shorten(ctx, target)
		require.NoError(t, err)
		hashCodes = append(hashCodes, code)
	}

	seq, err := sequential.New(func(o *sequential.Options) {
		o.Store = db
		o.Membership = members
	})
	require.NoError(t, err)
	require.NoError(t, s.SetStrategy(seq))

	seqCode, err := s.Shorten(ctx, "https://example.com/a")
	require.NoError(t, err)

	// Everything issued before and after the swap resolves via the shared store.
	for i, target := range []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	} {
		got, err := s.Resolve(ctx, hashCodes[i])
		require.NoError(t, err)
		assert.Equal(t, target, got)
	}

	got, err := s.Resolve(ctx, seqCode)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", got)

	assert.Equal(t, 4, db.Len())
}

func TestZipfWorkload(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(42)

	s, err := shorty.Hash().Build()
	require.NoError(t, err)

	targets := rng.ZipfURLs(1000, 100, 1.5)

	codes := make([]string, 0, len(targets))
	for _, target := range targets {
		code, err := s.Shorten(ctx, target)
		require.NoError(t, err)
		codes = append(codes, code)
	}

	assert.True(t, testutil.AllDistinct(codes))
	assert.Equal(t, int64(1000), s.Stats().Allocated)

	// Repeated hot targets force collision chains.
	assert.Greater(t, s.Stats().Collisions, int64(0))

	for i, code := range codes {
		target, err := s.Resolve(ctx, code)
		require.NoError(t, err)
		require.Equal(t, targets[i], target)
	}
}
