package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		assert.Zero(t, rng.Bits(9)>>9)
	}
	assert.Zero(t, rng.Bits(0))
}

func TestMembers(t *testing.T) {
	rng := NewRNG(4711)

	ks := rng.Members(16, 0.5)
	seen := make(map[int]bool)
	for _, k := range ks {
		assert.GreaterOrEqual(t, k, 1)
		assert.LessOrEqual(t, k, 16)
		assert.False(t, seen[k], "duplicate member %d", k)
		seen[k] = true
	}

	assert.Len(t, rng.Members(8, 1), 8)
	assert.Empty(t, rng.Members(8, 0))
}

func TestOutOfRange(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		k := rng.OutOfRange(8)
		assert.True(t, k < 1 || k > 8, "got %d", k)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	first := rng.Uint64()
	rng.Reset()
	assert.Equal(t, first, rng.Uint64())
	assert.Equal(t, int64(4711), rng.Seed())
}
