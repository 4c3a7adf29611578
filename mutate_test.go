package natbitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sup2point0/natbitset/testutil"
)

func TestInsert(t *testing.T) {
	b := Byteset()

	assert.True(t, b.Insert(1))
	assert.Equal(t, Byteset(1), b)

	assert.False(t, b.Insert(1))
	assert.Equal(t, Byteset(1), b)

	assert.Panics(t, func() { b.Insert(9) })
	assert.Panics(t, func() { b.Insert(0) })
	assert.Equal(t, Byteset(1), b)
}

func TestTryInsertRemove(t *testing.T) {
	d := MustDomain[uint16](9)
	b := d.None()

	inserted, err := b.TryInsert(9)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = b.TryInsert(10)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.False(t, inserted)
	assert.Equal(t, d.MustFrom(9), b)

	removed, err := b.TryRemove(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.False(t, removed)

	removed, err = b.TryRemove(9)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = b.TryRemove(9)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.True(t, b.IsEmpty())
}

func TestInsertRemoveEveryMember(t *testing.T) {
	for _, n := range []int{1, 7, 8} {
		d := MustDomain[uint8](n)
		for k := 1; k <= n; k++ {
			b := d.None()
			b.Insert(k)
			assert.True(t, b.Contains(k))
			b.Remove(k)
			assert.False(t, b.Contains(k))
		}
	}

	d := MustDomain[uint64](64)
	for k := 1; k <= 64; k++ {
		b := d.All()
		assert.True(t, b.Remove(k))
		assert.False(t, b.Contains(k))
		assert.Equal(t, 63, b.Len())
	}
}

func TestOutOfRangeMutations(t *testing.T) {
	rng := testutil.NewRNG(4711)
	d := MustDomain[uint16](12)
	b := d.MustFrom(rng.Members(12, 0.5)...)
	before := b

	for range 200 {
		k := rng.OutOfRange(12)

		_, err := b.TryInsert(k)
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = b.TryRemove(k)
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = b.RemoveNonEmpty(k)
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = b.TryWith(k)
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = b.TryWithout(k)
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.False(t, b.Contains(k))

		assert.Panics(t, func() { b.Remove(k) })
		assert.Panics(t, func() { b.With(k) })
		assert.Panics(t, func() { b.Without(k) })
	}
	assert.Equal(t, before, b)
}

func TestPanicValue(t *testing.T) {
	b := Byteset()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}()
	b.Insert(42)
}

func TestRemoveNonEmpty(t *testing.T) {
	d := MustDomain[uint8](4)
	b := d.All()

	for _, k := range []int{1, 2, 3} {
		removed, err := b.RemoveNonEmpty(k)
		require.NoError(t, err)
		assert.True(t, removed)
	}
	require.Equal(t, d.MustFrom(4), b)

	removed, err := b.RemoveNonEmpty(4)
	assert.ErrorIs(t, err, ErrEmptiedBitset)
	assert.False(t, removed)
	assert.Equal(t, d.MustFrom(4), b)

	// Removing an absent member leaves a non-empty set alone.
	removed, err = b.RemoveNonEmpty(2)
	require.NoError(t, err)
	assert.False(t, removed)

	assert.Panics(t, func() { b.MustRemoveNonEmpty(4) })
	assert.Equal(t, d.MustFrom(4), b)
}

func TestClear(t *testing.T) {
	b := ByteRange(1, 8)
	b.Clear()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, Byteset(), b)
}

func TestRetain(t *testing.T) {
	b := ByteRange(1, 8)
	b.Retain(func(k int) bool { return k%2 == 0 })
	assert.Equal(t, Byteset(2, 4, 6, 8), b)

	b.Retain(func(int) bool { return false })
	assert.True(t, b.IsEmpty())
}

func TestRetainNonEmpty(t *testing.T) {
	b := ByteRange(1, 8)
	require.NoError(t, b.RetainNonEmpty(func(k int) bool { return k > 6 }))
	assert.Equal(t, Byteset(7, 8), b)

	err := b.RetainNonEmpty(func(k int) bool { return k < 3 })
	assert.ErrorIs(t, err, ErrEmptiedBitset)
	assert.Equal(t, Byteset(7, 8), b)

	tests := []struct {
		name string
		set  Bitset[uint8]
		keep func(int) bool
	}{
		{"empty set", Byteset(), func(int) bool { return true }},
		{"single", Byteset(1), func(int) bool { return false }},
		{"full", ByteRange(1, 8), func(int) bool { return false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.set
			assert.Panics(t, func() { b.MustRetainNonEmpty(tt.keep) })
			assert.Equal(t, tt.set, b)
		})
	}
}

func TestIntersectNonEmpty(t *testing.T) {
	b := ByteRange(1, 4)
	require.NoError(t, b.IntersectNonEmpty(Byteset(4, 5)))
	assert.Equal(t, Byteset(4), b)

	tests := []struct {
		name        string
		left, right Bitset[uint8]
	}{
		{"both empty", Byteset(), Byteset()},
		{"empty left", Byteset(), ByteRange(1, 8)},
		{"disjoint", ByteRange(1, 4), ByteRange(5, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.left
			err := b.IntersectNonEmpty(tt.right)
			assert.ErrorIs(t, err, ErrEmptiedBitset)
			assert.Equal(t, tt.left, b)
			assert.Panics(t, func() { b.MustIntersectNonEmpty(tt.right) })
		})
	}
}

func TestInPlaceAlgebra(t *testing.T) {
	b := Byteset(1, 2, 3, 4)
	b.IntersectWith(Byteset(1, 2, 5))
	assert.Equal(t, Byteset(1, 2), b)

	b.UnionWith(Byteset(7))
	assert.Equal(t, Byteset(1, 2, 7), b)

	b.DifferenceWith(Byteset(2, 3))
	assert.Equal(t, Byteset(1, 7), b)

	b.SymmetricDifferenceWith(Byteset(7, 8))
	assert.Equal(t, Byteset(1, 8), b)
}

func TestWithWithout(t *testing.T) {
	b := Byteset(1, 2)

	c := b.With(3)
	assert.Equal(t, Byteset(1, 2, 3), c)
	assert.Equal(t, Byteset(1, 2), b)

	c = c.Without(1)
	assert.Equal(t, Byteset(2, 3), c)

	// Idempotent, like Insert.
	assert.Equal(t, b.With(2), b)
	assert.Equal(t, b.With(3).With(3), b.With(3))

	c, err := b.TryWith(8)
	require.NoError(t, err)
	assert.Equal(t, Byteset(1, 2, 8), c)

	c, err = b.TryWithout(2)
	require.NoError(t, err)
	assert.Equal(t, Byteset(1), c)
}
