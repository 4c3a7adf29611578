package natbitset

import (
	"iter"
	"math/bits"
)

// Values returns an iterator over the members in ascending order.
//
// The iterator scans the word lazily and may be ranged over any number of
// times; it always reflects b as it was when Values was called.
func (b Bitset[T]) Values() iter.Seq[int] {
	w := uint64(b.bits)
	return func(yield func(int) bool) {
		for rest := w; rest != 0; rest &= rest - 1 {
			if !yield(bits.TrailingZeros64(rest) + 1) {
				return
			}
		}
	}
}

// Backward returns an iterator over the members in descending order.
func (b Bitset[T]) Backward() iter.Seq[int] {
	w := uint64(b.bits)
	return func(yield func(int) bool) {
		for rest := w; rest != 0; {
			k := bits.Len64(rest)
			if !yield(k) {
				return
			}
			rest &^= 1 << uint(k-1)
		}
	}
}

// Members returns the members in ascending order.
func (b Bitset[T]) Members() []int {
	out := make([]int, 0, b.Len())
	for k := range b.Values() {
		out = append(out, k)
	}
	return out
}

// MembersDesc returns the members in descending order.
func (b Bitset[T]) MembersDesc() []int {
	out := make([]int, 0, b.Len())
	for k := range b.Backward() {
		out = append(out, k)
	}
	return out
}
