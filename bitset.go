package natbitset

import (
	"math/bits"
)

// Bitset is a set of the integers 1..=N stored in a single word of type T.
//
// Bit i of the word is set iff i+1 is a member. Bits at or above N are always
// zero, so two bitsets are equal (==) iff they have the same members and the
// same N. Bitset is a plain value: copy it freely and use it as a map key.
//
// The zero value is the empty set over the full width of T, e.g. 1..=8 for
// uint8. Use a Domain to build bitsets over a smaller N.
//
// Bitsets are only partially ordered, by inclusion; see PartialCompare.
type Bitset[T Word] struct {
	bits T
	d    Domain[T]
}

// Bits returns the underlying word.
func (b Bitset[T]) Bits() T { return b.bits }

// Domain returns the domain the set was built over.
func (b Bitset[T]) Domain() Domain[T] { return b.d }

// Max returns N, the largest integer the set can hold.
func (b Bitset[T]) Max() int { return b.d.N() }

// Contains reports whether k is a member. Integers outside 1..=N are never
// members.
func (b Bitset[T]) Contains(k int) bool {
	if !b.d.Contains(k) {
		return false
	}
	return b.bits&(T(1)<<uint(k-1)) != 0
}

// Has is an alias for Contains.
func (b Bitset[T]) Has(k int) bool { return b.Contains(k) }

// Len returns the number of members.
func (b Bitset[T]) Len() int {
	return bits.OnesCount64(uint64(b.bits))
}

// IsEmpty reports whether the set has no members.
func (b Bitset[T]) IsEmpty() bool { return b.bits == 0 }

// IsFull reports whether every integer in 1..=N is a member.
func (b Bitset[T]) IsFull() bool { return b.bits == b.d.Mask() }

// IsSingle reports whether the set has exactly one member.
func (b Bitset[T]) IsSingle() bool {
	return b.bits != 0 && b.bits&(b.bits-1) == 0
}

// Sole returns the only member of a singleton set. ok is false unless the set
// has exactly one member.
func (b Bitset[T]) Sole() (k int, ok bool) {
	if !b.IsSingle() {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(b.bits)) + 1, true
}

// Minimum returns the smallest member.
func (b Bitset[T]) Minimum() (int, error) {
	if b.bits == 0 {
		return 0, &EmptyBitsetError{Op: "minimum"}
	}
	return bits.TrailingZeros64(uint64(b.bits)) + 1, nil
}

// Maximum returns the largest member.
func (b Bitset[T]) Maximum() (int, error) {
	if b.bits == 0 {
		return 0, &EmptyBitsetError{Op: "maximum"}
	}
	return bits.Len64(uint64(b.bits)), nil
}

// Equal reports whether b and o have the same members and the same N.
func (b Bitset[T]) Equal(o Bitset[T]) bool { return b == o }
