package natbitset

import (
	"iter"

	"github.com/Sup2point0/natbitset/internal/conv"
)

// Domain is the range 1..=N a Bitset backed by T represents.
//
// N is checked once when the Domain is created, so every Bitset built from it
// satisfies 1 <= N <= W. The zero Domain is the full width of T.
type Domain[T Word] struct {
	// n is N, or 0 when N equals the width of T. Storing the full width as 0
	// makes the zero Bitset identical to an empty full-width one.
	n uint8
}

// NewDomain returns the domain 1..=n for words of type T.
func NewDomain[T Word](n int) (Domain[T], error) {
	w := widthOf[T]()
	if n < 1 || n > w {
		return Domain[T]{}, &InvalidDomainError{N: n, Width: w}
	}
	if n == w {
		return Domain[T]{}, nil
	}
	return Domain[T]{n: uint8(n)}, nil
}

// MustDomain is like NewDomain but panics if n does not fit in T.
func MustDomain[T Word](n int) Domain[T] {
	d, err := NewDomain[T](n)
	if err != nil {
		panic(err)
	}
	return d
}

// N returns the largest member of the domain.
func (d Domain[T]) N() int {
	if d.n == 0 {
		return widthOf[T]()
	}
	return int(d.n)
}

// Width returns the number of bits in T.
func (d Domain[T]) Width() int { return widthOf[T]() }

// Mask returns the word with exactly the low N bits set.
func (d Domain[T]) Mask() T { return maskOf[T](d.N()) }

// Contains reports whether k lies in 1..=N.
func (d Domain[T]) Contains(k int) bool {
	return k >= 1 && k <= d.N()
}

func (d Domain[T]) bit(k int) (T, error) {
	if !d.Contains(k) {
		return 0, &OutOfRangeError{Value: k, Max: d.N()}
	}
	return T(1) << uint(k-1), nil
}

func (d Domain[T]) mustBit(k int) T {
	b, err := d.bit(k)
	if err != nil {
		panic(err)
	}
	return b
}

// None returns the empty set.
func (d Domain[T]) None() Bitset[T] {
	return Bitset[T]{d: d}
}

// All returns the set of every integer in 1..=N.
func (d Domain[T]) All() Bitset[T] {
	return Bitset[T]{bits: d.Mask(), d: d}
}

// Only returns the singleton set {k}.
func (d Domain[T]) Only(k int) (Bitset[T], error) {
	b, err := d.bit(k)
	if err != nil {
		return Bitset[T]{}, err
	}
	return Bitset[T]{bits: b, d: d}, nil
}

// MustOnly is like Only but panics if k is out of range.
func (d Domain[T]) MustOnly(k int) Bitset[T] {
	return Bitset[T]{bits: d.mustBit(k), d: d}
}

// From returns the set of the given members. It fails on the first member
// outside 1..=N.
func (d Domain[T]) From(members ...int) (Bitset[T], error) {
	var bits T
	for _, k := range members {
		b, err := d.bit(k)
		if err != nil {
			return Bitset[T]{}, err
		}
		bits |= b
	}
	return Bitset[T]{bits: bits, d: d}, nil
}

// MustFrom is like From but panics if any member is out of range.
func (d Domain[T]) MustFrom(members ...int) Bitset[T] {
	s, err := d.From(members...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromValid returns the set of the given members, ignoring any outside 1..=N.
func (d Domain[T]) FromValid(members ...int) Bitset[T] {
	var bits T
	for _, k := range members {
		if b, err := d.bit(k); err == nil {
			bits |= b
		}
	}
	return Bitset[T]{bits: bits, d: d}
}

// FromBits wraps a raw bit pattern, where bit i represents member i+1.
func (d Domain[T]) FromBits(raw T) (Bitset[T], error) {
	if raw&^d.Mask() != 0 {
		return Bitset[T]{}, &InvalidBitsError{Bits: uint64(raw), Max: d.N()}
	}
	return Bitset[T]{bits: raw, d: d}, nil
}

// MustFromBits is like FromBits but panics if raw has bits outside the domain.
func (d Domain[T]) MustFromBits(raw T) Bitset[T] {
	s, err := d.FromBits(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Range returns the set lo..=hi. It is empty when lo > hi; otherwise both
// bounds must lie in 1..=N.
func (d Domain[T]) Range(lo, hi int) (Bitset[T], error) {
	if lo > hi {
		return d.None(), nil
	}
	if _, err := d.bit(lo); err != nil {
		return Bitset[T]{}, err
	}
	if _, err := d.bit(hi); err != nil {
		return Bitset[T]{}, err
	}
	return Bitset[T]{bits: maskOf[T](hi) &^ maskOf[T](lo-1), d: d}, nil
}

// MustRange is like Range but panics if a bound is out of range.
func (d Domain[T]) MustRange(lo, hi int) Bitset[T] {
	s, err := d.Range(lo, hi)
	if err != nil {
		panic(err)
	}
	return s
}

// Collect builds a set from every member yielded by seq.
func (d Domain[T]) Collect(seq iter.Seq[int]) (Bitset[T], error) {
	return CollectInts(d, seq)
}

// FromInts is like Domain.From for members of any integer type.
func FromInts[T Word, I Integer](d Domain[T], members ...I) (Bitset[T], error) {
	var bits T
	for _, v := range members {
		b, err := intBit(d, v)
		if err != nil {
			return Bitset[T]{}, err
		}
		bits |= b
	}
	return Bitset[T]{bits: bits, d: d}, nil
}

// CollectInts builds a set from every member yielded by seq. It stops at the
// first member outside 1..=N.
func CollectInts[T Word, I Integer](d Domain[T], seq iter.Seq[I]) (Bitset[T], error) {
	var (
		bits T
		err  error
	)
	for v := range seq {
		var b T
		if b, err = intBit(d, v); err != nil {
			return Bitset[T]{}, err
		}
		bits |= b
	}
	return Bitset[T]{bits: bits, d: d}, nil
}

func intBit[T Word, I Integer](d Domain[T], v I) (T, error) {
	k, err := conv.ToInt(v)
	if err != nil {
		return 0, &OutOfRangeError{Max: d.N(), cause: err}
	}
	return d.bit(k)
}

// byteDomain is the domain 1..=8 over a single byte.
var byteDomain = Domain[uint8]{}

// Byteset returns the set of the given members of 1..=8. It panics if a
// member is out of range.
func Byteset(members ...int) Bitset[uint8] {
	return byteDomain.MustFrom(members...)
}

// ByteRange returns the set lo..=hi within 1..=8. It panics if a bound is out
// of range.
func ByteRange(lo, hi int) Bitset[uint8] {
	return byteDomain.MustRange(lo, hi)
}
