package natbitset

// Binary operations require both operands to share a domain. Combining
// bitsets over different N is a programming error and panics with a
// *DomainMismatchError.

func (b Bitset[T]) sameDomain(o Bitset[T]) {
	if b.d != o.d {
		panic(&DomainMismatchError{Left: b.d.N(), Right: o.d.N()})
	}
}

// Union returns the members of b or o.
func (b Bitset[T]) Union(o Bitset[T]) Bitset[T] {
	b.sameDomain(o)
	return Bitset[T]{bits: b.bits | o.bits, d: b.d}
}

// Intersection returns the members of both b and o.
func (b Bitset[T]) Intersection(o Bitset[T]) Bitset[T] {
	b.sameDomain(o)
	return Bitset[T]{bits: b.bits & o.bits, d: b.d}
}

// Difference returns the members of b that are not in o.
func (b Bitset[T]) Difference(o Bitset[T]) Bitset[T] {
	b.sameDomain(o)
	return Bitset[T]{bits: b.bits &^ o.bits, d: b.d}
}

// SymmetricDifference returns the members of exactly one of b and o.
func (b Bitset[T]) SymmetricDifference(o Bitset[T]) Bitset[T] {
	b.sameDomain(o)
	return Bitset[T]{bits: b.bits ^ o.bits, d: b.d}
}

// Complement returns the integers in 1..=N that are not members of b.
func (b Bitset[T]) Complement() Bitset[T] {
	return Bitset[T]{bits: ^b.bits & b.d.Mask(), d: b.d}
}

// IsSubset reports whether every member of b is in o.
func (b Bitset[T]) IsSubset(o Bitset[T]) bool {
	b.sameDomain(o)
	return b.bits&^o.bits == 0
}

// IsSuperset reports whether every member of o is in b.
func (b Bitset[T]) IsSuperset(o Bitset[T]) bool {
	return o.IsSubset(b)
}

// IsProperSubset reports whether b is a subset of o and not equal to it.
func (b Bitset[T]) IsProperSubset(o Bitset[T]) bool {
	return b.IsSubset(o) && b.bits != o.bits
}

// IsProperSuperset reports whether b is a superset of o and not equal to it.
func (b Bitset[T]) IsProperSuperset(o Bitset[T]) bool {
	return o.IsProperSubset(b)
}

// IsDisjoint reports whether b and o have no members in common.
func (b Bitset[T]) IsDisjoint(o Bitset[T]) bool {
	return !b.Intersects(o)
}

// Intersects reports whether b and o have at least one member in common.
func (b Bitset[T]) Intersects(o Bitset[T]) bool {
	b.sameDomain(o)
	return b.bits&o.bits != 0
}

// PartialCompare orders b and o by inclusion. It returns -1 if b is a proper
// subset of o, 0 if they are equal and +1 if b is a proper superset of o.
// ok is false when neither contains the other.
//
// This is not a total order: many pairs of bitsets are incomparable, and the
// result never reflects the numeric value of the underlying words.
func (b Bitset[T]) PartialCompare(o Bitset[T]) (c int, ok bool) {
	sub, super := b.IsSubset(o), b.IsSuperset(o)
	switch {
	case sub && super:
		return 0, true
	case sub:
		return -1, true
	case super:
		return 1, true
	default:
		return 0, false
	}
}
