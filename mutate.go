package natbitset

// Every mutation below either succeeds or leaves the set untouched.

// Insert adds k and reports whether it was newly inserted. It panics with an
// *OutOfRangeError if k is not in 1..=N.
func (b *Bitset[T]) Insert(k int) bool {
	inserted, err := b.TryInsert(k)
	if err != nil {
		panic(err)
	}
	return inserted
}

// TryInsert adds k and reports whether it was newly inserted.
func (b *Bitset[T]) TryInsert(k int) (bool, error) {
	bit, err := b.d.bit(k)
	if err != nil {
		return false, err
	}
	before := b.bits
	b.bits |= bit
	return b.bits != before, nil
}

// Remove deletes k and reports whether it was present. It panics with an
// *OutOfRangeError if k is not in 1..=N.
func (b *Bitset[T]) Remove(k int) bool {
	removed, err := b.TryRemove(k)
	if err != nil {
		panic(err)
	}
	return removed
}

// TryRemove deletes k and reports whether it was present.
func (b *Bitset[T]) TryRemove(k int) (bool, error) {
	bit, err := b.d.bit(k)
	if err != nil {
		return false, err
	}
	before := b.bits
	b.bits &^= bit
	return b.bits != before, nil
}

// RemoveNonEmpty deletes k and reports whether it was present, unless the set
// would be empty afterwards, in which case it returns an *EmptiedBitsetError.
func (b *Bitset[T]) RemoveNonEmpty(k int) (bool, error) {
	bit, err := b.d.bit(k)
	if err != nil {
		return false, err
	}
	if b.bits&^bit == 0 {
		return false, &EmptiedBitsetError{Op: "remove", Set: b.String()}
	}
	before := b.bits
	b.bits &^= bit
	return b.bits != before, nil
}

// MustRemoveNonEmpty is like RemoveNonEmpty but panics on failure.
func (b *Bitset[T]) MustRemoveNonEmpty(k int) bool {
	removed, err := b.RemoveNonEmpty(k)
	if err != nil {
		panic(err)
	}
	return removed
}

// Clear removes every member.
func (b *Bitset[T]) Clear() {
	b.bits = 0
}

// Retain keeps only the members for which keep returns true.
func (b *Bitset[T]) Retain(keep func(k int) bool) {
	b.bits = b.filter(keep)
}

// RetainNonEmpty is like Retain but returns an *EmptiedBitsetError, leaving
// the set unchanged, if no member would be kept.
func (b *Bitset[T]) RetainNonEmpty(keep func(k int) bool) error {
	kept := b.filter(keep)
	if kept == 0 {
		return &EmptiedBitsetError{Op: "retain", Set: b.String()}
	}
	b.bits = kept
	return nil
}

// MustRetainNonEmpty is like RetainNonEmpty but panics on failure.
func (b *Bitset[T]) MustRetainNonEmpty(keep func(k int) bool) {
	if err := b.RetainNonEmpty(keep); err != nil {
		panic(err)
	}
}

func (b *Bitset[T]) filter(keep func(k int) bool) T {
	kept := b.bits
	for k := range b.Values() {
		if !keep(k) {
			kept &^= T(1) << uint(k-1)
		}
	}
	return kept
}

// IntersectNonEmpty replaces the set with its intersection with o, unless
// that intersection is empty, in which case it returns an
// *EmptiedBitsetError and leaves the set unchanged.
func (b *Bitset[T]) IntersectNonEmpty(o Bitset[T]) error {
	b.sameDomain(o)
	if b.bits&o.bits == 0 {
		return &EmptiedBitsetError{Op: "intersect with " + o.String(), Set: b.String()}
	}
	b.bits &= o.bits
	return nil
}

// MustIntersectNonEmpty is like IntersectNonEmpty but panics on failure.
func (b *Bitset[T]) MustIntersectNonEmpty(o Bitset[T]) {
	if err := b.IntersectNonEmpty(o); err != nil {
		panic(err)
	}
}

// UnionWith adds every member of o.
func (b *Bitset[T]) UnionWith(o Bitset[T]) {
	b.sameDomain(o)
	b.bits |= o.bits
}

// IntersectWith removes every member not in o.
func (b *Bitset[T]) IntersectWith(o Bitset[T]) {
	b.sameDomain(o)
	b.bits &= o.bits
}

// DifferenceWith removes every member of o.
func (b *Bitset[T]) DifferenceWith(o Bitset[T]) {
	b.sameDomain(o)
	b.bits &^= o.bits
}

// SymmetricDifferenceWith toggles every member of o.
func (b *Bitset[T]) SymmetricDifferenceWith(o Bitset[T]) {
	b.sameDomain(o)
	b.bits ^= o.bits
}

// With returns a copy of b with k added. It panics with an *OutOfRangeError
// if k is not in 1..=N.
func (b Bitset[T]) With(k int) Bitset[T] {
	b.Insert(k)
	return b
}

// TryWith returns a copy of b with k added.
func (b Bitset[T]) TryWith(k int) (Bitset[T], error) {
	if _, err := b.TryInsert(k); err != nil {
		return Bitset[T]{}, err
	}
	return b, nil
}

// Without returns a copy of b with k removed. It panics with an
// *OutOfRangeError if k is not in 1..=N.
func (b Bitset[T]) Without(k int) Bitset[T] {
	b.Remove(k)
	return b
}

// TryWithout returns a copy of b with k removed.
func (b Bitset[T]) TryWithout(k int) (Bitset[T], error) {
	if _, err := b.TryRemove(k); err != nil {
		return Bitset[T]{}, err
	}
	return b, nil
}
