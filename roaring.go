package natbitset

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// ToRoaring returns a new roaring bitmap holding the members of b.
func (b Bitset[T]) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	b.AddTo(rb)
	return rb
}

// AddTo adds every member of b to rb.
func (b Bitset[T]) AddTo(rb *roaring.Bitmap) {
	for k := range b.Values() {
		rb.Add(uint32(k))
	}
}

// FromRoaring builds a set from the values of rb. It fails with an
// *OutOfRangeError on the first value outside 1..=N.
func FromRoaring[T Word](d Domain[T], rb *roaring.Bitmap) (Bitset[T], error) {
	if rb.IsEmpty() {
		return d.None(), nil
	}
	// Values are sorted, so only the extremes need checking.
	if lo := rb.Minimum(); lo == 0 {
		return Bitset[T]{}, &OutOfRangeError{Value: 0, Max: d.N()}
	}
	if hi := rb.Maximum(); uint64(hi) > uint64(d.N()) {
		return Bitset[T]{}, &OutOfRangeError{Value: int(hi), Max: d.N()}
	}
	var bits T
	it := rb.Iterator()
	for it.HasNext() {
		bits |= T(1) << (it.Next() - 1)
	}
	return Bitset[T]{bits: bits, d: d}, nil
}
