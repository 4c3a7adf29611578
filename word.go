package natbitset

import (
	"math/bits"

	"github.com/Sup2point0/natbitset/internal/conv"
)

// Word is an unsigned integer type that can back a Bitset.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Integer is any built-in integer type accepted as a member by FromInts and
// CollectInts.
type Integer = conv.Integer

// widthOf returns the number of bits in T.
func widthOf[T Word]() int {
	var all T
	all = ^all
	return bits.Len64(uint64(all))
}

// maskOf returns a word with exactly the low n bits set.
func maskOf[T Word](n int) T {
	if n >= widthOf[T]() {
		return ^T(0)
	}
	return T(1)<<uint(n) - 1
}
