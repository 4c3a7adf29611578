// Package natbitset provides a compact set of the natural numbers 1..=N,
// stored in a single unsigned word.
//
// Bit i of the word is set exactly when i+1 is a member, so the word
// 0b0000_1011 represents {1, 2, 4}:
//
//	#  | 8765 4321
//	0b | 0000 1011
//	          ^ ^^
//
// A Bitset behaves like a map[int]struct{} restricted to 1..=N, but costs one
// word, is comparable with ==, and can be used as a map key. It is intended
// for small candidate sets such as the digits a Sudoku cell may still hold.
//
// # Quick Start
//
//	digits := natbitset.MustDomain[uint16](9)
//
//	cell := digits.All()                    // {1, 2, ..., 9}
//	cell.Remove(4)
//	cell.IntersectWith(digits.MustFrom(1, 3, 4, 7))
//	fmt.Println(cell)                       // {1, 3, 7}
//
//	if k, ok := cell.Sole(); ok {
//	    fmt.Println("solved:", k)
//	}
//
// # Domains
//
// N is part of a Domain, created once with NewDomain or MustDomain and checked
// against the width of the backing word. The zero Domain, and therefore the
// zero Bitset, uses the full width of T. Byteset and ByteRange build sets over
// 1..=8 without an explicit domain.
//
// Set algebra between bitsets of different domains panics with a
// *DomainMismatchError.
//
// # Errors
//
// Operations that can fail come in two forms. The plain form returns an
// error; the Must form panics with the same error value. Every error wraps
// one of the sentinel values, so callers can use errors.Is:
//
//	if _, err := digits.From(0); errors.Is(err, natbitset.ErrOutOfRange) {
//	    ...
//	}
//
// Insert, Remove, With and Without take members that the caller already
// knows to be in range and panic otherwise; TryInsert, TryRemove, TryWith and
// TryWithout return the error instead. Queries such as Contains never fail.
//
// # Iteration
//
// Values and Backward return iter.Seq[int] over a snapshot of the set, in
// ascending and descending order:
//
//	for k := range cell.Values() {
//	    fmt.Println(k)
//	}
//
// # Encoding
//
// Bitset implements fmt.Stringer, encoding.TextMarshaler, json.Marshaler,
// encoding.BinaryMarshaler and slog.LogValuer. Package pack stores whole
// columns of bitsets with block compression.
package natbitset
