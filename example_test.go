package natbitset_test

import (
	"errors"
	"fmt"

	"github.com/Sup2point0/natbitset"
)

// Example_sudokuCandidates tracks the digits a Sudoku cell may still hold.
func Example_sudokuCandidates() {
	digits := natbitset.MustDomain[uint16](9)

	cell := digits.All()
	row := digits.MustFrom(2, 5, 8)
	col := digits.MustFrom(1, 5, 9)

	cell.DifferenceWith(row.Union(col))
	fmt.Println(cell, cell.Len())

	if err := cell.RetainNonEmpty(func(k int) bool { return k > 7 }); err != nil {
		fmt.Println(err)
	}
	fmt.Println(cell)
	// Output:
	// {3, 4, 6, 7} 4
	// bitset would be emptied: retain on {3, 4, 6, 7}
	// {3, 4, 6, 7}
}

// ExampleDomain_From shows the checked and panicking constructors.
func ExampleDomain_From() {
	d := natbitset.MustDomain[uint8](8)

	s, err := d.From(1, 3, 7)
	fmt.Printf("%s %08b %v\n", s, s.Bits(), err)

	_, err = d.From(1, 9)
	fmt.Println(errors.Is(err, natbitset.ErrOutOfRange), err)
	// Output:
	// {1, 3, 7} 01000101 <nil>
	// true member out of range: 9 not in 1..=8
}

// ExampleByteset mirrors the set operations of a hash set.
func ExampleByteset() {
	left := natbitset.Byteset(1, 2, 3)
	right := natbitset.Byteset(3, 4, 5)

	fmt.Println(left.Union(right))
	fmt.Println(left.Intersection(right))
	fmt.Println(left.Difference(right))
	fmt.Println(left.SymmetricDifference(right))
	// Output:
	// {1, 2, 3, 4, 5}
	// {3}
	// {1, 2}
	// {1, 2, 4, 5}
}

// ExampleBitset_PartialCompare shows that bitsets are only partially ordered.
func ExampleBitset_PartialCompare() {
	a := natbitset.Byteset(1, 2)

	fmt.Println(a.PartialCompare(natbitset.Byteset(1, 2, 3)))
	fmt.Println(a.PartialCompare(natbitset.Byteset(2, 3)))
	// Output:
	// -1 true
	// 0 false
}

// ExampleBitset_Values iterates lazily in ascending order.
func ExampleBitset_Values() {
	for k := range natbitset.Byteset(8, 1, 4).Values() {
		fmt.Print(k, " ")
	}
	fmt.Println()
	// Output: 1 4 8
}
