package natbitset

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a member lies outside 1..=N.
	ErrOutOfRange = errors.New("member out of range")

	// ErrInvalidBits is returned when a raw bit pattern has bits set outside the domain.
	ErrInvalidBits = errors.New("bits set outside domain")

	// ErrEmptyBitset is returned when a minimum or maximum is requested from an empty set.
	ErrEmptyBitset = errors.New("bitset is empty")

	// ErrEmptiedBitset is returned when a non-emptying mutation would leave the set empty.
	ErrEmptiedBitset = errors.New("bitset would be emptied")

	// ErrInvalidDomain is returned when N is not in 1..=W for the backing word.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrDomainMismatch is raised when two bitsets over different domains are combined.
	ErrDomainMismatch = errors.New("domain mismatch")

	// ErrInvalidEncoding is returned when text, JSON or binary input is malformed.
	ErrInvalidEncoding = errors.New("invalid bitset encoding")
)

// OutOfRangeError indicates a member outside 1..=Max.
//
// Value is meaningless when the member could not be represented as an int;
// the conversion error is then part of the error tree.
type OutOfRangeError struct {
	Value int
	Max   int
	cause error
}

func (e *OutOfRangeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", ErrOutOfRange, e.cause)
	}
	return fmt.Sprintf("%s: %d not in 1..=%d", ErrOutOfRange, e.Value, e.Max)
}

func (e *OutOfRangeError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrOutOfRange, e.cause}
	}
	return []error{ErrOutOfRange}
}

// InvalidBitsError indicates a raw bit pattern with bits at or above position Max.
type InvalidBitsError struct {
	Bits uint64
	Max  int
}

func (e *InvalidBitsError) Error() string {
	return fmt.Sprintf("%s: %#b exceeds 1..=%d", ErrInvalidBits, e.Bits, e.Max)
}

func (e *InvalidBitsError) Unwrap() error { return ErrInvalidBits }

// EmptyBitsetError indicates that Op has no answer for an empty set.
type EmptyBitsetError struct {
	Op string
}

func (e *EmptyBitsetError) Error() string {
	return fmt.Sprintf("%s: %s has no result", ErrEmptyBitset, e.Op)
}

func (e *EmptyBitsetError) Unwrap() error { return ErrEmptyBitset }

// EmptiedBitsetError indicates that Op would have emptied Set. The set is
// left unchanged.
type EmptiedBitsetError struct {
	Op  string
	Set string
}

func (e *EmptiedBitsetError) Error() string {
	return fmt.Sprintf("%s: %s on %s", ErrEmptiedBitset, e.Op, e.Set)
}

func (e *EmptiedBitsetError) Unwrap() error { return ErrEmptiedBitset }

// InvalidDomainError indicates an N that a word of Width bits cannot hold.
type InvalidDomainError struct {
	N     int
	Width int
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("%s: N=%d must be in 1..=%d", ErrInvalidDomain, e.N, e.Width)
}

func (e *InvalidDomainError) Unwrap() error { return ErrInvalidDomain }

// DomainMismatchError indicates an operation across bitsets of different N.
type DomainMismatchError struct {
	Left  int
	Right int
}

func (e *DomainMismatchError) Error() string {
	return fmt.Sprintf("%s: 1..=%d vs 1..=%d", ErrDomainMismatch, e.Left, e.Right)
}

func (e *DomainMismatchError) Unwrap() error { return ErrDomainMismatch }
