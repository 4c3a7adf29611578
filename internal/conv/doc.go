// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned and different bit-width integer types.
//
// Use cases:
//   - Turning caller-supplied integers of any type into set members
//   - Validating counts read from encoded bitset columns
//
// For conversions that are provably safe by domain constraints (e.g., bit
// positions below 64), use direct type casts instead to avoid overhead.
package conv
