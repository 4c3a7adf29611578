// Package testutil provides testing utilities for natbitset.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG with helpers for generating random
// words and member lists for property-style tests.
//
// # Random Sets
//
//	rng := testutil.NewRNG(seed)
//	raw := rng.Bits(9)            // word with only bits 0..8 possibly set
//	ks := rng.Members(9, 0.5)     // random subset of 1..=9, shuffled
//	bad := rng.OutOfRange(9)      // 0, negative or > 9
package testutil
