package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bits returns a pseudo-random word with only the low n bits possibly set.
// n must be in [0, 64].
func (r *RNG) Bits(n int) uint64 {
	w := r.Uint64()
	if n >= 64 {
		return w
	}
	return w & (1<<uint(n) - 1)
}

// Members returns a random subset of 1..=n in random order, each integer
// included with probability p.
func (r *RNG) Members(n int, p float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, n)
	for k := 1; k <= n; k++ {
		if r.rand.Float64() < p {
			out = append(out, k)
		}
	}
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// OutOfRange returns an integer outside 1..=n: zero, a negative number or a
// number above n.
func (r *RNG) OutOfRange(n int) int {
	switch r.Intn(3) {
	case 0:
		return 0
	case 1:
		return -1 - r.Intn(1000)
	default:
		return n + 1 + r.Intn(1000)
	}
}
