package natbitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Copies of a bitset share no state, so goroutines may mutate their own copy
// without coordination.
func TestIndependentCopies(t *testing.T) {
	d := MustDomain[uint64](64)
	shared := d.MustFrom(1, 64)
	results := make([]Bitset[uint64], 64)

	var g errgroup.Group
	for k := 1; k <= 64; k++ {
		g.Go(func() error {
			local := shared
			if _, err := local.TryInsert(k); err != nil {
				return err
			}
			local.Retain(func(m int) bool { return m == k || m == 1 })
			results[k-1] = local
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, d.MustFrom(1, 64), shared)
	for k := 1; k <= 64; k++ {
		assert.Equal(t, d.MustFrom(1, k), results[k-1], "k=%d", k)
	}
}
