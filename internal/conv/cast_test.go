//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := ToInt(uint8(0))
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid negative", func(t *testing.T) {
		got, err := ToInt(int8(-7))
		assert.NoError(t, err)
		assert.Equal(t, -7, got)
	})

	t.Run("valid min int64", func(t *testing.T) {
		got, err := ToInt(int64(math.MinInt64))
		assert.NoError(t, err)
		assert.Equal(t, math.MinInt, got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := ToInt(uint64(math.MaxInt))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := ToInt(uint64(math.MaxUint64))
		assert.Error(t, err)
	})

	t.Run("named type", func(t *testing.T) {
		type digit uint16
		got, err := ToInt(digit(9))
		assert.NoError(t, err)
		assert.Equal(t, 9, got)
	})
}

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := IntToUint32(123)
		assert.NoError(t, err)
		assert.Equal(t, uint32(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}

func TestUint32ToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Uint32ToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := Uint32ToInt(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, math.MaxUint32, got)
	})
}
