package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankFromInt(t *testing.T) {
	for n := 1; n <= 5; n++ {
		rank, ok := RankFromInt(n)
		require.True(t, ok)
		assert.Equal(t, n, rank.Int())
	}
	for _, n := range []int{0, -1, 6, 100} {
		_, ok := RankFromInt(n)
		assert.False(t, ok, "rank %d should be rejected", n)
	}
}

func TestQuantityFromInt(t *testing.T) {
	for n := 0; n <= 5; n++ {
		q, ok := QuantityFromInt(n)
		require.True(t, ok)
		assert.Equal(t, n, q.Int())
	}
	for _, n := range []int{-1, 6, 11} {
		_, ok := QuantityFromInt(n)
		assert.False(t, ok, "quantity %d should be rejected", n)
	}
}

func TestQuantitySaturatingAdd(t *testing.T) {
	assert.Equal(t, Quantity(3), Quantity(1).SaturatingAdd(2))
	assert.Equal(t, MaxQuantity, Quantity(4).SaturatingAdd(3))
	assert.Equal(t, MaxQuantity, MaxQuantity.SaturatingAdd(MaxQuantity))
}

func TestQuantitySaturatingSub(t *testing.T) {
	assert.Equal(t, Quantity(2), Quantity(4).SaturatingSub(2))
	assert.Equal(t, Quantity(0), Quantity(2).SaturatingSub(2))
	assert.Equal(t, Quantity(0), Quantity(1).SaturatingSub(4))
}

func TestQuantitySaturatingMul(t *testing.T) {
	assert.Equal(t, Quantity(4), Quantity(2).SaturatingMul(2))
	assert.Equal(t, MaxQuantity, Quantity(3).SaturatingMul(2))
	assert.Equal(t, Quantity(0), Quantity(0).SaturatingMul(5))
	// No overflow even at the extremes.
	assert.Equal(t, MaxQuantity, MaxQuantity.SaturatingMul(255))
}
