package flexure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/rcbd/internal/nscp"
)

func TestCombinationsRanking(t *testing.T) {
	cands, err := Combinations(1249.6, [2]int{16, 25}, 2)
	require.NoError(t, err)
	require.NotEmpty(t, cands)

	// Four 20 mm bars is the canonical answer: near-zero excess at the
	// optimal count.
	best := cands[0]
	assert.Equal(t, 20, best.Diameter)
	assert.Equal(t, 4, best.Count)
	assert.InDelta(t, 1256.64, best.TotalArea, 0.1)
	assert.Less(t, best.ExcessPercent, 1.0)

	// Sorted best-first.
	for i := 1; i < len(cands); i++ {
		assert.GreaterOrEqual(t, cands[i-1].Score, cands[i].Score)
	}
}

func TestCombinationsArithmetic(t *testing.T) {
	cands, err := Combinations(900, [2]int{12, 32}, 2)
	require.NoError(t, err)

	for _, c := range cands {
		assert.InDelta(t, nscp.BarArea(float64(c.Diameter)), c.BarArea, 1e-9)
		assert.InDelta(t, float64(c.Count)*c.BarArea, c.TotalArea, 1e-9)
		assert.GreaterOrEqual(t, c.TotalArea, 900.0)
		assert.GreaterOrEqual(t, c.Count, MinBarsPerFace)
		assert.LessOrEqual(t, c.Count, MaxBarCount)
		assert.LessOrEqual(t, c.ExcessPercent, MaxExcessPercent)
		assert.GreaterOrEqual(t, c.Score, 0.0)
		assert.LessOrEqual(t, c.Score, 100.0)
	}
}

func TestCombinationsMinBarsFloor(t *testing.T) {
	// A caller-imposed minimum count floors the enumeration.
	cands, err := Combinations(1000, [2]int{16, 25}, 6)
	require.NoError(t, err)
	for _, c := range cands {
		assert.GreaterOrEqual(t, c.Count, 6)
	}

	// A tiny area cannot be met within the excess ceiling: doubling a
	// single bar always wastes more than half the steel.
	_, err = Combinations(50, [2]int{16, 25}, 2)
	assert.ErrorIs(t, err, ErrNoFeasibleCombination)
}

func TestCombinationsNoFeasible(t *testing.T) {
	// 8000 mm² cannot be reached with 12 bars of 28 mm or smaller.
	_, err := Combinations(8000, [2]int{16, 28}, 2)
	assert.ErrorIs(t, err, ErrNoFeasibleCombination)

	// Empty catalog range.
	_, err = Combinations(1000, [2]int{41, 60}, 2)
	assert.ErrorIs(t, err, ErrNoFeasibleCombination)

	// Non-positive demand is a demand error, not a catalog one.
	_, err = Combinations(0, [2]int{16, 25}, 2)
	assert.ErrorIs(t, err, ErrInvalidDemand)
}

func TestMinimumAreaForBars(t *testing.T) {
	// Two bars of the smallest diameter in range.
	assert.InDelta(t, 2*nscp.BarArea(16), MinimumAreaForBars([2]int{16, 25}, 2), 1e-9)
	assert.Equal(t, 0.0, MinimumAreaForBars([2]int{41, 60}, 2))
}
