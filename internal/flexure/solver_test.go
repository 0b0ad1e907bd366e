package flexure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The reference section used across the package tests: 300x500 with 40 mm
// cover, 10 mm stirrups, 25 mm aggregate, C28 concrete and Grade 415 steel.
var (
	testGeometry = Geometry{
		Width:        300,
		Height:       500,
		Cover:        40,
		StirrupDia:   10,
		MaxAggregate: 25,
	}
	testMaterials = Materials{Fc: 28, Fy: 415}
)

func TestEffectiveDepth(t *testing.T) {
	// d = h - cover - stirrup - bar/2 - aggregate/2
	d := EffectiveDepth(testGeometry, 16)
	assert.InDelta(t, 429.5, d, 1e-9)

	// Degenerate geometry is floored, not negative.
	shallow := testGeometry
	shallow.Height = 60
	assert.Equal(t, MinPracticalDepth, EffectiveDepth(shallow, 16))
}

func TestSolveMinimumGoverns(t *testing.T) {
	sol, err := Solve(30, 0.90, testGeometry, testMaterials, 0.025, 16)
	require.NoError(t, err)

	assert.False(t, sol.OverReinforced)
	assert.Less(t, sol.RhoComputed, sol.RhoMin)
	assert.Equal(t, sol.RhoMin, sol.RhoRequired)
	assert.InDelta(t, sol.AsMin, sol.AsRequired, 1e-9)
	// ρmin = 1.4/415 on this section
	assert.InDelta(t, 1.4/415*300*429.5, sol.AsRequired, 0.5)
}

func TestSolveMidRange(t *testing.T) {
	sol, err := Solve(183.5, 0.90, testGeometry, testMaterials, 0.025, 16)
	require.NoError(t, err)

	assert.False(t, sol.OverReinforced)
	assert.Greater(t, sol.RhoRequired, sol.RhoMin)
	assert.Less(t, sol.RhoRequired, sol.RhoMax)
	assert.InDelta(t, 1249.6, sol.AsRequired, 2.0)
}

func TestSolveOverReinforced(t *testing.T) {
	sol, err := Solve(600, 0.90, testGeometry, testMaterials, 0.025, 16)
	require.NoError(t, err)

	assert.True(t, sol.OverReinforced)
	// Clamped to the maximum; the doubly path carries the remainder.
	assert.Equal(t, sol.RhoMax, sol.RhoRequired)
	assert.InDelta(t, sol.AsMax, sol.AsRequired, 1e-9)
}

func TestSolveRhoBounds(t *testing.T) {
	// The clamp holds across the demand spectrum.
	for _, mu := range []float64{5, 50, 100, 200, 400, 800} {
		sol, err := Solve(mu, 0.90, testGeometry, testMaterials, 0.025, 16)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sol.RhoRequired, sol.RhoMin, "Mu=%.0f", mu)
		assert.LessOrEqual(t, sol.RhoRequired, sol.RhoMax, "Mu=%.0f", mu)
	}
}

func TestSolveInvalidDemand(t *testing.T) {
	_, err := Solve(0, 0.90, testGeometry, testMaterials, 0.025, 16)
	assert.ErrorIs(t, err, ErrInvalidDemand)

	_, err = Solve(-50, 0.90, testGeometry, testMaterials, 0.025, 16)
	assert.ErrorIs(t, err, ErrInvalidDemand)

	bad := testGeometry
	bad.Width = 0
	_, err = Solve(100, 0.90, bad, testMaterials, 0.025, 16)
	assert.ErrorIs(t, err, ErrInvalidDemand)

	_, err = Solve(100, 0.90, testGeometry, Materials{Fc: 0, Fy: 415}, 0.025, 16)
	assert.ErrorIs(t, err, ErrInvalidDemand)
}
