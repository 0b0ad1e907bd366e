package torsion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = Params{
	Phi:        0.75,
	Fc:         28,
	Fy:         415,
	Fyv:        275,
	Lambda:     1.0,
	Cover:      40,
	StirrupDia: 10,
	MinSpacing: 75,
	MaxSpacing: 300,
	RoundOff:   25,
	Enabled:    true,
}

func TestThreshold(t *testing.T) {
	// φ·0.083·√28·(300·500)²/(2·(300+500)) ≈ 4.63 kN·m
	th := Threshold(testParams, 300, 500)
	assert.InDelta(t, 4.63e6, th, 0.02e6)
}

func TestDesignDisabled(t *testing.T) {
	p := testParams
	p.Enabled = false
	res := Design(p, 300, 500, 50)

	assert.True(t, res.Skipped)
	assert.Equal(t, "torsion design disabled", res.SkipReason)
	assert.False(t, res.ReinforcementRequired)
}

func TestDesignBelowThreshold(t *testing.T) {
	res := Design(testParams, 300, 500, 2)

	assert.True(t, res.Skipped)
	assert.Contains(t, res.SkipReason, "below threshold")
	assert.False(t, res.ReinforcementRequired)
	assert.Greater(t, res.Threshold, 2.0)
}

func TestDesignAboveThreshold(t *testing.T) {
	res := Design(testParams, 300, 500, 20)

	require.True(t, res.ReinforcementRequired)
	assert.False(t, res.Skipped)
	assert.Greater(t, res.AtOverS, 0.0)
	assert.Greater(t, res.AlRequired, 0.0)

	assert.GreaterOrEqual(t, res.Spacing, testParams.MinSpacing)
	assert.LessOrEqual(t, res.Spacing, testParams.MaxSpacing)
	assert.Zero(t, math.Mod(res.Spacing, testParams.RoundOff))
}

func TestDesignNegativeTorsion(t *testing.T) {
	// Sign carries direction only; the magnitude drives the design.
	pos := Design(testParams, 300, 500, 20)
	neg := Design(testParams, 300, 500, -20)
	assert.Equal(t, pos.AtOverS, neg.AtOverS)
	assert.Equal(t, pos.Spacing, neg.Spacing)
}

func TestSideFaceReinforcement(t *testing.T) {
	// Shallow beams need no skin steel.
	res := Design(testParams, 300, 500, 20)
	assert.False(t, res.SideFace.Required)

	// Deep beams do, independent of the torsion magnitude.
	deep := Design(testParams, 300, 900, 0)
	assert.True(t, deep.SideFace.Required)
	assert.InDelta(t, 0.0010*300*900, deep.SideFace.MinAreaPerFace, 1e-9)
	assert.Equal(t, testParams.MaxSpacing, deep.SideFace.MaxSpacing)
}
