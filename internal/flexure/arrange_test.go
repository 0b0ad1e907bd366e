package flexure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinClearSpacing(t *testing.T) {
	// 4/3 of 25 mm aggregate governs over a 20 mm bar.
	assert.InDelta(t, 100.0/3.0, MinClearSpacing(20, 25), 1e-9)
	// A 36 mm bar governs over small aggregate.
	assert.Equal(t, 36.0, MinClearSpacing(36, 20))
	// The 25 mm floor.
	assert.Equal(t, 25.0, MinClearSpacing(12, 10))
}

func TestArrangeSingleLayer(t *testing.T) {
	layout, err := Arrange(Candidate{Diameter: 20, Count: 4}, testGeometry)
	require.NoError(t, err)

	assert.Equal(t, 1, layout.Layers)
	assert.Equal(t, []int{4}, layout.BarsPerLayer)
	// avail = 300 - 2*40 - 2*10 = 200; (200 - 4*20)/3 = 40
	assert.InDelta(t, 200, layout.AvailableWidth, 1e-9)
	assert.InDelta(t, 40, layout.Spacing[0], 1e-9)
	assert.GreaterOrEqual(t, layout.Spacing[0], layout.MinSpacing)
}

func TestArrangeTwoLayers(t *testing.T) {
	layout, err := Arrange(Candidate{Diameter: 20, Count: 6}, testGeometry)
	require.NoError(t, err)

	assert.Equal(t, 2, layout.Layers)
	assert.Equal(t, []int{3, 3}, layout.BarsPerLayer)
	for _, s := range layout.Spacing {
		assert.GreaterOrEqual(t, s, layout.MinSpacing)
	}
}

func TestArrangeOddSplit(t *testing.T) {
	// Five 16 mm bars split 3 outer, 2 inner; counts always sum to the
	// candidate count.
	layout, err := Arrange(Candidate{Diameter: 16, Count: 5}, testGeometry)
	require.NoError(t, err)

	assert.Equal(t, 2, layout.Layers)
	assert.Equal(t, []int{3, 2}, layout.BarsPerLayer)
	assert.Equal(t, 5, layout.BarsPerLayer[0]+layout.BarsPerLayer[1])
}

func TestArrangeInfeasible(t *testing.T) {
	// Nine 25 mm bars cannot fit in two layers of a 300 mm web.
	_, err := Arrange(Candidate{Diameter: 25, Count: 9}, testGeometry)
	assert.ErrorIs(t, err, ErrSpacingInfeasible)

	// No clear width at all.
	narrow := testGeometry
	narrow.Width = 100
	_, err = Arrange(Candidate{Diameter: 16, Count: 2}, narrow)
	assert.ErrorIs(t, err, ErrSpacingInfeasible)
}

func TestArrangeDeterministic(t *testing.T) {
	// Arranging the same candidate twice yields the same layout.
	c := Candidate{Diameter: 20, Count: 4}
	first, err := Arrange(c, testGeometry)
	require.NoError(t, err)
	second, err := Arrange(c, testGeometry)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
