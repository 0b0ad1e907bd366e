package nscp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactored(t *testing.T) {
	moments := LoadMoments{Dead: 100, Live: 50}

	// 1.4D
	assert.InDelta(t, 140, LoadCombinations[0].Factored(moments), 1e-9)
	// 1.2D + 1.6L
	assert.InDelta(t, 200, LoadCombinations[1].Factored(moments), 1e-9)
}

func TestGoverningMoment(t *testing.T) {
	// Gravity-dominated case: 1.2D + 1.6L governs.
	mu, combo := GoverningMoment(LoadMoments{Dead: 100, Live: 50})
	assert.InDelta(t, 200, mu, 1e-9)
	assert.Equal(t, "2", combo.ID)

	// Seismic-dominated case: 1.2D + 1.0E + 1.0L governs.
	mu, combo = GoverningMoment(LoadMoments{Dead: 50, Live: 10, Earthquake: 200})
	assert.InDelta(t, 270, mu, 1e-9)
	assert.Equal(t, "5", combo.ID)
}

func TestLoadMomentsIsZero(t *testing.T) {
	assert.True(t, LoadMoments{}.IsZero())
	assert.False(t, LoadMoments{Wind: 1}.IsZero())
}
