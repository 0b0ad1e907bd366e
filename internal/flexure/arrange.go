package flexure

import (
	"fmt"
	"math"
)

// MinClearSpacing is the hard minimum clear distance between parallel bars:
// the larger of 25 mm, the bar diameter, and 4/3 of the maximum aggregate
// size (NSCP 425.2.1).
func MinClearSpacing(barDia, maxAggregate float64) float64 {
	return math.Max(25, math.Max(barDia, 4.0/3.0*maxAggregate))
}

// Arrange fits a candidate into one layer if the section width allows it,
// otherwise splits it into two layers as evenly as possible and re-verifies
// each layer. Two failing layers is a hard failure for this candidate; the
// caller falls back to the next-ranked one.
func Arrange(c Candidate, g Geometry) (*Layout, error) {
	dia := float64(c.Diameter)
	sMin := MinClearSpacing(dia, g.MaxAggregate)
	avail := g.Width - 2*g.Cover - 2*g.StirrupDia

	if avail <= 0 {
		return nil, fmt.Errorf("%w: no clear width inside stirrups (b=%.0f cover=%.0f stirrup=%.0f)",
			ErrSpacingInfeasible, g.Width, g.Cover, g.StirrupDia)
	}

	layout := &Layout{
		Diameter:       c.Diameter,
		MinSpacing:     sMin,
		AvailableWidth: avail,
	}

	// Largest count one layer can hold at minimum spacing.
	maxPerLayer := int((avail + sMin) / (dia + sMin))

	if c.Count <= maxPerLayer {
		spacing, ok := layerSpacing(c.Count, dia, avail, sMin)
		if !ok {
			return nil, fmt.Errorf("%w: %d-φ%dmm needs %.1f mm clear, have %.1f mm",
				ErrSpacingInfeasible, c.Count, c.Diameter, sMin, spacing)
		}
		layout.Layers = 1
		layout.BarsPerLayer = []int{c.Count}
		layout.Spacing = []float64{spacing}
		return layout, nil
	}

	// Split across two layers, extra bar to the outer layer.
	outer := (c.Count + 1) / 2
	inner := c.Count - outer
	var spacings []float64
	for _, n := range []int{outer, inner} {
		spacing, ok := layerSpacing(n, dia, avail, sMin)
		if !ok {
			return nil, fmt.Errorf("%w: %d-φ%dmm does not fit in two layers (max %d per layer)",
				ErrSpacingInfeasible, c.Count, c.Diameter, maxPerLayer)
		}
		spacings = append(spacings, spacing)
	}

	layout.Layers = 2
	layout.BarsPerLayer = []int{outer, inner}
	layout.Spacing = spacings
	return layout, nil
}

// layerSpacing returns the achieved clear spacing for n bars in one layer
// and whether it satisfies the minimum.
func layerSpacing(n int, dia, avail, sMin float64) (float64, bool) {
	if n == 1 {
		return avail, dia <= avail
	}
	total := float64(n) * dia
	if total > avail {
		return 0, false
	}
	spacing := (avail - total) / float64(n-1)
	return spacing, spacing >= sMin
}
