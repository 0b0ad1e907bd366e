package flexure

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/rcbd/internal/nscp"
)

const (
	// MinBarsPerFace is the NSCP floor on bar count per face.
	MinBarsPerFace = 2

	// MaxBarCount is the absolute ceiling on bars in one selection.
	MaxBarCount = 12

	// MaxExcessPercent rejects selections wasting more than half the
	// required steel.
	MaxExcessPercent = 50.0

	// searchWindow examines the minimum count and the next counts above it,
	// trading optimality for speed and for giving the arranger fallbacks.
	searchWindow = 3

	// optimalBarCount anchors the efficiency score to the canonical
	// four-bar layout.
	optimalBarCount = 4
)

// Combinations enumerates feasible (diameter, count) selections meeting or
// exceeding asRequired within the given catalog diameter range, scored and
// sorted best-first. Ties keep enumeration order: smaller diameters first.
// An empty catalog range or an unsatisfiable area yields
// ErrNoFeasibleCombination rather than a best-effort answer.
func Combinations(asRequired float64, barRange [2]int, minBars int) ([]Candidate, error) {
	if asRequired <= 0 {
		return nil, fmt.Errorf("%w: required area %.2f mm²", ErrInvalidDemand, asRequired)
	}
	if minBars < MinBarsPerFace {
		minBars = MinBarsPerFace
	}

	bars := nscp.BarsInRange(barRange[0], barRange[1])
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: no standard bars in range [%d, %d]",
			ErrNoFeasibleCombination, barRange[0], barRange[1])
	}

	var candidates []Candidate
	for _, dia := range bars {
		barArea := nscp.BarArea(float64(dia))
		base := int(math.Ceil(asRequired / barArea))
		if base < minBars {
			base = minBars
		}

		for count := base; count < base+searchWindow; count++ {
			total := float64(count) * barArea
			if total < asRequired {
				continue
			}
			excess := (total - asRequired) / asRequired * 100
			if count > MaxBarCount || excess > MaxExcessPercent {
				continue
			}
			candidates = append(candidates, Candidate{
				Diameter:      dia,
				Count:         count,
				BarArea:       barArea,
				TotalArea:     total,
				ExcessPercent: excess,
				Score:         efficiencyScore(excess, count),
			})
		}
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: As=%.0f mm² within bars [%d, %d], max %d bars, max %.0f%% excess",
			ErrNoFeasibleCombination, asRequired, barRange[0], barRange[1], MaxBarCount, MaxExcessPercent)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates, nil
}

// efficiencyScore rewards low material waste and proximity to a four-bar
// layout, clamped to [0, 100].
func efficiencyScore(excessPercent float64, count int) float64 {
	score := 100 - excessPercent/2 - math.Abs(float64(count-optimalBarCount))
	return math.Max(0, math.Min(100, score))
}

// MinimumAreaForBars is the area of the minimum bar count at the smallest
// diameter in range; the practical floor independent of the code ρmin.
func MinimumAreaForBars(barRange [2]int, minBars int) float64 {
	if minBars < MinBarsPerFace {
		minBars = MinBarsPerFace
	}
	bars := nscp.BarsInRange(barRange[0], barRange[1])
	if len(bars) == 0 {
		return 0
	}
	return float64(minBars) * nscp.BarArea(float64(bars[0]))
}
