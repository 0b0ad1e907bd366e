package flexure

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/rcbd/internal/nscp"
)

// MinPracticalDepth is the floor on effective depth (mm); it guards the
// quadratic solve against degenerate geometry.
const MinPracticalDepth = 25.0

// EffectiveDepth computes the depth to the tension steel centroid assuming
// the given main bar diameter. The single-layer depth is reduced by half the
// maximum aggregate size to cover a potential second layer; the smaller
// (two-layer) value governs.
func EffectiveDepth(g Geometry, mainBarDia float64) float64 {
	d1 := g.Height - g.Cover - g.StirrupDia - mainBarDia/2
	d2 := d1 - g.MaxAggregate/2
	return math.Max(d2, MinPracticalDepth)
}

// Solve resolves the required reinforcement ratio for a factored moment via
// the quadratic limit-state relation, clamped to [ρmin, ρmax]. Mu is in
// kN-m. A negative discriminant or an unclamped ρ above ρmax marks the
// solution OverReinforced, signalling the doubly-reinforced fallback.
func Solve(mu, phi float64, g Geometry, mat Materials, maxRatio, mainBarDia float64) (*Solution, error) {
	if mu <= 0 {
		return nil, fmt.Errorf("%w: Mu=%.2f kN-m", ErrInvalidDemand, mu)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("%w: width=%.2f height=%.2f", ErrInvalidDemand, g.Width, g.Height)
	}
	if mat.Fc <= 0 || mat.Fy <= 0 {
		return nil, fmt.Errorf("%w: f'c=%.2f fy=%.2f", ErrInvalidDemand, mat.Fc, mat.Fy)
	}

	d := EffectiveDepth(g, mainBarDia)
	sol := &Solution{EffectiveDepth: d}

	sol.RhoMin = nscp.RhoMin(mat.Fc, mat.Fy)
	sol.RhoBalanced = nscp.RhoBalanced(mat.Fc, mat.Fy)
	sol.RhoMax = nscp.RhoMax(sol.RhoBalanced, maxRatio)
	sol.AsMin = sol.RhoMin * g.Width * d
	sol.AsMax = sol.RhoMax * g.Width * d

	// ρ = (1/m)(1 - √(1 - 2mRn/fy)), m = fy/(0.85 f'c)
	muNmm := mu * 1e6
	m := mat.Fy / (0.85 * mat.Fc)
	sol.Rn = muNmm / (phi * g.Width * d * d)

	arg := 1 - 2*m*sol.Rn/mat.Fy
	if arg < 0 {
		// Over-reinforced demand; clamp rather than fail so the caller can
		// engage the compression-steel path.
		arg = 0
		sol.OverReinforced = true
	}
	rho := (1 / m) * (1 - math.Sqrt(arg))
	sol.RhoComputed = rho

	if rho > sol.RhoMax {
		sol.OverReinforced = true
	}

	rho = math.Max(rho, sol.RhoMin)
	rho = math.Min(rho, sol.RhoMax)

	sol.RhoRequired = rho
	sol.AsRequired = rho * g.Width * d

	return sol, nil
}
