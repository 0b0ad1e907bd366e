package flexure

import (
	"math"

	"github.com/alexiusacademia/rcbd/internal/nscp"
)

// VerifyCapacity recomputes the design moment capacity from the actually
// provided steel area and compares it with the demand. Mu in kN-m.
func VerifyCapacity(asProvided, phi float64, g Geometry, mat Materials, d, mu float64) CapacityCheck {
	a := asProvided * mat.Fy / (0.85 * mat.Fc * g.Width)
	mn := asProvided * mat.Fy * (d - a/2) / 1e6

	check := CapacityCheck{
		A:     a,
		Mn:    mn,
		PhiMn: phi * mn,
		Mu:    mu,
	}
	if mu > 0 {
		check.Ratio = check.PhiMn / mu
		check.Passes = check.Ratio >= 1.0
	} else {
		check.Ratio = math.Inf(1)
		check.Passes = true
	}
	return check
}

// VerifyStrain checks strain compatibility for the provided steel area:
// neutral axis from the stress block, steel strain from the 0.003 concrete
// limit, yielding against εy. An over-reinforced, non-yielding section fails
// this check regardless of capacity.
func VerifyStrain(asProvided float64, g Geometry, mat Materials, d float64) StrainCheck {
	a := asProvided * mat.Fy / (0.85 * mat.Fc * g.Width)
	beta1 := nscp.Beta1(mat.Fc)
	c := a / beta1

	epsS := nscp.EpsilonCU * (d - c) / c
	epsY := mat.Fy / nscp.Es

	check := StrainCheck{
		C:        c,
		EpsilonS: epsS,
		EpsilonY: epsY,
	}
	check.Yields = epsS >= epsY
	if check.Yields {
		check.SteelStress = mat.Fy
	} else {
		check.SteelStress = epsS * nscp.Es
	}
	if epsY > 0 {
		check.StrainRatio = epsS / epsY
	}
	check.TensionControlled = epsS >= 0.005
	check.Passes = check.Yields
	return check
}
