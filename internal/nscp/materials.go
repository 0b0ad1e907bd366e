package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Beta1 factors for equivalent rectangular stress block
	// Section 410.2.7.3
	Beta1Max = 0.85 // for f'c <= 28 MPa
	Beta1Min = 0.65 // minimum value

	// Strain limits
	EpsilonCU = 0.003 // Ultimate concrete strain (Section 410.2.2.1)

	// Strength reduction factors (Section 409.3.2)
	PhiFlexure       = 0.90 // Tension-controlled sections
	PhiShear         = 0.75 // Shear
	PhiTorsion       = 0.75
	PhiCompression   = 0.65 // Compression-controlled (tied)
	PhiCompressionSp = 0.75 // Compression-controlled (spiral)

	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Absolute ceiling on the tension steel ratio unless overridden by
	// design settings
	DefaultMaxSteelRatio = 0.025
)

// Beta1 calculates the factor for equivalent rectangular stress block
// NSCP 2015 Section 410.2.7.3
func Beta1(fc float64) float64 {
	if fc <= 28 {
		return Beta1Max
	}
	// β1 = 0.85 - 0.05(f'c - 28)/7 for f'c > 28 MPa
	beta1 := Beta1Max - 0.05*(fc-28)/7
	return math.Max(beta1, Beta1Min)
}

// Phi calculates the strength reduction factor based on strain
// NSCP 2015 Section 409.3.2
func Phi(epsilonT float64, fy float64) float64 {
	epsilonTY := fy / Es

	if epsilonT >= epsilonTY+0.003 {
		// Tension-controlled
		return PhiFlexure
	} else if epsilonT <= epsilonTY {
		// Compression-controlled
		return PhiCompression
	}
	// Transition zone
	return PhiCompression + (PhiFlexure-PhiCompression)*(epsilonT-epsilonTY)/0.003
}

// RhoMin calculates minimum reinforcement ratio
// NSCP 2015 Section 409.6.1.2
func RhoMin(fc, fy float64) float64 {
	// ρmin = max(0.25√f'c/fy, 1.4/fy)
	rho1 := 0.25 * math.Sqrt(fc) / fy
	rho2 := 1.4 / fy
	return math.Max(rho1, rho2)
}

// RhoBalanced calculates the balanced reinforcement ratio using the
// 600/(600+fy) form of the strain-compatibility relation (fy in MPa).
func RhoBalanced(fc, fy float64) float64 {
	beta1 := Beta1(fc)
	return 0.85 * beta1 * (fc / fy) * (600 / (600 + fy))
}

// RhoMax limits the tension steel ratio to 75% of balanced, capped by an
// absolute ceiling from design settings (0.025 by default).
func RhoMax(rhoBalanced, ceiling float64) float64 {
	if ceiling <= 0 {
		ceiling = DefaultMaxSteelRatio
	}
	return math.Min(0.75*rhoBalanced, ceiling)
}
