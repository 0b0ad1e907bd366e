// Package shear designs transverse (stirrup) reinforcement for beam
// sections, layered on top of the finalized flexural results. It follows
// the NSCP 2015 one-way shear provisions for non-prestressed members.
package shear

import "math"

// Params are the run-wide shear design settings.
type Params struct {
	Phi        float64 // strength reduction factor for shear
	Fc         float64 // f'c (MPa)
	Fyv        float64 // stirrup steel yield strength (MPa)
	Lambda     float64 // lightweight concrete factor
	FrameType  string  // ordinary/intermediate/special
	MinSpacing float64 // user floor (mm)
	MaxSpacing float64 // user ceiling (mm)
	RoundOff   float64 // spacing round-off increment (mm)
	StirrupDia float64 // mm
}

// Demand is the factored force set at one section, with the flexural
// context the Vc interaction term needs.
type Demand struct {
	Vu         float64 // factored shear (kN)
	Mu         float64 // concurrent factored moment (kN-m)
	Nu         float64 // factored axial force (kN), compression positive
	AsProvided float64 // longitudinal steel from the flexural stage (mm²)
}

// Result records the stirrup design for one section.
type Result struct {
	Vu float64 `json:"vu"` // kN
	Vc float64 `json:"vc"` // concrete capacity (kN)
	Vs float64 `json:"vs"` // required steel shear (kN)

	Legs       int     `json:"legs"`
	StirrupDia float64 `json:"stirrup_dia"`
	Av         float64 `json:"av"` // total leg area (mm²)

	SpacingRequired float64 `json:"spacing_required,omitempty"` // mm
	Spacing         float64 `json:"spacing"`                    // governing spacing (mm)
	MinSpacingLimit float64 `json:"min_spacing_limit"`
	MaxSpacingLimit float64 `json:"max_spacing_limit"`

	ReinforcementRequired bool   `json:"reinforcement_required"`
	Note                  string `json:"note,omitempty"`
}

// Vc computes the concrete shear capacity in N. The basic value is
// 0.29λ√f'c·b·d, reduced to the detailed moment-interaction form when it
// governs, and scaled by the axial modifier when an axial force acts.
func Vc(p Params, b, d, rho, vuN, muNmm, nuN, ag float64) float64 {
	axial := 1.0
	if nuN > 0 {
		axial = 1 + nuN/(14*ag)
	} else if nuN < 0 {
		axial = 1 + nuN/(3.5*ag)
		if axial < 0 {
			axial = 0
		}
	}

	basic := 0.29 * p.Lambda * math.Sqrt(p.Fc) * b * d * axial

	if rho > 0 && vuN > 0 && muNmm > 0 {
		detailed := (0.16*p.Lambda*math.Sqrt(p.Fc) + 17*rho*vuN*d/muNmm) * b * d * axial
		return math.Min(basic, detailed)
	}
	return basic
}

// Legs selects the stirrup leg count from the beam width.
func Legs(b float64) int {
	switch {
	case b <= 300:
		return 2
	case b <= 500:
		return 4
	default:
		return 6
	}
}

// spacingLimits returns the code floor and ceiling on stirrup spacing.
func spacingLimits(p Params, d, vsN, b float64) (float64, float64) {
	var maxCode float64
	if vsN <= 0.33*math.Sqrt(p.Fc)*b*d {
		maxCode = math.Min(d/2, 600)
	} else {
		maxCode = math.Min(d/4, 300)
	}
	if p.FrameType == "special" {
		maxCode = math.Min(maxCode, math.Min(d/4, 150))
	}
	return p.MinSpacing, math.Min(maxCode, p.MaxSpacing)
}

// roundSpacing rounds down to the nearest multiple of the round-off value.
func roundSpacing(s, roundOff float64) float64 {
	if roundOff <= 0 {
		return s
	}
	return math.Floor(s/roundOff) * roundOff
}

// Design sizes the stirrups for one section. b, h, d in mm.
func Design(p Params, b, h, d float64, dem Demand) Result {
	vuN := dem.Vu * 1e3
	muNmm := dem.Mu * 1e6
	nuN := dem.Nu * 1e3
	ag := b * h

	rho := 0.0
	if dem.AsProvided > 0 {
		rho = dem.AsProvided / (b * d)
	}

	vcN := Vc(p, b, d, rho, vuN, muNmm, nuN, ag)
	vsN := math.Max(0, vuN/p.Phi-vcN)

	legs := Legs(b)
	av := float64(legs) * math.Pi * p.StirrupDia * p.StirrupDia / 4

	res := Result{
		Vu:         dem.Vu,
		Vc:         vcN / 1e3,
		Vs:         vsN / 1e3,
		Legs:       legs,
		StirrupDia: p.StirrupDia,
		Av:         av,
	}

	minS, maxS := spacingLimits(p, d, vsN, b)
	res.MinSpacingLimit = minS
	res.MaxSpacingLimit = maxS

	if vsN <= 0 {
		res.Spacing = roundSpacing(maxS, p.RoundOff)
		res.Note = "minimum shear reinforcement provided"
		return res
	}

	res.ReinforcementRequired = true
	required := av * p.Fyv * d / vsN
	res.SpacingRequired = required

	s := math.Max(minS, math.Min(required, maxS))

	// Minimum Av/s = 0.35 b / fyv
	if av/s < 0.35*b/p.Fyv {
		s = math.Min(s, av*p.Fyv/(0.35*b))
	}

	s = roundSpacing(s, p.RoundOff)
	res.Spacing = math.Max(s, minS)
	return res
}
