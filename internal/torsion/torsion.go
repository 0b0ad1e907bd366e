// Package torsion designs closed-stirrup and longitudinal torsion
// reinforcement per the NSCP 2015 solid-section provisions, plus the
// side-face (skin) reinforcement check for deep beams.
package torsion

import "math"

const (
	// SideFaceHeightThreshold is the overall depth above which skin
	// reinforcement must be distributed along the side faces (mm).
	SideFaceHeightThreshold = 750

	// SideFaceMinRatio is the minimum skin steel area ratio per face.
	SideFaceMinRatio = 0.0010
)

// Params are the run-wide torsion design settings.
type Params struct {
	Phi        float64 // strength reduction factor for torsion
	Fc         float64 // f'c (MPa)
	Fy         float64 // longitudinal steel yield strength (MPa)
	Fyv        float64 // stirrup steel yield strength (MPa)
	Lambda     float64 // lightweight concrete factor
	Cover      float64 // mm
	StirrupDia float64 // mm
	MinSpacing float64 // mm
	MaxSpacing float64 // mm
	RoundOff   float64 // mm
	Enabled    bool    // consider_torsion_design
}

// SideFace reports the skin reinforcement requirement for deep sections.
type SideFace struct {
	Required       bool    `json:"required"`
	MinAreaPerFace float64 `json:"min_area_per_face,omitempty"` // mm²
	MaxSpacing     float64 `json:"max_spacing,omitempty"`       // mm
}

// Result records the torsion design for one section.
type Result struct {
	Tu        float64 `json:"tu"`        // kN-m
	Threshold float64 `json:"threshold"` // kN-m

	Skipped    bool   `json:"skipped"`
	SkipReason string `json:"skip_reason,omitempty"`

	ReinforcementRequired bool    `json:"reinforcement_required"`
	AtOverS               float64 `json:"at_over_s,omitempty"`  // mm²/mm per leg
	Spacing               float64 `json:"spacing,omitempty"`    // mm
	AlRequired            float64 `json:"al_required,omitempty"` // longitudinal steel (mm²)

	SideFace SideFace `json:"side_face"`
}

// sectionProperties returns Acp, pcp, Aoh, ph for a solid rectangle. The
// closed-stirrup perimeter is measured to the stirrup centerline.
func sectionProperties(p Params, b, h float64) (acp, pcp, aoh, ph float64) {
	acp = b * h
	pcp = 2 * (b + h)

	x1 := b - 2*p.Cover - p.StirrupDia
	y1 := h - 2*p.Cover - p.StirrupDia
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	aoh = x1 * y1
	ph = 2 * (x1 + y1)
	return
}

// Threshold is the torsion below which the effect may be neglected:
// φ·0.083·λ·√f'c·A²cp/pcp, returned in N-mm.
func Threshold(p Params, b, h float64) float64 {
	acp, pcp, _, _ := sectionProperties(p, b, h)
	if pcp <= 0 {
		return 0
	}
	return p.Phi * 0.083 * p.Lambda * math.Sqrt(p.Fc) * acp * acp / pcp
}

// Design sizes the torsion reinforcement for one section. b, h in mm,
// tu in kN-m. Both checks (stirrups and side-face steel) always run when
// the stage is enabled; the side-face check depends only on geometry.
func Design(p Params, b, h, tu float64) Result {
	res := Result{Tu: tu}

	res.SideFace = sideFace(p, b, h)

	if !p.Enabled {
		res.Skipped = true
		res.SkipReason = "torsion design disabled"
		return res
	}

	tuNmm := math.Abs(tu) * 1e6
	thNmm := Threshold(p, b, h)
	res.Threshold = thNmm / 1e6

	if tuNmm <= thNmm {
		res.Skipped = true
		res.SkipReason = "factored torsion below threshold"
		return res
	}

	_, _, aoh, ph := sectionProperties(p, b, h)
	ao := 0.85 * aoh
	if ao <= 0 {
		res.Skipped = true
		res.SkipReason = "no enclosed area inside stirrups"
		return res
	}

	res.ReinforcementRequired = true

	// θ = 45°, cot θ = 1 for non-prestressed members.
	res.AtOverS = tuNmm / (p.Phi * 2 * ao * p.Fyv)
	res.AlRequired = res.AtOverS * ph * p.Fyv / p.Fy

	legArea := math.Pi * p.StirrupDia * p.StirrupDia / 4
	s := legArea / res.AtOverS

	// Code ceiling for torsion stirrups: min(ph/8, 300).
	maxCode := math.Min(ph/8, 300)
	s = math.Min(s, math.Min(maxCode, p.MaxSpacing))
	if p.RoundOff > 0 {
		s = math.Floor(s/p.RoundOff) * p.RoundOff
	}
	res.Spacing = math.Max(s, p.MinSpacing)

	return res
}

// sideFace checks the skin reinforcement requirement: sections deeper than
// 750 mm carry distributed steel on each side face regardless of the
// torsion magnitude.
func sideFace(p Params, b, h float64) SideFace {
	if h <= SideFaceHeightThreshold {
		return SideFace{}
	}
	return SideFace{
		Required:       true,
		MinAreaPerFace: SideFaceMinRatio * b * h,
		MaxSpacing:     p.MaxSpacing,
	}
}
