// Package flexure implements the reinforcement design engine for rectangular
// beam sections: the limit-state capacity solver, the discrete bar
// combination optimizer, the spacing and layer arranger, the capacity and
// strain verifier, and the beam-level seismic ductility enforcer.
package flexure

// Geometry is the beam cross-section shared by all sections of one beam.
// All dimensions in mm.
type Geometry struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Cover        float64 `json:"cover"`
	StirrupDia   float64 `json:"stirrup_dia"`
	MaxAggregate float64 `json:"max_aggregate"`
}

// Materials is the resolved material set, shared read-only across a run.
type Materials struct {
	Fc float64 `json:"fc"` // f'c (MPa)
	Fy float64 `json:"fy"` // main steel yield strength (MPa)
}

// Solution holds the singly-reinforced limit-state solve for one demand.
type Solution struct {
	EffectiveDepth float64 `json:"effective_depth"` // mm
	Rn             float64 `json:"rn"`              // MPa

	RhoComputed float64 `json:"rho_computed"` // before clamping
	RhoRequired float64 `json:"rho_required"` // after clamping
	RhoMin      float64 `json:"rho_min"`
	RhoMax      float64 `json:"rho_max"`
	RhoBalanced float64 `json:"rho_balanced"`

	AsRequired float64 `json:"as_required"` // mm²
	AsMin      float64 `json:"as_min"`
	AsMax      float64 `json:"as_max"`

	// OverReinforced is set when the unclamped solve exceeded ρmax or the
	// discriminant had to be clamped; the doubly-reinforced path takes over.
	OverReinforced bool `json:"over_reinforced"`
}

// DoublySolution holds the compression-steel fallback design.
type DoublySolution struct {
	As1         float64 `json:"as1"`          // tension steel paired with concrete (mm²)
	As2         float64 `json:"as2"`          // tension steel paired with compression steel
	AsTotal     float64 `json:"as_total"`     // total tension steel
	AscRequired float64 `json:"asc_required"` // compression steel
	DPrime      float64 `json:"d_prime"`      // depth to compression steel centroid (mm)
	FscStress   float64 `json:"fsc_stress"`   // compression steel stress (MPa)
	CompYielded bool    `json:"comp_yielded"`
	Mn1         float64 `json:"mn1"` // kN-m
	Mn2         float64 `json:"mn2"` // kN-m
}

// Candidate is one discrete (diameter, count) bar selection.
type Candidate struct {
	Diameter      int     `json:"diameter"` // mm
	Count         int     `json:"count"`
	BarArea       float64 `json:"bar_area"`       // mm²
	TotalArea     float64 `json:"total_area"`     // mm²
	ExcessPercent float64 `json:"excess_percent"` // over required area
	Score         float64 `json:"score"`          // 0..100
}

// Layout is a physically arranged candidate: one or two layers of bars with
// verified clear spacing. BarsPerLayer is ordered outward to inward; the sum
// always equals the candidate count.
type Layout struct {
	Layers         int       `json:"layers"`
	BarsPerLayer   []int     `json:"bars_per_layer"`
	Diameter       int       `json:"diameter"`
	Spacing        []float64 `json:"spacing"` // clear spacing per layer (mm)
	MinSpacing     float64   `json:"min_spacing"`
	AvailableWidth float64   `json:"available_width"`
}

// CapacityCheck is the recomputed design capacity against demand.
type CapacityCheck struct {
	A      float64 `json:"a"`      // compression block depth (mm)
	Mn     float64 `json:"mn"`     // nominal capacity (kN-m)
	PhiMn  float64 `json:"phi_mn"` // design capacity (kN-m)
	Mu     float64 `json:"mu"`     // demand (kN-m)
	Ratio  float64 `json:"ratio"`  // φMn/Mu
	Passes bool    `json:"passes"`
}

// StrainCheck is the strain-compatibility verification.
type StrainCheck struct {
	C                 float64 `json:"c"` // neutral axis depth (mm)
	EpsilonS          float64 `json:"epsilon_s"`
	EpsilonY          float64 `json:"epsilon_y"`
	SteelStress       float64 `json:"steel_stress"` // governing fs (MPa)
	StrainRatio       float64 `json:"strain_ratio"` // εs/εy
	Yields            bool    `json:"yields"`
	TensionControlled bool    `json:"tension_controlled"`
	Passes            bool    `json:"passes"`
}

// SectionResult accumulates everything the engine resolved for one
// section/location. It is written once by the beam's processing task and
// only ever replaced wholesale by the ductility pass.
type SectionResult struct {
	Section  string `json:"section"`  // left/mid/right
	Location string `json:"location"` // top/bottom

	Mu                   float64 `json:"mu"` // kN-m
	GoverningCombination string  `json:"governing_combination,omitempty"`

	EffectiveDepth   float64 `json:"effective_depth"`
	AsRequired       float64 `json:"as_required"`
	AsProvided       float64 `json:"as_provided"`
	DoublyReinforced bool    `json:"doubly_reinforced"`

	Solution *Solution       `json:"solution,omitempty"`
	Doubly   *DoublySolution `json:"doubly,omitempty"`

	Candidates             []Candidate `json:"candidates,omitempty"`
	Recommended            *Candidate  `json:"recommended,omitempty"`
	CompressionRecommended *Candidate  `json:"compression_recommended,omitempty"`
	Layout                 *Layout     `json:"layout,omitempty"`

	Capacity *CapacityCheck `json:"capacity,omitempty"`
	Strain   *StrainCheck   `json:"strain,omitempty"`

	DuctileControlling bool    `json:"ductile_controlling"`
	DuctileRequirement float64 `json:"ductile_requirement,omitempty"`

	Status Status `json:"status"`
	Note   string `json:"note,omitempty"`
}

// BeamResults maps section position -> location -> result for one beam.
type BeamResults map[string]map[string]*SectionResult
