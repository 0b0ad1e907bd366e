package flexure

import (
	"fmt"
	"strings"
)

// DuctilityEnvelope is the beam-scoped seismic minimum-steel envelope for
// intermediate and special moment frames. It is computed from a single
// read-only snapshot of the required areas, so reapplying it to an already
// enforced beam changes nothing.
type DuctilityEnvelope struct {
	MaxAsAllZones float64 `json:"max_as_all_zones"` // mm²
	MaxAsTop      float64 `json:"max_as_top"`       // max among top locations

	TwentyFivePercentAll float64 `json:"twenty_five_percent_all"`
	FiftyPercentTop      float64 `json:"fifty_percent_top"`

	TopEnds    float64 `json:"top_ends"`    // governing minimum, top @ left/right
	BottomEnds float64 `json:"bottom_ends"` // governing minimum, bottom @ left/right
	Mid        float64 `json:"mid"`         // governing minimum, mid zones
}

// ComputeEnvelope snapshots the beam's required areas and derives the
// per-zone minimums: 25% of the beam-wide maximum everywhere, with the
// bottom at the supports additionally held to 50% of the top-zone maximum.
func ComputeEnvelope(results BeamResults) DuctilityEnvelope {
	var env DuctilityEnvelope
	for _, locations := range results {
		for location, res := range locations {
			if res == nil || res.AsRequired <= 0 {
				continue
			}
			if res.AsRequired > env.MaxAsAllZones {
				env.MaxAsAllZones = res.AsRequired
			}
			if location == "top" && res.AsRequired > env.MaxAsTop {
				env.MaxAsTop = res.AsRequired
			}
		}
	}

	env.TwentyFivePercentAll = 0.25 * env.MaxAsAllZones
	env.FiftyPercentTop = 0.50 * env.MaxAsTop

	env.Mid = env.TwentyFivePercentAll
	env.TopEnds = env.TwentyFivePercentAll
	env.BottomEnds = env.TwentyFivePercentAll
	if env.FiftyPercentTop > env.BottomEnds {
		env.BottomEnds = env.FiftyPercentTop
	}
	return env
}

// MinimumFor returns the governing minimum steel area for a section/location.
func (env DuctilityEnvelope) MinimumFor(section, location string) float64 {
	if section == "mid" {
		return env.Mid
	}
	if location == "bottom" {
		return env.BottomEnds
	}
	return env.TopEnds
}

// EnforceDuctility applies the envelope to every non-failed section/location
// of the beam, re-running the optimizer and arranger only where the minimum
// governs. The envelope comes from a snapshot taken before any overwrite, so
// the pass is idempotent.
func (e *Engine) EnforceDuctility(results BeamResults) DuctilityEnvelope {
	env := ComputeEnvelope(results)
	if env.MaxAsAllZones <= 0 {
		return env
	}

	for section, locations := range results {
		for location, res := range locations {
			if res == nil || res.Status == StatusFail {
				continue
			}
			min := env.MinimumFor(section, location)
			if min > res.AsRequired {
				locations[location] = e.applyMinimum(res, min)
			} else if min > 0 && !res.DuctileControlling {
				res.DuctileRequirement = min
			}
		}
	}
	return env
}

// applyMinimum is the pure (result, minimum) -> result re-design: the
// required area is raised to the governing minimum and the bar selection,
// arrangement, and checks are rebuilt for this slot only. The input result
// is not mutated.
func (e *Engine) applyMinimum(prev *SectionResult, min float64) *SectionResult {
	res := &SectionResult{
		Section:              prev.Section,
		Location:             prev.Location,
		Mu:                   prev.Mu,
		GoverningCombination: prev.GoverningCombination,
		EffectiveDepth:       prev.EffectiveDepth,
		Solution:             prev.Solution,
		Doubly:               prev.Doubly,
		DoublyReinforced:     prev.DoublyReinforced,
		AsRequired:           min,
		DuctileControlling:   true,
		DuctileRequirement:   min,
	}

	notes := []string{fmt.Sprintf("ductile requirement controls (%.0f mm²)", min)}

	if !e.selectAndArrange(res, &notes) {
		return res
	}

	if res.Mu > 0 {
		e.verify(res, &notes)
		res.Note = strings.Join(notes, "; ")
		res.Status = statusFromChecks(res, true)
		return res
	}

	// Zero-demand slot raised purely by the envelope: no capacity check to
	// run, but the strain state of the provided steel is still reported.
	strain := VerifyStrain(res.AsProvided, e.Geometry, e.Materials, res.EffectiveDepth)
	res.Strain = &strain
	res.Note = strings.Join(notes, "; ")
	if strain.Passes {
		res.Status = StatusAdequateWithNote
	} else {
		fail(res, fmt.Errorf("%w: εs=%.5f < εy=%.5f", ErrStrainIncompatible,
			strain.EpsilonS, strain.EpsilonY))
	}
	return res
}
