package flexure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/rcbd/internal/nscp"
)

// Engine designs the sections of one beam. Geometry and the bar range are
// fixed per beam; materials and φ are shared read-only across the run.
type Engine struct {
	Geometry      Geometry
	Materials     Materials
	Phi           float64
	MaxSteelRatio float64
	BarRange      [2]int
	MinBars       int
}

// AssumedBarDia is the main bar diameter assumed for effective depth before
// a selection exists: the smallest standard bar in range.
func (e *Engine) AssumedBarDia() float64 {
	bars := nscp.BarsInRange(e.BarRange[0], e.BarRange[1])
	if len(bars) == 0 {
		return float64(nscp.StandardBarSizes[0])
	}
	return float64(bars[0])
}

// DesignLocation runs the full chain for one section/location: solve the
// required area, select bars, arrange them, verify capacity and strain.
// All failures terminate in the result's status and note; the error return
// is always nil-safe to ignore for batch callers.
func (e *Engine) DesignLocation(section, location string, mu float64) *SectionResult {
	res := &SectionResult{
		Section:        section,
		Location:       location,
		Mu:             mu,
		EffectiveDepth: EffectiveDepth(e.Geometry, e.AssumedBarDia()),
	}

	if mu <= 0 {
		res.Status = StatusNotRequired
		res.Note = "no factored moment at this location"
		return res
	}

	sol, err := Solve(mu, e.Phi, e.Geometry, e.Materials, e.MaxSteelRatio, e.AssumedBarDia())
	if err != nil {
		return fail(res, err)
	}
	res.Solution = sol
	res.EffectiveDepth = sol.EffectiveDepth
	res.AsRequired = sol.AsRequired

	var notes []string

	if sol.OverReinforced {
		ds, derr := SolveDoubly(mu, e.Phi, e.Geometry, e.Materials, sol, e.AssumedBarDia())
		if derr != nil {
			return fail(res, derr)
		}
		if ds != nil {
			res.Doubly = ds
			res.DoublyReinforced = true
			res.AsRequired = ds.AsTotal
			notes = append(notes, "doubly reinforced: compression steel required")
		}
	}

	if !e.selectAndArrange(res, &notes) {
		return res
	}

	e.verify(res, &notes)
	res.Note = strings.Join(notes, "; ")
	res.Status = statusFromChecks(res, len(notes) > 0)
	return res
}

// selectAndArrange picks the best-ranked candidate that the arranger can fit,
// falling back through the ranked list on spacing failures. Returns false
// when the result is terminal.
func (e *Engine) selectAndArrange(res *SectionResult, notes *[]string) bool {
	cands, err := Combinations(res.AsRequired, e.BarRange, e.MinBars)
	if err != nil {
		fail(res, err)
		return false
	}
	res.Candidates = cands

	var lastErr error
	for i := range cands {
		layout, aerr := Arrange(cands[i], e.Geometry)
		if aerr != nil {
			lastErr = aerr
			continue
		}
		res.Recommended = &cands[i]
		res.Layout = layout
		res.AsProvided = cands[i].TotalArea
		if layout.Layers > 1 {
			*notes = append(*notes, fmt.Sprintf("bars placed in %d layers", layout.Layers))
		}
		if i > 0 {
			*notes = append(*notes, "top-ranked combination rejected by spacing; using fallback")
		}
		break
	}
	if res.Recommended == nil {
		if lastErr == nil {
			lastErr = fmt.Errorf("%w: no candidate could be arranged", ErrSpacingInfeasible)
		}
		fail(res, lastErr)
		return false
	}

	if res.DoublyReinforced {
		if comp, cerr := Combinations(res.Doubly.AscRequired, e.BarRange, e.MinBars); cerr == nil {
			res.CompressionRecommended = &comp[0]
		}
	}
	return true
}

// verify recomputes capacity and strain from the provided steel.
func (e *Engine) verify(res *SectionResult, notes *[]string) {
	d := res.EffectiveDepth

	if res.DoublyReinforced {
		cap := VerifyDoublyCapacity(res.Doubly, e.Phi, e.Geometry, e.Materials, d, res.Mu)
		res.Capacity = &cap
		// The concrete couple is held at ρmax, which fixes the strain state.
		strain := VerifyStrain(res.Doubly.As1, e.Geometry, e.Materials, d)
		res.Strain = &strain
	} else {
		cap := VerifyCapacity(res.AsProvided, e.Phi, e.Geometry, e.Materials, d, res.Mu)
		res.Capacity = &cap
		strain := VerifyStrain(res.AsProvided, e.Geometry, e.Materials, d)
		res.Strain = &strain
	}

	if res.Strain != nil && res.Strain.Passes && !res.Strain.TensionControlled {
		*notes = append(*notes, "section in transition zone")
	}
}

// statusFromChecks folds the two independent checks and the accumulated
// notes into the terminal status. Both checks must pass; a strain failure
// is never masked by adequate capacity.
func statusFromChecks(res *SectionResult, noted bool) Status {
	capOK := res.Capacity != nil && res.Capacity.Passes
	strainOK := res.Strain != nil && res.Strain.Passes

	if capOK && !strainOK {
		fail(res, fmt.Errorf("%w: εs=%.5f < εy=%.5f", ErrStrainIncompatible,
			res.Strain.EpsilonS, res.Strain.EpsilonY))
		return res.Status
	}
	if !capOK {
		fail(res, fmt.Errorf("capacity inadequate: φMn=%.2f kN-m < Mu=%.2f kN-m",
			res.Capacity.PhiMn, res.Capacity.Mu))
		return res.Status
	}
	if noted || res.DuctileControlling {
		return StatusAdequateWithNote
	}
	return StatusPass
}

func fail(res *SectionResult, err error) *SectionResult {
	res.Status = StatusFail
	if res.Note != "" {
		res.Note += "; "
	}
	res.Note += err.Error()
	return res
}

// Err reports the failure kind a finished result corresponds to, for callers
// aggregating failures. Nil for non-failed results.
func (r *SectionResult) Err() error {
	if r.Status != StatusFail {
		return nil
	}
	for _, kind := range []error{
		ErrInvalidDemand, ErrOverReinforced, ErrNoFeasibleCombination,
		ErrSpacingInfeasible, ErrStrainIncompatible,
	} {
		if strings.Contains(r.Note, kind.Error()) {
			return fmt.Errorf("%w: %s/%s", kind, r.Section, r.Location)
		}
	}
	return errors.New(r.Note)
}
