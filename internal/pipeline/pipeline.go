// Package pipeline orchestrates a batch design run: it walks the job's
// floor/group/beam hierarchy, designs every beam concurrently, and folds the
// per-section results into a single output document.
package pipeline

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alexiusacademia/rcbd/internal/config"
	"github.com/alexiusacademia/rcbd/internal/flexure"
	"github.com/alexiusacademia/rcbd/internal/nscp"
	"github.com/alexiusacademia/rcbd/internal/shear"
	"github.com/alexiusacademia/rcbd/internal/torsion"
	"github.com/alexiusacademia/rcbd/internal/version"
)

// Metadata summarizes a finished run.
type Metadata struct {
	Generated string `json:"generated"`
	Code      string `json:"code"`
	Version   string `json:"version"`

	BeamsProcessed   int `json:"beams_processed"`
	SectionsDesigned int `json:"sections_designed"`
	SinglyReinforced int `json:"singly_reinforced"`
	DoublyReinforced int `json:"doubly_reinforced"`
	DuctilityRaised  int `json:"ductility_raised"`
	FailureCount     int `json:"failure_count"`

	Failures []string `json:"failures,omitempty"`
}

// Parameters echoes the run-wide settings into the output document.
type Parameters struct {
	FrameType     string  `json:"frame_type"`
	ConcreteGrade string  `json:"concrete_grade"`
	Fc            float64 `json:"fc"`
	MainSteelFy   float64 `json:"main_steel_fy"`
	ShearSteelFy  float64 `json:"shear_steel_fy"`
	PhiFlexure    float64 `json:"phi_flexure"`
	PhiShear      float64 `json:"phi_shear"`
	PhiTorsion    float64 `json:"phi_torsion"`
	Cover         float64 `json:"cover"`
	TorsionDesign bool    `json:"torsion_design"`
}

// SectionOutput groups the three design stages at one beam section.
type SectionOutput struct {
	Flexure map[string]*flexure.SectionResult `json:"flexure"` // keyed top/bottom
	Shear   *shear.Result                     `json:"shear,omitempty"`
	Torsion *torsion.Result                   `json:"torsion,omitempty"`
}

// BeamOutput is the finished design of one beam. Each beam's processing task
// owns its BeamOutput exclusively; the maps above it are never written after
// the workers start.
type BeamOutput struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`

	Sections  map[string]*SectionOutput  `json:"sections"`
	Ductility *flexure.DuctilityEnvelope `json:"ductility,omitempty"`
}

// Document is the run output, mirroring the input hierarchy.
type Document struct {
	Metadata   Metadata                                     `json:"metadata"`
	Parameters Parameters                                   `json:"parameters"`
	Floors     map[string]map[string]map[string]*BeamOutput `json:"floors"`
}

// Run designs every beam in the job. Beams run in parallel; design failures
// stay local to their section slot and are aggregated into the metadata, so
// Run itself only errors on a malformed job.
func Run(job *config.Job, logger *zap.Logger) (*Document, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	doc := &Document{
		Metadata: Metadata{
			Generated: start.Format(time.RFC3339),
			Code:      "NSCP 2015",
			Version:   version.Version,
		},
		Parameters: runParameters(job),
		Floors:     make(map[string]map[string]map[string]*BeamOutput),
	}

	type task struct {
		floor, group, name string
		beam               config.Beam
		out                *BeamOutput
	}

	var tasks []task
	for floor, groups := range job.FloorGroups {
		doc.Floors[floor] = make(map[string]map[string]*BeamOutput)
		for group, beams := range groups {
			doc.Floors[floor][group] = make(map[string]*BeamOutput)
			for name, beam := range beams {
				out := &BeamOutput{
					Width:    beam.Dimensions.Base,
					Height:   beam.Dimensions.Height,
					Length:   beam.Dimensions.Length,
					Sections: make(map[string]*SectionOutput),
				}
				doc.Floors[floor][group][name] = out
				tasks = append(tasks, task{floor, group, name, beam, out})
			}
		}
	}

	var wg sync.WaitGroup
	for i := range tasks {
		t := tasks[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			designBeam(job, t.beam, t.out)
			logger.Debug("beam designed",
				zap.String("floor", t.floor),
				zap.String("group", t.group),
				zap.String("beam", t.name))
		}()
	}
	wg.Wait()

	aggregate(doc)

	logger.Info("design run finished",
		zap.Int("beams", doc.Metadata.BeamsProcessed),
		zap.Int("sections", doc.Metadata.SectionsDesigned),
		zap.Int("failures", doc.Metadata.FailureCount),
		zap.Duration("elapsed", time.Since(start)))

	return doc, nil
}

func runParameters(job *config.Job) Parameters {
	return Parameters{
		FrameType:     job.DesignSettings.FrameType,
		ConcreteGrade: job.MaterialProperties.ConcreteGrade,
		Fc:            nscp.ConcreteStrength(job.MaterialProperties.ConcreteGrade),
		MainSteelFy:   job.MaterialProperties.MainSteelFy,
		ShearSteelFy:  job.MaterialProperties.ShearSteelFy,
		PhiFlexure:    job.DesignSettings.ReductionFactorFlexure,
		PhiShear:      job.DesignSettings.ReductionFactorShear,
		PhiTorsion:    job.DesignSettings.ReductionFactorTorsion,
		Cover:         job.MaterialProperties.ConcreteCover,
		TorsionDesign: job.DesignSettings.ConsiderTorsionDesign,
	}
}

// designBeam runs the full stage chain for one beam: flexure at every
// section/location, the ductility pass for seismic frames, then shear and
// torsion per section from the finalized flexural state.
func designBeam(job *config.Job, beam config.Beam, out *BeamOutput) {
	stirrupDia := smallestStirrup(job.ReinforcementParameters.StirrupBarRange)

	engine := &flexure.Engine{
		Geometry: flexure.Geometry{
			Width:        beam.Dimensions.Base,
			Height:       beam.Dimensions.Height,
			Cover:        job.MaterialProperties.ConcreteCover,
			StirrupDia:   stirrupDia,
			MaxAggregate: job.MaterialProperties.MaxAggregateSize,
		},
		Materials: flexure.Materials{
			Fc: nscp.ConcreteStrength(job.MaterialProperties.ConcreteGrade),
			Fy: job.MaterialProperties.MainSteelFy,
		},
		Phi:           job.DesignSettings.ReductionFactorFlexure,
		MaxSteelRatio: job.DesignSettings.MaxSteelRatio,
		BarRange: [2]int{
			job.ReinforcementParameters.MainBarRange[0],
			job.ReinforcementParameters.MainBarRange[1],
		},
		MinBars: 2,
	}

	results := make(flexure.BeamResults)
	for _, section := range config.SectionPositions {
		forces := beam.Forces[section]
		results[section] = make(map[string]*flexure.SectionResult)
		for _, location := range config.SteelLocations {
			mu, combo := resolveMoment(forces, location)
			res := engine.DesignLocation(section, location, mu)
			res.GoverningCombination = combo
			results[section][location] = res
		}
	}

	switch job.DesignSettings.FrameType {
	case config.FrameIntermediate, config.FrameSpecial:
		env := engine.EnforceDuctility(results)
		out.Ductility = &env
	}

	shearParams := shear.Params{
		Phi:        job.DesignSettings.ReductionFactorShear,
		Fc:         engine.Materials.Fc,
		Fyv:        job.MaterialProperties.ShearSteelFy,
		Lambda:     job.DesignSettings.LightweightFactorShear,
		FrameType:  job.DesignSettings.FrameType,
		MinSpacing: job.ReinforcementParameters.MinStirrupSpacing,
		MaxSpacing: job.ReinforcementParameters.MaxStirrupSpacing,
		RoundOff:   job.DesignSettings.StirrupSpacingRoundOff,
		StirrupDia: stirrupDia,
	}
	torsionParams := torsion.Params{
		Phi:        job.DesignSettings.ReductionFactorTorsion,
		Fc:         engine.Materials.Fc,
		Fy:         job.MaterialProperties.MainSteelFy,
		Fyv:        job.MaterialProperties.ShearSteelFy,
		Lambda:     job.DesignSettings.LightweightFactorShear,
		Cover:      job.MaterialProperties.ConcreteCover,
		StirrupDia: stirrupDia,
		MinSpacing: job.ReinforcementParameters.MinStirrupSpacing,
		MaxSpacing: job.ReinforcementParameters.MaxStirrupSpacing,
		RoundOff:   job.DesignSettings.StirrupSpacingRoundOff,
		Enabled:    job.DesignSettings.ConsiderTorsionDesign,
	}

	for _, section := range config.SectionPositions {
		forces := beam.Forces[section]
		so := &SectionOutput{Flexure: results[section]}

		mu, as, d := governingFlexuralState(results[section])
		sr := shear.Design(shearParams,
			beam.Dimensions.Base, beam.Dimensions.Height, d,
			shear.Demand{
				Vu:         forces.MaxShear,
				Mu:         mu,
				Nu:         forces.MaxAxial,
				AsProvided: as,
			})
		so.Shear = &sr

		tr := torsion.Design(torsionParams,
			beam.Dimensions.Base, beam.Dimensions.Height, forces.MaxTorsion)
		so.Torsion = &tr

		out.Sections[section] = so
	}
}

// resolveMoment picks the design moment for one location: the pre-factored
// value when given, otherwise the governing NSCP combination over the
// unfactored load cases. Returns the moment and the combination label.
func resolveMoment(forces config.SectionForces, location string) (float64, string) {
	var mu float64
	var unfactored *config.UnfactoredMoments
	if location == "top" {
		mu = forces.MaxMomentTop
		unfactored = forces.UnfactoredTop
	} else {
		mu = forces.MaxMomentBottom
		unfactored = forces.UnfactoredBottom
	}
	if mu > 0 || unfactored == nil {
		return mu, ""
	}

	moments := nscp.LoadMoments{
		Dead:       unfactored.Dead,
		Live:       unfactored.Live,
		Roof:       unfactored.Roof,
		Wind:       unfactored.Wind,
		Earthquake: unfactored.Earthquake,
		Rain:       unfactored.Rain,
	}
	if moments.IsZero() {
		return 0, ""
	}
	governing, combo := nscp.GoverningMoment(moments)
	return governing, combo.Description
}

// governingFlexuralState returns the concurrent moment, tension steel, and
// effective depth the shear stage should use: the location with the larger
// demand governs. Locations are visited in fixed order so equal demands
// resolve the same way on every run.
func governingFlexuralState(locations map[string]*flexure.SectionResult) (mu, as, d float64) {
	for _, location := range config.SteelLocations {
		res := locations[location]
		if res == nil {
			continue
		}
		if res.EffectiveDepth > d {
			d = res.EffectiveDepth
		}
		if res.Mu >= mu {
			mu = res.Mu
			if res.AsProvided > 0 {
				as = res.AsProvided
			}
		}
	}
	return
}

func smallestStirrup(barRange []int) float64 {
	bars := nscp.BarsInRange(barRange[0], barRange[1])
	if len(bars) == 0 {
		return float64(barRange[0])
	}
	return float64(bars[0])
}

// aggregate walks the finished document and fills the metadata counters.
// Runs after every worker has finished, so no synchronization is needed.
func aggregate(doc *Document) {
	m := &doc.Metadata
	for floor, groups := range doc.Floors {
		for group, beams := range groups {
			for name, beam := range beams {
				m.BeamsProcessed++
				for section, so := range beam.Sections {
					for location, res := range so.Flexure {
						if res == nil || res.Status == flexure.StatusNotRequired {
							continue
						}
						m.SectionsDesigned++
						if res.DoublyReinforced {
							m.DoublyReinforced++
						} else {
							m.SinglyReinforced++
						}
						if res.DuctileControlling {
							m.DuctilityRaised++
						}
						if res.Status == flexure.StatusFail {
							m.FailureCount++
							m.Failures = append(m.Failures,
								fmt.Sprintf("%s/%s/%s %s %s: %s",
									floor, group, name, section, location, res.Note))
						}
					}
				}
			}
		}
	}
	sort.Strings(m.Failures)
}
