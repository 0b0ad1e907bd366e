// Package config defines the job-file data structures consumed by the design
// pipeline and includes functions for loading and validating them.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Frame types recognized in design settings.
const (
	FrameOrdinary     = "ordinary"
	FrameIntermediate = "intermediate"
	FrameSpecial      = "special"
)

// Section positions along a beam and steel locations within a section.
var (
	SectionPositions = []string{"left", "mid", "right"}
	SteelLocations   = []string{"top", "bottom"}
)

// Job is the root of a design job file: the beam hierarchy plus the material,
// settings, and reinforcement blocks shared by every beam in the run.
type Job struct {
	MaterialProperties      MaterialProperties      `mapstructure:"material_properties"`
	DesignSettings          DesignSettings          `mapstructure:"design_settings"`
	ReinforcementParameters ReinforcementParameters `mapstructure:"reinforcement_parameters"`

	// floor -> beam group -> beam name
	FloorGroups map[string]map[string]map[string]Beam `mapstructure:"floor_groups"`
}

// MaterialProperties holds the material set resolved once per run.
type MaterialProperties struct {
	ConcreteGrade    string  `mapstructure:"concrete_grade"`
	MainSteelFy      float64 `mapstructure:"main_steel_rebar_fy"`
	ShearSteelFy     float64 `mapstructure:"shear_steel_fy"`
	ConcreteCover    float64 `mapstructure:"concrete_cover"`     // mm
	MaxAggregateSize float64 `mapstructure:"max_aggregate_size"` // mm
}

// DesignSettings holds run-wide configuration, read-only during a run.
type DesignSettings struct {
	FrameType              string  `mapstructure:"frame_type"`
	ReductionFactorFlexure float64 `mapstructure:"reduction_factor_flexure"`
	ReductionFactorShear   float64 `mapstructure:"reduction_factor_shear"`
	ReductionFactorTorsion float64 `mapstructure:"reduction_factor_torsion"`
	ReinforcementType      string  `mapstructure:"reinforcement_type"`
	MaxSteelRatio          float64 `mapstructure:"max_steel_ratio"`
	StirrupSpacingRoundOff float64 `mapstructure:"stirrup_spacing_round_off"` // mm
	LightweightFactorShear float64 `mapstructure:"lightweight_factor_shear"`
	ConsiderTorsionDesign  bool    `mapstructure:"consider_torsion_design"`
}

// ReinforcementParameters holds the bar ranges and stirrup spacing limits.
type ReinforcementParameters struct {
	MainBarRange      []int   `mapstructure:"main_bar_range"`    // [min, max] mm
	StirrupBarRange   []int   `mapstructure:"stirrup_bar_range"` // [min, max] mm
	MinStirrupSpacing float64 `mapstructure:"min_stirrup_spacing"`
	MaxStirrupSpacing float64 `mapstructure:"max_stirrup_spacing"`
}

// Beam is one beam record: geometry plus per-section factored forces.
type Beam struct {
	Dimensions Dimensions               `mapstructure:"dimensions"`
	Forces     map[string]SectionForces `mapstructure:"forces"` // keyed left/mid/right
}

// Dimensions are the beam cross-section and span dimensions in mm.
type Dimensions struct {
	Base   float64 `mapstructure:"base"`
	Height float64 `mapstructure:"height"`
	Length float64 `mapstructure:"length"`
}

// SectionForces carries the factored internal forces at one beam section.
// Moments are kN-m, forces kN. When a moment is not pre-factored the
// corresponding Unfactored block supplies per-load-case moments and the
// pipeline resolves the governing NSCP combination.
type SectionForces struct {
	MaxMomentTop    float64 `mapstructure:"max_moment_top"`
	MaxMomentBottom float64 `mapstructure:"max_moment_bottom"`
	MaxShear        float64 `mapstructure:"max_shear"`
	MaxAxial        float64 `mapstructure:"max_axial"`
	MaxTorsion      float64 `mapstructure:"max_torsion"`

	UnfactoredTop    *UnfactoredMoments `mapstructure:"unfactored_top"`
	UnfactoredBottom *UnfactoredMoments `mapstructure:"unfactored_bottom"`
}

// UnfactoredMoments are service-level moments per load case (kN-m).
type UnfactoredMoments struct {
	Dead       float64 `mapstructure:"dead"`
	Live       float64 `mapstructure:"live"`
	Roof       float64 `mapstructure:"roof"`
	Wind       float64 `mapstructure:"wind"`
	Earthquake float64 `mapstructure:"earthquake"`
	Rain       float64 `mapstructure:"rain"`
}

// Load reads a job file (JSON or YAML, inferred from the extension) and
// applies defaults for omitted settings.
func Load(path string) (*Job, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading job file: %w", err)
	}

	var job Job
	if err := v.Unmarshal(&job); err != nil {
		return nil, fmt.Errorf("unable to decode job file: %w", err)
	}

	job.applyDefaults()
	return &job, nil
}

func (j *Job) applyDefaults() {
	if j.MaterialProperties.ConcreteGrade == "" {
		j.MaterialProperties.ConcreteGrade = "C28"
	}
	if j.MaterialProperties.MainSteelFy == 0 {
		j.MaterialProperties.MainSteelFy = 415
	}
	if j.MaterialProperties.ShearSteelFy == 0 {
		j.MaterialProperties.ShearSteelFy = 275
	}
	if j.MaterialProperties.ConcreteCover == 0 {
		j.MaterialProperties.ConcreteCover = 40
	}
	if j.MaterialProperties.MaxAggregateSize == 0 {
		j.MaterialProperties.MaxAggregateSize = 25
	}

	if j.DesignSettings.FrameType == "" {
		j.DesignSettings.FrameType = FrameOrdinary
	}
	j.DesignSettings.FrameType = strings.ToLower(strings.TrimSpace(j.DesignSettings.FrameType))
	if j.DesignSettings.ReductionFactorFlexure == 0 {
		j.DesignSettings.ReductionFactorFlexure = 0.90
	}
	if j.DesignSettings.ReductionFactorShear == 0 {
		j.DesignSettings.ReductionFactorShear = 0.75
	}
	if j.DesignSettings.ReductionFactorTorsion == 0 {
		j.DesignSettings.ReductionFactorTorsion = j.DesignSettings.ReductionFactorShear
	}
	if j.DesignSettings.MaxSteelRatio == 0 {
		j.DesignSettings.MaxSteelRatio = 0.025
	}
	if j.DesignSettings.StirrupSpacingRoundOff == 0 {
		j.DesignSettings.StirrupSpacingRoundOff = 25
	}
	if j.DesignSettings.LightweightFactorShear == 0 {
		j.DesignSettings.LightweightFactorShear = 1.0
	}

	if len(j.ReinforcementParameters.MainBarRange) != 2 {
		j.ReinforcementParameters.MainBarRange = []int{16, 25}
	}
	if len(j.ReinforcementParameters.StirrupBarRange) != 2 {
		j.ReinforcementParameters.StirrupBarRange = []int{10, 12}
	}
	if j.ReinforcementParameters.MinStirrupSpacing == 0 {
		j.ReinforcementParameters.MinStirrupSpacing = 75
	}
	if j.ReinforcementParameters.MaxStirrupSpacing == 0 {
		j.ReinforcementParameters.MaxStirrupSpacing = 300
	}
}
