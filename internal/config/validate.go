package config

import "fmt"

// Validate checks the structural integrity of a loaded job. It reports the
// first defect found; per-section numerical problems (e.g. a zero moment)
// are not errors here, they surface as design statuses in the pipeline.
func (j *Job) Validate() error {
	switch j.DesignSettings.FrameType {
	case FrameOrdinary, FrameIntermediate, FrameSpecial:
	default:
		return fmt.Errorf("invalid frame type %q", j.DesignSettings.FrameType)
	}

	if r := j.ReinforcementParameters.MainBarRange; len(r) != 2 {
		return fmt.Errorf("main bar range must hold [min, max], got %v", r)
	} else if r[0] > r[1] {
		return fmt.Errorf("inverted main bar range [%d, %d]", r[0], r[1])
	}
	if r := j.ReinforcementParameters.StirrupBarRange; len(r) != 2 {
		return fmt.Errorf("stirrup bar range must hold [min, max], got %v", r)
	} else if r[0] > r[1] {
		return fmt.Errorf("inverted stirrup bar range [%d, %d]", r[0], r[1])
	}
	if j.MaterialProperties.MainSteelFy <= 0 {
		return fmt.Errorf("main steel fy must be positive, got %.2f", j.MaterialProperties.MainSteelFy)
	}
	if j.MaterialProperties.ConcreteCover < 0 {
		return fmt.Errorf("concrete cover cannot be negative, got %.2f", j.MaterialProperties.ConcreteCover)
	}

	if len(j.FloorGroups) == 0 {
		return fmt.Errorf("job has no floor groups")
	}

	for floor, groups := range j.FloorGroups {
		for group, beams := range groups {
			for name, beam := range beams {
				if err := beam.validate(); err != nil {
					return fmt.Errorf("%s/%s/%s: %w", floor, group, name, err)
				}
			}
		}
	}

	return nil
}

func (b Beam) validate() error {
	d := b.Dimensions
	if d.Base <= 0 || d.Height <= 0 || d.Length <= 0 {
		return fmt.Errorf("beam dimensions must be positive: base=%.0f height=%.0f length=%.0f",
			d.Base, d.Height, d.Length)
	}
	if len(b.Forces) == 0 {
		return fmt.Errorf("beam has no section forces")
	}
	for section := range b.Forces {
		if !validSection(section) {
			return fmt.Errorf("unknown section position %q", section)
		}
	}
	return nil
}

func validSection(name string) bool {
	for _, s := range SectionPositions {
		if s == name {
			return true
		}
	}
	return false
}
