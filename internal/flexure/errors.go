package flexure

import "errors"

// Failure kinds surfaced by the design engine. They are captured per
// section/location as a terminal status with a note; the pipeline never lets
// one propagate across beam boundaries.
var (
	// ErrInvalidDemand marks a non-positive or missing force value.
	ErrInvalidDemand = errors.New("invalid demand")

	// ErrOverReinforced marks a demand the section cannot carry even with
	// the doubly-reinforced fallback.
	ErrOverReinforced = errors.New("over-reinforced demand")

	// ErrNoFeasibleCombination marks a required area the bar catalog cannot
	// satisfy within the count and excess ceilings.
	ErrNoFeasibleCombination = errors.New("no feasible bar combination")

	// ErrSpacingInfeasible marks a candidate no single- or two-layer
	// arrangement can fit at minimum clear spacing.
	ErrSpacingInfeasible = errors.New("bar spacing infeasible")

	// ErrStrainIncompatible marks a section whose capacity passes but whose
	// steel does not develop the required tensile strain.
	ErrStrainIncompatible = errors.New("strain incompatibility")
)

// Status is the terminal outcome of designing one section/location.
type Status string

const (
	StatusPass             Status = "PASS"
	StatusAdequateWithNote Status = "ADEQUATE_WITH_NOTE"
	StatusFail             Status = "FAIL"

	// StatusNotRequired marks a zero-demand location; it may still be
	// raised later by the ductility envelope.
	StatusNotRequired Status = "NOT_REQUIRED"
)
