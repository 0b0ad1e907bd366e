package nscp

import (
	"strconv"
	"strings"
)

// ConcreteGrade holds the material constants for a standard concrete grade.
type ConcreteGrade struct {
	Grade      string
	Fc         float64 // f'c (MPa)
	Ec         float64 // modulus of elasticity (MPa), approx. 4700√f'c
	UnitWeight float64 // kN/m³
}

// SteelGrade holds the material constants for a reinforcement steel grade.
type SteelGrade struct {
	Grade      string
	Fy         float64 // yield strength (MPa)
	Fu         float64 // ultimate strength (MPa)
	Es         float64 // MPa
	UnitWeight float64 // kN/m³
}

// ConcreteGrades are the standard grades recognized in job files.
var ConcreteGrades = map[string]ConcreteGrade{
	"C20": {Grade: "C20", Fc: 20, Ec: 20000, UnitWeight: 24},
	"C25": {Grade: "C25", Fc: 25, Ec: 23500, UnitWeight: 24},
	"C28": {Grade: "C28", Fc: 28, Ec: 24800, UnitWeight: 24},
	"C30": {Grade: "C30", Fc: 30, Ec: 25700, UnitWeight: 24},
	"C35": {Grade: "C35", Fc: 35, Ec: 27800, UnitWeight: 24},
	"C40": {Grade: "C40", Fc: 40, Ec: 29700, UnitWeight: 24},
	"C42": {Grade: "C42", Fc: 42, Ec: 30400, UnitWeight: 24},
	"C56": {Grade: "C56", Fc: 56, Ec: 35200, UnitWeight: 24},
}

// SteelGrades are the standard rebar grades recognized in job files.
var SteelGrades = map[string]SteelGrade{
	"Grade275": {Grade: "Grade275", Fy: 275, Fu: 410, Es: Es, UnitWeight: 78.5},
	"Grade415": {Grade: "Grade415", Fy: 415, Fu: 550, Es: Es, UnitWeight: 78.5},
	"Grade500": {Grade: "Grade500", Fy: 500, Fu: 620, Es: Es, UnitWeight: 78.5},
}

// DefaultConcreteStrength is assumed when a grade string cannot be resolved.
const DefaultConcreteStrength = 28.0

// ConcreteStrength resolves a concrete grade string such as "C28" (case and
// prefix tolerant) to f'c in MPa. Unknown or malformed grades fall back to
// the default strength.
func ConcreteStrength(grade string) float64 {
	key := strings.ToUpper(strings.TrimSpace(grade))
	if g, ok := ConcreteGrades[key]; ok {
		return g.Fc
	}
	// Accept bare numeric strengths, e.g. "28" or "c33.5"
	numeric := strings.TrimPrefix(key, "C")
	if fc, err := strconv.ParseFloat(numeric, 64); err == nil && fc > 0 {
		return fc
	}
	return DefaultConcreteStrength
}
