package nscp

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// LoadCombinations are the NSCP 2015 Section 203.3.1 basic combinations.
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// LoadMoments holds unfactored moments from different load types (kN-m).
type LoadMoments struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// IsZero reports whether no load case carries a moment.
func (m LoadMoments) IsZero() bool {
	return m.Dead == 0 && m.Live == 0 && m.Roof == 0 &&
		m.Wind == 0 && m.Earthquake == 0 && m.Rain == 0
}

// Factored calculates the factored moment for this load combination.
func (lc LoadCombination) Factored(moments LoadMoments) float64 {
	return lc.Dead*moments.Dead +
		lc.Live*moments.Live +
		lc.Roof*moments.Roof +
		lc.Wind*moments.Wind +
		lc.Earthquake*moments.Earthquake +
		lc.Rain*moments.Rain
}

// GoverningMoment finds the maximum factored moment across all basic
// combinations along with the combination that produced it.
func GoverningMoment(moments LoadMoments) (float64, LoadCombination) {
	var maxMoment float64
	var governing LoadCombination

	for _, combo := range LoadCombinations {
		mu := combo.Factored(moments)
		if mu > maxMoment {
			maxMoment = mu
			governing = combo
		}
	}

	return maxMoment, governing
}
