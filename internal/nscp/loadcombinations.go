package nscp

import "math"

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

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
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

// SimplifiedCombinations for common beam design scenarios
// These are the most frequently used combinations for gravity loads
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// CalculateFactoredLoad calculates the factored distributed load for a given load combination
func (lc LoadCombination) CalculateFactoredLoad(loads LoadIntensities) float64 {
	return lc.Dead*loads.Dead +
		lc.Live*loads.Live +
		lc.Roof*loads.Roof +
		lc.Wind*loads.Wind +
		lc.Earthquake*loads.Earthquake +
		lc.Rain*loads.Rain
}

// LoadIntensities holds unfactored uniformly distributed loads from different load types
type LoadIntensities struct {
	Dead       float64 // Dead load (kN/m)
	Live       float64 // Live load (kN/m)
	Roof       float64 // Roof live load (kN/m)
	Wind       float64 // Wind load (kN/m)
	Earthquake float64 // Earthquake load (kN/m)
	Rain       float64 // Rain load (kN/m)
}

// IsZero reports whether no load is given
func (li LoadIntensities) IsZero() bool {
	return li == LoadIntensities{}
}

// CalculateGoverningLoad finds the factored load of largest magnitude from all combinations.
// Uplift cases (0.9D + W with wind suction) govern when their magnitude is larger.
func CalculateGoverningLoad(loads LoadIntensities, combinations []LoadCombination) (float64, LoadCombination) {
	var maxLoad float64
	var governingCombo LoadCombination

	for i, combo := range combinations {
		wu := combo.CalculateFactoredLoad(loads)
		if i == 0 || math.Abs(wu) > math.Abs(maxLoad) {
			maxLoad = wu
			governingCombo = combo
		}
	}

	return maxLoad, governingCombo
}
