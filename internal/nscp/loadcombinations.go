package nscp

import (
	"fmt"
	"math"
	"strings"
)

// LoadCase names one of the basic load types of NSCP 2015 Section 203.3
type LoadCase string

const (
	Dead       LoadCase = "dead"       // D
	Live       LoadCase = "live"       // L
	Roof       LoadCase = "roof"       // Lr
	Wind       LoadCase = "wind"       // W
	Earthquake LoadCase = "earthquake" // E
	Rain       LoadCase = "rain"       // R
)

// ParseLoadCase accepts the case name or its NSCP symbol (D, L, Lr, W, E, R)
func ParseLoadCase(s string) (LoadCase, error) {
	switch strings.ToLower(s) {
	case "dead", "d":
		return Dead, nil
	case "live", "l":
		return Live, nil
	case "roof", "lr":
		return Roof, nil
	case "wind", "w":
		return Wind, nil
	case "earthquake", "e":
		return Earthquake, nil
	case "rain", "r":
		return Rain, nil
	}
	return "", fmt.Errorf("unknown load case %q", s)
}

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

// SimplifiedCombinations for gravity-only frames
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

// Unfactored returns the combination that applies every case at 1.0
func Unfactored() LoadCombination {
	return LoadCombination{
		ID:          "0",
		Description: "D + L + Lr + W + E + R (unfactored)",
		Dead:        1, Live: 1, Roof: 1, Wind: 1, Earthquake: 1, Rain: 1,
	}
}

// FindCombination looks up a combination by ID
func FindCombination(id string, combinations []LoadCombination) (LoadCombination, bool) {
	for _, combo := range combinations {
		if combo.ID == id {
			return combo, true
		}
	}
	return LoadCombination{}, false
}

// Factor returns the load factor the combination applies to a case
func (lc LoadCombination) Factor(c LoadCase) float64 {
	switch c {
	case Dead:
		return lc.Dead
	case Live:
		return lc.Live
	case Roof:
		return lc.Roof
	case Wind:
		return lc.Wind
	case Earthquake:
		return lc.Earthquake
	case Rain:
		return lc.Rain
	}
	return 0
}

// Loads holds unfactored values of one quantity (a distributed load in
// kN/m, a nodal force in kN, a moment in kN-m) per load type
type Loads struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// Add accumulates v into the given case
func (l *Loads) Add(c LoadCase, v float64) {
	switch c {
	case Dead:
		l.Dead += v
	case Live:
		l.Live += v
	case Roof:
		l.Roof += v
	case Wind:
		l.Wind += v
	case Earthquake:
		l.Earthquake += v
	case Rain:
		l.Rain += v
	}
}

// IsZero reports whether no load was given
func (l Loads) IsZero() bool {
	return l == Loads{}
}

// Factored calculates the factored value for the load combination
func (lc LoadCombination) Factored(loads Loads) float64 {
	return lc.Dead*loads.Dead +
		lc.Live*loads.Live +
		lc.Roof*loads.Roof +
		lc.Wind*loads.Wind +
		lc.Earthquake*loads.Earthquake +
		lc.Rain*loads.Rain
}

// Governing finds the factored value of largest magnitude over all
// combinations. Ties keep the first combination.
func Governing(loads Loads, combinations []LoadCombination) (float64, LoadCombination) {
	var governing float64
	var governingCombo LoadCombination

	for i, combo := range combinations {
		v := combo.Factored(loads)
		if i == 0 || math.Abs(v) > math.Abs(governing) {
			governing = v
			governingCombo = combo
		}
	}

	return governing, governingCombo
}
