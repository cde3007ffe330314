package model

import "strings"

// Presets is the built-in cell library. Parameters are manufacturer datasheet
// values at STC.
var Presets = []CellParams{
	{
		Name:           "Maxeon Gen 3",
		Width:          0.125,
		Height:         0.125,
		Efficiency:     0.227,
		Voc:            0.686,
		Isc:            6.27,
		Vmp:            0.58,
		Imp:            6.01,
		IdealityFactor: 1.26,
		SeriesR:        0.003,
		BypassDrop:     0.35,
	},
	{
		Name:           "Maxeon Gen 5",
		Width:          0.125,
		Height:         0.125,
		Efficiency:     0.24,
		Voc:            0.70,
		Isc:            6.50,
		Vmp:            0.60,
		Imp:            6.20,
		IdealityFactor: 1.2,
		SeriesR:        0.003,
		BypassDrop:     0.35,
	},
	{
		Name:           "Generic Silicon",
		Width:          0.156,
		Height:         0.156,
		Efficiency:     0.20,
		Voc:            0.64,
		Isc:            9.5,
		Vmp:            0.54,
		Imp:            9.0,
		IdealityFactor: 1.3,
		SeriesR:        0.005,
		BypassDrop:     0.7,
	},
}

// FindPreset returns the built-in preset with the given name
// (case-insensitive), or false if none matches.
func FindPreset(name string) (CellParams, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return CellParams{}, false
}
