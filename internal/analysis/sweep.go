package analysis

import (
	"errors"
	"math"

	"solar-string-sim/internal/model"
	"solar-string-sim/internal/solver"
	"solar-string-sim/internal/sun"
)

// SweepCell is one cell of an array prepared for a day sweep: the preset plus
// its world-space normal and an externally computed occlusion factor
// (1 = unshaded, 0 = fully blocked).
type SweepCell struct {
	Params    model.CellParams
	Normal    sun.Vec3
	Shade     float64
	HasBypass bool
}

// SweepString mirrors a StringTopology but with orientation instead of
// precomputed irradiance ratios; the sweep derives the ratio per instant.
type SweepString struct {
	Name       string
	Cells      []SweepCell
	Segments   []model.BypassSegment
	BypassDrop float64
}

// SweepParams configures a time-of-day x vehicle-heading sweep.
type SweepParams struct {
	Site sun.Settings // site and date; the Hour field is ignored

	StartHour float64 // default 6.0
	Duration  float64 // hours, default 12.0

	TimeSamples    int // default 48
	HeadingSamples int // default 36

	IrradianceSTC float64 // W/m2 before attenuation, default 1000
}

func (p *SweepParams) applyDefaults() {
	if p.StartHour == 0 && p.Duration == 0 {
		p.StartHour = 6
		p.Duration = 12
	}
	if p.TimeSamples < 2 {
		p.TimeSamples = 48
	}
	if p.HeadingSamples < 1 {
		p.HeadingSamples = 36
	}
	if p.IrradianceSTC <= 0 {
		p.IrradianceSTC = 1000
	}
}

// HeadingResult is the accumulated outcome for one vehicle heading.
type HeadingResult struct {
	HeadingDeg float64
	EnergyWh   float64
	PeakPowerW float64
}

// SweepResult aggregates a full day sweep. Totals are averaged across
// headings so they answer "what does a typical orientation harvest".
type SweepResult struct {
	EnergyWh     float64
	PeakPowerW   float64
	EnergyByHour [24]float64

	Headings []HeadingResult

	TimeSamples    int
	HeadingSamples int
}

// RunDaySweep scores an array across a day of sun positions and a full circle
// of vehicle headings using the quick O(cells) estimator. This is the cheap
// path: TimeSamples x HeadingSamples x strings solves, each linear in cell
// count, so a default sweep of a few strings stays well under a second.
func RunDaySweep(strings []SweepString, params SweepParams) (*SweepResult, error) {
	if len(strings) == 0 {
		return nil, errors.New("no strings to sweep")
	}
	params.applyDefaults()

	res := &SweepResult{
		TimeSamples:    params.TimeSamples,
		HeadingSamples: params.HeadingSamples,
		Headings:       make([]HeadingResult, params.HeadingSamples),
	}

	headingStep := 360.0 / float64(params.HeadingSamples)
	for hi := range res.Headings {
		res.Headings[hi].HeadingDeg = float64(hi) * headingStep
	}

	dtHours := params.Duration / float64(params.TimeSamples-1)
	quick := solver.QuickEstimate{}

	// Scratch topologies, rebuilt in place per instant.
	topos := make([]model.StringTopology, len(strings))
	for i, s := range strings {
		topos[i] = model.StringTopology{
			Name:       s.Name,
			Cells:      make([]model.CellConditions, len(s.Cells)),
			Segments:   s.Segments,
			BypassDrop: s.BypassDrop,
		}
		for j, c := range s.Cells {
			topos[i].Cells[j].Params = c.Params
			topos[i].Cells[j].HasBypass = c.HasBypass
		}
	}

	site := params.Site
	for ti := 0; ti < params.TimeSamples; ti++ {
		hour := params.StartHour + params.Duration*float64(ti)/float64(params.TimeSamples-1)
		site.Hour = hour

		sunDir, altitude, _ := sun.Position(site)
		if altitude <= 0 {
			continue
		}
		effective := params.IrradianceSTC * sun.Attenuation(altitude)

		powerSum := 0.0
		for hi := 0; hi < params.HeadingSamples; hi++ {
			headingRad := res.Headings[hi].HeadingDeg * math.Pi / 180
			rotated := sunDir.RotateY(-headingRad)

			instant := 0.0
			for si := range strings {
				s := &strings[si]
				topo := &topos[si]
				for j := range s.Cells {
					ratio := sun.IrradianceRatio(s.Cells[j].Normal, rotated, effective)
					topo.Cells[j].IrradianceRatio = ratio * s.Cells[j].Shade
				}
				instant += quick.Solve(topo).PowerOut
			}

			powerSum += instant
			res.Headings[hi].EnergyWh += instant * dtHours
			if instant > res.Headings[hi].PeakPowerW {
				res.Headings[hi].PeakPowerW = instant
			}
			if instant > res.PeakPowerW {
				res.PeakPowerW = instant
			}
		}

		avgPower := powerSum / float64(params.HeadingSamples)
		res.EnergyWh += avgPower * dtHours

		h := int(hour)
		if h >= 0 && h < 24 {
			res.EnergyByHour[h] += avgPower * dtHours
		}
	}

	return res, nil
}
