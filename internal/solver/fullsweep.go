package solver

import (
	"math"

	"solar-string-sim/internal/model"
)

// FullSweep solves a string by synthesizing each cell's I-V curve and sweeping
// string current from zero to the largest cell photo-current. At every swept
// current it accumulates node voltages cell by cell, letting a bypass path win
// whenever it beats the cell's own contribution. Strings with bypass segments
// route through the segment resolver instead of the per-cell pass.
type FullSweep struct {
	// SweepSamples is the number of current samples across the string sweep.
	SweepSamples int
	// CurveSamples is the per-cell curve resolution.
	CurveSamples int
}

func NewFullSweep() *FullSweep {
	return &FullSweep{
		SweepSamples: model.FullCurveSamples,
		CurveSamples: model.FullCurveSamples,
	}
}

func (s *FullSweep) Name() string { return "full" }

func (s *FullSweep) Solve(topo *model.StringTopology) model.StringSimResult {
	if len(topo.Cells) == 0 {
		return model.StringSimResult{}
	}

	curves := make([]model.IVCurve, len(topo.Cells))
	for i, c := range topo.Cells {
		curves[i] = c.Params.FullCurve(c.IrradianceRatio, s.CurveSamples)
	}

	maxIsc := topo.MaxIsc()
	if maxIsc <= 0 {
		return model.StringSimResult{}
	}

	if len(topo.Segments) > 0 {
		return s.solveSegmented(topo, curves, maxIsc)
	}
	return s.solvePerCell(topo, curves, maxIsc)
}

// solvePerCell is the one-diode-per-cell sweep. Node voltages accumulate along
// the string; a cell driven past its photo-current contributes -Inf, which a
// bypass diode (if present) rescues at the cost of one forward drop.
func (s *FullSweep) solvePerCell(topo *model.StringTopology, curves []model.IVCurve, maxIsc float64) model.StringSimResult {
	n := s.sweepSamples()
	nCells := len(curves)

	sweepI := make([]float64, n)
	sweepV := make([]float64, n)
	nGood := n

	for i := 0; i < n; i++ {
		current := float64(i) * maxIsc / float64(n-1)

		node := 0.0
		for j := 0; j < nCells; j++ {
			cellV := math.Inf(-1)
			if current < curves[j].Isc {
				cellV = curves[j].VoltageAtCurrent(current)
			}
			active := node + cellV

			if topo.Cells[j].HasBypass {
				bypass := node - topo.BypassDrop
				node = math.Max(active, bypass)
			} else {
				node = active
			}
		}

		sweepI[i] = current
		sweepV[i] = math.Max(node, 0)

		// Remember where the unclamped string voltage first went negative.
		if node < 0 && nGood == n {
			nGood = i
		}
	}

	// Keep the first invalid sample so the curve reaches V=0, but never fewer
	// than two samples.
	if nGood < n {
		nGood++
	}
	if nGood < 2 {
		nGood = 2
	}

	mpIdx, maxPower := argmaxPower(sweepI[:nGood], sweepV[:nGood])
	mppCurrent := sweepI[mpIdx]

	res := model.StringSimResult{
		PowerOut: maxPower,
		Voltage:  sweepV[mpIdx],
		Current:  mppCurrent,
		Curve: model.IVCurve{
			I:   sweepI[:nGood],
			V:   sweepV[:nGood],
			Isc: sweepI[nGood-1],
			Voc: sweepV[0],
			Imp: sweepI[mpIdx],
			Vmp: sweepV[mpIdx],
		},
		CellStates: make([]model.CellOperatingState, nCells),
	}

	for j := 0; j < nCells; j++ {
		state := &res.CellStates[j]
		state.Current = mppCurrent
		if topo.Cells[j].HasBypass && mppCurrent >= curves[j].Isc {
			state.Bypassed = true
			state.Voltage = -topo.BypassDrop
			res.CellsBypassed++
		} else {
			state.Voltage = curves[j].VoltageAtCurrent(mppCurrent)
		}
	}

	return res
}

func (s *FullSweep) sweepSamples() int {
	if s.SweepSamples >= 2 {
		return s.SweepSamples
	}
	return model.FullCurveSamples
}

// argmaxPower returns the sample index maximizing I*V and that power.
func argmaxPower(is, vs []float64) (int, float64) {
	idx, max := 0, 0.0
	for i := range is {
		if p := is[i] * vs[i]; p > max {
			max = p
			idx = i
		}
	}
	return idx, max
}
