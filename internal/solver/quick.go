package solver

import (
	"math"

	"solar-string-sim/internal/model"
)

// QuickEstimate approximates string power in O(cells) without building any
// curves. The string current is pinned to the weakest cell that cannot be
// bypassed; bypassable cells below that current cost one diode drop each, and
// a current-limited cell without a bypass earns linear partial credit
// (current/limiting)*Vmp. The partial-credit term is an explicit
// approximation, not an exact operating point.
//
// Used where many strings x many conditions must be scored, e.g. sweeping
// time of day against vehicle heading.
type QuickEstimate struct{}

func (QuickEstimate) Name() string { return "quick" }

func (q QuickEstimate) Solve(topo *model.StringTopology) model.StringSimResult {
	nCells := len(topo.Cells)
	if nCells == 0 {
		return model.StringSimResult{}
	}

	currents := make([]float64, nCells)
	canBypass := make([]bool, nCells)
	drops := make([]float64, nCells)
	for i, c := range topo.Cells {
		currents[i] = c.Params.Isc * c.IrradianceRatio
		drops[i], canBypass[i] = q.bypassPath(topo, i)
	}

	// The string current is limited by the weakest cell that has no escape
	// path.
	limiting := math.Inf(1)
	for i := range currents {
		if !canBypass[i] && currents[i] < limiting {
			limiting = currents[i]
		}
	}

	// Every cell bypassable: the string settles on the weakest cell that
	// still produces something.
	if math.IsInf(limiting, 1) {
		for i := range currents {
			if currents[i] > 0 && currents[i] < limiting {
				limiting = currents[i]
			}
		}
	}

	states := make([]model.CellOperatingState, nCells)

	if math.IsInf(limiting, 1) || limiting <= 0 {
		// Fully dark string.
		for i := range states {
			states[i].Bypassed = true
		}
		return model.StringSimResult{
			CellsBypassed: nCells,
			CellStates:    states,
		}
	}

	voltage := 0.0
	bypassedCount := 0

	for i, c := range topo.Cells {
		state := &states[i]
		switch {
		case currents[i] >= limiting:
			voltage += c.Params.Vmp
			state.Voltage = c.Params.Vmp
			state.Current = limiting
		case canBypass[i]:
			voltage -= drops[i]
			bypassedCount++
			state.Bypassed = true
			state.Voltage = -drops[i]
			state.Current = currents[i]
		default:
			// Limited cell without a bypass: linear partial credit.
			v := c.Params.Vmp * (currents[i] / limiting)
			voltage += v
			state.Voltage = v
			state.Current = currents[i]
		}
	}

	if voltage < 0 {
		voltage = 0
	}

	return model.StringSimResult{
		PowerOut:      limiting * voltage,
		Voltage:       voltage,
		Current:       limiting,
		CellsBypassed: bypassedCount,
		CellStates:    states,
	}
}

// bypassPath reports whether the cell can be bypassed and the forward drop of
// its preferred path: the cell's own diode at the string's uniform drop, or
// the smallest covering segment's own drop (ties break toward the lowest
// start index, matching the full resolver).
func (QuickEstimate) bypassPath(topo *model.StringTopology, pos int) (float64, bool) {
	if topo.Cells[pos].HasBypass {
		return topo.BypassDrop, true
	}
	best := -1
	for k, seg := range topo.Segments {
		if !seg.Covers(pos) {
			continue
		}
		if best < 0 || seg.Size() < topo.Segments[best].Size() ||
			(seg.Size() == topo.Segments[best].Size() && seg.Start < topo.Segments[best].Start) {
			best = k
		}
	}
	if best >= 0 {
		return topo.Segments[best].ForwardDrop, true
	}
	return 0, false
}
