package model

// StringSimResult is the outcome of solving one series string for a single
// simulation instant.
type StringSimResult struct {
	PowerOut float64 // power at the maximum power point (W)
	Voltage  float64 // string voltage at MPP (V)
	Current  float64 // string current at MPP (A)

	PowerIdeal float64 // power if all cells were unshaded at STC (W)

	CellsBypassed int // cells whose bypass path conducts at the MPP

	// Curve is the string's aggregate I-V curve over the retained sweep
	// range. Empty for solvers that do not sweep.
	Curve IVCurve

	// CellStates holds per-position operating points at the MPP, index
	// aligned with the topology's cells. Nil for solvers that do not
	// resolve individual cells.
	CellStates []CellOperatingState
}

// CellOperatingState is one cell's operating point within a solved string.
type CellOperatingState struct {
	Bypassed bool    // bypass path conducts at the string's MPP
	Voltage  float64 // cell voltage at the operating point (V)
	Current  float64 // current through the cell (A)
}

// PowerRatio returns achieved power as a fraction of ideal, in [0,1] for any
// physical result.
func (r *StringSimResult) PowerRatio() float64 {
	if r.PowerIdeal <= 0 {
		return 0
	}
	return r.PowerOut / r.PowerIdeal
}
