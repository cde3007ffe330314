package sim

import (
	"fmt"

	"solar-string-sim/internal/model"
	"solar-string-sim/internal/solver"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run solves every string in the array with the given solver and aggregates
// array-level totals. Strings are independent, so a zero-power string (night,
// full shade) is a result, not an error; only structural problems fail.
func (e *Engine) Run(strings []model.StringTopology, sol solver.Solver) (*Result, error) {
	if sol == nil {
		return nil, fmt.Errorf("solver is nil")
	}

	res := &Result{
		Solver: sol.Name(),
		Rows:   make([]StringRow, 0, len(strings)),
	}

	for i := range strings {
		topo := &strings[i]
		if err := topo.Validate(); err != nil {
			return nil, fmt.Errorf("string %d (%s): %w", i, topo.Name, err)
		}

		sr := sol.Solve(topo)
		sr.PowerIdeal = topo.IdealPower()

		row := StringRow{
			Index:         i,
			Name:          topo.Name,
			CellCount:     len(topo.Cells),
			PowerOut:      sr.PowerOut,
			Voltage:       sr.Voltage,
			Current:       sr.Current,
			PowerIdeal:    sr.PowerIdeal,
			PowerRatio:    sr.PowerRatio(),
			CellsBypassed: sr.CellsBypassed,
			FillFactor:    sr.Curve.FillFactor(),
		}

		res.Rows = append(res.Rows, row)
		res.Strings = append(res.Strings, sr)
		res.TotalPower += sr.PowerOut
		res.TotalIdeal += sr.PowerIdeal
		res.CellsBypassed += sr.CellsBypassed
		res.CellCount += len(topo.Cells)
	}

	return res, nil
}
