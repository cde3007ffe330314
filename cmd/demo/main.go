package main

import (
	"fmt"

	"solar-string-sim/internal/model"
	"solar-string-sim/internal/solver"
)

// Walks through the core scenarios: an unshaded string, a shaded string with
// and without per-cell bypass, nested segment diodes, and the quick estimator
// versus the full sweep.
func main() {
	cell, _ := model.FindPreset("Maxeon Gen 3")
	full := solver.NewFullSweep()
	quick := solver.QuickEstimate{}

	fmt.Println("=== Single cell ===")
	curve := cell.FullCurve(1.0, model.FullCurveSamples)
	fmt.Printf("%s: Voc=%.3fV Isc=%.3fA Pmp=%.3fW FF=%.3f\n\n",
		cell.Name, curve.Voc, curve.Isc, curve.Pmp(), curve.FillFactor())

	fmt.Println("=== 10-cell string, full sun ===")
	topo := uniformString("full-sun", cell, 10, nil)
	report(solve(full, &topo))

	fmt.Println("=== 10-cell string, one cell at 20%, no bypass ===")
	topo = uniformString("shaded-no-bypass", cell, 10, nil)
	topo.Cells[4].IrradianceRatio = 0.2
	report(solve(full, &topo))

	fmt.Println("=== Same shading, per-cell bypass diodes ===")
	topo = uniformString("shaded-bypass", cell, 10, nil)
	for i := range topo.Cells {
		topo.Cells[i].HasBypass = true
	}
	topo.Cells[4].IrradianceRatio = 0.2
	report(solve(full, &topo))

	fmt.Println("=== Nested segments: outer [0..9], inner [4..6], cell 5 dark ===")
	segs := []model.BypassSegment{
		{Start: 0, End: 9, ForwardDrop: 0.35},
		{Start: 4, End: 6, ForwardDrop: 0.35},
	}
	topo = uniformString("segmented", cell, 10, segs)
	topo.Cells[5].IrradianceRatio = 0.0
	res := solve(full, &topo)
	report(res)
	for i, st := range res.CellStates {
		if st.Bypassed {
			fmt.Printf("  cell %d bypassed\n", i)
		}
	}
	fmt.Println()

	fmt.Println("=== Quick estimator vs full sweep ===")
	topo = uniformString("compare", cell, 10, nil)
	for i := range topo.Cells {
		topo.Cells[i].HasBypass = true
	}
	topo.Cells[2].IrradianceRatio = 0.0
	topo.Cells[7].IrradianceRatio = 0.5
	fr := solve(full, &topo)
	qr := solve(quick, &topo)
	fmt.Printf("full:  %.3fW (%.1f%% of ideal)\n", fr.PowerOut, 100*fr.PowerRatio())
	fmt.Printf("quick: %.3fW (%.1f%% of ideal)\n", qr.PowerOut, 100*qr.PowerRatio())
}

func solve(sol solver.Solver, topo *model.StringTopology) model.StringSimResult {
	r := sol.Solve(topo)
	r.PowerIdeal = topo.IdealPower()
	return r
}

func uniformString(name string, cell model.CellParams, n int, segs []model.BypassSegment) model.StringTopology {
	cells := make([]model.CellConditions, n)
	for i := range cells {
		cells[i] = model.CellConditions{Params: cell, IrradianceRatio: 1.0}
	}
	return model.StringTopology{Name: name, Cells: cells, Segments: segs, BypassDrop: cell.BypassDrop}
}

func report(r model.StringSimResult) {
	fmt.Printf("power=%.3fW at %.3fV / %.3fA, ideal=%.3fW (%.1f%%), bypassed=%d\n\n",
		r.PowerOut, r.Voltage, r.Current, r.PowerIdeal, 100*r.PowerRatio(), r.CellsBypassed)
}
