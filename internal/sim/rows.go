package sim

import "solar-string-sim/internal/model"

// StringRow is one string's line of per-solve output.
// This is the primary artifact for "what happened" in an array solve.
type StringRow struct {
	Index     int
	Name      string
	CellCount int

	PowerOut float64
	Voltage  float64
	Current  float64

	PowerIdeal float64
	PowerRatio float64

	CellsBypassed int
	FillFactor    float64
}

type Result struct {
	Solver string

	Rows    []StringRow
	Strings []model.StringSimResult

	TotalPower    float64
	TotalIdeal    float64
	CellCount     int
	CellsBypassed int
}
