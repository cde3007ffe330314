package sim

import (
	"encoding/csv"
	"os"
	"strconv"

	"solar-string-sim/internal/model"
)

func WriteStringsCSV(path string, rows []StringRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"name",
		"cell_count",
		"power_w",
		"voltage_v",
		"current_a",
		"power_ideal_w",
		"power_ratio",
		"cells_bypassed",
		"fill_factor",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			r.Name,
			strconv.Itoa(r.CellCount),
			fmtFloat(r.PowerOut),
			fmtFloat(r.Voltage),
			fmtFloat(r.Current),
			fmtFloat(r.PowerIdeal),
			fmtFloat(r.PowerRatio),
			strconv.Itoa(r.CellsBypassed),
			fmtFloat(r.FillFactor),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WriteCurveCSV dumps a curve's samples for external plotting.
func WriteCurveCSV(path string, curve *model.IVCurve) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"current_a", "voltage_v", "power_w"}); err != nil {
		return err
	}
	for i := 0; i < curve.Len(); i++ {
		row := []string{
			fmtFloat(curve.I[i]),
			fmtFloat(curve.V[i]),
			fmtFloat(curve.I[i] * curve.V[i]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
