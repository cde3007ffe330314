package sim

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-string-sim/internal/model"
	"solar-string-sim/internal/solver"
)

func testTopology(name string, n int, ratio float64) model.StringTopology {
	cell, _ := model.FindPreset("Maxeon Gen 3")
	cells := make([]model.CellConditions, n)
	for i := range cells {
		cells[i] = model.CellConditions{Params: cell, IrradianceRatio: ratio, HasBypass: true}
	}
	return model.StringTopology{Name: name, Cells: cells, BypassDrop: cell.BypassDrop}
}

func TestEngineRun(t *testing.T) {
	strings := []model.StringTopology{
		testTopology("a", 10, 1.0),
		testTopology("b", 6, 0.8),
	}
	strings[1].Cells[2].IrradianceRatio = 0

	res, err := New().Run(strings, solver.NewFullSweep())
	require.NoError(t, err)

	assert.Equal(t, "full", res.Solver)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, 16, res.CellCount)
	assert.Equal(t, 1, res.CellsBypassed)

	assert.InDelta(t, res.Rows[0].PowerOut+res.Rows[1].PowerOut, res.TotalPower, 1e-9)
	assert.InDelta(t, res.Rows[0].PowerIdeal+res.Rows[1].PowerIdeal, res.TotalIdeal, 1e-9)

	for i, row := range res.Rows {
		assert.Equal(t, i, row.Index)
		assert.Greater(t, row.PowerOut, 0.0)
		assert.Greater(t, row.PowerIdeal, row.PowerOut)
		assert.InDelta(t, row.PowerOut/row.PowerIdeal, row.PowerRatio, 1e-9)
	}
}

func TestEngineNilSolver(t *testing.T) {
	_, err := New().Run([]model.StringTopology{testTopology("a", 2, 1.0)}, nil)
	assert.Error(t, err)
}

func TestEngineRejectsInvalidTopology(t *testing.T) {
	bad := testTopology("bad", 3, 1.0)
	bad.Cells[0].IrradianceRatio = 2

	_, err := New().Run([]model.StringTopology{bad}, solver.QuickEstimate{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestEngineEmptyInput(t *testing.T) {
	res, err := New().Run(nil, solver.QuickEstimate{})
	require.NoError(t, err)
	assert.Zero(t, res.TotalPower)
	assert.Empty(t, res.Rows)
}

func TestWriteStringsCSV(t *testing.T) {
	strings := []model.StringTopology{testTopology("a", 4, 1.0)}
	res, err := New().Run(strings, solver.QuickEstimate{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "strings.csv")
	require.NoError(t, WriteStringsCSV(path, res.Rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "index", records[0][0])
	assert.Equal(t, "a", records[1][1])
	assert.Equal(t, "4", records[1][2])
}

func TestWriteCurveCSV(t *testing.T) {
	cell, _ := model.FindPreset("Maxeon Gen 3")
	curve := cell.FullCurve(1.0, 50)

	path := filepath.Join(t.TempDir(), "curve.csv")
	require.NoError(t, WriteCurveCSV(path, &curve))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 51)
	assert.Equal(t, []string{"current_a", "voltage_v", "power_w"}, records[0])
}
