package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-string-sim/internal/model"
)

func testCell() model.CellParams {
	p, ok := model.FindPreset("Maxeon Gen 3")
	if !ok {
		panic("missing built-in preset")
	}
	return p
}

func uniformTopology(n int, ratio float64, bypass bool) model.StringTopology {
	cells := make([]model.CellConditions, n)
	for i := range cells {
		cells[i] = model.CellConditions{
			Params:          testCell(),
			IrradianceRatio: ratio,
			HasBypass:       bypass,
		}
	}
	return model.StringTopology{Name: "test", Cells: cells, BypassDrop: 0.35}
}

func TestFullSweepEmptyString(t *testing.T) {
	topo := model.StringTopology{}
	res := NewFullSweep().Solve(&topo)
	assert.Zero(t, res.PowerOut)
	assert.Zero(t, res.Voltage)
	assert.Empty(t, res.CellStates)
}

func TestFullSweepDarkString(t *testing.T) {
	topo := uniformTopology(10, 0, false)
	res := NewFullSweep().Solve(&topo)
	assert.Zero(t, res.PowerOut)
}

func TestFullSweepUniformString(t *testing.T) {
	sol := NewFullSweep()

	one := uniformTopology(1, 1.0, false)
	single := sol.Solve(&one)
	require.Greater(t, single.PowerOut, 0.0)

	ten := uniformTopology(10, 1.0, false)
	res := sol.Solve(&ten)

	// Identical cells: string MPP is ten times the single-cell MPP.
	assert.InDelta(t, 10*single.PowerOut, res.PowerOut, 0.05*res.PowerOut)
	assert.InDelta(t, 10*single.Voltage, res.Voltage, 0.2)
	assert.Zero(t, res.CellsBypassed)

	// Curve well formed: current up, voltage down across the sweep.
	for i := 1; i < res.Curve.Len(); i++ {
		assert.GreaterOrEqual(t, res.Curve.I[i], res.Curve.I[i-1])
		assert.LessOrEqual(t, res.Curve.V[i], res.Curve.V[i-1])
	}
}

func TestShadedCellWithoutBypassKillsString(t *testing.T) {
	topo := uniformTopology(10, 1.0, false)
	topo.Cells[4].IrradianceRatio = 0

	res := NewFullSweep().Solve(&topo)
	assert.Zero(t, res.PowerOut)
	assert.Zero(t, res.CellsBypassed)
}

func TestShadedCellWithBypassRecoversString(t *testing.T) {
	sol := NewFullSweep()

	one := uniformTopology(1, 1.0, false)
	single := sol.Solve(&one)

	topo := uniformTopology(10, 1.0, true)
	topo.Cells[4].IrradianceRatio = 0

	res := sol.Solve(&topo)

	// Nine cells keep producing; the bypassed cell costs one forward drop at
	// the operating current.
	want := 9*single.PowerOut - topo.BypassDrop*res.Current
	assert.InDelta(t, want, res.PowerOut, 0.06*want)

	assert.Equal(t, 1, res.CellsBypassed)
	require.Len(t, res.CellStates, 10)
	assert.True(t, res.CellStates[4].Bypassed)
	assert.InDelta(t, -topo.BypassDrop, res.CellStates[4].Voltage, 1e-9)
	for i, st := range res.CellStates {
		if i != 4 {
			assert.False(t, st.Bypassed, "cell %d", i)
			assert.Greater(t, st.Voltage, 0.0, "cell %d", i)
		}
	}
}

func TestPartialShadeLimitsCurrent(t *testing.T) {
	topo := uniformTopology(10, 1.0, false)
	topo.Cells[4].IrradianceRatio = 0.2

	res := NewFullSweep().Solve(&topo)

	// Without a bypass path the weak cell pins the whole string near its own
	// photo-current.
	weakIsc := testCell().Isc * 0.2
	assert.Greater(t, res.PowerOut, 0.0)
	assert.LessOrEqual(t, res.Current, weakIsc+1e-9)

	withBypass := uniformTopology(10, 1.0, true)
	withBypass.Cells[4].IrradianceRatio = 0.2
	bres := NewFullSweep().Solve(&withBypass)
	assert.Greater(t, bres.PowerOut, res.PowerOut)
}

func TestFullSweepStringFillFactor(t *testing.T) {
	topo := uniformTopology(10, 1.0, false)
	res := NewFullSweep().Solve(&topo)

	ff := res.Curve.FillFactor()
	assert.Greater(t, ff, 0.78)
	assert.Less(t, ff, 0.88)
}

func TestSweepSampleOverride(t *testing.T) {
	sol := &FullSweep{SweepSamples: 64, CurveSamples: 64}
	topo := uniformTopology(3, 1.0, false)
	res := sol.Solve(&topo)
	assert.Equal(t, 64, res.Curve.Len())
}
