package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCell() CellParams {
	p, ok := FindPreset("Maxeon Gen 3")
	if !ok {
		panic("missing built-in preset")
	}
	return p
}

func TestCurveMonotonic(t *testing.T) {
	for _, ratio := range []float64{1.0, 0.7, 0.3, 0.05} {
		curve := testCell().FullCurve(ratio, FullCurveSamples)
		require.GreaterOrEqual(t, curve.Len(), 2)

		for i := 1; i < curve.Len(); i++ {
			assert.LessOrEqual(t, curve.I[i], curve.I[i-1], "current must be non-increasing (ratio=%v, i=%d)", ratio, i)
			assert.GreaterOrEqual(t, curve.V[i], curve.V[i-1], "voltage must be non-decreasing (ratio=%v, i=%d)", ratio, i)
		}
	}
}

func TestCurvePmpIsArgmax(t *testing.T) {
	curve := testCell().FullCurve(1.0, FullCurveSamples)
	pmp := curve.Pmp()
	for i := 0; i < curve.Len(); i++ {
		assert.LessOrEqual(t, curve.I[i]*curve.V[i], pmp+1e-12)
	}
	assert.Greater(t, pmp, 0.0)
}

func TestInterpolationRoundTrip(t *testing.T) {
	curve := testCell().FullCurve(1.0, FullCurveSamples)

	// Tolerance proportional to sample spacing.
	tol := 2 * curve.Voc / float64(curve.Len()-1)
	for _, v := range []float64{0, 0.1, 0.3, 0.5, curve.Vmp, curve.Voc} {
		i := curve.CurrentAtVoltage(v)
		back := curve.VoltageAtCurrent(i)
		assert.InDelta(t, v, back, tol, "round trip at v=%v", v)
	}
}

func TestInterpolationClampsToEndpoints(t *testing.T) {
	curve := testCell().FullCurve(1.0, FullCurveSamples)

	assert.InDelta(t, curve.Isc, curve.CurrentAtVoltage(-1), 1e-6)
	assert.InDelta(t, 0.0, curve.CurrentAtVoltage(curve.Voc+1), 1e-6)
	assert.InDelta(t, 0.0, curve.VoltageAtCurrent(curve.Isc+1), 1e-6)
	assert.InDelta(t, curve.Voc, curve.VoltageAtCurrent(-1), 1e-6)
}

func TestFillFactorRange(t *testing.T) {
	curve := testCell().FullCurve(1.0, FullCurveSamples)
	ff := curve.FillFactor()
	assert.Greater(t, ff, 0.78)
	assert.Less(t, ff, 0.88)
}

func TestZeroCurveFillFactor(t *testing.T) {
	var c IVCurve
	assert.Zero(t, c.FillFactor())

	z := zeroCurve()
	assert.Equal(t, 2, z.Len())
	assert.Zero(t, z.FillFactor())
	assert.Zero(t, z.VoltageAtCurrent(1))
	assert.Zero(t, z.CurrentAtVoltage(1))
}
