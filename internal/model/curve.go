package model

import "math"

// IVCurve is the current-voltage characteristic of a cell or a string.
//
// Cell curves from FullCurve/SimpleCurve are ordered so that V is
// non-decreasing (0 .. Voc) and I is non-increasing (Isc .. 0); the
// interpolation helpers assume that ordering. String sweep results store their
// samples in sweep order (current ascending) instead. A valid curve has at
// least two samples. Curves are built fresh per solve and treated as read-only
// afterwards.
type IVCurve struct {
	I []float64 // current samples (A), non-increasing
	V []float64 // voltage samples (V), non-decreasing

	Voc float64 // open-circuit voltage
	Isc float64 // short-circuit current
	Vmp float64 // voltage at max power
	Imp float64 // current at max power
}

// Len returns the number of valid samples.
func (c *IVCurve) Len() int { return len(c.I) }

// Pmp returns the maximum power point power (Vmp * Imp).
func (c *IVCurve) Pmp() float64 { return c.Vmp * c.Imp }

// FillFactor returns Pmp / (Isc * Voc), a curve-quality metric in (0,1].
func (c *IVCurve) FillFactor() float64 {
	if c.Isc <= 0 || c.Voc <= 0 {
		return 0
	}
	return c.Pmp() / (c.Isc * c.Voc)
}

// VoltageAtCurrent interpolates the curve voltage at the given current.
// Out-of-range currents clamp to the curve endpoints.
func (c *IVCurve) VoltageAtCurrent(current float64) float64 {
	if c.Len() < 2 {
		return 0
	}
	// I is descending (Isc to 0).
	return linInterp(c.I, c.V, current, false)
}

// CurrentAtVoltage interpolates the curve current at the given voltage.
// Out-of-range voltages clamp to the curve endpoints.
func (c *IVCurve) CurrentAtVoltage(voltage float64) float64 {
	if c.Len() < 2 {
		return 0
	}
	// V is ascending (0 to Voc).
	return linInterp(c.V, c.I, voltage, true)
}

// linInterp binary-searches xs for the pair bracketing x0 and linearly
// interpolates the matching ys. Near-zero spans return the left endpoint so
// the result is never NaN or infinite.
func linInterp(xs, ys []float64, x0 float64, ascending bool) float64 {
	n := len(xs)
	if n < 2 {
		return ys[0]
	}

	lo, hi := 0, n-1
	for lo < hi-1 {
		mid := (lo + hi) / 2
		if (x0 > xs[mid]) == ascending {
			lo = mid
		} else {
			hi = mid
		}
	}

	dx := xs[hi] - xs[lo]
	if math.Abs(dx) < 1e-12 {
		return ys[lo]
	}

	t := (x0 - xs[lo]) / dx
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t*ys[hi] + (1-t)*ys[lo]
}

// zeroCurve returns the two-sample all-zero curve used for fully dark cells.
func zeroCurve() IVCurve {
	return IVCurve{
		I: []float64{0, 0},
		V: []float64{0, 0},
	}
}
