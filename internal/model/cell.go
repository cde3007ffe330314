package model

import (
	"errors"
	"math"
)

// Thermal voltage at 25C and the irradiance floors used when scaling a cell's
// electrical parameters away from STC.
const (
	ThermalVoltage = 0.0259

	// Below darkRatio a cell contributes nothing and gets a flat zero curve.
	darkRatio = 0.001
	// Below logRatio the logarithmic Voc adjustment is skipped entirely.
	logRatio = 0.01
)

// Default sample counts for curve synthesis.
const (
	FullCurveSamples   = 200
	SimpleCurveSamples = 50
)

// CellParams defines the static electrical and physical parameters of a cell
// preset at STC (1000 W/m2). Shared read-only across all solves.
type CellParams struct {
	Name string

	// Physical, used by callers for area/efficiency bookkeeping.
	Width      float64 // m
	Height     float64 // m
	Efficiency float64 // 0..1

	// Electrical at STC.
	Voc            float64 // open-circuit voltage (V)
	Isc            float64 // short-circuit current (A)
	Vmp            float64 // voltage at max power (V)
	Imp            float64 // current at max power (A)
	IdealityFactor float64 // diode ideality factor n
	SeriesR        float64 // series resistance (ohm)
	BypassDrop     float64 // bypass diode forward voltage (V)
}

func (p CellParams) Validate() error {
	if p.Voc <= 0 {
		return errors.New("Voc must be > 0")
	}
	if p.Isc <= 0 {
		return errors.New("Isc must be > 0")
	}
	if p.Vmp <= 0 || p.Vmp > p.Voc {
		return errors.New("Vmp must satisfy 0 < Vmp <= Voc")
	}
	if p.Imp <= 0 || p.Imp > p.Isc {
		return errors.New("Imp must satisfy 0 < Imp <= Isc")
	}
	if p.IdealityFactor <= 0 {
		return errors.New("IdealityFactor must be > 0")
	}
	if p.SeriesR < 0 {
		return errors.New("SeriesR must be >= 0")
	}
	if p.BypassDrop < 0 {
		return errors.New("BypassDrop must be >= 0")
	}
	return nil
}

// scaledVoc adjusts Voc for irradiance. Voc falls logarithmically as the cell
// darkens: Voc' = Voc + n*Vt*ln(ratio), clamped at zero. Where the logarithm
// would blow up the adjustment is skipped and Voc stays at its STC value; a
// dim cell still develops open-circuit voltage.
func (p CellParams) scaledVoc(ratio float64) float64 {
	if ratio <= logRatio {
		return p.Voc
	}
	voc := p.Voc + p.IdealityFactor*ThermalVoltage*math.Log(ratio)
	if voc < 0 {
		voc = 0
	}
	return voc
}

// FullCurve synthesizes the cell's I-V curve at the given irradiance ratio
// using a single-diode model:
//
//	I = Iph * (1 - exp((V - Voc') / (n*Vt)))
//
// with Iph = Isc*ratio and Voc' the irradiance-adjusted open-circuit voltage.
// Samples are spaced evenly in voltage from 0 to Voc'. A first-order series
// resistance correction shifts each sample's voltage by -I*Rs. A ratio at or
// below the dark threshold yields a two-sample all-zero curve.
func (p CellParams) FullCurve(ratio float64, samples int) IVCurve {
	if samples < 2 {
		samples = FullCurveSamples
	}
	if ratio <= darkRatio {
		return zeroCurve()
	}

	iph := p.Isc * ratio
	voc := p.scaledVoc(ratio)
	nVt := p.IdealityFactor * ThermalVoltage

	curve := IVCurve{
		I:   make([]float64, samples),
		V:   make([]float64, samples),
		Voc: voc,
		Isc: iph,
	}

	maxPower := 0.0
	mpIdx := 0

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples-1)
		v := t * voc

		exponent := (v - voc) / nVt
		if exponent > 20 {
			exponent = 20
		}
		current := iph * (1 - math.Exp(exponent))

		// First-order series resistance correction.
		if p.SeriesR > 0 && current > 0 {
			v -= current * p.SeriesR
			if v < 0 {
				v = 0
			}
		}

		if current < 0 {
			current = 0
		}
		if current > iph {
			current = iph
		}

		curve.V[i] = v
		curve.I[i] = current

		if power := v * current; power > maxPower {
			maxPower = power
			mpIdx = i
		}
	}

	curve.Vmp = curve.V[mpIdx]
	curve.Imp = curve.I[mpIdx]
	return curve
}

// SimpleCurve synthesizes a coarse curve from the preset's headline numbers
// alone, without the series resistance term. Cheaper than FullCurve and good
// enough for previews.
func (p CellParams) SimpleCurve(ratio float64) IVCurve {
	if ratio <= darkRatio {
		return zeroCurve()
	}

	isc := p.Isc * ratio
	imp := p.Imp * ratio

	// Unlike the full path, the coarse approximation treats a near-dark cell
	// as developing no voltage at all.
	voc := 0.0
	vmp := 0.0
	if ratio > logRatio {
		voc = p.scaledVoc(ratio)
		vmp = p.Vmp + ThermalVoltage*math.Log(ratio)
		if vmp < 0 {
			vmp = 0
		}
		if vmp > voc {
			vmp = voc * 0.85
		}
	}

	n := SimpleCurveSamples
	curve := IVCurve{
		I:   make([]float64, n),
		V:   make([]float64, n),
		Voc: voc,
		Isc: isc,
		Vmp: vmp,
		Imp: imp,
	}

	// Widened exponential knee keeps the approximation smooth with few samples.
	vt := ThermalVoltage * 1.3 * 10
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		v := t * voc

		current := 0.0
		if voc > 0 && isc > 0 {
			current = isc * (1 - math.Exp((v-voc)/vt))
			if current < 0 {
				current = 0
			}
			if current > isc {
				current = isc
			}
		}

		curve.V[i] = v
		curve.I[i] = current
	}

	return curve
}

// PhotoCurrent returns the photo-generated current for a cell given the
// incident irradiance (W/m2) and the cosine of the sun-to-normal angle.
func (p CellParams) PhotoCurrent(irradiance, cosAngle float64) float64 {
	if cosAngle <= 0 || irradiance <= 0 {
		return 0
	}
	return p.Isc * (irradiance / 1000.0) * cosAngle
}

// OperatingVoltage returns the cell voltage at the given operating current and
// irradiance ratio via the closed-form diode equation
// V = Voc' + n*Vt*ln(1 - I/Iph). Currents at or beyond the photo-current drive
// the cell into reverse bias, reported as -Inf.
func (p CellParams) OperatingVoltage(current, ratio float64) float64 {
	if ratio <= darkRatio || p.Isc <= 0 {
		return 0
	}

	iph := p.Isc * ratio
	if current >= iph {
		return math.Inf(-1)
	}

	frac := 1 - current/iph
	if frac <= 0 {
		return math.Inf(-1)
	}

	v := p.scaledVoc(ratio) + p.IdealityFactor*ThermalVoltage*math.Log(frac)
	if v < 0 {
		v = 0
	}
	return v
}
