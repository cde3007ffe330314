package solver

import (
	"math"

	"solar-string-sim/internal/model"
)

// Segment bypass resolution. Diodes span arbitrary contiguous runs of the
// string and may nest or overlap. At each swept current the resolver decides
// which segments conduct:
//
//  1. A position is weak when its photo-current cannot carry the sample
//     current.
//  2. Each weak position activates the smallest segment covering it; ties on
//     size break toward the lowest start index, which makes the outcome
//     deterministic and independent of segment declaration order.
//  3. A position is actually bypassed only when an activated segment covers it
//     and no strictly smaller inactive segment does: a smaller dormant
//     alternative means the larger diode would not be the preferred path
//     around this position.
//
// The string voltage at the sample is the sum over conducting (non-bypassed)
// positions, less one forward drop per distinct activated segment. Unlike the
// per-cell sweep, the full sample range is always produced.
func (s *FullSweep) solveSegmented(topo *model.StringTopology, curves []model.IVCurve, maxIsc float64) model.StringSimResult {
	n := s.sweepSamples()
	nCells := len(curves)

	sweepI := make([]float64, n)
	sweepV := make([]float64, n)

	activated := make([]bool, len(topo.Segments))
	bypassed := make([]bool, nCells)

	for i := 0; i < n; i++ {
		current := float64(i) * maxIsc / float64(n-1)

		s.resolveSegments(topo, curves, current, activated, bypassed)

		voltage := 0.0
		for j := 0; j < nCells; j++ {
			if !bypassed[j] {
				voltage += curves[j].VoltageAtCurrent(current)
			}
		}
		for k, seg := range topo.Segments {
			if activated[k] {
				voltage -= seg.ForwardDrop
			}
		}

		sweepI[i] = current
		sweepV[i] = math.Max(voltage, 0)
	}

	mpIdx, maxPower := argmaxPower(sweepI, sweepV)
	mppCurrent := sweepI[mpIdx]

	// Re-resolve at the MPP sample for per-cell reporting.
	s.resolveSegments(topo, curves, mppCurrent, activated, bypassed)

	res := model.StringSimResult{
		PowerOut: maxPower,
		Voltage:  sweepV[mpIdx],
		Current:  mppCurrent,
		Curve: model.IVCurve{
			I:   sweepI,
			V:   sweepV,
			Isc: sweepI[n-1],
			Voc: sweepV[0],
			Imp: sweepI[mpIdx],
			Vmp: sweepV[mpIdx],
		},
		CellStates: make([]model.CellOperatingState, nCells),
	}

	for j := 0; j < nCells; j++ {
		state := &res.CellStates[j]
		state.Current = mppCurrent
		if bypassed[j] {
			state.Bypassed = true
			res.CellsBypassed++
		} else {
			state.Voltage = curves[j].VoltageAtCurrent(mppCurrent)
		}
	}

	return res
}

// resolveSegments fills activated (per segment) and bypassed (per position)
// for the given sample current.
func (s *FullSweep) resolveSegments(topo *model.StringTopology, curves []model.IVCurve, current float64, activated, bypassed []bool) {
	segs := topo.Segments

	for k := range activated {
		activated[k] = false
	}

	for j := range curves {
		if curves[j].Isc > current {
			continue
		}
		// Weak position: activate the smallest covering segment, if any.
		if k := smallestCover(segs, j, false, activated); k >= 0 {
			activated[k] = true
		}
	}

	for j := range curves {
		bypassed[j] = false
		active := smallestCover(segs, j, true, activated)
		if active < 0 {
			continue
		}
		// A strictly smaller inactive cover takes precedence over the
		// activated one, so the position stays in the string.
		blocked := false
		for k, seg := range segs {
			if !activated[k] && seg.Covers(j) && seg.Size() < segs[active].Size() {
				blocked = true
				break
			}
		}
		bypassed[j] = !blocked
	}
}

// smallestCover returns the index of the smallest segment covering pos,
// breaking size ties toward the lowest start index. With activeOnly set, only
// activated segments are considered. Returns -1 when nothing covers pos.
func smallestCover(segs []model.BypassSegment, pos int, activeOnly bool, activated []bool) int {
	best := -1
	for k, seg := range segs {
		if activeOnly && !activated[k] {
			continue
		}
		if !seg.Covers(pos) {
			continue
		}
		if best < 0 {
			best = k
			continue
		}
		if seg.Size() < segs[best].Size() ||
			(seg.Size() == segs[best].Size() && seg.Start < segs[best].Start) {
			best = k
		}
	}
	return best
}
