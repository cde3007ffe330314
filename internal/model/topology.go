package model

import (
	"errors"
	"fmt"
)

// BypassSegment is a bypass diode spanning a contiguous run of series
// positions, Start..End inclusive. Segments may nest or overlap freely.
type BypassSegment struct {
	Start       int     // first series position covered
	End         int     // last series position covered (inclusive)
	ForwardDrop float64 // diode forward voltage (V)
}

// Size returns the number of positions the segment covers.
func (s BypassSegment) Size() int { return s.End - s.Start + 1 }

// Covers reports whether the segment covers series position pos.
func (s BypassSegment) Covers(pos int) bool { return pos >= s.Start && pos <= s.End }

// CellConditions is one cell's inputs for a single simulation instant:
// the static preset plus the externally computed irradiance ratio.
type CellConditions struct {
	Params          CellParams
	IrradianceRatio float64 // [0,1]: angle cosine x attenuation x shading
	HasBypass       bool    // per-cell diode, used when the topology has no segments
}

// StringTopology is an ordered series string of cells together with its
// bypass arrangement. When Segments is empty, bypass behavior falls back to
// the per-cell HasBypass flags with the uniform BypassDrop.
type StringTopology struct {
	Name     string
	Cells    []CellConditions
	Segments []BypassSegment

	// BypassDrop is the forward voltage used for per-cell diodes. Segment
	// diodes carry their own drop.
	BypassDrop float64
}

func (t *StringTopology) Validate() error {
	for i, c := range t.Cells {
		if err := c.Params.Validate(); err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
		if c.IrradianceRatio < 0 || c.IrradianceRatio > 1 {
			return fmt.Errorf("cell %d: irradiance ratio must be in [0,1]", i)
		}
	}
	for i, s := range t.Segments {
		if s.Start > s.End {
			return fmt.Errorf("segment %d: start after end", i)
		}
		if s.Start < 0 || s.End >= len(t.Cells) {
			return fmt.Errorf("segment %d: out of range for %d cells", i, len(t.Cells))
		}
		if s.ForwardDrop < 0 {
			return fmt.Errorf("segment %d: forward drop must be >= 0", i)
		}
	}
	if t.BypassDrop < 0 {
		return errors.New("bypass drop must be >= 0")
	}
	return nil
}

// MaxIsc returns the largest photo-current of any cell in the string, the
// upper bound for a current sweep.
func (t *StringTopology) MaxIsc() float64 {
	max := 0.0
	for _, c := range t.Cells {
		if isc := c.Params.Isc * c.IrradianceRatio; isc > max {
			max = isc
		}
	}
	return max
}

// IdealPower returns the string's power if every cell sat at its STC maximum
// power point, the reference for performance ratios.
func (t *StringTopology) IdealPower() float64 {
	total := 0.0
	for _, c := range t.Cells {
		total += c.Params.Vmp * c.Params.Imp
	}
	return total
}
