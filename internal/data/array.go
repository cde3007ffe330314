package data

import (
	"encoding/json"
	"fmt"
	"os"

	"solar-string-sim/internal/analysis"
	"solar-string-sim/internal/model"
	"solar-string-sim/internal/sun"
)

// ArrayFile is the on-disk array layout (JSON). It carries per-string wiring
// and per-cell conditions; geometry stays outside this module, so a cell
// brings either a precomputed irradiance ratio (instant solves) or a world
// normal plus shade factor (day sweeps).
type ArrayFile struct {
	Name    string       `json:"name"`
	Strings []StringSpec `json:"strings"`
}

type StringSpec struct {
	Name string `json:"name"`

	// Cell names a built-in preset for the whole string. Empty means the
	// caller-provided fallback preset applies.
	Cell string `json:"cell,omitempty"`

	BypassDrop float64       `json:"bypass_v_drop,omitempty"`
	Cells      []CellSpec    `json:"cells"`
	Segments   []SegmentSpec `json:"segments,omitempty"`
}

type CellSpec struct {
	IrradianceRatio float64  `json:"irradiance_ratio,omitempty"`
	HasBypass       bool     `json:"has_bypass,omitempty"`
	Normal          *Vec3Spec `json:"normal,omitempty"`
	Shade           *float64  `json:"shade,omitempty"`
}

type SegmentSpec struct {
	Start       int     `json:"start"`
	End         int     `json:"end"`
	ForwardDrop float64 `json:"forward_v_drop"`
}

type Vec3Spec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func LoadArrayJSON(path string) (*ArrayFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var af ArrayFile
	if err := json.Unmarshal(raw, &af); err != nil {
		return nil, err
	}
	return &af, nil
}

// resolvePreset picks the string's named preset, or the fallback when the
// string names none.
func resolvePreset(s *StringSpec, fallback model.CellParams) (model.CellParams, error) {
	if s.Cell == "" {
		return fallback, nil
	}
	p, ok := model.FindPreset(s.Cell)
	if !ok {
		return model.CellParams{}, fmt.Errorf("unknown cell preset %q", s.Cell)
	}
	return p, nil
}

func segments(specs []SegmentSpec) []model.BypassSegment {
	if len(specs) == 0 {
		return nil
	}
	out := make([]model.BypassSegment, len(specs))
	for i, s := range specs {
		out[i] = model.BypassSegment{Start: s.Start, End: s.End, ForwardDrop: s.ForwardDrop}
	}
	return out
}

// BuildTopologies converts an array file into solvable topologies using the
// per-cell irradiance ratios it carries.
func BuildTopologies(af *ArrayFile, fallback model.CellParams) ([]model.StringTopology, error) {
	out := make([]model.StringTopology, 0, len(af.Strings))
	for i := range af.Strings {
		s := &af.Strings[i]
		preset, err := resolvePreset(s, fallback)
		if err != nil {
			return nil, fmt.Errorf("string %d: %w", i, err)
		}

		drop := s.BypassDrop
		if drop == 0 {
			drop = preset.BypassDrop
		}

		topo := model.StringTopology{
			Name:       s.Name,
			Cells:      make([]model.CellConditions, len(s.Cells)),
			Segments:   segments(s.Segments),
			BypassDrop: drop,
		}
		for j, c := range s.Cells {
			topo.Cells[j] = model.CellConditions{
				Params:          preset,
				IrradianceRatio: c.IrradianceRatio,
				HasBypass:       c.HasBypass,
			}
		}
		out = append(out, topo)
	}
	return out, nil
}

// BuildSweepStrings converts an array file into day-sweep inputs. Every cell
// must carry a normal; a missing shade factor means unshaded.
func BuildSweepStrings(af *ArrayFile, fallback model.CellParams) ([]analysis.SweepString, error) {
	out := make([]analysis.SweepString, 0, len(af.Strings))
	for i := range af.Strings {
		s := &af.Strings[i]
		preset, err := resolvePreset(s, fallback)
		if err != nil {
			return nil, fmt.Errorf("string %d: %w", i, err)
		}

		drop := s.BypassDrop
		if drop == 0 {
			drop = preset.BypassDrop
		}

		ss := analysis.SweepString{
			Name:       s.Name,
			Cells:      make([]analysis.SweepCell, len(s.Cells)),
			Segments:   segments(s.Segments),
			BypassDrop: drop,
		}
		for j, c := range s.Cells {
			if c.Normal == nil {
				return nil, fmt.Errorf("string %d cell %d: normal is required for sweeps", i, j)
			}
			shade := 1.0
			if c.Shade != nil {
				shade = *c.Shade
			}
			ss.Cells[j] = analysis.SweepCell{
				Params:    preset,
				Normal:    sun.Vec3{X: c.Normal.X, Y: c.Normal.Y, Z: c.Normal.Z}.Normalize(),
				Shade:     shade,
				HasBypass: c.HasBypass,
			}
		}
		out = append(out, ss)
	}
	return out, nil
}
