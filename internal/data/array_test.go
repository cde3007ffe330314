package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-string-sim/internal/model"
)

const arrayJSON = `{
  "name": "test-array",
  "strings": [
    {
      "name": "a",
      "cell": "Maxeon Gen 3",
      "cells": [
        {"irradiance_ratio": 1.0, "has_bypass": true},
        {"irradiance_ratio": 0.5, "has_bypass": true}
      ]
    },
    {
      "name": "b",
      "segments": [{"start": 0, "end": 1, "forward_v_drop": 0.4}],
      "cells": [
        {"irradiance_ratio": 1.0},
        {"irradiance_ratio": 1.0}
      ]
    }
  ]
}`

const sweepJSON = `{
  "name": "sweep-array",
  "strings": [
    {
      "name": "hood",
      "cells": [
        {"normal": {"x": 0, "y": 1, "z": 0}},
        {"normal": {"x": 0, "y": 2, "z": 0}, "shade": 0.5}
      ]
    }
  ]
}`

func writeArray(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "array.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadArrayJSON(t *testing.T) {
	af, err := LoadArrayJSON(writeArray(t, arrayJSON))
	require.NoError(t, err)

	assert.Equal(t, "test-array", af.Name)
	require.Len(t, af.Strings, 2)
	assert.Equal(t, "Maxeon Gen 3", af.Strings[0].Cell)
	require.Len(t, af.Strings[1].Segments, 1)
	assert.InDelta(t, 0.4, af.Strings[1].Segments[0].ForwardDrop, 1e-9)
}

func TestBuildTopologies(t *testing.T) {
	af, err := LoadArrayJSON(writeArray(t, arrayJSON))
	require.NoError(t, err)

	fallback, _ := model.FindPreset("Generic Silicon")
	topos, err := BuildTopologies(af, fallback)
	require.NoError(t, err)
	require.Len(t, topos, 2)

	// String a names its own preset.
	assert.Equal(t, "Maxeon Gen 3", topos[0].Cells[0].Params.Name)
	assert.True(t, topos[0].Cells[0].HasBypass)
	assert.InDelta(t, 0.5, topos[0].Cells[1].IrradianceRatio, 1e-9)
	assert.InDelta(t, 0.35, topos[0].BypassDrop, 1e-9)

	// String b falls back to the caller's preset and keeps its segment.
	assert.Equal(t, "Generic Silicon", topos[1].Cells[0].Params.Name)
	require.Len(t, topos[1].Segments, 1)
	assert.Equal(t, 1, topos[1].Segments[0].End)

	for _, topo := range topos {
		assert.NoError(t, topo.Validate())
	}
}

func TestBuildTopologiesUnknownPreset(t *testing.T) {
	af := &ArrayFile{Strings: []StringSpec{{Name: "x", Cell: "No Such Cell", Cells: []CellSpec{{}}}}}
	_, err := BuildTopologies(af, model.Presets[0])
	assert.Error(t, err)
}

func TestBuildSweepStrings(t *testing.T) {
	af, err := LoadArrayJSON(writeArray(t, sweepJSON))
	require.NoError(t, err)

	fallback, _ := model.FindPreset("Maxeon Gen 3")
	strings, err := BuildSweepStrings(af, fallback)
	require.NoError(t, err)
	require.Len(t, strings, 1)
	require.Len(t, strings[0].Cells, 2)

	// Normals come back unit length, shade defaults to unshaded.
	assert.InDelta(t, 1.0, strings[0].Cells[0].Normal.Length(), 1e-9)
	assert.InDelta(t, 1.0, strings[0].Cells[1].Normal.Length(), 1e-9)
	assert.InDelta(t, 1.0, strings[0].Cells[0].Shade, 1e-9)
	assert.InDelta(t, 0.5, strings[0].Cells[1].Shade, 1e-9)
}

func TestBuildSweepStringsRequiresNormals(t *testing.T) {
	af := &ArrayFile{Strings: []StringSpec{{Name: "x", Cells: []CellSpec{{IrradianceRatio: 1}}}}}
	_, err := BuildSweepStrings(af, model.Presets[0])
	assert.Error(t, err)
}
