package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-string-sim/internal/model"
)

func TestRenderCurvePNG(t *testing.T) {
	cell, _ := model.FindPreset("Maxeon Gen 3")
	curve := cell.FullCurve(1.0, 50)

	path := filepath.Join(t.TempDir(), "curve.png")
	require.NoError(t, RenderCurvePNG(&curve, "test curve", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
