package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCellFiles(t *testing.T) {
	dir := t.TempDir()

	good := `cell:
  name: Disk Cell
  voc: 0.68
  isc: 6.2
  vmp: 0.57
  imp: 5.9
  ideality_factor: 1.25
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "disk_cell.yaml"), []byte(good), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unnamed.yaml"), []byte("cell:\n  voc: 0.6\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("cell: [unclosed"), 0o644))

	infos, err := ListCellFiles(dir)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	byID := map[string]CellFileInfo{}
	for _, info := range infos {
		byID[info.ID] = info
	}
	assert.Equal(t, "Disk Cell", byID["disk_cell"].Cell.Name)
	// A file without a name falls back to its ID.
	assert.Equal(t, "unnamed", byID["unnamed"].Cell.Name)
}

func TestListCellFilesMissingDir(t *testing.T) {
	_, err := ListCellFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
