package data

import (
	"os"
	"path/filepath"
	"strings"

	"solar-string-sim/internal/config"
)

// CellFileInfo describes one on-disk cell preset.
type CellFileInfo struct {
	ID   string
	File string
	Cell config.CellConfig
}

// ListCellFiles reads every *.yaml preset under dir. Invalid files are
// skipped rather than failing the listing.
func ListCellFiles(dir string) ([]CellFileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	out := make([]CellFileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		cell, err := config.LoadCellFile(path)
		if err != nil {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")
		if cell.Name == "" {
			cell.Name = id
		}
		out = append(out, CellFileInfo{ID: id, File: path, Cell: cell})
	}
	return out, nil
}
