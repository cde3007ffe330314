package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"solar-string-sim/internal/api/models"
	"solar-string-sim/internal/config"
	"solar-string-sim/internal/data"
	"solar-string-sim/internal/model"

	"github.com/gin-gonic/gin"
)

// CellsHandler lists the cell preset library: built-ins plus any YAML files
// in the cell directory.
type CellsHandler struct {
	cellDir string
}

func NewCellsHandler() *CellsHandler {
	dir := os.Getenv("CELL_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "cells")
		} else {
			dir = "./examples/cells"
		}
	}
	return &CellsHandler{cellDir: dir}
}

// ListCells handles GET /api/v1/cells
func (h *CellsHandler) ListCells(c *gin.Context) {
	cells := make([]models.CellInfo, 0, len(model.Presets))

	for _, p := range model.Presets {
		cc := config.FromModelParams(p)
		cells = append(cells, models.CellInfo{
			ID:      p.Name,
			Name:    p.Name,
			Builtin: true,
			Specs: models.CellSpecs{
				Voc: cc.Voc,
				Isc: cc.Isc,
				Vmp: cc.Vmp,
				Imp: cc.Imp,
			},
		})
	}

	files, err := data.ListCellFiles(h.cellDir)
	if err != nil {
		// An absent directory just means no on-disk presets.
		if !os.IsNotExist(err) {
			log.Printf("cells: failed to read %s: %v", h.cellDir, err)
		}
	}
	for _, f := range files {
		cells = append(cells, models.CellInfo{
			ID:   f.ID,
			Name: f.Cell.Name,
			File: f.File,
			Specs: models.CellSpecs{
				Voc: f.Cell.Voc,
				Isc: f.Cell.Isc,
				Vmp: f.Cell.Vmp,
				Imp: f.Cell.Imp,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"cells": cells})
}
