package handlers

import (
	"net/http"

	"solar-string-sim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// SolversHandler describes the available solve strategies.
type SolversHandler struct{}

func NewSolversHandler() *SolversHandler { return &SolversHandler{} }

// ListSolvers handles GET /api/v1/solvers
func (h *SolversHandler) ListSolvers(c *gin.Context) {
	solvers := []models.SolverInfo{
		{
			Name: "full",
			Description: "Single-diode curve synthesis with a node-voltage current sweep. " +
				"Resolves per-cell and segment bypass diodes exactly; use for single-instant inspection.",
		},
		{
			Name: "quick",
			Description: "O(cells) limiting-current approximation without curve synthesis. " +
				"Use for batch scoring across many conditions.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"solvers": solvers})
}
