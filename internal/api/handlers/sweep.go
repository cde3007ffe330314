package handlers

import (
	"fmt"
	"net/http"

	"solar-string-sim/internal/analysis"
	"solar-string-sim/internal/api/models"
	"solar-string-sim/internal/data"
	"solar-string-sim/internal/model"
	"solar-string-sim/internal/sun"

	"github.com/gin-gonic/gin"
)

// SweepHandler runs day sweeps over arrays with oriented cells.
type SweepHandler struct{}

func NewSweepHandler() *SweepHandler { return &SweepHandler{} }

// RunSweep handles POST /api/v1/sweep
func (h *SweepHandler) RunSweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	fallback := model.Presets[0]
	if req.CellPreset != "" {
		p, ok := model.FindPreset(req.CellPreset)
		if !ok {
			badRequest(c, "INVALID_ARRAY", fmt.Errorf("unknown cell preset %q", req.CellPreset))
			return
		}
		fallback = p
	}

	strings, err := data.BuildSweepStrings(&req.Array, fallback)
	if err != nil {
		badRequest(c, "INVALID_ARRAY", err)
		return
	}

	params := analysis.SweepParams{
		Site: sun.Settings{
			Latitude:  req.Site.Latitude,
			Longitude: req.Site.Longitude,
			Month:     req.Site.Month,
			Day:       req.Site.Day,
		},
		StartHour:      req.Sweep.StartHour,
		Duration:       req.Sweep.Duration,
		TimeSamples:    req.Sweep.TimeSamples,
		HeadingSamples: req.Sweep.HeadingSamples,
		IrradianceSTC:  req.Sweep.Irradiance,
	}

	res, err := analysis.RunDaySweep(strings, params)
	if err != nil {
		badRequest(c, "SWEEP_FAILED", err)
		return
	}

	ranked := analysis.RankHeadings(res)
	resp := models.SweepResponse{
		EnergyWh:     res.EnergyWh,
		PeakPowerW:   res.PeakPowerW,
		EnergyByHour: res.EnergyByHour[:],
	}
	if len(ranked) > 0 {
		resp.BestHeadingDeg = ranked[0].HeadingDeg
	}
	for _, hr := range ranked {
		resp.Headings = append(resp.Headings, models.HeadingResult{
			HeadingDeg: hr.HeadingDeg,
			EnergyWh:   hr.EnergyWh,
			PeakPowerW: hr.PeakPowerW,
		})
	}

	c.JSON(http.StatusOK, resp)
}
