package handlers

import (
	"fmt"
	"net/http"
	"sync"

	"solar-string-sim/internal/api/models"
	"solar-string-sim/internal/data"
	"solar-string-sim/internal/model"
	"solar-string-sim/internal/sim"
	"solar-string-sim/internal/solver"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxStoredRuns bounds the in-memory run cache backing GET /simulate/:id/curve.
const maxStoredRuns = 64

// SimulateHandler handles array-solve requests and keeps recent results
// around so clients can fetch full curves separately from the summary.
type SimulateHandler struct {
	mu    sync.Mutex
	runs  map[string]*sim.Result
	order []string
}

func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{runs: map[string]*sim.Result{}}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	topos, err := buildTopologies(&req.Array, req.CellPreset)
	if err != nil {
		badRequest(c, "INVALID_ARRAY", err)
		return
	}

	sol, err := buildSolver(req.Solver)
	if err != nil {
		badRequest(c, "INVALID_SOLVER", err)
		return
	}

	result, err := sim.New().Run(topos, sol)
	if err != nil {
		badRequest(c, "SIMULATION_FAILED", err)
		return
	}

	id := h.store(result)

	resp := models.SimulateResponse{
		ID:      id,
		Status:  "completed",
		Summary: summarize(result),
		Strings: stringResults(result, req.Options),
	}
	c.JSON(http.StatusOK, resp)
}

// GetCurve handles GET /api/v1/simulate/:id/curve
func (h *SimulateHandler) GetCurve(c *gin.Context) {
	h.mu.Lock()
	result, ok := h.runs[c.Param("id")]
	h.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RUN_NOT_FOUND",
				Message: "unknown or expired run id",
			},
		})
		return
	}

	curves := make([]models.CurveData, 0, len(result.Strings))
	for i := range result.Strings {
		curves = append(curves, curveData(&result.Strings[i].Curve))
	}
	c.JSON(http.StatusOK, gin.H{"curves": curves})
}

// CompareSolvers handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareSolvers(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	if len(req.Solvers) == 0 {
		badRequest(c, "INVALID_REQUEST", fmt.Errorf("at least one solver is required"))
		return
	}

	topos, err := buildTopologies(&req.Array, req.CellPreset)
	if err != nil {
		badRequest(c, "INVALID_ARRAY", err)
		return
	}

	resp := models.CompareResponse{}
	for _, sc := range req.Solvers {
		sol, err := buildSolver(sc)
		if err != nil {
			badRequest(c, "INVALID_SOLVER", err)
			return
		}
		result, err := sim.New().Run(topos, sol)
		if err != nil {
			badRequest(c, "SIMULATION_FAILED", err)
			return
		}
		resp.Comparison = append(resp.Comparison, models.ComparisonResult{
			Solver:  sol.Name(),
			Summary: summarize(result),
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SimulateHandler) store(result *sim.Result) string {
	id := uuid.NewString()
	h.mu.Lock()
	defer h.mu.Unlock()
	h.runs[id] = result
	h.order = append(h.order, id)
	for len(h.order) > maxStoredRuns {
		delete(h.runs, h.order[0])
		h.order = h.order[1:]
	}
	return id
}

func buildTopologies(af *data.ArrayFile, presetName string) ([]model.StringTopology, error) {
	fallback := model.Presets[0]
	if presetName != "" {
		p, ok := model.FindPreset(presetName)
		if !ok {
			return nil, fmt.Errorf("unknown cell preset %q", presetName)
		}
		fallback = p
	}
	return data.BuildTopologies(af, fallback)
}

func buildSolver(sc models.SolverConfig) (solver.Solver, error) {
	name := sc.Name
	if name == "" {
		name = "full"
	}
	sol, ok := solver.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unsupported solver: %q", name)
	}
	if fs, ok := sol.(*solver.FullSweep); ok {
		if v, ok := getNumber(sc.Params, "sweep_samples"); ok {
			fs.SweepSamples = int(v)
		}
		if v, ok := getNumber(sc.Params, "curve_samples"); ok {
			fs.CurveSamples = int(v)
		}
	}
	return sol, nil
}

func summarize(r *sim.Result) models.ArraySummary {
	ratio := 0.0
	if r.TotalIdeal > 0 {
		ratio = r.TotalPower / r.TotalIdeal
	}
	return models.ArraySummary{
		Solver:        r.Solver,
		TotalPowerW:   r.TotalPower,
		TotalIdealW:   r.TotalIdeal,
		PowerRatio:    ratio,
		CellCount:     r.CellCount,
		CellsBypassed: r.CellsBypassed,
	}
}

func stringResults(r *sim.Result, opts models.SimulateOptions) []models.StringResult {
	out := make([]models.StringResult, 0, len(r.Rows))
	for i, row := range r.Rows {
		sr := models.StringResult{
			Index:         row.Index,
			Name:          row.Name,
			CellCount:     row.CellCount,
			PowerW:        row.PowerOut,
			VoltageV:      row.Voltage,
			CurrentA:      row.Current,
			PowerIdealW:   row.PowerIdeal,
			PowerRatio:    row.PowerRatio,
			CellsBypassed: row.CellsBypassed,
			FillFactor:    row.FillFactor,
		}
		if opts.IncludeCurves && r.Strings[i].Curve.Len() > 0 {
			cd := curveData(&r.Strings[i].Curve)
			sr.Curve = &cd
		}
		if opts.IncludeCellStates {
			for _, cs := range r.Strings[i].CellStates {
				sr.CellStates = append(sr.CellStates, models.CellState{
					Bypassed: cs.Bypassed,
					VoltageV: cs.Voltage,
					CurrentA: cs.Current,
				})
			}
		}
		out = append(out, sr)
	}
	return out
}

func curveData(c *model.IVCurve) models.CurveData {
	return models.CurveData{
		I:   c.I,
		V:   c.V,
		Voc: c.Voc,
		Isc: c.Isc,
		Vmp: c.Vmp,
		Imp: c.Imp,
	}
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func getNumber(m map[string]interface{}, key string) (float64, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}
