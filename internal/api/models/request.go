package models

import "solar-string-sim/internal/data"

// SimulateRequest represents the request body for solving an array.
type SimulateRequest struct {
	Array data.ArrayFile `json:"array" binding:"required"`

	// CellPreset names the built-in preset used for strings that do not name
	// their own. Defaults to the first built-in.
	CellPreset string `json:"cell_preset,omitempty"`

	Solver  SolverConfig    `json:"solver,omitempty"`
	Options SimulateOptions `json:"options,omitempty"`
}

// SolverConfig selects a solver and its tuning parameters.
type SolverConfig struct {
	Name   string                 `json:"name,omitempty"` // "full" (default) or "quick"
	Params map[string]interface{} `json:"params,omitempty"`
}

// SimulateOptions contains optional response shaping.
type SimulateOptions struct {
	IncludeCurves     bool `json:"include_curves,omitempty"`      // default: false
	IncludeCellStates bool `json:"include_cell_states,omitempty"` // default: false
}

// CompareRequest runs the same array through several solvers.
type CompareRequest struct {
	Array      data.ArrayFile `json:"array" binding:"required"`
	CellPreset string         `json:"cell_preset,omitempty"`
	Solvers    []SolverConfig `json:"solvers" binding:"required"`
}

// SweepRequest scores an array across a day of sun positions and headings.
// Cells must carry normals.
type SweepRequest struct {
	Array      data.ArrayFile `json:"array" binding:"required"`
	CellPreset string         `json:"cell_preset,omitempty"`

	Site  SiteConfig  `json:"site" binding:"required"`
	Sweep SweepConfig `json:"sweep,omitempty"`
}

// SiteConfig locates the array in space and time.
type SiteConfig struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Month     int     `json:"month" binding:"required"`
	Day       int     `json:"day" binding:"required"`
}

// SweepConfig tunes the day sweep resolution.
type SweepConfig struct {
	StartHour      float64 `json:"start_hour,omitempty"`
	Duration       float64 `json:"duration_hours,omitempty"`
	TimeSamples    int     `json:"time_samples,omitempty"`
	HeadingSamples int     `json:"heading_samples,omitempty"`
	Irradiance     float64 `json:"irradiance_w_m2,omitempty"`
}
