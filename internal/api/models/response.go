package models

// SimulateResponse represents the response from an array solve.
type SimulateResponse struct {
	ID      string         `json:"id,omitempty"`
	Status  string         `json:"status"`
	Summary ArraySummary   `json:"summary"`
	Strings []StringResult `json:"strings"`
}

// ArraySummary contains aggregated array results.
type ArraySummary struct {
	Solver        string  `json:"solver"`
	TotalPowerW   float64 `json:"total_power_w"`
	TotalIdealW   float64 `json:"total_ideal_w"`
	PowerRatio    float64 `json:"power_ratio"`
	CellCount     int     `json:"cell_count"`
	CellsBypassed int     `json:"cells_bypassed"`
}

// StringResult is one string's solved operating point.
type StringResult struct {
	Index         int     `json:"index"`
	Name          string  `json:"name"`
	CellCount     int     `json:"cell_count"`
	PowerW        float64 `json:"power_w"`
	VoltageV      float64 `json:"voltage_v"`
	CurrentA      float64 `json:"current_a"`
	PowerIdealW   float64 `json:"power_ideal_w"`
	PowerRatio    float64 `json:"power_ratio"`
	CellsBypassed int     `json:"cells_bypassed"`
	FillFactor    float64 `json:"fill_factor"`

	Curve      *CurveData  `json:"curve,omitempty"`
	CellStates []CellState `json:"cell_states,omitempty"`
}

// CurveData carries a string's aggregate I-V samples and summaries.
type CurveData struct {
	I   []float64 `json:"i"`
	V   []float64 `json:"v"`
	Voc float64   `json:"voc"`
	Isc float64   `json:"isc"`
	Vmp float64   `json:"vmp"`
	Imp float64   `json:"imp"`
}

// CellState is one cell's operating point at the string MPP.
type CellState struct {
	Bypassed bool    `json:"bypassed"`
	VoltageV float64 `json:"voltage_v"`
	CurrentA float64 `json:"current_a"`
}

// CompareResponse represents the response from a solver comparison.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one solver.
type ComparisonResult struct {
	Solver  string       `json:"solver"`
	Summary ArraySummary `json:"summary"`
}

// SweepResponse represents the response from a day sweep.
type SweepResponse struct {
	EnergyWh       float64         `json:"energy_wh"`
	PeakPowerW     float64         `json:"peak_power_w"`
	EnergyByHour   []float64       `json:"energy_by_hour"`
	BestHeadingDeg float64         `json:"best_heading_deg"`
	Headings       []HeadingResult `json:"headings"`
}

// HeadingResult is one heading's accumulated harvest.
type HeadingResult struct {
	HeadingDeg float64 `json:"heading_deg"`
	EnergyWh   float64 `json:"energy_wh"`
	PeakPowerW float64 `json:"peak_power_w"`
}

// CellInfo represents information about a cell preset.
type CellInfo struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	File    string    `json:"file,omitempty"`
	Builtin bool      `json:"builtin"`
	Specs   CellSpecs `json:"specs"`
}

// CellSpecs contains headline electrical specifications.
type CellSpecs struct {
	Voc float64 `json:"voc"`
	Isc float64 `json:"isc"`
	Vmp float64 `json:"vmp"`
	Imp float64 `json:"imp"`
}

// SolverInfo represents information about a solver.
type SolverInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
