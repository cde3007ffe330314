// Package solver turns per-cell illumination conditions into string operating
// points. Two interchangeable fidelities exist behind the Solver interface:
// FullSweep builds real I-V curves and sweeps current across the string, while
// QuickEstimate is an O(cells) approximation for batch sweeps where thousands
// of string/condition combinations must be scored cheaply.
package solver

import "solar-string-sim/internal/model"

type Solver interface {
	Name() string
	Solve(topo *model.StringTopology) model.StringSimResult
}

// ByName returns the solver registered under the given name.
func ByName(name string) (Solver, bool) {
	switch name {
	case "full":
		return NewFullSweep(), true
	case "quick":
		return &QuickEstimate{}, true
	}
	return nil, false
}

// Names lists the available solver names in preference order.
func Names() []string { return []string{"full", "quick"} }
