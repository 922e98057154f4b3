package tui

import "github.com/loansim/loan-calculator/internal/output"

// SimulationCompleteMsg delivers the simulated report to the model.
type SimulationCompleteMsg struct {
	Report *output.Report
}

// ErrorMsg carries a fatal error into the view.
type ErrorMsg struct {
	Err error
}
