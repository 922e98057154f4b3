package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loansim/loan-calculator/internal/calculation"
	"github.com/loansim/loan-calculator/internal/domain"
	"github.com/loansim/loan-calculator/internal/output"
)

// View identifies one of the tab-switched screens.
type View int

const (
	ViewSummary View = iota
	ViewBalances
	ViewPayments
	ViewLedger
	viewCount
)

// keyMap collects the key bindings shown in the status bar.
type keyMap struct {
	NextView     key.Binding
	NextScenario key.Binding
	PrevScenario key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		NextScenario: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next scenario"),
		),
		PrevScenario: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev scenario"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the interactive ledger and chart viewer.
type Model struct {
	config *domain.Configuration
	keys   keyMap

	report   *output.Report
	scenario int
	view     View

	ledgerView viewport.Model

	width  int
	height int

	loading bool
	err     error
}

// NewModel creates the viewer for a validated configuration.
func NewModel(config *domain.Configuration) Model {
	return Model{
		config:     config,
		keys:       defaultKeyMap(),
		ledgerView: viewport.New(80, 20),
		width:      80,
		height:     24,
		loading:    true,
	}
}

// Init kicks off the simulation of every configured scenario.
func (m Model) Init() tea.Cmd {
	return simulateCmd(m.config)
}

// simulateCmd runs the amortization engine for every scenario off the UI
// goroutine.
func simulateCmd(config *domain.Configuration) tea.Cmd {
	return func() tea.Msg {
		engine := calculation.NewAmortizationEngine()
		report := &output.Report{Loan: config.Loan, Summary: config.Loan.Summary()}
		for i := range config.Scenarios {
			ledger, err := engine.RunScenario(config, i)
			if err != nil {
				return ErrorMsg{Err: err}
			}
			report.Runs = append(report.Runs, output.ScenarioRun{
				Scenario: config.Scenarios[i],
				Ledger:   ledger,
			})
		}
		return SimulationCompleteMsg{Report: report}
	}
}

// currentRun returns the scenario run under the cursor.
func (m Model) currentRun() *output.ScenarioRun {
	if m.report == nil || len(m.report.Runs) == 0 {
		return nil
	}
	return &m.report.Runs[m.scenario]
}
