package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ledgerView.Width = msg.Width - 4
		m.ledgerView.Height = msg.Height - 8
		if m.report != nil {
			m.ledgerView.SetContent(m.renderLedgerContent())
		}
		return m, nil

	case SimulationCompleteMsg:
		m.report = msg.Report
		m.loading = false
		m.ledgerView.SetContent(m.renderLedgerContent())
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextView):
		m.view = (m.view + 1) % viewCount
		return m, nil

	case key.Matches(msg, m.keys.NextScenario):
		if m.report != nil && len(m.report.Runs) > 0 {
			m.scenario = (m.scenario + 1) % len(m.report.Runs)
			m.ledgerView.SetContent(m.renderLedgerContent())
			m.ledgerView.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevScenario):
		if m.report != nil && len(m.report.Runs) > 0 {
			m.scenario = (m.scenario + len(m.report.Runs) - 1) % len(m.report.Runs)
			m.ledgerView.SetContent(m.renderLedgerContent())
			m.ledgerView.GotoTop()
		}
		return m, nil
	}

	// Scrolling inside the ledger view.
	if m.view == ViewLedger {
		var cmd tea.Cmd
		m.ledgerView, cmd = m.ledgerView.Update(msg)
		return m, cmd
	}

	return m, nil
}
