package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/loansim/loan-calculator/internal/domain"
	"github.com/loansim/loan-calculator/internal/output"
	"github.com/loansim/loan-calculator/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" + m.statusBar()
	}
	if m.loading {
		return InfoStyle.Render("Simulating scenarios...") + "\n"
	}

	run := m.currentRun()
	if run == nil {
		return InfoStyle.Render("No scenarios to display") + "\n"
	}

	var body string
	switch m.view {
	case ViewSummary:
		body = m.renderSummary(run)
	case ViewBalances:
		body = m.renderBalancesChart(run)
	case ViewPayments:
		body = m.renderPaymentsChart(run)
	case ViewLedger:
		body = m.ledgerView.View()
	}

	header := TitleStyle.Render(fmt.Sprintf("%s — %s", m.report.Loan.Label, run.Scenario.Name)) +
		"\n" + SubtitleStyle.Render(fmt.Sprintf("scenario %d/%d · %s",
		m.scenario+1, len(m.report.Runs), viewName(m.view)))

	return header + "\n\n" + body + "\n" + m.statusBar()
}

func viewName(v View) string {
	switch v {
	case ViewSummary:
		return "summary"
	case ViewBalances:
		return "balances"
	case ViewPayments:
		return "payments"
	case ViewLedger:
		return "ledger"
	}
	return "unknown"
}

func (m Model) statusBar() string {
	parts := []string{
		StatusKeyStyle.Render("tab") + " view",
		StatusKeyStyle.Render("←/→") + " scenario",
		StatusKeyStyle.Render("↑/↓") + " scroll",
		StatusKeyStyle.Render("q") + " quit",
	}
	return StatusBarStyle.Render(strings.Join(parts, "  ·  "))
}

func (m Model) renderSummary(run *output.ScenarioRun) string {
	var sb strings.Builder
	line := func(label string, value string) {
		sb.WriteString(MetricLabelStyle.Render(label))
		sb.WriteString(MetricValueStyle.Render(value))
		sb.WriteString("\n")
	}

	summary := m.report.Summary
	line("Principal", output.FormatCurrency(m.report.Loan.Principal))
	line("Initial rate", output.FormatPercentage(m.report.Loan.InitialAnnualRate.Mul(decimal.NewFromInt(100))))
	line("Initial payment per month", output.FormatCurrency(summary.InitialMonthlyPayment))
	line("Total to be paid (no overrides)", output.FormatCurrency(summary.TotalToBePaid))
	line("Total interest (no overrides)", fmt.Sprintf("%s (%s)",
		output.FormatCurrency(summary.TotalInterest),
		output.FormatPercentage(summary.TotalInterestPercent)))
	sb.WriteString("\n")

	ledger := run.Ledger
	line("Paid off after", fmt.Sprintf("%d periods (%s years)",
		ledger.PayoffPeriods(), ledger.PayoffYears().StringFixed(1)))
	line("Interest paid", output.FormatCurrency(ledger.TotalInterestPaid()))
	line("Extra paydown from offset", output.FormatCurrency(ledger.TotalExtraPaid()))
	if rec, ok := ledger.HalfPrincipalPoint(); ok {
		line("Half principal gone at", rec.YearOffset.StringFixed(1)+" years")
	}
	if rec, ok := ledger.PaymentCrossoverPoint(); ok {
		line("Principal overtakes interest at", rec.YearOffset.StringFixed(1)+" years")
	}
	return sb.String()
}

func (m Model) renderBalancesChart(run *output.ScenarioRun) string {
	ledger := run.Ledger
	chart := components.NewASCIIChart("Balances").
		WithXValues(yearAxis(ledger)).
		AddSeries("principal", column(ledger, func(r *domain.PeriodRecord) decimal.Decimal { return r.RemainingPrincipal }), ColorPrincipal).
		AddSeries("offset", column(ledger, func(r *domain.PeriodRecord) decimal.Decimal { return r.AccumulatedOffset }), ColorOffset).
		AddSeries("extra", column(ledger, func(r *domain.PeriodRecord) decimal.Decimal { return r.AccumulatedExtra }), ColorExtra).
		WithSize(m.width-4, m.height-12).
		WithAxisLabel("years")
	if rec, ok := ledger.HalfPrincipalPoint(); ok {
		chart.WithMarker(rec.YearOffset.InexactFloat64(),
			fmt.Sprintf("half principal at year %s", rec.YearOffset.StringFixed(1)))
	}
	return chart.Render()
}

func (m Model) renderPaymentsChart(run *output.ScenarioRun) string {
	ledger := run.Ledger
	if len(ledger) > 1 {
		ledger = ledger[1:] // the inception record carries no payment
	}
	chart := components.NewASCIIChart("Payment composition").
		WithXValues(yearAxis(ledger)).
		AddSeries("interest", column(ledger, func(r *domain.PeriodRecord) decimal.Decimal { return r.InterestPaid }), ColorInterest).
		AddSeries("principal", column(ledger, func(r *domain.PeriodRecord) decimal.Decimal { return r.PrincipalPaid }), ColorPrincipal).
		AddSeries("extra", column(ledger, func(r *domain.PeriodRecord) decimal.Decimal { return r.ExtraPrincipalPaid }), ColorExtra).
		AddSeries("total", column(ledger, func(r *domain.PeriodRecord) decimal.Decimal { return r.TotalPaid }), ColorTotal).
		WithSize(m.width-4, m.height-12).
		WithAxisLabel("years")
	if rec, ok := run.Ledger.PaymentCrossoverPoint(); ok {
		chart.WithMarker(rec.YearOffset.InexactFloat64(),
			fmt.Sprintf("principal overtakes interest at year %s", rec.YearOffset.StringFixed(1)))
	}
	return chart.Render()
}

func (m Model) renderLedgerContent() string {
	run := m.currentRun()
	if run == nil {
		return ""
	}
	data, err := output.LedgerCSV(run.Ledger)
	if err != nil {
		return fmt.Sprintf("ledger unavailable: %v", err)
	}
	return strings.ReplaceAll(string(data), ",", "  ")
}

func yearAxis(ledger domain.Ledger) []float64 {
	xs := make([]float64, len(ledger))
	for i := range ledger {
		xs[i] = ledger[i].YearOffset.InexactFloat64()
	}
	return xs
}

func column(ledger domain.Ledger, pick func(*domain.PeriodRecord) decimal.Decimal) []float64 {
	points := make([]float64, len(ledger))
	for i := range ledger {
		points[i] = pick(&ledger[i]).InexactFloat64()
	}
	return points
}
