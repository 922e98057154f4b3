package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/loansim/loan-calculator/internal/calculation"
	"github.com/loansim/loan-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestReport(t *testing.T) *Report {
	t.Helper()
	loan, err := domain.NewLoan("Loan 2", decimal.NewFromInt(25), 12,
		decimal.NewFromInt(1250000), decimal.NewFromFloat(0.062))
	require.NoError(t, err)

	engine := calculation.NewAmortizationEngine()
	scenarios := []domain.Scenario{
		{Name: "baseline"},
		{Name: "lump sum offset", OffsetContributions: domain.OffsetSchedule{
			{MonthOffset: decimal.Zero, Amount: decimal.NewFromInt(200000)},
		}},
	}

	report := &Report{Loan: *loan, Summary: loan.Summary()}
	for _, sc := range scenarios {
		ledger := engine.Simulate(loan, sc.RateChanges, sc.OffsetContributions)
		report.Runs = append(report.Runs, ScenarioRun{Scenario: sc, Ledger: ledger})
	}
	return report
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []string{"console", "csv", "json", ""} {
		f, err := NewFormatter(format)
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, f)
	}

	_, err := NewFormatter("html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestConsoleFormatter(t *testing.T) {
	report := buildTestReport(t)

	data, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "LOAN ANALYSIS: Loan 2")
	assert.Contains(t, out, "CONFIGURATION")
	assert.Contains(t, out, "Term length:          25 yrs")
	assert.Contains(t, out, "Initial interest:     6.20% p.a.")
	assert.Contains(t, out, "ANALYSIS")
	assert.Contains(t, out, "Initial total interest to be paid:")
	assert.Contains(t, out, "SCENARIO: baseline")
	assert.Contains(t, out, "SCENARIO: lump sum offset")
	assert.Contains(t, out, "- HEAD -")
	assert.Contains(t, out, "- TAIL -")
	assert.Contains(t, out, "Principal overtakes interest at year")
}

func TestCSVLedgerFormatter(t *testing.T) {
	report := buildTestReport(t)

	data, err := CSVLedgerFormatter{}.Format(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,Period,Month,Year"))
	wantRows := 1
	for _, run := range report.Runs {
		wantRows += len(run.Ledger)
	}
	assert.Len(t, lines, wantRows, "One row per period per scenario plus header")
	assert.True(t, strings.HasPrefix(lines[1], "baseline,0,"))
}

func TestLedgerCSV(t *testing.T) {
	report := buildTestReport(t)

	data, err := LedgerCSV(report.Runs[0].Ledger)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "Period,Month,Year"))
	assert.Len(t, lines, len(report.Runs[0].Ledger)+1)
}

func TestJSONFormatter(t *testing.T) {
	report := buildTestReport(t)

	data, err := JSONFormatter{Pretty: true}.Format(report)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Loan 2", decoded.Loan.Label)
	require.Len(t, decoded.Runs, 2)
	assert.Equal(t, len(report.Runs[0].Ledger), len(decoded.Runs[0].Ledger))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "6.20%", FormatPercentage(decimal.NewFromFloat(6.2)))
}
