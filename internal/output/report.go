package output

import (
	"fmt"

	"github.com/loansim/loan-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ScenarioRun pairs a scenario with its simulated ledger.
type ScenarioRun struct {
	Scenario domain.Scenario `json:"scenario"`
	Ledger   domain.Ledger   `json:"ledger"`
}

// Report is the full renderable output of a calculation run: the loan, its
// headline summary and one ledger per scenario.
type Report struct {
	Loan    domain.Loan        `json:"loan"`
	Summary domain.LoanSummary `json:"summary"`
	Runs    []ScenarioRun      `json:"runs"`
}

// Formatter renders a report in one output format.
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// NewFormatter creates a formatter based on the format name.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "console", "":
		return ConsoleFormatter{}, nil
	case "csv":
		return CSVLedgerFormatter{}, nil
	case "json":
		return JSONFormatter{Pretty: true}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want console, csv or json)", format)
	}
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
