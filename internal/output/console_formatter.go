package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/loansim/loan-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// headTailRows bounds how much of a ledger the console report prints; the
// full ledger goes to the CSV and JSON formats.
const headTailRows = 5

// ConsoleFormatter renders the configuration/analysis report plus a
// head-and-tail view of each scenario's ledger.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	label := report.Loan.Label
	if label == "" {
		label = "Loan"
	}
	fmt.Fprintln(&buf, strings.Repeat("=", 88))
	fmt.Fprintf(&buf, "LOAN ANALYSIS: %s\n", label)
	fmt.Fprintln(&buf, strings.Repeat("=", 88))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "CONFIGURATION")
	fmt.Fprintln(&buf, "-------------")
	fmt.Fprintf(&buf, "Term length:          %s yrs\n", report.Loan.TermYears)
	fmt.Fprintf(&buf, "Payments per year:    %d\n", report.Loan.PaymentsPerYear)
	fmt.Fprintf(&buf, "Principal:            %s\n", FormatCurrency(report.Loan.Principal))
	fmt.Fprintf(&buf, "Initial interest:     %s p.a.\n", FormatPercentage(report.Loan.InitialAnnualRate.Mul(decimal.NewFromInt(100))))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "ANALYSIS")
	fmt.Fprintln(&buf, "--------")
	fmt.Fprintf(&buf, "Initial payment per period:       %s\n", FormatCurrency(report.Summary.InitialPayment))
	fmt.Fprintf(&buf, "Initial payment per month:        %s\n", FormatCurrency(report.Summary.InitialMonthlyPayment))
	fmt.Fprintf(&buf, "Initial total amount to be paid:  %s\n", FormatCurrency(report.Summary.TotalToBePaid))
	fmt.Fprintf(&buf, "Initial total interest to be paid: %s (%s)\n",
		FormatCurrency(report.Summary.TotalInterest),
		FormatPercentage(report.Summary.TotalInterestPercent))
	fmt.Fprintln(&buf)

	for _, run := range report.Runs {
		c.writeScenario(&buf, &run)
	}

	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeScenario(buf *bytes.Buffer, run *ScenarioRun) {
	fmt.Fprintf(buf, "SCENARIO: %s\n", run.Scenario.Name)
	fmt.Fprintln(buf, strings.Repeat("=", 88))
	if run.Scenario.Description != "" {
		fmt.Fprintf(buf, "%s\n", run.Scenario.Description)
	}

	ledger := run.Ledger
	fmt.Fprintf(buf, "Paid off after %d periods (%s years)\n",
		ledger.PayoffPeriods(), ledger.PayoffYears().StringFixed(1))
	fmt.Fprintf(buf, "Total paid:       %s\n", FormatCurrency(ledger.TotalPaid()))
	fmt.Fprintf(buf, "Interest paid:    %s\n", FormatCurrency(ledger.TotalInterestPaid()))
	fmt.Fprintf(buf, "Extra paydown:    %s\n", FormatCurrency(ledger.TotalExtraPaid()))
	if rec, ok := ledger.HalfPrincipalPoint(); ok {
		fmt.Fprintf(buf, "Half the principal gone at year %s\n", rec.YearOffset.StringFixed(1))
	}
	if rec, ok := ledger.PaymentCrossoverPoint(); ok {
		fmt.Fprintf(buf, "Principal overtakes interest at year %s\n", rec.YearOffset.StringFixed(1))
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "  - HEAD -")
	c.writeRows(buf, ledger.Head(headTailRows))
	fmt.Fprintln(buf, "  - TAIL -")
	c.writeRows(buf, ledger.Tail(headTailRows))
	fmt.Fprintln(buf)
}

func (c ConsoleFormatter) writeRows(buf *bytes.Buffer, rows domain.Ledger) {
	fmt.Fprintf(buf, "%5s %8s %7s %7s %12s %12s %12s %12s %14s %14s\n",
		"i", "month", "year", "rate", "interest", "principal", "extra", "total", "remaining", "offset")
	for _, rec := range rows {
		fmt.Fprintf(buf, "%5d %8s %7s %6s%% %12s %12s %12s %12s %14s %14s\n",
			rec.PeriodIndex,
			rec.MonthOffset.StringFixed(1),
			rec.YearOffset.StringFixed(2),
			rec.AnnualRate.Mul(decimal.NewFromInt(100)).StringFixed(2),
			rec.InterestPaid.StringFixed(2),
			rec.PrincipalPaid.StringFixed(2),
			rec.ExtraPrincipalPaid.StringFixed(2),
			rec.TotalPaid.StringFixed(2),
			rec.RemainingPrincipal.StringFixed(2),
			rec.AccumulatedOffset.StringFixed(2))
	}
}
