package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("LOAN SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 88) + "\n")
	sb.WriteString(fmt.Sprintf("Loan: %s\n", compSet.LoanLabel))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	sb.WriteString("\n")

	nameWidth := 24
	numWidth := 15

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Payoff (yrs)",
		numWidth, "Total Paid",
		numWidth, "Interest Paid",
		numWidth, "Extra Paydown"))
	sb.WriteString(strings.Repeat("-", 88) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 88) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}
	sb.WriteString(strings.Repeat("=", 88) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 88) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}
			sb.WriteString(fmt.Sprintf("  Periods saved:  %d (%s years)\n",
				alt.PeriodsSavedFromBase,
				decimal.NewFromInt(int64(alt.PeriodsSavedFromBase)).Div(periodsPerYearOf(compSet)).StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Interest saved: %s\n", formatMoney(alt.InterestSavedFromBase)))
			if alt.PaymentCrossoverYear != nil {
				sb.WriteString(fmt.Sprintf("  Principal overtakes interest at year %s\n", alt.PaymentCrossoverYear.StringFixed(1)))
			}
			if alt.HalfPrincipalYear != nil {
				sb.WriteString(fmt.Sprintf("  Half the principal is gone at year %s\n", alt.HalfPrincipalYear.StringFixed(1)))
			}
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}
	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, truncate(name, nameWidth),
		numWidth, result.PayoffYears.StringFixed(1),
		numWidth, formatMoney(result.TotalPaid),
		numWidth, formatMoney(result.TotalInterestPaid),
		numWidth, formatMoney(result.TotalExtraPaid))
}

// periodsPerYearOf recovers the payment frequency from base metrics so the
// delta rows can speak in years.
func periodsPerYearOf(compSet *ComparisonSet) decimal.Decimal {
	base := compSet.BaseResult
	if base == nil || base.PayoffYears.IsZero() {
		return decimal.NewFromInt(12)
	}
	return decimal.NewFromInt(int64(base.PayoffPeriods)).Div(base.PayoffYears)
}

func formatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
