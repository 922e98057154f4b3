package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Payoff Periods",
		"Payoff Years",
		"Total Paid",
		"Interest Paid",
		"Extra Paydown",
		"Final Offset",
		"Periods Saved from Base",
		"Interest Saved from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}
	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(result *ComparisonResult, kind string) []string {
	return []string{
		result.ScenarioName,
		kind,
		strconv.Itoa(result.PayoffPeriods),
		result.PayoffYears.StringFixed(2),
		result.TotalPaid.StringFixed(2),
		result.TotalInterestPaid.StringFixed(2),
		result.TotalExtraPaid.StringFixed(2),
		result.FinalOffset.StringFixed(2),
		strconv.Itoa(result.PeriodsSavedFromBase),
		result.InterestSavedFromBase.StringFixed(2),
	}
}
