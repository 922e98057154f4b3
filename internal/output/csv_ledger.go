package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/loansim/loan-calculator/internal/domain"
)

// CSVLedgerFormatter emits every period of every scenario as CSV rows, one
// ledger after another, keyed by the scenario name.
type CSVLedgerFormatter struct{}

func (c CSVLedgerFormatter) Name() string { return "csv" }

func (c CSVLedgerFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(ledgerHeader(true)); err != nil {
		return nil, err
	}
	for _, run := range report.Runs {
		for _, rec := range run.Ledger {
			row := append([]string{run.Scenario.Name}, ledgerRow(&rec)...)
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LedgerCSV renders a single ledger as CSV without the scenario column.
func LedgerCSV(ledger domain.Ledger) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(ledgerHeader(false)); err != nil {
		return nil, err
	}
	for _, rec := range ledger {
		if err := w.Write(ledgerRow(&rec)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ledgerHeader(withScenario bool) []string {
	header := []string{
		"Period", "Month", "Year", "AnnualRate",
		"OffsetPayment", "InterestPaid", "PrincipalPaid", "ExtraPrincipalPaid", "TotalPaid",
		"RemainingPrincipal", "AccumulatedOffset", "AccumulatedExtra", "RemainingNet",
	}
	if withScenario {
		return append([]string{"Scenario"}, header...)
	}
	return header
}

func ledgerRow(rec *domain.PeriodRecord) []string {
	return []string{
		strconv.Itoa(rec.PeriodIndex),
		rec.MonthOffset.StringFixed(2),
		rec.YearOffset.StringFixed(4),
		rec.AnnualRate.StringFixed(6),
		rec.OffsetPayment.StringFixed(2),
		rec.InterestPaid.StringFixed(2),
		rec.PrincipalPaid.StringFixed(2),
		rec.ExtraPrincipalPaid.StringFixed(2),
		rec.TotalPaid.StringFixed(2),
		rec.RemainingPrincipal.StringFixed(2),
		rec.AccumulatedOffset.StringFixed(2),
		rec.AccumulatedExtra.StringFixed(2),
		rec.RemainingNet.StringFixed(2),
	}
}
