package domain

import (
	"github.com/shopspring/decimal"
)

// PeriodRecord captures the state of the loan after one payment period.
// Records are immutable once emitted by the engine.
type PeriodRecord struct {
	PeriodIndex int             `json:"periodIndex"`
	MonthOffset decimal.Decimal `json:"monthOffset"`
	YearOffset  decimal.Decimal `json:"yearOffset"`
	// AnnualRate is the effective periodic rate scaled back to an annual
	// figure (periodic rate * payments per year).
	AnnualRate         decimal.Decimal `json:"annualRate"`
	OffsetPayment      decimal.Decimal `json:"offsetPayment"`
	InterestPaid       decimal.Decimal `json:"interestPaid"`
	PrincipalPaid      decimal.Decimal `json:"principalPaid"`
	ExtraPrincipalPaid decimal.Decimal `json:"extraPrincipalPaid"`
	TotalPaid          decimal.Decimal `json:"totalPaid"`
	RemainingPrincipal decimal.Decimal `json:"remainingPrincipal"`
	AccumulatedOffset  decimal.Decimal `json:"accumulatedOffset"`
	AccumulatedExtra   decimal.Decimal `json:"accumulatedExtra"`
	// RemainingNet is the outstanding principal net of accumulated extra
	// paydown.
	RemainingNet decimal.Decimal `json:"remainingNet"`
}

// Ledger is the ordered period-by-period repayment schedule produced by a
// single simulation. PeriodIndex is dense and starts at 0 (the inception
// record, which carries no payment).
type Ledger []PeriodRecord

// PayoffPeriods returns the number of payment periods until the loan was
// extinguished. The inception record does not count as a payment.
func (lg Ledger) PayoffPeriods() int {
	if len(lg) == 0 {
		return 0
	}
	return lg[len(lg)-1].PeriodIndex
}

// PayoffYears returns the year offset of the final period.
func (lg Ledger) PayoffYears() decimal.Decimal {
	if len(lg) == 0 {
		return decimal.Zero
	}
	return lg[len(lg)-1].YearOffset
}

// Final returns the last emitted record.
func (lg Ledger) Final() (PeriodRecord, bool) {
	if len(lg) == 0 {
		return PeriodRecord{}, false
	}
	return lg[len(lg)-1], true
}

// TotalInterestPaid sums the interest actually accrued across all periods.
func (lg Ledger) TotalInterestPaid() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range lg {
		total = total.Add(rec.InterestPaid)
	}
	return total
}

// TotalPrincipalPaid sums the scheduled principal component across all
// periods.
func (lg Ledger) TotalPrincipalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range lg {
		total = total.Add(rec.PrincipalPaid)
	}
	return total
}

// TotalExtraPaid sums the offset-driven extra principal paydown.
func (lg Ledger) TotalExtraPaid() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range lg {
		total = total.Add(rec.ExtraPrincipalPaid)
	}
	return total
}

// TotalPaid sums the contractual payments across all periods.
func (lg Ledger) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range lg {
		total = total.Add(rec.TotalPaid)
	}
	return total
}

// HalfPrincipalPoint returns the first record where the remaining principal
// has dropped to half the original balance or below while still positive.
// This is the 50%-paid crossover annotated on the balance chart.
func (lg Ledger) HalfPrincipalPoint() (PeriodRecord, bool) {
	if len(lg) == 0 {
		return PeriodRecord{}, false
	}
	half := lg[0].RemainingPrincipal.Div(decimal.NewFromInt(2))
	for _, rec := range lg {
		if rec.RemainingPrincipal.GreaterThan(decimal.Zero) && rec.RemainingPrincipal.LessThanOrEqual(half) {
			return rec, true
		}
	}
	return PeriodRecord{}, false
}

// PaymentCrossoverPoint returns the first record where the principal
// component of the payment meets or exceeds the interest component.
func (lg Ledger) PaymentCrossoverPoint() (PeriodRecord, bool) {
	for _, rec := range lg {
		if rec.PrincipalPaid.GreaterThan(decimal.Zero) && rec.PrincipalPaid.GreaterThanOrEqual(rec.InterestPaid) {
			return rec, true
		}
	}
	return PeriodRecord{}, false
}

// Head returns up to n records from the start of the ledger.
func (lg Ledger) Head(n int) Ledger {
	if n >= len(lg) {
		return lg
	}
	return lg[:n]
}

// Tail returns up to n records from the end of the ledger.
func (lg Ledger) Tail(n int) Ledger {
	if n >= len(lg) {
		return lg
	}
	return lg[len(lg)-n:]
}
