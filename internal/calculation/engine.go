package calculation

import (
	"fmt"

	"github.com/loansim/loan-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalZero   = decimal.Zero
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)
)

// AmortizationEngine produces period-by-period repayment ledgers. Each
// Simulate call is independent and side-effect-free, so one engine may be
// shared by any number of callers.
type AmortizationEngine struct {
	Logger Logger
}

// NewAmortizationEngine creates an engine with a no-op logger.
func NewAmortizationEngine() *AmortizationEngine {
	return &AmortizationEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. A nil logger falls back to the
// no-op logger.
func (ae *AmortizationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ae.Logger = l
}

// Simulate runs the amortization recurrence for a loan under optional rate
// changes and offset contributions and returns the full ledger.
//
// The ledger opens with an inception record (index 0, no payment) so the
// presentation layer has a starting point for every curve. Each following
// iteration resolves the effective rate, recomputes the contractual
// payment over the remaining periods, splits it into interest and
// principal, and redirects the interest saved by the offset balance into
// extra principal paydown. The loop is bottom-tested and terminates once
// the outstanding principal is fully covered by the offset balance plus
// accumulated extra; a degenerate payment (nothing left to amortize) also
// stops the loop.
func (ae *AmortizationEngine) Simulate(loan *domain.Loan, rates domain.RateSchedule, offsets domain.OffsetSchedule) domain.Ledger {
	if loan == nil {
		return nil
	}

	k := decimal.NewFromInt(int64(loan.PaymentsPerYear))
	sortedRates := rates.Sorted()
	sortedOffsets := offsets.Sorted()

	p := loan.Principal
	r := loan.InitialPeriodicRate
	e := decimalZero

	ledger := make(domain.Ledger, 0, loan.TotalPeriods+1)

	for i := 0; ; i++ {
		idx := decimal.NewFromInt(int64(i))
		prevMonth := idx.Sub(decimalOne).Mul(decimalTwelve).Div(k)
		currMonth := idx.Mul(decimalTwelve).Div(k)
		currYear := idx.Div(k)

		r = CurrentRate(r, loan.PaymentsPerYear, sortedRates, currMonth)

		payment := decimalZero
		if i > 0 {
			var ok bool
			payment, ok = domain.AnnuityPayment(loan.TotalPeriods+1-i, p, r)
			if !ok {
				// Nothing left to amortize; stop rather than crash.
				ae.Logger.Debugf("degenerate payment at period %d, terminating", i)
				break
			}
		}

		prevOffset := AccumulatedOffset(sortedOffsets, prevMonth)
		offset := AccumulatedOffset(sortedOffsets, currMonth)
		offsetPayment := offset.Sub(prevOffset)

		interestPlanned := decimalZero
		interestActual := decimalZero
		if i > 0 {
			interestPlanned = p.Mul(r)
			effective := p.Sub(prevOffset.Add(e))
			if effective.LessThan(decimalZero) {
				effective = decimalZero
			}
			interestActual = effective.Mul(r)
		}

		principalPaid := payment.Sub(interestPlanned)
		extraPaid := interestPlanned.Sub(interestActual)

		p = p.Sub(principalPaid)
		e = e.Add(extraPaid)

		ledger = append(ledger, domain.PeriodRecord{
			PeriodIndex:        i,
			MonthOffset:        currMonth,
			YearOffset:         currYear,
			AnnualRate:         r.Mul(k),
			OffsetPayment:      offsetPayment,
			InterestPaid:       interestActual,
			PrincipalPaid:      principalPaid,
			ExtraPrincipalPaid: extraPaid,
			TotalPaid:          payment,
			RemainingPrincipal: p,
			AccumulatedOffset:  offset,
			AccumulatedExtra:   e,
			RemainingNet:       p.Sub(e),
		})

		if !p.GreaterThan(offset.Add(e)) {
			break
		}
	}

	ae.Logger.Debugf("simulated %q: %d payment periods", loan.Label, ledger.PayoffPeriods())
	return ledger
}

// RunScenario simulates one configured scenario by index.
func (ae *AmortizationEngine) RunScenario(cfg *domain.Configuration, index int) (domain.Ledger, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if index < 0 || index >= len(cfg.Scenarios) {
		return nil, fmt.Errorf("scenario index %d out of range (have %d scenarios)", index, len(cfg.Scenarios))
	}
	scenario := cfg.Scenarios[index]
	return ae.Simulate(&cfg.Loan, scenario.RateChanges, scenario.OffsetContributions), nil
}
