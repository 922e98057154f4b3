package calculation

import (
	"github.com/loansim/loan-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CurrentRate resolves the effective periodic rate for a month cursor. It
// picks the rate change with the greatest month offset at or before the
// cursor and converts its annual rate to a periodic one; with no
// qualifying entry the carried-in default r is returned unchanged. Pure
// function: the schedule is never mutated and no history is retained — the
// caller threads the previous period's resolved rate back in as the new
// default.
func CurrentRate(r decimal.Decimal, paymentsPerYear int, schedule domain.RateSchedule, month decimal.Decimal) decimal.Decimal {
	if len(schedule) == 0 {
		return r
	}
	resolved := r
	found := false
	var annual decimal.Decimal
	for _, change := range schedule.Sorted() {
		if change.MonthOffset.LessThanOrEqual(month) {
			annual = change.AnnualRate
			found = true
		}
	}
	if found {
		resolved = annual.Div(decimal.NewFromInt(int64(paymentsPerYear)))
	}
	return resolved
}

// AccumulatedOffset sums every contribution landing at or before the month
// cursor. Returns zero for an absent or not-yet-effective schedule.
func AccumulatedOffset(schedule domain.OffsetSchedule, month decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, contribution := range schedule {
		if contribution.MonthOffset.LessThanOrEqual(month) {
			total = total.Add(contribution.Amount)
		}
	}
	return total
}
