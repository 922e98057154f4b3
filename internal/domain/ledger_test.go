package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func testLedger() Ledger {
	return Ledger{
		{PeriodIndex: 0, YearOffset: d(0), RemainingPrincipal: d(1000), InterestPaid: d(0), PrincipalPaid: d(0), TotalPaid: d(0)},
		{PeriodIndex: 1, YearOffset: d(1), RemainingPrincipal: d(800), InterestPaid: d(50), PrincipalPaid: d(200), ExtraPrincipalPaid: d(5), TotalPaid: d(250)},
		{PeriodIndex: 2, YearOffset: d(2), RemainingPrincipal: d(500), InterestPaid: d(40), PrincipalPaid: d(300), ExtraPrincipalPaid: d(5), TotalPaid: d(340)},
		{PeriodIndex: 3, YearOffset: d(3), RemainingPrincipal: d(100), InterestPaid: d(25), PrincipalPaid: d(400), ExtraPrincipalPaid: d(5), TotalPaid: d(425)},
		{PeriodIndex: 4, YearOffset: d(4), RemainingPrincipal: d(0), InterestPaid: d(5), PrincipalPaid: d(100), ExtraPrincipalPaid: d(5), TotalPaid: d(105)},
	}
}

func TestLedger_Empty(t *testing.T) {
	var empty Ledger

	assert.Equal(t, 0, empty.PayoffPeriods())
	assert.True(t, empty.PayoffYears().IsZero())
	_, ok := empty.Final()
	assert.False(t, ok)
	_, ok = empty.HalfPrincipalPoint()
	assert.False(t, ok)
}

func TestLedger_Totals(t *testing.T) {
	lg := testLedger()

	assert.True(t, lg.TotalInterestPaid().Equal(d(120)))
	assert.True(t, lg.TotalPrincipalPaid().Equal(d(1000)))
	assert.True(t, lg.TotalExtraPaid().Equal(d(20)))
	assert.True(t, lg.TotalPaid().Equal(d(1120)))
}

func TestLedger_Payoff(t *testing.T) {
	lg := testLedger()

	assert.Equal(t, 4, lg.PayoffPeriods())
	assert.True(t, lg.PayoffYears().Equal(d(4)))

	final, ok := lg.Final()
	require.True(t, ok)
	assert.True(t, final.RemainingPrincipal.IsZero())
}

func TestLedger_HalfPrincipalPoint(t *testing.T) {
	lg := testLedger()

	rec, ok := lg.HalfPrincipalPoint()

	require.True(t, ok, "Half-principal point should exist")
	// First record at or below 500 with principal still outstanding.
	assert.Equal(t, 2, rec.PeriodIndex)
}

func TestLedger_PaymentCrossoverPoint(t *testing.T) {
	lg := testLedger()

	rec, ok := lg.PaymentCrossoverPoint()

	require.True(t, ok)
	assert.Equal(t, 1, rec.PeriodIndex, "Principal already exceeds interest in the first payment period")

	interestHeavy := Ledger{
		{PeriodIndex: 0},
		{PeriodIndex: 1, InterestPaid: d(90), PrincipalPaid: d(10)},
		{PeriodIndex: 2, InterestPaid: d(50), PrincipalPaid: d(50)},
	}
	rec, ok = interestHeavy.PaymentCrossoverPoint()
	require.True(t, ok)
	assert.Equal(t, 2, rec.PeriodIndex)
}

func TestLedger_HeadTail(t *testing.T) {
	lg := testLedger()

	assert.Len(t, lg.Head(2), 2)
	assert.Equal(t, 0, lg.Head(2)[0].PeriodIndex)
	assert.Len(t, lg.Tail(2), 2)
	assert.Equal(t, 4, lg.Tail(2)[1].PeriodIndex)
	assert.Len(t, lg.Head(100), len(lg), "Head beyond length returns everything")
	assert.Len(t, lg.Tail(100), len(lg), "Tail beyond length returns everything")
}
