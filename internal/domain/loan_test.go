package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoan_DerivedFields(t *testing.T) {
	loan, err := NewLoan("home", decimal.NewFromInt(25), 12,
		decimal.NewFromInt(1250000), decimal.NewFromFloat(0.062))
	require.NoError(t, err)

	assert.Equal(t, 300, loan.TotalPeriods)
	assert.True(t, loan.InitialPeriodicRate.Equal(decimal.NewFromFloat(0.062).Div(decimal.NewFromInt(12))))
	assert.True(t, loan.InitialPayment.GreaterThan(decimal.Zero))
	// Monthly payment frequency means payment and monthly-equivalent agree.
	assert.True(t, loan.InitialMonthlyPayment.Sub(loan.InitialPayment).Abs().LessThan(decimal.NewFromFloat(1e-9)))
}

func TestNewLoan_InvalidParameters(t *testing.T) {
	tests := []struct {
		name      string
		termYears decimal.Decimal
		perYear   int
		principal decimal.Decimal
		rate      decimal.Decimal
		wantErr   string
	}{
		{"zero term", decimal.Zero, 12, decimal.NewFromInt(100000), decimal.NewFromFloat(0.05), "term years must be positive"},
		{"negative term", decimal.NewFromInt(-5), 12, decimal.NewFromInt(100000), decimal.NewFromFloat(0.05), "term years must be positive"},
		{"zero frequency", decimal.NewFromInt(25), 0, decimal.NewFromInt(100000), decimal.NewFromFloat(0.05), "payments per year must be positive"},
		{"zero principal", decimal.NewFromInt(25), 12, decimal.Zero, decimal.NewFromFloat(0.05), "principal must be positive"},
		{"negative principal", decimal.NewFromInt(25), 12, decimal.NewFromInt(-1), decimal.NewFromFloat(0.05), "principal must be positive"},
		{"negative rate", decimal.NewFromInt(25), 12, decimal.NewFromInt(100000), decimal.NewFromFloat(-0.01), "initial annual rate cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoan("bad", tt.termYears, tt.perYear, tt.principal, tt.rate)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewLoan_FractionalPeriodCount(t *testing.T) {
	// 2.5 years at 5 payments per year is 12.5 periods.
	_, err := NewLoan("odd", decimal.NewFromFloat(2.5), 5,
		decimal.NewFromInt(100000), decimal.NewFromFloat(0.05))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "whole number of periods")
}

func TestLoanSummary(t *testing.T) {
	loan, err := NewLoan("home", decimal.NewFromInt(25), 12,
		decimal.NewFromInt(1000000), decimal.NewFromFloat(0.05))
	require.NoError(t, err)

	summary := loan.Summary()

	wantTotal := loan.InitialPayment.Mul(decimal.NewFromInt(300))
	assert.True(t, summary.TotalToBePaid.Equal(wantTotal))
	assert.True(t, summary.TotalInterest.Equal(wantTotal.Sub(loan.Principal)))
	assert.True(t, summary.TotalInterestPercent.GreaterThan(decimal.Zero))
	assert.True(t, summary.TotalInterestPercent.LessThan(decimal.NewFromInt(100)))
}

func TestAnnuityPayment_ZeroRate(t *testing.T) {
	for _, n := range []int{1, 12, 300} {
		p := decimal.NewFromInt(120000)

		payment, ok := AnnuityPayment(n, p, decimal.Zero)

		require.True(t, ok)
		assert.True(t, payment.Equal(p.Div(decimal.NewFromInt(int64(n)))),
			"Zero-rate payment must be straight-line p/n for n=%d", n)
	}
}

func TestAnnuityPayment_Degenerate(t *testing.T) {
	r := decimal.NewFromFloat(0.005)

	_, ok := AnnuityPayment(0, decimal.NewFromInt(1000), r)
	assert.False(t, ok, "Zero periods remaining means no payment applies")

	_, ok = AnnuityPayment(12, decimal.Zero, r)
	assert.False(t, ok, "Non-positive principal means no payment applies")

	_, ok = AnnuityPayment(12, decimal.NewFromInt(-5), r)
	assert.False(t, ok)
}

func TestAnnuityPayment_KnownValue(t *testing.T) {
	// $1,000,000 over 300 months at 5% p.a. is $5,845.90/month, a widely
	// published mortgage-table figure.
	payment, ok := AnnuityPayment(300, decimal.NewFromInt(1000000), decimal.NewFromFloat(0.05).Div(decimal.NewFromInt(12)))

	require.True(t, ok)
	diff := payment.Sub(decimal.NewFromFloat(5845.90)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.01)), "got %s", payment)
}
