package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateSchedule_Sorted(t *testing.T) {
	schedule := RateSchedule{
		{MonthOffset: decimal.NewFromInt(48), AnnualRate: decimal.NewFromFloat(0.065)},
		{MonthOffset: decimal.NewFromInt(24), AnnualRate: decimal.NewFromFloat(0.085)},
		{MonthOffset: decimal.NewFromInt(24), AnnualRate: decimal.NewFromFloat(0.09)},
	}

	sorted := schedule.Sorted()

	assert.True(t, sorted[0].MonthOffset.Equal(decimal.NewFromInt(24)))
	assert.True(t, sorted[2].MonthOffset.Equal(decimal.NewFromInt(48)))
	// Stable: duplicate months keep their relative order.
	assert.True(t, sorted[0].AnnualRate.Equal(decimal.NewFromFloat(0.085)))
	assert.True(t, sorted[1].AnnualRate.Equal(decimal.NewFromFloat(0.09)))
	// Original is untouched.
	assert.True(t, schedule[0].MonthOffset.Equal(decimal.NewFromInt(48)))
}

func TestOffsetSchedule_Sorted(t *testing.T) {
	schedule := OffsetSchedule{
		{MonthOffset: decimal.NewFromInt(12), Amount: decimal.NewFromInt(1000)},
		{MonthOffset: decimal.Zero, Amount: decimal.NewFromInt(200000)},
	}

	sorted := schedule.Sorted()

	assert.True(t, sorted[0].MonthOffset.IsZero())
	assert.True(t, sorted[1].MonthOffset.Equal(decimal.NewFromInt(12)))
	assert.True(t, schedule[0].MonthOffset.Equal(decimal.NewFromInt(12)), "Receiver must not be mutated")
}
