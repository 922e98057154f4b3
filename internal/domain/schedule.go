package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RateChange marks a nominal annual rate taking effect at a month offset
// from loan inception (month 0 = inception).
type RateChange struct {
	MonthOffset decimal.Decimal `json:"monthOffset" yaml:"month"`
	AnnualRate  decimal.Decimal `json:"annualRate" yaml:"rate"`
}

// RateSchedule is an ordered set of rate changes. Callers need not supply
// it sorted; lookups sort by month offset. Duplicate months are legal and
// the entry with the greatest month offset at or before the cursor wins.
type RateSchedule []RateChange

// Sorted returns a copy ordered by month offset. The receiver is never
// mutated.
func (rs RateSchedule) Sorted() RateSchedule {
	out := append(RateSchedule(nil), rs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MonthOffset.LessThan(out[j].MonthOffset)
	})
	return out
}

// OffsetContribution is a lump sum landing in the offset account at a month
// offset from loan inception.
type OffsetContribution struct {
	MonthOffset decimal.Decimal `json:"monthOffset" yaml:"month"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
}

// OffsetSchedule is an ordered set of offset contributions. Multiple
// entries may share a month; their amounts accumulate.
type OffsetSchedule []OffsetContribution

// Sorted returns a copy ordered by month offset.
func (os OffsetSchedule) Sorted() OffsetSchedule {
	out := append(OffsetSchedule(nil), os...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MonthOffset.LessThan(out[j].MonthOffset)
	})
	return out
}
