package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Loan holds the static parameters of an amortizing loan. It is built once
// via NewLoan and read-only afterwards; the derived fields are computed at
// construction from the annuity formula.
type Loan struct {
	Label           string          `json:"label" yaml:"label"`
	TermYears       decimal.Decimal `json:"termYears" yaml:"term_years"`
	PaymentsPerYear int             `json:"paymentsPerYear" yaml:"payments_per_year"`
	Principal       decimal.Decimal `json:"principal" yaml:"principal"`
	// InitialAnnualRate is the nominal annual rate at inception, e.g. 0.062
	// for 6.2% p.a.
	InitialAnnualRate decimal.Decimal `json:"initialAnnualRate" yaml:"initial_annual_rate"`

	// Derived at construction.
	TotalPeriods          int             `json:"totalPeriods" yaml:"-"`
	InitialPeriodicRate   decimal.Decimal `json:"initialPeriodicRate" yaml:"-"`
	InitialPayment        decimal.Decimal `json:"initialPayment" yaml:"-"`
	InitialMonthlyPayment decimal.Decimal `json:"initialMonthlyPayment" yaml:"-"`
}

// LoanSummary provides the headline figures for a loan before any rate
// changes or offsets are applied.
type LoanSummary struct {
	InitialPayment        decimal.Decimal `json:"initialPayment"`
	InitialMonthlyPayment decimal.Decimal `json:"initialMonthlyPayment"`
	TotalToBePaid         decimal.Decimal `json:"totalToBePaid"`
	TotalInterest         decimal.Decimal `json:"totalInterest"`
	TotalInterestPercent  decimal.Decimal `json:"totalInterestPercent"`
}

// NewLoan validates the loan parameters and computes the derived fields.
func NewLoan(label string, termYears decimal.Decimal, paymentsPerYear int, principal, annualRate decimal.Decimal) (*Loan, error) {
	if termYears.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("term years must be positive, got %s", termYears)
	}
	if paymentsPerYear <= 0 {
		return nil, fmt.Errorf("payments per year must be positive, got %d", paymentsPerYear)
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("principal must be positive, got %s", principal)
	}
	if annualRate.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("initial annual rate cannot be negative, got %s", annualRate)
	}

	loan := &Loan{
		Label:             label,
		TermYears:         termYears,
		PaymentsPerYear:   paymentsPerYear,
		Principal:         principal,
		InitialAnnualRate: annualRate,
	}

	k := decimal.NewFromInt(int64(paymentsPerYear))
	totalPeriods := termYears.Mul(k)
	if !totalPeriods.IsInteger() {
		return nil, fmt.Errorf("term of %s years at %d payments per year does not yield a whole number of periods", termYears, paymentsPerYear)
	}
	loan.TotalPeriods = int(totalPeriods.IntPart())
	loan.InitialPeriodicRate = annualRate.Div(k)

	payment, ok := AnnuityPayment(loan.TotalPeriods, principal, loan.InitialPeriodicRate)
	if !ok {
		return nil, fmt.Errorf("loan parameters do not admit a recurring payment")
	}
	loan.InitialPayment = payment
	loan.InitialMonthlyPayment = payment.Mul(k).Div(decimal.NewFromInt(12))

	return loan, nil
}

// Summary returns the headline figures implied by the initial payment.
func (l *Loan) Summary() LoanSummary {
	totalToBePaid := l.InitialPayment.Mul(decimal.NewFromInt(int64(l.TotalPeriods)))
	totalInterest := totalToBePaid.Sub(l.Principal)
	totalInterestPercent := decimal.Zero
	if totalToBePaid.GreaterThan(decimal.Zero) {
		totalInterestPercent = totalInterest.Div(totalToBePaid).Mul(decimal.NewFromInt(100))
	}
	return LoanSummary{
		InitialPayment:        l.InitialPayment,
		InitialMonthlyPayment: l.InitialMonthlyPayment,
		TotalToBePaid:         totalToBePaid,
		TotalInterest:         totalInterest,
		TotalInterestPercent:  totalInterestPercent,
	}
}

// AnnuityPayment computes the fixed recurring payment that fully amortizes
// principal p over n periods at constant periodic rate r:
//
//	c = p * (r * (1+r)^n) / ((1+r)^n - 1)
//
// The zero-rate case degenerates to straight-line repayment p/n. A false
// second return value means no further payment applies (p <= 0 or n <= 0);
// callers treat it as a termination signal, never as an error.
func AnnuityPayment(n int, p, r decimal.Decimal) (decimal.Decimal, bool) {
	if p.LessThanOrEqual(decimal.Zero) || n <= 0 {
		return decimal.Zero, false
	}
	if r.IsZero() {
		return p.Div(decimal.NewFromInt(int64(n))), true
	}
	growth := decimal.NewFromInt(1).Add(r).Pow(decimal.NewFromInt(int64(n)))
	return p.Mul(r.Mul(growth)).Div(growth.Sub(decimal.NewFromInt(1))), true
}
