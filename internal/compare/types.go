package compare

import (
	"github.com/loansim/loan-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult carries the metrics for one simulated scenario plus its
// deltas against the base scenario.
type ComparisonResult struct {
	ScenarioName string        `json:"scenarioName"`
	Description  string        `json:"description,omitempty"`
	Ledger       domain.Ledger `json:"-"`

	// Key metrics
	PayoffPeriods     int             `json:"payoffPeriods"`
	PayoffYears       decimal.Decimal `json:"payoffYears"`
	TotalPaid         decimal.Decimal `json:"totalPaid"`
	TotalInterestPaid decimal.Decimal `json:"totalInterestPaid"`
	TotalExtraPaid    decimal.Decimal `json:"totalExtraPaid"`
	FinalOffset       decimal.Decimal `json:"finalOffset"`

	// Crossover points for chart annotations; nil when the curve never
	// reaches them.
	HalfPrincipalYear    *decimal.Decimal `json:"halfPrincipalYear,omitempty"`
	PaymentCrossoverYear *decimal.Decimal `json:"paymentCrossoverYear,omitempty"`

	// Deltas from base
	PeriodsSavedFromBase  int             `json:"periodsSavedFromBase"`
	InterestSavedFromBase decimal.Decimal `json:"interestSavedFromBase"`
}

// ComparisonSet is the full output of a comparison run: the loan summary,
// the base scenario and every alternative measured against it.
type ComparisonSet struct {
	LoanLabel          string             `json:"loanLabel"`
	LoanSummary        domain.LoanSummary `json:"loanSummary"`
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	ConfigPath         string             `json:"configPath,omitempty"`
}
