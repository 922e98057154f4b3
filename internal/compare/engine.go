package compare

import (
	"fmt"

	"github.com/loansim/loan-calculator/internal/calculation"
	"github.com/loansim/loan-calculator/internal/domain"
)

// Engine runs every configured scenario through the amortization engine
// and measures each against the first one (the base).
type Engine struct {
	CalcEngine *calculation.AmortizationEngine
}

// NewEngine creates a comparison engine.
func NewEngine(calcEngine *calculation.AmortizationEngine) *Engine {
	return &Engine{CalcEngine: calcEngine}
}

// RunComparison simulates all scenarios in the configuration. The first
// scenario is the baseline the others are measured against.
func (e *Engine) RunComparison(cfg *domain.Configuration, configPath string) (*ComparisonSet, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to compare")
	}

	results := make([]ComparisonResult, 0, len(cfg.Scenarios))
	for i := range cfg.Scenarios {
		ledger, err := e.CalcEngine.RunScenario(cfg, i)
		if err != nil {
			return nil, fmt.Errorf("scenario %q failed: %w", cfg.Scenarios[i].Name, err)
		}
		results = append(results, summarize(&cfg.Scenarios[i], ledger))
	}

	base := results[0]
	for i := range results {
		results[i].PeriodsSavedFromBase = base.PayoffPeriods - results[i].PayoffPeriods
		results[i].InterestSavedFromBase = base.TotalInterestPaid.Sub(results[i].TotalInterestPaid)
	}

	return &ComparisonSet{
		LoanLabel:          cfg.Loan.Label,
		LoanSummary:        cfg.Loan.Summary(),
		BaseScenarioName:   base.ScenarioName,
		BaseResult:         &results[0],
		AlternativeResults: results[1:],
		ConfigPath:         configPath,
	}, nil
}

// summarize reduces a ledger to the comparison metrics.
func summarize(scenario *domain.Scenario, ledger domain.Ledger) ComparisonResult {
	result := ComparisonResult{
		ScenarioName:      scenario.Name,
		Description:       scenario.Description,
		Ledger:            ledger,
		PayoffPeriods:     ledger.PayoffPeriods(),
		PayoffYears:       ledger.PayoffYears(),
		TotalPaid:         ledger.TotalPaid(),
		TotalInterestPaid: ledger.TotalInterestPaid(),
		TotalExtraPaid:    ledger.TotalExtraPaid(),
	}
	if final, ok := ledger.Final(); ok {
		result.FinalOffset = final.AccumulatedOffset
	}
	if rec, ok := ledger.HalfPrincipalPoint(); ok {
		year := rec.YearOffset
		result.HalfPrincipalYear = &year
	}
	if rec, ok := ledger.PaymentCrossoverPoint(); ok {
		year := rec.YearOffset
		result.PaymentCrossoverYear = &year
	}
	return result
}
