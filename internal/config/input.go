package config

import (
	"fmt"
	"os"

	"github.com/loansim/loan-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a loan configuration from a YAML file, validates it
// and computes the loan's derived fields.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates raw YAML configuration bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration and replaces the
// raw loan parameters with a fully derived loan. A configuration without
// scenarios gets a single contractual baseline.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	loan, err := domain.NewLoan(config.Loan.Label,
		config.Loan.TermYears, config.Loan.PaymentsPerYear,
		config.Loan.Principal, config.Loan.InitialAnnualRate)
	if err != nil {
		return fmt.Errorf("loan validation failed: %w", err)
	}
	config.Loan = *loan

	if len(config.Scenarios) == 0 {
		config.Scenarios = []domain.Scenario{{Name: "baseline", Description: "contractual schedule, no overrides"}}
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name: %s", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario's override tables.
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	for j, change := range scenario.RateChanges {
		if change.MonthOffset.LessThan(decimal.Zero) {
			return fmt.Errorf("rate change %d: month offset cannot be negative", j)
		}
		if change.AnnualRate.LessThan(decimal.Zero) {
			return fmt.Errorf("rate change %d: annual rate cannot be negative", j)
		}
	}

	for j, contribution := range scenario.OffsetContributions {
		if contribution.MonthOffset.LessThan(decimal.Zero) {
			return fmt.Errorf("offset contribution %d: month offset cannot be negative", j)
		}
		if contribution.Amount.LessThan(decimal.Zero) {
			return fmt.Errorf("offset contribution %d: amount cannot be negative", j)
		}
	}

	return nil
}

// SaveConfiguration writes a configuration back to a YAML file.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
