package domain

// Scenario describes one structuring choice to simulate against the loan:
// an optional set of rate changes and an optional set of offset
// contributions. An empty scenario is the plain contractual schedule.
type Scenario struct {
	Name                string         `json:"name" yaml:"name"`
	Description         string         `json:"description,omitempty" yaml:"description,omitempty"`
	RateChanges         RateSchedule   `json:"rateChanges,omitempty" yaml:"rate_changes,omitempty"`
	OffsetContributions OffsetSchedule `json:"offsetContributions,omitempty" yaml:"offset_contributions,omitempty"`
}

// Configuration is the top-level input document: one loan plus the
// scenarios to run against it.
type Configuration struct {
	Loan      Loan       `json:"loan" yaml:"loan"`
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}
