package domain

import (
	"github.com/shopspring/decimal"
)

// StrategyOutcome is a strategy's result measured against the baseline.
type StrategyOutcome struct {
	Mode          StrategyMode     `json:"mode"`
	Result        SimulationResult `json:"result"`
	InterestSaved decimal.Decimal  `json:"interest_saved"`
	MonthsSaved   int              `json:"months_saved"`
}

// StrategyComparison holds the baseline (no overpayment) run and one outcome
// per strategy, in reporting order.
type StrategyComparison struct {
	Parameters LoanParameters    `json:"parameters"`
	Baseline   SimulationResult  `json:"baseline"`
	Strategies []StrategyOutcome `json:"strategies"`
	Best       StrategyMode      `json:"best"`
}

// Outcome returns the outcome for a strategy.
func (c *StrategyComparison) Outcome(mode StrategyMode) (StrategyOutcome, bool) {
	for _, o := range c.Strategies {
		if o.Mode == mode {
			return o, true
		}
	}
	return StrategyOutcome{}, false
}

// SweepPoint is one affordability ceiling evaluated by a sensitivity sweep.
type SweepPoint struct {
	AffordablePayment decimal.Decimal     `json:"affordable_payment"`
	Comparison        *StrategyComparison `json:"comparison"`
}
