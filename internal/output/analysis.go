package output

import (
	"github.com/rpgo/overpayment-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation summarizes the best strategy and the largest savings any
// strategy achieves against the baseline.
type Recommendation struct {
	Strategy         domain.StrategyMode
	StrategyName     string
	MaxInterestSaved decimal.Decimal
	MaxMonthsSaved   int
}

// AnalyzeStrategies builds the recommendation shown at the end of reports.
// The maxima are taken across all strategies independently, so they may come
// from different strategies.
func AnalyzeStrategies(results *domain.StrategyComparison) Recommendation {
	if results == nil || len(results.Strategies) == 0 {
		return Recommendation{}
	}
	rec := Recommendation{
		Strategy:         results.Best,
		StrategyName:     results.Best.Label(),
		MaxInterestSaved: results.Strategies[0].InterestSaved,
		MaxMonthsSaved:   results.Strategies[0].MonthsSaved,
	}
	for _, o := range results.Strategies[1:] {
		if o.InterestSaved.GreaterThan(rec.MaxInterestSaved) {
			rec.MaxInterestSaved = o.InterestSaved
		}
		if o.MonthsSaved > rec.MaxMonthsSaved {
			rec.MaxMonthsSaved = o.MonthsSaved
		}
	}
	return rec
}

// maxInterest returns the largest total interest among the baseline and the strategies.
func maxInterest(results *domain.StrategyComparison) decimal.Decimal {
	m := results.Baseline.TotalInterest
	for _, o := range results.Strategies {
		m = decimal.Max(m, o.Result.TotalInterest)
	}
	return m
}

// maxMonths returns the longest duration among the baseline and the strategies.
func maxMonths(results *domain.StrategyComparison) int {
	m := results.Baseline.Months
	for _, o := range results.Strategies {
		if o.Result.Months > m {
			m = o.Result.Months
		}
	}
	return m
}
