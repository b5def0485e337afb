package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/overpayment-simulator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.StrategyComparison) ([]byte, error) {
	var buf bytes.Buffer
	currency := currencyOf(results)
	fmt.Fprintln(&buf, "OVERPAYMENT STRATEGY SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Baseline: interest=%s months=%d\n", FormatCurrency(results.Baseline.TotalInterest, currency), results.Baseline.Months)
	fmt.Fprintln(&buf)
	for _, o := range results.Strategies {
		fmt.Fprintf(&buf, "%s: interest=%s months=%d payoff=%s\n",
			o.Mode.Label(),
			FormatCurrency(o.Result.TotalInterest, currency),
			o.Result.Months,
			payoffLabel(o.Result),
		)
		fmt.Fprintf(&buf, "  saved=%s shorter=%d overpaid=%s\n", FormatCurrency(o.InterestSaved, currency), o.MonthsSaved, FormatCurrency(o.Result.TotalOverpayment, currency))
	}
	rec := AnalyzeStrategies(results)
	if rec.StrategyName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (saves up to %s, up to %d months shorter)\n", rec.StrategyName, FormatCurrency(rec.MaxInterestSaved, currency), rec.MaxMonthsSaved)
	}
	return buf.Bytes(), nil
}

func payoffLabel(r domain.SimulationResult) string {
	if last, ok := r.LastEntry(); ok {
		return last.Month
	}
	return "-"
}
