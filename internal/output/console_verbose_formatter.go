package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/overpayment-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// recommendationBoxWidth is the inner width of the recommendation box.
const recommendationBoxWidth = 56

// ConsoleVerboseFormatter renders every schedule followed by the comparison,
// savings, bar charts and the recommendation box.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.StrategyComparison) ([]byte, error) {
	var buf bytes.Buffer
	currency := currencyOf(results)

	writeLoanHeader(&buf, results)

	for i, o := range results.Strategies {
		writeSchedule(&buf, fmt.Sprintf("Strategy %d: %s", i+1, o.Mode.Label()), o.Result.Entries)
		fmt.Fprintf(&buf, "\nTotal interest paid: %s, total months: %d\n", FormatCurrency(o.Result.TotalInterest, currency), o.Result.Months)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "--- Comparison ---")
	for _, o := range results.Strategies {
		fmt.Fprintf(&buf, "%s %s interest, %d months\n", padRight(o.Mode.Label()+":", 20), FormatCurrency(o.Result.TotalInterest, currency), o.Result.Months)
	}
	fmt.Fprintf(&buf, "\nBest strategy for interest savings: %s\n", results.Best.Label())

	writeSavings(&buf, results)
	writeBarCharts(&buf, results)
	writeRecommendationBox(&buf, results)

	return buf.Bytes(), nil
}

func writeLoanHeader(buf *bytes.Buffer, results *domain.StrategyComparison) {
	p := results.Parameters
	currency := currencyOf(results)
	fmt.Fprintln(buf, strings.Repeat("=", 60))
	fmt.Fprintln(buf, center("MORTGAGE OVERPAYMENT STRATEGY ANALYSIS", 60))
	fmt.Fprintln(buf, strings.Repeat("=", 60))
	fmt.Fprintf(buf, "Balance:               %s\n", FormatCurrency(p.Balance, currency))
	fmt.Fprintf(buf, "Annual interest rate:  %s\n", FormatPercentage(p.AnnualRate))
	fmt.Fprintf(buf, "Contractual payment:   %s\n", FormatCurrency(p.ContractualPayment, currency))
	fmt.Fprintf(buf, "Affordable payment:    %s\n", FormatCurrency(p.AffordablePayment, currency))
	fmt.Fprintf(buf, "Remaining months:      %d\n", p.RemainingMonths)
	fmt.Fprintf(buf, "Payment day:           %d\n", p.PaymentDay)
}

func writeSchedule(buf *bytes.Buffer, label string, entries []domain.ScheduleEntry) {
	fmt.Fprintf(buf, "\n--- %s ---\n", label)
	fmt.Fprintf(buf, "%-10s %10s %12s %10s %10s %14s\n", "Month", "Payment", "Overpayment", "Interest", "Principal", "Remaining")
	for _, e := range entries {
		fmt.Fprintf(buf, "%-10s %10s %12s %10s %10s %14s\n",
			e.Month,
			e.Payment.StringFixed(2),
			e.Overpayment.StringFixed(2),
			e.Interest.StringFixed(2),
			e.Principal.StringFixed(2),
			e.RemainingBalance.StringFixed(2),
		)
	}
}

func writeSavings(buf *bytes.Buffer, results *domain.StrategyComparison) {
	currency := currencyOf(results)
	fmt.Fprintf(buf, "\n%s\n%s\n%s\n", strings.Repeat("=", 60), center("COST REDUCTION SUMMARY", 60), strings.Repeat("=", 60))
	fmt.Fprintln(buf, "\nOriginal scenario (no overpayment):")
	fmt.Fprintf(buf, "  Interest: %s, Duration: %d months\n", FormatCurrency(results.Baseline.TotalInterest, currency), results.Baseline.Months)
	fmt.Fprintln(buf, "\nSavings compared to original:")
	for _, o := range results.Strategies {
		fmt.Fprintf(buf, "  %s %12s %s saved, %3d months shorter\n",
			padRight(o.Mode.Label()+":", 17), o.InterestSaved.StringFixed(2), currency, o.MonthsSaved)
	}
}

func writeBarCharts(buf *bytes.Buffer, results *domain.StrategyComparison) {
	currency := currencyOf(results)
	fmt.Fprintf(buf, "\n%s\n%s\n%s\n", strings.Repeat("=", 60), center("INTEREST COST COMPARISON", 60), strings.Repeat("=", 60))

	top := maxInterest(results)
	perCell := top.Div(decimal.NewFromInt(BarWidth))
	fmt.Fprintf(buf, "\nInterest Cost Comparison (each █ ≈ %s):\n", FormatWholeCurrency(perCell, currency))
	fmt.Fprintf(buf, "%s %s %s\n", padRight(BaselineLabel+":", 22), Bar(results.Baseline.TotalInterest, top, BarWidth), FormatWholeCurrency(results.Baseline.TotalInterest, currency))
	for _, o := range results.Strategies {
		fmt.Fprintf(buf, "%s %s %s\n", padRight(o.Mode.Label()+":", 22), Bar(o.Result.TotalInterest, top, BarWidth), FormatWholeCurrency(o.Result.TotalInterest, currency))
	}

	longest := maxMonths(results)
	monthsPerCell := decimal.NewFromInt(int64(longest)).Div(decimal.NewFromInt(BarWidth))
	fmt.Fprintf(buf, "\nLoan Duration Comparison (each █ ≈ %s months):\n", monthsPerCell.StringFixed(1))
	longestDec := decimal.NewFromInt(int64(longest))
	fmt.Fprintf(buf, "%s %s %d months\n", padRight(BaselineLabel+":", 22), Bar(decimal.NewFromInt(int64(results.Baseline.Months)), longestDec, BarWidth), results.Baseline.Months)
	for _, o := range results.Strategies {
		fmt.Fprintf(buf, "%s %s %d months\n", padRight(o.Mode.Label()+":", 22), Bar(decimal.NewFromInt(int64(o.Result.Months)), longestDec, BarWidth), o.Result.Months)
	}
}

func writeRecommendationBox(buf *bytes.Buffer, results *domain.StrategyComparison) {
	rec := AnalyzeStrategies(results)
	if rec.StrategyName == "" {
		return
	}
	currency := currencyOf(results)
	border := strings.Repeat("─", recommendationBoxWidth)
	line := func(text string) {
		fmt.Fprintf(buf, "│%s│\n", padRight(text, recommendationBoxWidth))
	}

	fmt.Fprintf(buf, "\n┌%s┐\n", border)
	fmt.Fprintf(buf, "│%s│\n", center("RECOMMENDATION", recommendationBoxWidth))
	fmt.Fprintf(buf, "├%s┤\n", border)
	line(" Best for MAXIMUM SAVINGS: " + rec.StrategyName)
	line(fmt.Sprintf(" Saves: %s vs original scenario", FormatWholeCurrency(rec.MaxInterestSaved, currency)))
	line(fmt.Sprintf(" Reduces loan by: %d months", rec.MaxMonthsSaved))
	fmt.Fprintf(buf, "└%s┘\n", border)
}
