package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/overpayment-simulator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (baseline row, then one row per strategy).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.StrategyComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Strategy", "TotalInterest", "TotalPaid", "TotalOverpayment", "Months", "PayoffMonth", "InterestSaved", "MonthsSaved", "Best"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	base := results.Baseline
	if err := w.Write([]string{
		"baseline",
		base.TotalInterest.StringFixed(2),
		base.TotalPaid.StringFixed(2),
		base.TotalOverpayment.StringFixed(2),
		strconv.Itoa(base.Months),
		payoffLabel(base),
		"0.00",
		"0",
		"false",
	}); err != nil {
		return nil, err
	}
	for _, o := range results.Strategies {
		row := []string{
			o.Mode.String(),
			o.Result.TotalInterest.StringFixed(2),
			o.Result.TotalPaid.StringFixed(2),
			o.Result.TotalOverpayment.StringFixed(2),
			strconv.Itoa(o.Result.Months),
			payoffLabel(o.Result),
			o.InterestSaved.StringFixed(2),
			strconv.Itoa(o.MonthsSaved),
			boolToString(o.Mode == results.Best),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
