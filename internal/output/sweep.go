package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/overpayment-simulator/internal/domain"
)

// FormatSweep renders a sensitivity sweep as a text table (one row per
// ceiling) or as CSV when format is "csv".
func FormatSweep(points []domain.SweepPoint, format string) ([]byte, error) {
	switch NormalizeFormatName(format) {
	case "csv", "detailed-csv":
		return sweepCSV(points)
	case "console", "console-lite", "":
		return sweepTable(points), nil
	default:
		return nil, unsupportedFormat(format)
	}
}

func sweepTable(points []domain.SweepPoint) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "AFFORDABILITY SENSITIVITY")
	fmt.Fprintln(&buf, strings.Repeat("=", 96))
	fmt.Fprintf(&buf, "%12s", "Ceiling")
	for _, mode := range domain.AllStrategies() {
		fmt.Fprintf(&buf, " %16s %6s", mode.Label(), "Months")
	}
	fmt.Fprintf(&buf, "  %s\n", "Best")
	fmt.Fprintln(&buf, strings.Repeat("-", 96))
	for _, p := range points {
		fmt.Fprintf(&buf, "%12s", p.AffordablePayment.StringFixed(2))
		for _, mode := range domain.AllStrategies() {
			o, _ := p.Comparison.Outcome(mode)
			fmt.Fprintf(&buf, " %16s %6d", o.Result.TotalInterest.StringFixed(2), o.Result.Months)
		}
		fmt.Fprintf(&buf, "  %s\n", p.Comparison.Best.Label())
	}
	return buf.Bytes()
}

func sweepCSV(points []domain.SweepPoint) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"AffordablePayment", "Strategy", "TotalInterest", "Months", "InterestSaved", "MonthsSaved", "Best"}); err != nil {
		return nil, err
	}
	for _, p := range points {
		for _, o := range p.Comparison.Strategies {
			row := []string{
				p.AffordablePayment.StringFixed(2),
				o.Mode.String(),
				o.Result.TotalInterest.StringFixed(2),
				strconv.Itoa(o.Result.Months),
				o.InterestSaved.StringFixed(2),
				strconv.Itoa(o.MonthsSaved),
				boolToString(o.Mode == p.Comparison.Best),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
