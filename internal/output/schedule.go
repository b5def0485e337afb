package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rpgo/overpayment-simulator/internal/domain"
)

// BaselineLabel names the no-overpayment run in reports.
const BaselineLabel = "Original (no overpay)"

// FormatSchedule renders a single schedule as a text table or CSV. The label
// titles the text table; when empty the strategy label is used.
func FormatSchedule(result *domain.SimulationResult, label, format, currency string) ([]byte, error) {
	if label == "" {
		label = result.Mode.Label()
	}
	switch NormalizeFormatName(format) {
	case "csv", "detailed-csv":
		buf := &bytes.Buffer{}
		w := csv.NewWriter(buf)
		if err := w.Write([]string{"Month", "Payment", "Overpayment", "Interest", "Principal", "RemainingBalance"}); err != nil {
			return nil, err
		}
		for _, e := range result.Entries {
			row := []string{e.Month, e.Payment.StringFixed(2), e.Overpayment.StringFixed(2), e.Interest.StringFixed(2), e.Principal.StringFixed(2), e.RemainingBalance.StringFixed(2)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		w.Flush()
		return buf.Bytes(), w.Error()
	case "console", "console-lite", "":
		var buf bytes.Buffer
		writeSchedule(&buf, label, result.Entries)
		fmt.Fprintf(&buf, "\nTotal interest paid: %s, total months: %d\n", FormatCurrency(result.TotalInterest, currency), result.Months)
		if result.TotalOverpayment.IsPositive() {
			fmt.Fprintf(&buf, "Total overpaid: %s\n", FormatCurrency(result.TotalOverpayment, currency))
		}
		return buf.Bytes(), nil
	default:
		return nil, unsupportedFormat(format)
	}
}
