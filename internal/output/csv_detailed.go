package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/overpayment-simulator/internal/domain"
)

// CSVDetailedExporter writes every schedule row of the baseline and each strategy.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.StrategyComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Strategy", "Index", "Month", "Date", "Payment", "Overpayment", "Interest", "Principal", "RemainingBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	write := func(name string, entries []domain.ScheduleEntry) error {
		for i, e := range entries {
			row := []string{
				name,
				strconv.Itoa(i + 1),
				e.Month,
				e.Date.Format("2006-01-02"),
				e.Payment.StringFixed(2),
				e.Overpayment.StringFixed(2),
				e.Interest.StringFixed(2),
				e.Principal.StringFixed(2),
				e.RemainingBalance.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
	if err := write("baseline", results.Baseline.Entries); err != nil {
		return nil, err
	}
	for _, o := range results.Strategies {
		if err := write(o.Mode.String(), o.Result.Entries); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
