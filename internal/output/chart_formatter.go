package output

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rpgo/overpayment-simulator/internal/domain"
)

// ChartFormatter renders interactive ECharts comparisons: total interest and
// duration per strategy plus the remaining balance over time.
type ChartFormatter struct{}

func (c ChartFormatter) Name() string { return "chart" }

func (c ChartFormatter) Format(results *domain.StrategyComparison) ([]byte, error) {
	page := components.NewPage()
	page.AddCharts(
		interestChart(results),
		durationChart(results),
		balanceChart(results),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func strategyNames(results *domain.StrategyComparison) []string {
	names := []string{BaselineLabel}
	for _, o := range results.Strategies {
		names = append(names, o.Mode.Label())
	}
	return names
}

func interestChart(results *domain.StrategyComparison) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Total interest",
		Subtitle: currencyOf(results),
	}))
	data := []opts.BarData{{Value: results.Baseline.TotalInterest.StringFixed(2)}}
	for _, o := range results.Strategies {
		data = append(data, opts.BarData{Value: o.Result.TotalInterest.StringFixed(2)})
	}
	bar.SetXAxis(strategyNames(results)).AddSeries("Total interest", data)
	return bar
}

func durationChart(results *domain.StrategyComparison) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Loan duration",
		Subtitle: "months",
	}))
	data := []opts.BarData{{Value: results.Baseline.Months}}
	for _, o := range results.Strategies {
		data = append(data, opts.BarData{Value: o.Result.Months})
	}
	bar.SetXAxis(strategyNames(results)).AddSeries("Months", data)
	return bar
}

func balanceChart(results *domain.StrategyComparison) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Remaining balance",
		Subtitle: currencyOf(results),
	}))

	// the longest schedule provides the month axis
	axis := results.Baseline.Entries
	for _, o := range results.Strategies {
		if len(o.Result.Entries) > len(axis) {
			axis = o.Result.Entries
		}
	}
	months := make([]string, len(axis))
	for i, e := range axis {
		months[i] = e.Month
	}

	series := func(entries []domain.ScheduleEntry) []opts.LineData {
		data := make([]opts.LineData, len(entries))
		for i, e := range entries {
			data[i] = opts.LineData{Value: e.RemainingBalance.StringFixed(2)}
		}
		return data
	}

	line.SetXAxis(months).AddSeries(BaselineLabel, series(results.Baseline.Entries))
	for _, o := range results.Strategies {
		line.AddSeries(o.Mode.Label(), series(o.Result.Entries))
	}
	return line
}
