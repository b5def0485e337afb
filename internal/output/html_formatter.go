package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/overpayment-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"fixed": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"bar": func(value, max decimal.Decimal) string {
		if !max.IsPositive() {
			return "0"
		}
		return value.Div(max).Mul(decimalHundred).StringFixed(1)
	},
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.StrategyComparison) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.StrategyComparison
		Recommendation Recommendation
		Currency       string
		MaxInterest    decimal.Decimal
		MaxMonths      decimal.Decimal
	}{
		StrategyComparison: results,
		Recommendation:     AnalyzeStrategies(results),
		Currency:           currencyOf(results),
		MaxInterest:        maxInterest(results),
		MaxMonths:          decimal.NewFromInt(int64(maxMonths(results))),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
