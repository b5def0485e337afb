package output

import (
	"strings"
	"unicode/utf8"

	"github.com/rpgo/overpayment-simulator/internal/domain"
	money "github.com/rpgo/overpayment-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// BarWidth is the number of cells in a comparison bar.
const BarWidth = 50

// FormatCurrency formats a decimal with 2 decimals followed by the currency label.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	return money.NewMoneyFromDecimal(amount).Round().Format(currency)
}

// FormatWholeCurrency formats a decimal rounded to whole units with the currency label.
func FormatWholeCurrency(amount decimal.Decimal, currency string) string {
	return money.NewMoneyFromDecimal(amount).FormatWhole(currency)
}

// FormatPercentage formats a fraction (0.0784) as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(2) + "%"
}

var decimalHundred = decimal.NewFromInt(100)

// Bar renders value against max as filled and empty cells, width cells wide.
// Filled cells are truncated, never rounded up.
func Bar(value, max decimal.Decimal, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if max.IsPositive() && value.IsPositive() {
		filled = int(value.Mul(decimal.NewFromInt(int64(width))).Div(max).IntPart())
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func currencyOf(results *domain.StrategyComparison) string {
	if c := strings.TrimSpace(results.Parameters.Currency); c != "" {
		return c
	}
	return money.DefaultCurrency
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// center centers s in width runes.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
