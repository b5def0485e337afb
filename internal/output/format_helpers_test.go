package output

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	if got, want := FormatCurrency(v, "PLN"), "1234.57 PLN"; got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
	if got, want := FormatCurrency(v, ""), "1234.57 PLN"; got != want {
		t.Errorf("FormatCurrency without currency = %q, want %q", got, want)
	}
	if got, want := FormatWholeCurrency(v, "EUR"), "1235 EUR"; got != want {
		t.Errorf("FormatWholeCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.RequireFromString("0.123456")
	if got, want := FormatPercentage(v), "12.35%"; got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestBar(t *testing.T) {
	cases := []struct {
		value, max int64
		filled     int
	}{
		{100, 100, 50},
		{0, 100, 0},
		{99, 100, 49}, // truncated
		{150, 100, 50},
		{10, 0, 0},
	}
	for _, c := range cases {
		bar := Bar(decimal.NewFromInt(c.value), decimal.NewFromInt(c.max), BarWidth)
		if got := strings.Count(bar, "█"); got != c.filled {
			t.Errorf("Bar(%d, %d) filled = %d, want %d", c.value, c.max, got, c.filled)
		}
		if got := strings.Count(bar, "█") + strings.Count(bar, "░"); got != BarWidth {
			t.Errorf("Bar(%d, %d) width = %d, want %d", c.value, c.max, got, BarWidth)
		}
	}
	if Bar(decimal.NewFromInt(1), decimal.NewFromInt(1), 0) != "" {
		t.Errorf("zero width bar should be empty")
	}
}

func TestCenterAndPad(t *testing.T) {
	if got := center("ab", 6); got != "  ab  " {
		t.Errorf("center = %q", got)
	}
	if got := padRight("█", 3); got != "█  " {
		t.Errorf("padRight = %q", got)
	}
}
