package decimal

import (
    stddec "github.com/shopspring/decimal"
    "testing"
)

func TestConstructors(t *testing.T) {
    m := NewMoney(12.345)
    if m.String() != "12.35" { // rounded for display
        t.Fatalf("NewMoney display mismatch: got %s", m.String())
    }

    d := stddec.NewFromFloat(10.125)
    m2 := NewMoneyFromDecimal(d)
    if !m2.Decimal.Equal(d) {
        t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
    }

    m3, err := NewMoneyFromString("123.45")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if m3.String() != "123.45" {
        t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
    }

    if _, err := NewMoneyFromString("not-a-number"); err == nil {
        t.Fatalf("expected error for invalid string")
    }
}

func TestRounding(t *testing.T) {
    cases := []struct{ in string; out string }{
        {"2.344", "2.34"},
        {"2.345", "2.35"},
        {"2.355", "2.36"},
        {"1959.999999999999", "1960.00"},
    }
    for _, c := range cases {
        m, _ := NewMoneyFromString(c.in)
        got := m.Round().String()
        if got != c.out {
            t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
        }
    }
}

func TestWhole(t *testing.T) {
    m, _ := NewMoneyFromString("293474.51")
    if got := m.Whole().Decimal.String(); got != "293475" {
        t.Fatalf("Whole got %s", got)
    }
}

func TestArithmetic(t *testing.T) {
    a := NewMoney(10.10)
    b := NewMoney(5.05)
    if got := a.Add(b).String(); got != "15.15" {
        t.Fatalf("Add got %s", got)
    }
    if got := a.Sub(b).String(); got != "5.05" {
        t.Fatalf("Sub got %s", got)
    }
    if got := b.Sub(a).NonNegative().String(); got != "0.00" {
        t.Fatalf("NonNegative got %s", got)
    }
    if got := a.NonNegative().String(); got != "10.10" {
        t.Fatalf("NonNegative changed a positive amount: %s", got)
    }
    if !Zero().IsZero() {
        t.Fatalf("Zero should be zero")
    }
}

func TestStringAndFormat(t *testing.T) {
    m := NewMoney(1234.5)
    if got := m.String(); got != "1234.50" {
        t.Fatalf("String got %s", got)
    }
    if got := m.Format("PLN"); got != "1234.50 PLN" {
        t.Fatalf("Format got %s", got)
    }
    if got := m.Format(""); got != "1234.50 "+DefaultCurrency {
        t.Fatalf("Format default currency got %s", got)
    }
    if got := m.FormatWhole("EUR"); got != "1235 EUR" {
        t.Fatalf("FormatWhole got %s", got)
    }
}
