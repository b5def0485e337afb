package calculation

import (
	"github.com/shopspring/decimal"
)

// internalPrecision bounds the fractional digits carried between months so
// decimal scale does not grow with every multiplication.
const internalPrecision int32 = 16

// powPrecision is used for intermediate growth factors.
const powPrecision int32 = 24

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// MonthlyRate converts an annual rate (fraction) to the periodic monthly rate.
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(twelve)
}

// MonthlyInterest returns one month of interest on balance.
func MonthlyInterest(balance, monthlyRate decimal.Decimal) decimal.Decimal {
	return balance.Mul(monthlyRate).Round(internalPrecision)
}

// AnnuityPayment returns the level payment that amortizes balance to zero over
// months periods at monthlyRate:
//
//	r * B * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate degrades to straight-line B/n. A single remaining period is
// exactly B plus one month of interest.
func AnnuityPayment(balance, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	if months < 1 {
		months = 1
	}
	if months == 1 {
		return balance.Add(MonthlyInterest(balance, monthlyRate))
	}
	if monthlyRate.IsZero() {
		return balance.Div(decimal.NewFromInt(int64(months)))
	}
	factor := powInt(one.Add(monthlyRate), months)
	return monthlyRate.Mul(balance).Mul(factor).Div(factor.Sub(one))
}

// powInt raises base to a non-negative integer power by squaring, rounding
// intermediates to powPrecision.
func powInt(base decimal.Decimal, exp int) decimal.Decimal {
	result := one
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Round(powPrecision)
		}
		base = base.Mul(base).Round(powPrecision)
		exp >>= 1
	}
	return result
}
