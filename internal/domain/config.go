package domain

import (
	"github.com/shopspring/decimal"
)

// Configuration is the on-disk description of a loan and how to report on it.
type Configuration struct {
	Loan   LoanDetails    `yaml:"loan" json:"loan"`
	Report ReportSettings `yaml:"report,omitempty" json:"report,omitempty"`
}

// LoanDetails mirrors the command line inputs. Rates are given in percent.
type LoanDetails struct {
	Balance           decimal.Decimal `yaml:"balance" json:"balance"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	MonthlyPayment    decimal.Decimal `yaml:"monthly_payment" json:"monthly_payment"`
	MaxMonthlyPayment decimal.Decimal `yaml:"max_monthly_payment" json:"max_monthly_payment"`
	RemainingMonths   int             `yaml:"remaining_months" json:"remaining_months"`
	PaymentDay        int             `yaml:"payment_day,omitempty" json:"payment_day,omitempty"`
	StartDate         string          `yaml:"start_date,omitempty" json:"start_date,omitempty"` // YYYY-MM-DD or YYYY-MM
	Currency          string          `yaml:"currency,omitempty" json:"currency,omitempty"`
}

// ReportSettings controls report output.
type ReportSettings struct {
	Format    string `yaml:"format,omitempty" json:"format,omitempty"`
	OutputDir string `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
}
