package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rpgo/overpayment-simulator/internal/calculation"
	"github.com/rpgo/overpayment-simulator/internal/domain"
	"github.com/rpgo/overpayment-simulator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var hundred = decimal.NewFromInt(100)

// InputParser handles parsing of loan configuration files
type InputParser struct {
	Defaults Defaults
}

// NewInputParser creates a new input parser using built-in defaults
func NewInputParser() *InputParser {
	return &InputParser{Defaults: BuiltinDefaults()}
}

// NewInputParserWithDefaults creates a parser that fills optional fields from defaults
func NewInputParserWithDefaults(defaults Defaults) *InputParser {
	return &InputParser{Defaults: defaults}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills optional loan fields that were left empty
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if config.Loan.PaymentDay == 0 {
		config.Loan.PaymentDay = ip.Defaults.PaymentDay
	}
	if strings.TrimSpace(config.Loan.Currency) == "" {
		config.Loan.Currency = ip.Defaults.Currency
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateLoan(&config.Loan); err != nil {
		return fmt.Errorf("loan validation failed: %w", err)
	}
	return nil
}

// validateLoan validates the loan section
func (ip *InputParser) validateLoan(loan *domain.LoanDetails) error {
	if loan.Balance.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("balance must be positive")
	}
	if loan.AnnualRatePercent.LessThan(decimal.Zero) {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if loan.AnnualRatePercent.GreaterThan(hundred) {
		return fmt.Errorf("annual rate must be given in percent and cannot exceed 100")
	}
	if loan.MonthlyPayment.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly payment cannot be negative")
	}
	if loan.MaxMonthlyPayment.LessThan(decimal.Zero) {
		return fmt.Errorf("maximum monthly payment cannot be negative")
	}
	if loan.RemainingMonths < 1 {
		return fmt.Errorf("remaining months must be at least 1")
	}
	if loan.PaymentDay < calculation.MinPaymentDay || loan.PaymentDay > calculation.MaxPaymentDay {
		return fmt.Errorf("payment day must be between %d and %d", calculation.MinPaymentDay, calculation.MaxPaymentDay)
	}
	if loan.StartDate != "" {
		if _, err := ParseStartDate(loan.StartDate); err != nil {
			return err
		}
	}
	return nil
}

// ToParameters converts a validated configuration into simulation parameters.
// An empty start date anchors the schedule at the current month.
func (ip *InputParser) ToParameters(config *domain.Configuration) (domain.LoanParameters, error) {
	loan := config.Loan
	start := DefaultStartDate()
	if loan.StartDate != "" {
		parsed, err := ParseStartDate(loan.StartDate)
		if err != nil {
			return domain.LoanParameters{}, err
		}
		start = parsed
	}

	return domain.LoanParameters{
		Balance:            loan.Balance,
		AnnualRate:         loan.AnnualRatePercent.Div(hundred),
		ContractualPayment: loan.MonthlyPayment,
		AffordablePayment:  loan.MaxMonthlyPayment,
		RemainingMonths:    loan.RemainingMonths,
		PaymentDay:         loan.PaymentDay,
		StartDate:          start,
		Currency:           loan.Currency,
	}, nil
}

// ParseStartDate accepts YYYY-MM-DD or YYYY-MM.
func ParseStartDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", dateutil.MonthLabelLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("start date %q must be YYYY-MM-DD or YYYY-MM", s)
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Loan: domain.LoanDetails{
			Balance:           decimal.NewFromInt(300000),
			AnnualRatePercent: decimal.NewFromFloat(7.84),
			MonthlyPayment:    decimal.NewFromInt(2000),
			MaxMonthlyPayment: decimal.NewFromInt(2500),
			RemainingMonths:   240,
			PaymentDay:        ip.Defaults.PaymentDay,
			StartDate:         DefaultStartDate().Format("2006-01-02"),
			Currency:          ip.Defaults.Currency,
		},
		Report: domain.ReportSettings{
			Format: "console",
		},
	}
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
