package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownStrategy is returned when a strategy tag cannot be resolved.
var ErrUnknownStrategy = errors.New("unknown strategy")

// StrategyMode selects the payment/overpayment rule applied each month.
type StrategyMode int

const (
	// StrategyMix keeps the total outlay at the affordability ceiling while the
	// minimum payment shrinks with the balance.
	StrategyMix StrategyMode = iota + 1
	// StrategyReducePayment keeps a fixed overpayment and recomputes the
	// minimum payment from the live balance.
	StrategyReducePayment
	// StrategyReduceTerm keeps the contractual payment and sends all headroom
	// to overpayment.
	StrategyReduceTerm
)

var strategyTags = map[StrategyMode]string{
	StrategyMix:           "mix",
	StrategyReducePayment: "reduce_payment",
	StrategyReduceTerm:    "reduce_term",
}

var strategyLabels = map[StrategyMode]string{
	StrategyMix:           "Mix Strategy",
	StrategyReducePayment: "Reduce Payment",
	StrategyReduceTerm:    "Reduce Term",
}

// AllStrategies returns the strategies in reporting order.
func AllStrategies() []StrategyMode {
	return []StrategyMode{StrategyMix, StrategyReducePayment, StrategyReduceTerm}
}

// ParseStrategyMode resolves a strategy tag such as "reduce_term".
// Hyphens and case are tolerated.
func ParseStrategyMode(s string) (StrategyMode, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for mode, tag := range strategyTags {
		if tag == n {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Valid reports whether the mode is one of the known strategies.
func (m StrategyMode) Valid() bool {
	_, ok := strategyTags[m]
	return ok
}

func (m StrategyMode) String() string {
	if tag, ok := strategyTags[m]; ok {
		return tag
	}
	return fmt.Sprintf("StrategyMode(%d)", int(m))
}

// Label returns the human readable strategy name.
func (m StrategyMode) Label() string {
	if label, ok := strategyLabels[m]; ok {
		return label
	}
	return m.String()
}

// MarshalText implements encoding.TextMarshaler so modes serialize as tags.
func (m StrategyMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *StrategyMode) UnmarshalText(text []byte) error {
	mode, err := ParseStrategyMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// LoanParameters are the inputs of a single simulation run.
type LoanParameters struct {
	Balance            decimal.Decimal `json:"balance"`
	AnnualRate         decimal.Decimal `json:"annual_rate"` // fraction, 0.0784 for 7.84%
	ContractualPayment decimal.Decimal `json:"contractual_payment"`
	AffordablePayment  decimal.Decimal `json:"affordable_payment"`
	RemainingMonths    int             `json:"remaining_months"`
	PaymentDay         int             `json:"payment_day"`
	StartDate          time.Time       `json:"start_date"`
	Currency           string          `json:"currency"`
}

// WithoutOverpayment returns a copy whose ceiling equals the contractual payment.
func (p LoanParameters) WithoutOverpayment() LoanParameters {
	p.AffordablePayment = p.ContractualPayment
	return p
}

// WithAffordablePayment returns a copy using a different affordability ceiling.
func (p LoanParameters) WithAffordablePayment(amount decimal.Decimal) LoanParameters {
	p.AffordablePayment = amount
	return p
}

// ScheduleEntry is one month of a repayment schedule. Monetary fields are
// rounded to cents.
type ScheduleEntry struct {
	Month            string          `json:"month"`
	Date             time.Time       `json:"date"`
	Payment          decimal.Decimal `json:"payment"`
	Overpayment      decimal.Decimal `json:"overpayment"`
	Interest         decimal.Decimal `json:"interest"`
	Principal        decimal.Decimal `json:"principal"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// TotalPayment returns payment plus overpayment for the month.
func (e ScheduleEntry) TotalPayment() decimal.Decimal {
	return e.Payment.Add(e.Overpayment)
}

// SimulationResult is the outcome of one simulation run. Totals are unrounded.
type SimulationResult struct {
	Mode             StrategyMode    `json:"mode"`
	Entries          []ScheduleEntry `json:"entries"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOverpayment decimal.Decimal `json:"total_overpayment"`
	Months           int             `json:"months"`
	PayoffDate       time.Time       `json:"payoff_date"`
}

// LastEntry returns the final schedule row, if any.
func (r *SimulationResult) LastEntry() (ScheduleEntry, bool) {
	if r == nil || len(r.Entries) == 0 {
		return ScheduleEntry{}, false
	}
	return r.Entries[len(r.Entries)-1], true
}
