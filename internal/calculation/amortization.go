package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/overpayment-simulator/internal/domain"
	"github.com/rpgo/overpayment-simulator/internal/metrics"
	"github.com/rpgo/overpayment-simulator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

const (
	// DefaultMaxMonths caps a simulation at 250 years of payments.
	DefaultMaxMonths = 3000
	// DefaultWorkers limits concurrent simulations in sweeps.
	DefaultWorkers = 10

	// MinPaymentDay and MaxPaymentDay bound the payment day of month.
	MinPaymentDay = 1
	MaxPaymentDay = 28
)

// Simulator runs amortization schedules under the overpayment strategies.
// A Simulator holds no per-run state and is safe for concurrent use.
type Simulator struct {
	MaxMonths int // divergence cap; DefaultMaxMonths when zero
	Workers   int // sweep concurrency; DefaultWorkers when zero
	Logger    Logger
}

// NewSimulator creates a simulator with default limits and a no-op logger.
func NewSimulator() *Simulator {
	return &Simulator{
		MaxMonths: DefaultMaxMonths,
		Workers:   DefaultWorkers,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the simulator. If nil is provided, a no-op logger is used.
func (s *Simulator) SetLogger(l Logger) {
	if l == nil {
		s.Logger = NopLogger{}
		return
	}
	s.Logger = l
}

func (s *Simulator) logger() Logger {
	if s.Logger == nil {
		return NopLogger{}
	}
	return s.Logger
}

func (s *Simulator) maxMonths() int {
	if s.MaxMonths <= 0 {
		return DefaultMaxMonths
	}
	return s.MaxMonths
}

// paymentRule yields the payment and overpayment for a month.
type paymentRule func(balance decimal.Decimal, monthIndex int) (payment, overpayment decimal.Decimal)

// ruleFor resolves the strategy once per run.
func ruleFor(params domain.LoanParameters, mode domain.StrategyMode, monthlyRate decimal.Decimal) paymentRule {
	minimum := func(balance decimal.Decimal, monthIndex int) decimal.Decimal {
		remaining := params.RemainingMonths - monthIndex
		if remaining < 1 {
			remaining = 1
		}
		return AnnuityPayment(balance, monthlyRate, remaining)
	}

	switch mode {
	case domain.StrategyMix:
		return func(balance decimal.Decimal, monthIndex int) (decimal.Decimal, decimal.Decimal) {
			payment := minimum(balance, monthIndex)
			return payment, decimal.Max(params.AffordablePayment.Sub(payment), decimal.Zero)
		}
	case domain.StrategyReducePayment:
		// fixed at start and deliberately not clamped
		fixed := params.AffordablePayment.Sub(params.ContractualPayment)
		return func(balance decimal.Decimal, monthIndex int) (decimal.Decimal, decimal.Decimal) {
			return minimum(balance, monthIndex), fixed
		}
	default:
		overpayment := decimal.Max(params.AffordablePayment.Sub(params.ContractualPayment), decimal.Zero)
		return func(decimal.Decimal, int) (decimal.Decimal, decimal.Decimal) {
			return params.ContractualPayment, overpayment
		}
	}
}

// Simulate produces the month-by-month schedule for one strategy. It is a pure
// function of its inputs: the anchor date comes from params.StartDate.
//
// A zero balance yields an empty result without error.
func (s *Simulator) Simulate(params domain.LoanParameters, mode domain.StrategyMode) (*domain.SimulationResult, error) {
	result, err := s.simulate(params, mode)
	switch {
	case err == nil:
		metrics.ObserveSimulation(mode.String(), metrics.StatusOK, result.Months)
	case errors.Is(err, ErrArithmeticDivergence):
		metrics.ObserveSimulation(mode.String(), metrics.StatusDivergence, 0)
		s.logger().Warnf("%s simulation diverged: %v", mode, err)
	default:
		metrics.ObserveSimulation(mode.String(), metrics.StatusInvalid, 0)
	}
	return result, err
}

func (s *Simulator) simulate(params domain.LoanParameters, mode domain.StrategyMode) (*domain.SimulationResult, error) {
	if err := ValidateParameters(params, mode); err != nil {
		return nil, err
	}

	monthlyRate := MonthlyRate(params.AnnualRate)
	rule := ruleFor(params, mode, monthlyRate)
	limit := s.maxMonths()

	result := &domain.SimulationResult{
		Mode:             mode,
		Entries:          []domain.ScheduleEntry{},
		TotalInterest:    decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalOverpayment: decimal.Zero,
	}

	balance := params.Balance
	date := dateutil.PaymentDate(params.StartDate, params.PaymentDay)

	for monthIndex := 0; balance.IsPositive(); monthIndex++ {
		if monthIndex >= limit {
			return nil, fmt.Errorf("%w: balance %s still outstanding after %d months", ErrArithmeticDivergence, balance.StringFixed(2), limit)
		}

		interest := MonthlyInterest(balance, monthlyRate)
		payment, overpayment := rule(balance, monthIndex)

		// a constant outlay that cannot beat interest never will
		if mode == domain.StrategyReduceTerm && payment.Add(overpayment).LessThanOrEqual(interest) {
			return nil, fmt.Errorf("%w: monthly outlay %s does not cover interest %s", ErrArithmeticDivergence,
				payment.Add(overpayment).StringFixed(2), interest.StringFixed(2))
		}

		principal := payment.Sub(interest)

		// final month: pay exactly what is owed
		if payoff := balance.Add(interest); payoff.LessThan(payment.Add(overpayment)) {
			overpayment = payoff.Sub(payment)
			if overpayment.IsNegative() {
				payment = payoff
				overpayment = decimal.Zero
				principal = payment.Sub(interest)
			}
		}

		balance = balance.Sub(principal.Add(overpayment))
		result.TotalInterest = result.TotalInterest.Add(interest)
		result.TotalPaid = result.TotalPaid.Add(payment).Add(overpayment)
		result.TotalOverpayment = result.TotalOverpayment.Add(overpayment)

		result.Entries = append(result.Entries, domain.ScheduleEntry{
			Month:            dateutil.MonthLabel(date),
			Date:             date,
			Payment:          payment.Round(2),
			Overpayment:      overpayment.Round(2),
			Interest:         interest.Round(2),
			Principal:        principal.Round(2),
			RemainingBalance: decimal.Max(balance, decimal.Zero).Round(2),
		})

		date = dateutil.AddMonthsClamped(date, 1, params.PaymentDay)
	}

	result.Months = len(result.Entries)
	if last, ok := result.LastEntry(); ok {
		result.PayoffDate = last.Date
	}

	s.logger().Debugf("%s: %d months, total interest %s", mode, result.Months, result.TotalInterest.StringFixed(2))
	return result, nil
}

// ValidateParameters checks simulation inputs. A zero balance is valid.
func ValidateParameters(params domain.LoanParameters, mode domain.StrategyMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrUnknownStrategy)
	}
	if params.Balance.IsNegative() {
		return fmt.Errorf("%w: balance cannot be negative", ErrInvalidInput)
	}
	if params.AnnualRate.IsNegative() {
		return fmt.Errorf("%w: annual rate cannot be negative", ErrInvalidInput)
	}
	if params.ContractualPayment.IsNegative() {
		return fmt.Errorf("%w: contractual payment cannot be negative", ErrInvalidInput)
	}
	if params.AffordablePayment.IsNegative() {
		return fmt.Errorf("%w: affordable payment cannot be negative", ErrInvalidInput)
	}
	if params.RemainingMonths < 1 {
		return fmt.Errorf("%w: remaining months must be at least 1", ErrInvalidInput)
	}
	if params.PaymentDay < MinPaymentDay || params.PaymentDay > MaxPaymentDay {
		return fmt.Errorf("%w: payment day must be between %d and %d, got %d", ErrInvalidInput, MinPaymentDay, MaxPaymentDay, params.PaymentDay)
	}
	if params.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	return nil
}
