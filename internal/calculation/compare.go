package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/rpgo/overpayment-simulator/internal/domain"
	"github.com/rpgo/overpayment-simulator/internal/metrics"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/rpgo/overpayment-simulator/internal/calculation"

// startSpan looks up the tracer per call so a provider installed later is honoured.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// MaxSweepPoints bounds the number of ceilings a sweep may evaluate.
const MaxSweepPoints = 500

type simulationJob struct {
	label  string
	params domain.LoanParameters
	mode   domain.StrategyMode
}

// CompareStrategies runs the no-overpayment baseline and every strategy, then
// measures each strategy against the baseline. The runs share no state and
// execute concurrently; results are collected by index.
func (s *Simulator) CompareStrategies(ctx context.Context, params domain.LoanParameters) (_ *domain.StrategyComparison, err error) {
	ctx, span := startSpan(ctx, "CompareStrategies",
		attribute.String("loan.balance", params.Balance.StringFixed(2)),
		attribute.String("loan.affordable_payment", params.AffordablePayment.StringFixed(2)),
		attribute.Int("loan.remaining_months", params.RemainingMonths),
	)
	defer func() { endSpan(span, err) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, mode := range domain.AllStrategies() {
		if err := ValidateParameters(params, mode); err != nil {
			return nil, err
		}
	}

	// the baseline pays only the contractual amount
	jobs := []simulationJob{{label: "baseline", params: params.WithoutOverpayment(), mode: domain.StrategyReduceTerm}}
	for _, mode := range domain.AllStrategies() {
		jobs = append(jobs, simulationJob{label: mode.Label(), params: params, mode: mode})
	}

	results := make([]*domain.SimulationResult, len(jobs))
	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(idx int, job simulationJob) {
			defer wg.Done()
			results[idx], errs[idx] = s.Simulate(job.params, job.mode)
		}(i, job)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s simulation failed: %w", jobs[i].label, err)
		}
	}
	metrics.Comparisons.Inc()

	baseline := *results[0]
	comparison := &domain.StrategyComparison{
		Parameters: params,
		Baseline:   baseline,
		Strategies: make([]domain.StrategyOutcome, 0, len(jobs)-1),
	}

	var bestInterest decimal.Decimal
	for i, res := range results[1:] {
		outcome := domain.StrategyOutcome{
			Mode:          res.Mode,
			Result:        *res,
			InterestSaved: baseline.TotalInterest.Sub(res.TotalInterest),
			MonthsSaved:   baseline.Months - res.Months,
		}
		comparison.Strategies = append(comparison.Strategies, outcome)

		// strict comparison keeps the earliest strategy on ties
		if i == 0 || res.TotalInterest.LessThan(bestInterest) {
			bestInterest = res.TotalInterest
			comparison.Best = res.Mode
		}
	}

	span.SetAttributes(
		attribute.String("comparison.best", comparison.Best.String()),
		attribute.Int("comparison.baseline_months", baseline.Months),
	)
	s.logger().Infof("compared %d strategies, best %s (interest %s vs baseline %s)",
		len(comparison.Strategies), comparison.Best.Label(), bestInterest.StringFixed(2), baseline.TotalInterest.StringFixed(2))
	return comparison, nil
}

// SensitivitySweep compares strategies for each affordability ceiling using a
// bounded pool of workers. Points are returned in the order of ceilings.
func (s *Simulator) SensitivitySweep(ctx context.Context, params domain.LoanParameters, ceilings []decimal.Decimal) (_ []domain.SweepPoint, err error) {
	ctx, span := startSpan(ctx, "SensitivitySweep", attribute.Int("sweep.points", len(ceilings)))
	defer func() { endSpan(span, err) }()

	if len(ceilings) == 0 {
		return nil, fmt.Errorf("%w: at least one affordability ceiling is required", ErrInvalidInput)
	}

	workers := s.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	points := make([]domain.SweepPoint, len(ceilings))
	errs := make([]error, len(ceilings))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers) // Limit concurrent comparisons

	for i, ceiling := range ceilings {
		wg.Add(1)
		go func(idx int, ceiling decimal.Decimal) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			comparison, err := s.CompareStrategies(ctx, params.WithAffordablePayment(ceiling))
			if err != nil {
				errs[idx] = fmt.Errorf("ceiling %s: %w", ceiling.StringFixed(2), err)
				return
			}
			points[idx] = domain.SweepPoint{AffordablePayment: ceiling, Comparison: comparison}
		}(i, ceiling)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}

// SweepCeilings lists affordability ceilings from start to end inclusive in
// steps of step.
func SweepCeilings(start, end, step decimal.Decimal) ([]decimal.Decimal, error) {
	if !step.IsPositive() {
		return nil, fmt.Errorf("%w: sweep step must be positive", ErrInvalidInput)
	}
	if start.IsNegative() {
		return nil, fmt.Errorf("%w: sweep start cannot be negative", ErrInvalidInput)
	}
	if end.LessThan(start) {
		return nil, fmt.Errorf("%w: sweep end %s is below start %s", ErrInvalidInput, end.StringFixed(2), start.StringFixed(2))
	}

	var ceilings []decimal.Decimal
	for c := start; c.LessThanOrEqual(end); c = c.Add(step) {
		ceilings = append(ceilings, c)
		if len(ceilings) > MaxSweepPoints {
			return nil, fmt.Errorf("%w: sweep produces more than %d points", ErrInvalidInput, MaxSweepPoints)
		}
	}
	return ceilings, nil
}
