package calculation

import "errors"

var (
	// ErrInvalidInput is returned before any simulation work when parameters
	// are out of range. No partial schedule accompanies it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrArithmeticDivergence is returned when the payments never pay the
	// balance down.
	ErrArithmeticDivergence = errors.New("arithmetic divergence")
)
