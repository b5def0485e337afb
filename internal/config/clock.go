package config

import (
	"time"

	"github.com/rpgo/overpayment-simulator/pkg/dateutil"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// DefaultStartDate anchors schedules at the first day of the current month.
func DefaultStartDate() time.Time {
	now := nowFunc()
	return dateutil.BeginningOfMonth(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
}
