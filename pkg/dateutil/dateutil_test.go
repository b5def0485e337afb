package dateutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year     int
		expected bool
	}{
		{2024, true},
		{2025, false},
		{2000, true},
		{1900, false},
		{2100, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.year), func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLeapYear(tt.year))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		expected int
	}{
		{"January", 2025, time.January, 31},
		{"February common year", 2025, time.February, 28},
		{"February leap year", 2024, time.February, 29},
		{"April", 2025, time.April, 30},
		{"December", 2025, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestClampDay(t *testing.T) {
	assert.Equal(t, 15, ClampDay(2025, time.March, 15))
	assert.Equal(t, 28, ClampDay(2025, time.February, 30))
	assert.Equal(t, 29, ClampDay(2024, time.February, 31))
	assert.Equal(t, 30, ClampDay(2025, time.June, 31))
	assert.Equal(t, 1, ClampDay(2025, time.June, 0))
}

func TestAddMonthsClamped_RestoresRequestedDay(t *testing.T) {
	start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	want := []time.Time{
		time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
	}

	current := start
	for i, w := range want {
		current = AddMonthsClamped(current, 1, 31)
		assert.True(t, w.Equal(current), "step %d: want %s got %s", i+1, w.Format("2006-01-02"), current.Format("2006-01-02"))
	}
}

func TestAddMonthsClamped_LeapFebruary(t *testing.T) {
	got := AddMonthsClamped(time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), 1, 30)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
}

func TestAddMonthsClamped_YearRollover(t *testing.T) {
	got := AddMonthsClamped(time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), 1, 15)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), got)

	got = AddMonthsClamped(time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), 14, 10)
	assert.Equal(t, time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestPaymentDate(t *testing.T) {
	anchor := time.Date(2025, 2, 14, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), PaymentDate(anchor, 31))
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), PaymentDate(anchor, 1))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "2025-03", MonthLabel(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)))
}

func TestBeginningOfMonth(t *testing.T) {
	got := BeginningOfMonth(time.Date(2025, 8, 19, 13, 4, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same month", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), 0},
		{"one year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 12},
		{"across year end", time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.from, tt.to))
		})
	}
}
