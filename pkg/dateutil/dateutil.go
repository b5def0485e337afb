package dateutil

import (
	"time"
)

// MonthLabelLayout is the layout used to label schedule rows.
const MonthLabelLayout = "2006-01"

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of a year
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// ClampDay returns day limited to the last valid day of the month.
func ClampDay(year int, month time.Month, day int) int {
	if day < 1 {
		return 1
	}
	if last := DaysInMonth(year, month); day > last {
		return last
	}
	return day
}

// PaymentDate returns the date in the month of anchor that falls on the
// requested day, clamped to the month length.
func PaymentDate(anchor time.Time, day int) time.Time {
	y, m, _ := anchor.Date()
	return time.Date(y, m, ClampDay(y, m, day), 0, 0, 0, 0, anchor.Location())
}

// AddMonthsClamped moves date forward by months calendar months and lands on
// the requested day. The day is always taken from the request, not from date,
// so a day 31 clamped to Feb 28 comes back as Mar 31.
func AddMonthsClamped(date time.Time, months int, day int) time.Time {
	y, m, _ := date.Date()
	// month arithmetic on the first avoids time.Date normalising overflow days
	first := time.Date(y, m, 1, 0, 0, 0, 0, date.Location()).AddDate(0, months, 0)
	return PaymentDate(first, day)
}

// BeginningOfMonth returns the first day of the month for a given date
func BeginningOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// MonthLabel formats a date as YYYY-MM.
func MonthLabel(date time.Time) string {
	return date.Format(MonthLabelLayout)
}

// MonthsBetween returns the whole calendar months from one date to another,
// ignoring the day of month.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
