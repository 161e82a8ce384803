package engine

import (
	"time"
)

// =============================================================================
// DATE - Day-granularity calendar date (projection runs on whole days)
// =============================================================================

// Date is a calendar date with day granularity, always UTC.
// The projection engine never cares about hours or time zones: an occurrence
// happens on a day, an adjustment is effective on a day, a window spans days.
type Date struct {
	Time time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date in UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.UTC().Year(), t.UTC().Month(), t.UTC().Day())
}

// ParseDate parses an ISO date (2006-01-02). The zero Date is returned on
// malformed input together with ok=false.
func ParseDate(s string) (Date, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, false
	}
	return DateOf(t), true
}

// Comparison
func (d Date) Before(other Date) bool        { return d.normalize().Before(other.normalize()) }
func (d Date) Equal(other Date) bool         { return d.normalize().Equal(other.normalize()) }
func (d Date) After(other Date) bool         { return d.normalize().After(other.normalize()) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }
func (d Date) IsZero() bool                  { return d.Time.IsZero() }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d Date) AddDays(n int) Date { return DateOf(d.normalize().AddDate(0, 0, n)) }

// AddMonths steps forward n calendar months while preserving anchorDay as the
// intended day-of-month. When the target month is shorter than anchorDay the
// result clamps to the last valid day, but the anchor itself is NOT lost:
// stepping Jan 31 -> Feb 28 -> Mar 31 works because callers keep passing the
// original anchor day.
func (d Date) AddMonths(n int, anchorDay int) Date {
	year, month, _ := d.normalize().Date()
	total := int(month) - 1 + n
	year += total / 12
	month = time.Month(total%12 + 1)

	day := anchorDay
	if day < 1 {
		day = 1
	}
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return NewDate(year, month, day)
}

// Properties
func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int          { return d.Time.Day() }

// ISO returns the date formatted as 2006-01-02, the key format used by
// per-date buckets.
func (d Date) ISO() string { return d.normalize().Format("2006-01-02") }

func (d Date) String() string { return d.ISO() }

// =============================================================================
// CALENDAR UTILITIES
// =============================================================================

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartOfMonth(year int, month time.Month) Date { return NewDate(year, month, 1) }

func EndOfMonth(year int, month time.Month) Date {
	return NewDate(year, month, DaysInMonth(year, month))
}

// DaysBetween returns the whole-day distance from one date to another.
func DaysBetween(from, to Date) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}
