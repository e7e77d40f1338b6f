package date

import (
	"fmt"
	"time"
)

// Month represents a calendar month of a specific year.
//
// Bucketing a date into a Month always goes through MonthOf, so month
// membership is decided by the calendar, never by elapsed-day arithmetic.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	// normalize through time.Date so that (2024, 13) becomes (2025, January).
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// MonthOf returns the calendar month containing the given date.
func MonthOf(d Date) Month { return Month{y: d.Year(), m: d.Month()} }

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.m }

// Next returns the following calendar month.
func (m Month) Next() Month { return NewMonth(m.y, m.m+1) }

// Before reports whether m is strictly before x.
func (m Month) Before(x Month) bool {
	return m.y < x.y || (m.y == x.y && m.m < x.m)
}

// Start returns the first day of the month.
func (m Month) Start() Date { return New(m.y, m.m, 1) }

// End returns the last day of the month.
func (m Month) End() Date { return New(m.y, m.m+1, 0) }

// Range returns the inclusive date range covering the month.
func (m Month) Range() Range { return Range{From: m.Start(), To: m.End()} }

// Key returns the canonical "2006-01" identifier of the month.
func (m Month) Key() string { return m.Start().time().Format("2006-01") }

// Label returns a short human readable name like "Mar 2024".
func (m Month) Label() string { return m.Start().time().Format("Jan 2006") }

// String returns the canonical identifier of the month.
func (m Month) String() string { return m.Key() }

// ParseMonth parses a month from its canonical "2006-01" form.
func ParseMonth(str string) (Month, error) {
	t, err := time.Parse("2006-01", str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, "2006-01", err)
	}
	return NewMonth(t.Year(), t.Month()), nil
}

// Months returns the contiguous sequence of calendar months from first to
// last, both included. It returns nil if last is before first.
func Months(first, last Month) []Month {
	if last.Before(first) {
		return nil
	}
	var months []Month
	for m := first; !last.Before(m); m = m.Next() {
		months = append(months, m)
	}
	return months
}

// MonthsOfYear returns the twelve months of a calendar year, January to December.
func MonthsOfYear(year int) []Month {
	return Months(NewMonth(year, time.January), NewMonth(year, time.December))
}

// TrailingMonths returns the n calendar months ending with the month
// containing end, in chronological order.
func TrailingMonths(n int, end Date) []Month {
	if n <= 0 {
		return nil
	}
	last := MonthOf(end)
	first := NewMonth(last.y, last.m-time.Month(n-1))
	return Months(first, last)
}
