package date

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the inclusive range between two dates.
func NewRange(from, to Date) (Range, error) {
	if to.Before(from) {
		return Range{}, fmt.Errorf("invalid range: %s is after %s", from, to)
	}
	return Range{From: from, To: to}, nil
}

// Year returns the range covering a full calendar year.
func Year(year int) Range {
	return Range{From: New(year, 1, 1), To: New(year, 12, 31)}
}

// Contains reports whether date is included in the range (boundaries included).
// A zero Range contains every date: an unbounded window.
func (r Range) Contains(date Date) bool {
	if r.IsZero() {
		return true
	}
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// IsZero reports whether the range has no boundaries at all.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Months returns the calendar months touched by the range, in chronological
// order. Both boundaries must be set.
func (r Range) Months() []Month {
	if r.From.IsZero() || r.To.IsZero() || r.To.Before(r.From) {
		return nil
	}
	return Months(MonthOf(r.From), MonthOf(r.To))
}

// String formats the range as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
