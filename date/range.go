package date

import "time"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range from a to b, boundaries included.
func NewRange(a, b Date) Range { return Range{From: a, To: b} }

// Contains reports whether the date is inside the range (boundaries
// included). Zero boundaries are open: a zero From matches everything
// before To, and vice versa.
func (r Range) Contains(d Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}

// IsZero reports whether both boundaries are unset.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// MonthOf returns the calendar month window containing d: from the first
// to the last day of d's month.
func MonthOf(d Date) Range {
	first := New(d.Year(), d.Month(), 1)
	return Range{From: first, To: first.AddMonths(1).Add(-1)}
}

// MonthKey returns the "YYYY-MM" identifier of d's calendar month. It is
// the label format used for credit card invoice months.
func MonthKey(d Date) string { return d.Format("2006-01") }

// ParseMonthKey parses a "YYYY-MM" identifier back into the first day of
// that month.
func ParseMonthKey(key string) (Date, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return Date{}, err
	}
	return New(t.Year(), t.Month(), 1), nil
}
