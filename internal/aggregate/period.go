package aggregate

import (
	"fmt"
	"time"
)

// Period is an inclusive range of reporting dates.
type Period struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls on a day within p.
func (p Period) Contains(t time.Time) bool {
	d := day(t)
	return !d.Before(day(p.From)) && !d.After(day(p.To))
}

// String renders the period as "YYYY-MM-DD..YYYY-MM-DD".
func (p Period) String() string {
	return p.From.Format(dateFormat) + ".." + p.To.Format(dateFormat)
}

const dateFormat = "2006-01-02"

// ParsePeriod parses inclusive YYYY-MM-DD bounds.
func ParsePeriod(from, to string) (Period, error) {
	f, err := time.Parse(dateFormat, from)
	if err != nil {
		return Period{}, fmt.Errorf("parsing from date %q: %w", from, err)
	}
	t, err := time.Parse(dateFormat, to)
	if err != nil {
		return Period{}, fmt.Errorf("parsing to date %q: %w", to, err)
	}
	if t.Before(f) {
		return Period{}, fmt.Errorf("period ends %s before it starts %s", to, from)
	}
	return Period{From: f, To: t}, nil
}

// FiscalYear returns the fiscal year that starts in the given calendar
// year on yearStart ("MM-DD").
func FiscalYear(yearStart string, year int) (Period, error) {
	start, err := time.Parse("2006-01-02", fmt.Sprintf("%04d-%s", year, yearStart))
	if err != nil {
		return Period{}, fmt.Errorf("parsing fiscal year start %q: %w", yearStart, err)
	}
	return Period{From: start, To: start.AddDate(1, 0, -1)}, nil
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
