// Package stats is the aggregation core of the journal: pure functions
// that turn a list of entries plus a selected period into the derived
// statistics, capital projection and calendar buckets. Every function here
// is total over well-formed input and never fails; fallibility lives in
// the store layer.
package stats

import (
	"time"

	"tradebook/journal"
)

// Mode selects how a period matches entry dates.
type Mode string

const (
	// ByMonth matches entries whose date has the period's month and year.
	ByMonth Mode = "month"
	// ByYear matches entries whose date has the period's year.
	ByYear Mode = "year"
)

// Period is the user's selected view window.
type Period struct {
	Month time.Month
	Year  int
	Mode  Mode
}

// MonthOf builds a month-mode period.
func MonthOf(year int, month time.Month) Period {
	return Period{Month: month, Year: year, Mode: ByMonth}
}

// YearOf builds a year-mode period.
func YearOf(year int) Period {
	return Period{Year: year, Mode: ByYear}
}

// Contains reports whether a calendar date falls inside the period.
// Zero dates match no period.
func (p Period) Contains(d time.Time) bool {
	if d.IsZero() || d.Year() != p.Year {
		return false
	}
	if p.Mode == ByYear {
		return true
	}
	return d.Month() == p.Month
}

// Filter keeps the entries whose date falls inside the period. It is
// idempotent: filtering an already filtered subset with the same period
// returns the same subset.
func Filter(entries []journal.Entry, p Period) []journal.Entry {
	var out []journal.Entry
	for _, e := range entries {
		if p.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}
