// Package analytics is the salon's cost and revenue computation core.
// Every function is pure: it reads the collections it is handed and
// returns plain result records, with no database access, no clock
// reads and no mutation of its inputs.
package analytics

import (
	"time"

	"salonledger-backend/utils"
)

// Period is an inclusive reporting window. Start and End are
// normalized to day boundaries before any comparison.
type Period struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
	Label string    `json:"label"`
}

// NormalizePeriod pins Start to 00:00:00 and End to the last instant
// of its day, so boundary appointments land in exactly one window.
func NormalizePeriod(p Period) Period {
	p.Start = utils.BeginningOfDay(p.Start)
	p.End = utils.EndOfDay(p.End)
	return p
}

// Days returns the inclusive day count of the period.
func (p Period) Days() int {
	return utils.DaysBetween(p.Start, p.End) + 1
}

// Contains reports whether t falls inside the normalized window.
func (p Period) Contains(t time.Time) bool {
	n := NormalizePeriod(p)
	return !t.Before(n.Start) && !t.After(n.End)
}

// ComparisonWindow returns the equal-length period immediately
// preceding p: no gap, no overlap. A 1-day period compares against
// the single prior day.
func ComparisonWindow(p Period) Period {
	p = NormalizePeriod(p)
	days := p.Days()

	end := p.Start.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(days - 1))

	return NormalizePeriod(Period{Start: start, End: end, Label: "previous"})
}
