// Package tally accumulates per-day elapsed time from parsed timesheet entries.
package tally

import (
	"github.com/dhowland/daytally/pkg/parser"
)

// DayTotal is one day's accumulated elapsed time.
type DayTotal struct {
	Date  parser.DateKey
	Total parser.Duration
}

// DayTally accumulates entry durations keyed by calendar day.
// Totals are kept in first-seen insertion order, not calendar order.
// DayTally is not safe for concurrent use; callers wanting concurrent
// ingestion must serialize Add.
type DayTally struct {
	totals map[parser.DateKey]parser.Duration
	order  []parser.DateKey
}

// NewDayTally creates an empty accumulator.
func NewDayTally() *DayTally {
	return &DayTally{
		totals: make(map[parser.DateKey]parser.Duration),
	}
}

// Add folds one entry into the running total for its day.
// A day absent from the table starts at zero; the new total is the
// previous total plus the entry's elapsed time, minutes carried into
// hours on every addition.
func (t *DayTally) Add(entry *parser.Entry) {
	prev, ok := t.totals[entry.Date]
	if !ok {
		t.order = append(t.order, entry.Date)
	}
	t.totals[entry.Date] = prev.Add(entry.Elapsed)
}

// Totals returns a snapshot of accumulated (day, total) pairs in
// first-seen insertion order. Calling Totals twice without intervening
// Add calls yields identical results.
func (t *DayTally) Totals() []DayTotal {
	out := make([]DayTotal, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, DayTotal{Date: key, Total: t.totals[key]})
	}
	return out
}

// Len returns the number of distinct days accumulated so far.
func (t *DayTally) Len() int {
	return len(t.order)
}
