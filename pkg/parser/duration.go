package parser

import "fmt"

// Duration is a normalized elapsed-time value: Minutes is always in [0,60),
// Hours is an unbounded non-negative integer (no wraparound at 24).
// Duration is a value type; Add returns a new value and never mutates
// its receiver, so totals and deltas can be held independently.
type Duration struct {
	Hours   int
	Minutes int
}

// Add returns the sum of d and other, carrying whole hours out of
// the minute field.
func (d Duration) Add(other Duration) Duration {
	minutes := d.Minutes + other.Minutes
	return Duration{
		Hours:   d.Hours + other.Hours + minutes/60,
		Minutes: minutes % 60,
	}
}

// IsZero reports whether d is the zero duration.
func (d Duration) IsZero() bool {
	return d.Hours == 0 && d.Minutes == 0
}

// String renders the duration as "<hours>:<minutes>". Minutes are not
// zero-padded; "4:5" means four hours five minutes.
func (d Duration) String() string {
	return fmt.Sprintf("%d:%d", d.Hours, d.Minutes)
}
