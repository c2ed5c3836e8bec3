// Package parser provides timesheet reading and line parsing functionality.
package parser

import "fmt"

// DateKey identifies one calendar-day bucket as captured from input.
// It is a plain (month, day) pair: no year, and no validation that the
// day fits the month ("Jul 99" is a valid key).
type DateKey struct {
	// Month is the alphabetic month token exactly as it appeared.
	Month string

	// Day is the numeric day token.
	Day int
}

// String renders the key the way it appears in reports, e.g. "Jul 2".
func (k DateKey) String() string {
	return fmt.Sprintf("%s %d", k.Month, k.Day)
}

// Entry is one parsed timesheet line with extracted metadata.
type Entry struct {
	// Date is the calendar-day bucket this entry belongs to.
	Date DateKey

	// Elapsed is the entry's elapsed time, overflow bonus included.
	Elapsed Duration

	// Raw is the original line content.
	Raw string

	// Source is the file path this line came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}
