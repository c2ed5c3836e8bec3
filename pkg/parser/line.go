package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

// linePattern is the timesheet line grammar:
//
//	<month> <day> (<overflow digit>+<hours>:<minutes>)
//
// Whitespace is tolerated around tokens; nothing but whitespace may follow
// the closing parenthesis. The overflow marker (a single digit and a "+"
// before the hour field) is optional.
var linePattern = regexp.MustCompile(`^\s*([A-Za-z]+)\s+([0-9]+)\s+\((([0-9])\+)?([0-9]+):([0-9]+)\)\s*$`)

// overflowBonusHours is added once when a line carries the overflow marker.
// The marker's digit signals that the entry ran past midnight; its numeric
// value is deliberately ignored and never used as a multiplier.
const overflowBonusHours = 24

// MalformedLineError indicates a line did not match the timesheet grammar.
// The core never skips or logs malformed lines itself; the caller decides
// whether to abort or continue (see tally.Policy).
type MalformedLineError struct {
	// Line is the offending line content.
	Line string

	// Source is the file path the line came from, if known.
	Source string

	// LineNum is the 1-based line number in Source, or 0 if unknown.
	LineNum int
}

func (e *MalformedLineError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s:%d: malformed timesheet line: %q", e.Source, e.LineNum, e.Line)
	}
	return fmt.Sprintf("malformed timesheet line: %q", e.Line)
}

// LineParser converts raw timesheet lines into entries.
type LineParser struct{}

// NewLineParser creates a new line parser.
func NewLineParser() *LineParser {
	return &LineParser{}
}

// Parse parses one timesheet line into an Entry.
// Returns a *MalformedLineError if the line does not match the grammar.
func (p *LineParser) Parse(line string) (*Entry, error) {
	matches := linePattern.FindStringSubmatch(line)
	if matches == nil {
		return nil, &MalformedLineError{Line: line}
	}

	// Group layout: 1=month 2=day 3=overflow-marker 4=overflow-digit
	// 5=hours 6=minutes. The digit groups are guaranteed numeric by the
	// pattern, so Atoi cannot fail on a matched line.
	day, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, fmt.Errorf("parsing day %q: %w", matches[2], err)
	}

	hours, err := strconv.Atoi(matches[5])
	if err != nil {
		return nil, fmt.Errorf("parsing hours %q: %w", matches[5], err)
	}

	minutes, err := strconv.Atoi(matches[6])
	if err != nil {
		return nil, fmt.Errorf("parsing minutes %q: %w", matches[6], err)
	}

	if matches[3] != "" {
		// Flat bonus regardless of the marker digit's value.
		hours += overflowBonusHours
	}

	elapsed := Duration{}.Add(Duration{Hours: hours, Minutes: minutes})

	return &Entry{
		Date:    DateKey{Month: matches[1], Day: day},
		Elapsed: elapsed,
		Raw:     line,
	}, nil
}

// Matches reports whether a line matches the timesheet grammar without
// building an Entry. Used by the inspector for match-rate sampling.
func (p *LineParser) Matches(line string) bool {
	return linePattern.MatchString(line)
}
