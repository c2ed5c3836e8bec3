package tally

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dhowland/daytally/pkg/parser"
)

// Policy decides what a run does with malformed timesheet lines.
// The accumulator itself never skips or aborts; the choice lives here,
// at the driver boundary.
type Policy string

const (
	// PolicyAbort stops the run on the first malformed line (default).
	PolicyAbort Policy = "abort"

	// PolicySkip counts malformed lines and keeps going.
	PolicySkip Policy = "skip"
)

// ValidPolicy reports whether p is a recognized policy value.
func ValidPolicy(p Policy) bool {
	return p == PolicyAbort || p == PolicySkip
}

// Tallier drives a full aggregation run over an entry source.
type Tallier struct {
	policy  Policy
	verbose bool
}

// Option configures tallier behavior.
type Option func(*Tallier)

// WithPolicy sets the malformed-line policy.
func WithPolicy(p Policy) Option {
	return func(t *Tallier) {
		t.policy = p
	}
}

// WithVerbose enables verbose output.
func WithVerbose(v bool) Option {
	return func(t *Tallier) {
		t.verbose = v
	}
}

// New creates a Tallier. The default policy is PolicyAbort.
func New(opts ...Option) *Tallier {
	t := &Tallier{policy: PolicyAbort}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Result is the complete output of one aggregation run.
type Result struct {
	// Totals holds per-day accumulated time in first-seen order.
	Totals []DayTotal

	// Metadata provides context about the run.
	Metadata Metadata
}

// Metadata provides context about an aggregation run.
type Metadata struct {
	// Sources lists the timesheet files that contributed entries.
	Sources []string

	// StartTime is when the run began.
	StartTime time.Time

	// EndTime is when the run completed.
	EndTime time.Time

	// EntriesParsed is the number of well-formed entries accumulated.
	EntriesParsed int

	// LinesSkipped is the number of malformed lines dropped under
	// PolicySkip. Always zero under PolicyAbort.
	LinesSkipped int
}

// Run drains the source, folding every entry into a fresh DayTally,
// and returns the accumulated totals with run metadata.
// Under PolicyAbort the first malformed line fails the run; under
// PolicySkip it is counted and processing continues.
func (t *Tallier) Run(ctx context.Context, source parser.EntrySource) (*Result, error) {
	tally := NewDayTally()

	result := &Result{
		Metadata: Metadata{StartTime: time.Now()},
	}

	sourcesSeen := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		entry, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			var mlErr *parser.MalformedLineError
			if errors.As(err, &mlErr) && t.policy == PolicySkip {
				result.Metadata.LinesSkipped++
				if mlErr.Source != "" && !sourcesSeen[mlErr.Source] {
					sourcesSeen[mlErr.Source] = true
					result.Metadata.Sources = append(result.Metadata.Sources, mlErr.Source)
				}
				continue
			}
			return nil, fmt.Errorf("reading timesheet: %w", err)
		}

		if entry.Source != "" && !sourcesSeen[entry.Source] {
			sourcesSeen[entry.Source] = true
			result.Metadata.Sources = append(result.Metadata.Sources, entry.Source)
		}

		tally.Add(entry)
		result.Metadata.EntriesParsed++
	}

	result.Totals = tally.Totals()
	result.Metadata.EndTime = time.Now()

	return result, nil
}
