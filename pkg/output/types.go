// Package output provides formatting and output generation for tally results.
package output

import (
	"time"

	"github.com/dhowland/daytally/pkg/tally"
)

// Report is the complete output of one aggregation run.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary

	// Totals holds per-day accumulated time in first-seen order.
	Totals []tally.DayTotal

	// Metadata provides context about the run.
	Metadata Metadata
}

// Summary provides aggregate statistics.
type Summary struct {
	// Days is the number of distinct calendar days tallied.
	Days int

	// EntriesParsed is the number of well-formed entries accumulated.
	EntriesParsed int

	// LinesSkipped is the number of malformed lines skipped.
	LinesSkipped int
}

// Metadata provides context about the run.
type Metadata struct {
	// ConfigFile is the path to the configuration file used.
	ConfigFile string

	// Sources lists the timesheet files that were read.
	Sources []string

	// TalliedAt is when the run was performed.
	TalliedAt time.Time

	// Duration is how long the run took.
	Duration time.Duration
}

// NewReport creates a Report from a tally result.
func NewReport(result *tally.Result, configFile string) *Report {
	return &Report{
		Totals: result.Totals,
		Metadata: Metadata{
			ConfigFile: configFile,
			Sources:    result.Metadata.Sources,
			TalliedAt:  result.Metadata.EndTime,
			Duration:   result.Metadata.EndTime.Sub(result.Metadata.StartTime),
		},
		Summary: Summary{
			Days:          len(result.Totals),
			EntriesParsed: result.Metadata.EntriesParsed,
			LinesSkipped:  result.Metadata.LinesSkipped,
		},
	}
}

// HasSkipped returns true if any malformed lines were skipped.
func (r *Report) HasSkipped() bool {
	return r.Summary.LinesSkipped > 0
}
