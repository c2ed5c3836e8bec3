package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/dhowland/daytally/pkg/tally"
)

// JSONFormatter renders tally reports as indented JSON, suitable for
// piping into jq or feeding a webhook consumer.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// quietReport is the trimmed quiet-mode document: day totals are the
// point of a tally run, so they stay; only the run metadata is dropped.
type quietReport struct {
	Summary Summary
	Totals  []tally.DayTotal
}

// Format renders the report as JSON.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		return encoder.Encode(quietReport{
			Summary: report.Summary,
			Totals:  report.Totals,
		})
	}

	return encoder.Encode(report)
}
