package output

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	if f.opts.Verbose {
		return f.formatVerbose(report, w)
	}
	return f.formatPlain(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "daytally: %d day(s), %d entries, %d skipped\n",
		report.Summary.Days,
		report.Summary.EntriesParsed,
		report.Summary.LinesSkipped)
	return nil
}

// formatPlain writes one line per day in aggregation order:
// "<month> <day>: <hours>:<minutes>".
func (f *TextFormatter) formatPlain(report *Report, w io.Writer) error {
	for _, total := range report.Totals {
		fmt.Fprintf(w, "%s: %s\n", total.Date, total.Total)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d day(s), %d entries parsed, %d lines skipped\n",
		report.Summary.Days,
		report.Summary.EntriesParsed,
		report.Summary.LinesSkipped)

	return nil
}

func (f *TextFormatter) formatVerbose(report *Report, w io.Writer) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Day", "Total"})

	for _, total := range report.Totals {
		tbl.AppendRow(table.Row{total.Date.String(), total.Total.String()})
	}

	tbl.AppendFooter(table.Row{"Days", report.Summary.Days})
	tbl.Render()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Entries parsed: %d\n", report.Summary.EntriesParsed)
	fmt.Fprintf(w, "Lines skipped:  %d\n", report.Summary.LinesSkipped)
	fmt.Fprintf(w, "Duration:       %s\n", report.Metadata.Duration.Round(time.Millisecond))

	if len(report.Metadata.Sources) > 0 {
		fmt.Fprintln(w, "Sources:")
		for _, src := range report.Metadata.Sources {
			fmt.Fprintf(w, "  - %s\n", src)
		}
	}

	return nil
}
