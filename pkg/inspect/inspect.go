// Package inspect provides timesheet sampling and grammar match-rate analysis.
package inspect

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dhowland/daytally/pkg/parser"
)

// MalformedSample is one sampled line that failed the grammar.
type MalformedSample struct {
	LineNum int
	Line    string
}

// Result holds the outcome of inspecting a timesheet file.
type Result struct {
	// SampledLines is the number of non-blank lines examined.
	SampledLines int

	// MatchedLines is the number of lines matching the grammar.
	MatchedLines int

	// Malformed previews lines that failed the grammar (capped).
	Malformed []MalformedSample

	// SampleEntry is one successfully parsed entry, if any matched.
	SampleEntry *parser.Entry
}

// MatchRate returns the fraction of sampled lines that matched, 0.0 to 1.0.
func (r *Result) MatchRate() float64 {
	if r.SampledLines == 0 {
		return 0
	}
	return float64(r.MatchedLines) / float64(r.SampledLines)
}

// maxMalformedPreviews caps how many failing lines are kept for display.
const maxMalformedPreviews = 10

// Inspector samples timesheet files and reports how well they match the grammar.
type Inspector struct {
	parser     *parser.LineParser
	sampleSize int
}

// Option configures the Inspector.
type Option func(*Inspector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(i *Inspector) {
		if n > 0 {
			i.sampleSize = n
		}
	}
}

// New creates a new Inspector.
func New(opts ...Option) *Inspector {
	i := &Inspector{
		parser:     parser.NewLineParser(),
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// InspectFile samples a timesheet file and reports its grammar match rate.
func (i *Inspector) InspectFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening timesheet %s: %w", path, err)
	}
	defer f.Close()

	result := &Result{}

	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if result.SampledLines >= i.sampleSize {
			break
		}

		lineNum++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		result.SampledLines++

		entry, err := i.parser.Parse(line)
		if err != nil {
			if len(result.Malformed) < maxMalformedPreviews {
				result.Malformed = append(result.Malformed, MalformedSample{
					LineNum: lineNum,
					Line:    line,
				})
			}
			continue
		}

		result.MatchedLines++
		if result.SampleEntry == nil {
			result.SampleEntry = entry
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return result, nil
}

// StarterConfig returns a ready-to-use YAML configuration for the
// inspected timesheet.
func StarterConfig(path string) string {
	var sb strings.Builder

	sb.WriteString("# daytally configuration\n")
	sb.WriteString("timesheets:\n")
	sb.WriteString(fmt.Sprintf("  - %q\n", path))
	sb.WriteString("on_malformed: abort   # or: skip\n")

	return sb.String()
}
