package parser

import (
	"context"
	"io"
	"strings"
)

// EntrySource provides an iterator over parsed timesheet entries.
// Implementations must be safe for sequential access (not concurrent).
type EntrySource interface {
	// Next returns the next parsed entry.
	// Returns io.EOF when no more lines are available.
	// Blank lines are not entries and are skipped. Any other line that
	// does not match the grammar yields a *MalformedLineError; the
	// source does not decide whether to skip or abort.
	Next(ctx context.Context) (*Entry, error)

	// Close releases any resources held by the source.
	Close() error
}

// SliceSource implements EntrySource over an in-memory list of lines.
// It lets callers feed entries without a filesystem dependency.
type SliceSource struct {
	lines  []string
	parser *LineParser
	source string
	index  int
}

// NewSliceSource creates an EntrySource over the given lines.
// The source label is used in entry provenance and error messages.
func NewSliceSource(source string, lines []string) *SliceSource {
	return &SliceSource{
		lines:  lines,
		parser: NewLineParser(),
		source: source,
	}
}

// Next returns the next parsed entry, or io.EOF when the lines are exhausted.
// Blank lines are skipped, matching FileSource.
func (s *SliceSource) Next(ctx context.Context) (*Entry, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if s.index >= len(s.lines) {
			return nil, io.EOF
		}

		line := s.lines[s.index]
		s.index++

		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := s.parser.Parse(line)
		if err != nil {
			return nil, annotate(err, s.source, s.index)
		}

		entry.Source = s.source
		entry.LineNum = s.index

		return entry, nil
	}
}

// Close is a no-op for in-memory sources.
func (s *SliceSource) Close() error {
	return nil
}

// annotate stamps provenance onto a malformed-line error.
func annotate(err error, source string, lineNum int) error {
	if mlErr, ok := err.(*MalformedLineError); ok {
		mlErr.Source = source
		mlErr.LineNum = lineNum
		return mlErr
	}
	return err
}
