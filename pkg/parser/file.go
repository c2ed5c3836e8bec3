package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// FileSource implements EntrySource for reading from timesheet files.
type FileSource struct {
	files  []string
	parser *LineParser

	currentFile    *os.File
	currentScanner *bufio.Scanner
	currentSource  string
	currentLine    int
	fileIndex      int
}

// NewFileSource creates an EntrySource that reads from the given files
// in order, one line at a time.
func NewFileSource(files []string) *FileSource {
	return &FileSource{
		files:     files,
		parser:    NewLineParser(),
		fileIndex: -1,
	}
}

// Next returns the next parsed entry.
// Blank lines are skipped; any other line that does not match the grammar
// yields a *MalformedLineError stamped with file and line number.
// Returns io.EOF when all files have been exhausted.
func (s *FileSource) Next(ctx context.Context) (*Entry, error) {
	for {
		// Check for context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Ensure we have a file open
		if s.currentScanner == nil {
			if err := s.openNextFile(); err != nil {
				return nil, err
			}
		}

		// Try to read the next line
		if s.currentScanner.Scan() {
			s.currentLine++
			line := s.currentScanner.Text()

			if strings.TrimSpace(line) == "" {
				continue
			}

			entry, err := s.parser.Parse(line)
			if err != nil {
				return nil, annotate(err, s.currentSource, s.currentLine)
			}

			entry.Source = s.currentSource
			entry.LineNum = s.currentLine

			return entry, nil
		}

		// Check for scanner error
		if err := s.currentScanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.currentSource, err)
		}

		// Current file exhausted, try next
		if err := s.closeCurrentFile(); err != nil {
			return nil, err
		}
		s.currentScanner = nil
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	return s.closeCurrentFile()
}

func (s *FileSource) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening timesheet %s: %w", path, err)
	}

	s.currentFile = f
	s.currentScanner = bufio.NewScanner(f)
	s.currentScanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	s.currentSource = path
	s.currentLine = 0

	return nil
}

func (s *FileSource) closeCurrentFile() error {
	if s.currentFile != nil {
		err := s.currentFile.Close()
		s.currentFile = nil
		s.currentScanner = nil
		return err
	}
	return nil
}
