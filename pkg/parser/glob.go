package parser

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandGlobs resolves timesheet path patterns into a sorted, deduplicated
// list of file paths. A pattern that matches nothing is kept as a literal
// path so the caller can surface a file-not-found error for it later.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid timesheet pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			add(pattern)
			continue
		}

		for _, match := range matches {
			add(match)
		}
	}

	sort.Strings(files)

	return files, nil
}
