package parser

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandGlobs expands transcript paths and glob patterns into a deduplicated,
// sorted file list. A pattern that matches nothing is kept as a literal path
// so the caller can report file-not-found with the original argument.
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
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			add(pattern)
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}

	sort.Strings(files)
	return files, nil
}
