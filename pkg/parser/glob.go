package parser

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandGlobs expands a list of file paths and glob patterns (including
// ** patterns) into a deduplicated, sorted list of matching file paths.
// Patterns that don't match any files are returned as-is so the caller
// can report file-not-found errors with the original pattern.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			// Keep the literal pattern for better error messages later.
			if !seen[pattern] {
				seen[pattern] = true
				result = append(result, pattern)
			}
			continue
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	// Sort for deterministic ordering
	sort.Strings(result)

	return result, nil
}
