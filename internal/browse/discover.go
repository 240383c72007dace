// Package browse locates RWA result archives, synthesizes the driver script
// that opens them in an interactive browser session, and runs that script as
// a child process.
package browse

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"mapbrowse/internal/logging"
)

// Archives are looked for in the working directory first, then one
// subdirectory down. No deeper recursion: a full walk over a data tree is
// slow and pulls in archives the user did not mean to browse.
const (
	DirectPattern = "*.rwa"
	NestedPattern = "*/*.rwa"
)

// ErrNoFiles reports that neither fallback pattern matched anything. It is
// an expected outcome, not a failure; callers print a message and stop
// before any script or subprocess exists.
var ErrNoFiles = errors.New("no rwa files found")

// Discover resolves the file patterns to hand to the analyzer. Explicit
// patterns are returned unchanged without touching the filesystem; their
// validity is the analyzer's problem, not ours. An empty list triggers the
// fallback search, which yields the matching pattern itself rather than the
// expanded file names.
func Discover(patterns []string) ([]string, error) {
	if len(patterns) > 0 {
		return patterns, nil
	}

	log := logging.New("discover")
	for _, pattern := range []string{DirectPattern, NestedPattern} {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		if len(matches) > 0 {
			log.Debug("fallback pattern matched", "pattern", pattern, "files", len(matches))
			return []string{pattern}, nil
		}
	}
	return nil, ErrNoFiles
}

// ExpandFiles globs each pattern into concrete file paths for interactive
// selection. A file matched by more than one pattern appears once; the
// result is sorted.
func ExpandFiles(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}
