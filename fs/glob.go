package fs

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/tablefmt"
)

// Expand resolves a command-line path argument. A plain path is returned
// as-is, even if it does not exist, so the read reports the real error. A
// glob pattern (supporting ** for recursive matching) expands to the
// sorted list of matching files.
func Expand(pattern string) ([]string, error) {
	if !hasMeta(pattern) {
		return []string{pattern}, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("error matching pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", pattern, tablefmt.ErrNoMatch)
	}
	sort.Strings(matches)
	return matches, nil
}

func hasMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
