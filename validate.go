package tablefmt

import (
	"fmt"
	"strings"
)

// validateLines checks the shape constraints New relies on: a header row,
// a separator row, and at least one delimiter in the separator.
func validateLines(lines []string) error {
	if len(lines) <= SeparatorLine {
		return fmt.Errorf("need a header and a separator row, got %d line(s): %w", len(lines), ErrMalformed)
	}
	if !strings.ContainsRune(lines[SeparatorLine], Delimiter) {
		return fmt.Errorf("separator row %q has no %q delimiter: %w", lines[SeparatorLine], Delimiter, ErrMalformed)
	}
	return nil
}
