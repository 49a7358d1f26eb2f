package tablefmt

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrMalformed indicates input that cannot describe a table: fewer than
	// two lines, or a separator row without delimiters.
	ErrMalformed = errors.New("malformed table")

	// ErrMismatch indicates rendered output did not re-parse to the schema
	// it was rendered from.
	ErrMismatch = errors.New("schema mismatch")

	// ErrNoMatch indicates an input pattern matched no files.
	ErrNoMatch = errors.New("no matching files")
)
