// Package fs resolves, reads and rewrites the table files named on the
// command line.
package fs

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fwojciec/tablefmt"
	"github.com/natefinch/atomic"
)

// ReadFile returns the lines of the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()
	return tablefmt.ReadLines(f)
}

// WriteFile atomically replaces the file at path with content followed by
// a newline.
func WriteFile(path, content string) error {
	var buf bytes.Buffer
	buf.WriteString(content)
	buf.WriteByte('\n')
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
