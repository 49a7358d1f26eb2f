package tablefmt

import (
	"bufio"
	"fmt"
	"io"
)

// ReadLines reads r to the end and returns its lines without terminators.
// Both "\n" and "\r\n" end a line, and a final terminator does not produce
// an extra empty line.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}
