// Package tablefmt reformats GitHub-Flavored-Markdown tables so that every
// column is padded to a uniform width and the alignment markers of the
// separator row are honored.
package tablefmt

import (
	"strings"
	"unicode/utf8"
)

// SeparatorLine is the index of the separator row. Row 0 is the header and
// every row after the separator is a body row.
const SeparatorLine = 1

// Column is the rendering schema of a single column.
type Column struct {
	// Width counts the characters of the widest cell in its rendered form,
	// with delimiters and escapes re-escaped, so "a|b" is 4 wide as "a\|b".
	Width     int
	Alignment Alignment
}

// Table is a parsed table together with its inferred column schema. It is
// immutable once built by New.
type Table struct {
	lines   []string
	columns []Column
}

// New infers the column schema from lines. The column count comes from the
// separator row; widths come from every other row; alignments come from the
// separator cells. Rows with too few or too many cells are padded or
// truncated, never rejected.
func New(lines []string) (*Table, error) {
	if err := validateLines(lines); err != nil {
		return nil, err
	}
	t := &Table{
		lines:   append([]string(nil), lines...),
		columns: make([]Column, columnCount(lines[SeparatorLine])),
	}
	t.measure()
	t.align()
	return t, nil
}

// columnCount is the number of cells between the leading and trailing
// delimiter of the separator row. Escapes are not considered.
func columnCount(separator string) int {
	return strings.Count(separator, string(Delimiter)) - 1
}

func (t *Table) measure() {
	for i, line := range t.lines {
		if i == SeparatorLine {
			continue
		}
		for c, cell := range t.cells(line) {
			if n := cellLen(cell); n > t.columns[c].Width {
				t.columns[c].Width = n
			}
		}
	}
}

func (t *Table) align() {
	for c, cell := range t.cells(t.lines[SeparatorLine]) {
		t.columns[c].Alignment = ParseAlignment(cell)
	}
}

// cells splits line into exactly NumColumns cells.
func (t *Table) cells(line string) []string {
	return fit(SplitLine(line), len(t.columns))
}

func cellLen(cell string) int {
	return utf8.RuneCountInString(escapeCell(cell))
}

// Lines returns a copy of the input lines.
func (t *Table) Lines() []string {
	return append([]string(nil), t.lines...)
}

// NumColumns returns the column count shared by every rendered row.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// Columns returns a copy of the column schema.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// Header returns the header row split into exactly NumColumns cells.
func (t *Table) Header() []string {
	return t.cells(t.lines[0])
}

// Body returns every row after the separator, each split into exactly
// NumColumns cells.
func (t *Table) Body() [][]string {
	rows := make([][]string, 0, len(t.lines)-SeparatorLine-1)
	for _, line := range t.lines[SeparatorLine+1:] {
		rows = append(rows, t.cells(line))
	}
	return rows
}

// SeparatorRow renders the separator row from the inferred widths and
// alignments.
func (t *Table) SeparatorRow() string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = col.Alignment.separatorCell(col.Width)
	}
	return "|" + strings.Join(parts, "|") + "|"
}

// FormatRow renders a header or body row with every cell padded to its
// column width.
func (t *Table) FormatRow(line string) string {
	cells := t.cells(line)
	for i, cell := range cells {
		escaped := escapeCell(cell)
		col := t.columns[i]
		cells[i] = col.Alignment.pad(escaped, utf8.RuneCountInString(escaped), col.Width)
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// Render returns the formatted table, one line per input line, without a
// trailing newline.
func (t *Table) Render() string {
	out := make([]string, len(t.lines))
	for i, line := range t.lines {
		if i == SeparatorLine {
			out[i] = t.SeparatorRow()
			continue
		}
		out[i] = t.FormatRow(line)
	}
	return strings.Join(out, "\n")
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}
