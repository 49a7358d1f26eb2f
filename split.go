package tablefmt

import "strings"

const (
	// Delimiter separates cells within a row.
	Delimiter = '|'

	// Escape makes the character that follows it literal content.
	Escape = '\\'
)

// SplitLine splits a table row into trimmed cells. A delimiter preceded by
// the escape character is kept as content; the escape character itself is
// consumed. The text before the first delimiter is dropped, as is an empty
// segment after the last one, so "| a | b |" yields ["a", "b"].
func SplitLine(line string) []string {
	var (
		cells   []string
		current strings.Builder
		escaped bool
	)
	for _, r := range line {
		switch {
		case r == Delimiter && !escaped:
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		case r == Escape && !escaped:
			// Consumed; the next character is literal.
		default:
			current.WriteRune(r)
		}
		escaped = r == Escape
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		cells = append(cells, rest)
	}
	if len(cells) == 0 {
		return nil
	}
	return cells[1:]
}

// fit pads cells with empty strings or truncates them to exactly n entries.
func fit(cells []string, n int) []string {
	out := make([]string, n)
	copy(out, cells)
	return out
}

// escapeCell encodes cell so that SplitLine decodes it back unchanged.
// Delimiters and escapes are prefixed with an escape, except right after a
// literal escape, which SplitLine already treats as escaping the next rune.
func escapeCell(cell string) string {
	var (
		b     strings.Builder
		after bool
	)
	for _, r := range cell {
		if !after && (r == Delimiter || r == Escape) {
			b.WriteRune(Escape)
		}
		b.WriteRune(r)
		after = r == Escape
	}
	return b.String()
}
