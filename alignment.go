package tablefmt

import "strings"

// Alignment is the horizontal placement of cell content within a column.
type Alignment int

// Column alignments. The zero value is AlignLeft, which is also the default
// for a separator cell without colons.
const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// String returns the lowercase name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseAlignment reads the alignment marker of a single separator cell.
// Only the first and last characters are inspected: ":-:" is center, ":--"
// left, "--:" right and anything else left.
func ParseAlignment(cell string) Alignment {
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":")
	switch {
	case left && right:
		return AlignCenter
	case right && !left:
		return AlignRight
	default:
		return AlignLeft
	}
}

// separatorCell renders the separator cell for a column of the given width.
func (a Alignment) separatorCell(width int) string {
	dashes := strings.Repeat("-", width)
	switch a {
	case AlignRight:
		return "-" + dashes + ":"
	case AlignCenter:
		return ":" + dashes + ":"
	default:
		return ":" + dashes + "-"
	}
}

// pad places cell within width columns. Cells already at or beyond width
// are returned unchanged.
func (a Alignment) pad(cell string, length, width int) string {
	padding := width - length
	if padding <= 0 {
		return cell
	}
	switch a {
	case AlignRight:
		return strings.Repeat(" ", padding) + cell
	case AlignCenter:
		half := padding / 2
		return strings.Repeat(" ", half) + cell + strings.Repeat(" ", padding-half)
	default:
		return cell + strings.Repeat(" ", padding)
	}
}
