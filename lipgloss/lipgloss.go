// Package lipgloss renders a boxed, colored terminal preview of a table
// using lipgloss for styling.
package lipgloss

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/tablefmt"
)

// Styles maps a Theme to lipgloss styles for the preview.
type Styles struct {
	Header lipgloss.Style
	Border lipgloss.Style
	Cell   lipgloss.Style
	Muted  lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t tablefmt.Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().Foreground(ansiColor(t.Header)).Bold(true).Padding(0, 1),
		Border: lipgloss.NewStyle().Foreground(ansiColor(t.Border)),
		Cell:   lipgloss.NewStyle().Foreground(ansiColor(t.Cell)).Padding(0, 1),
		Muted:  lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true).Padding(0, 1),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// Preview renders t inside a rounded box with every column aligned as the
// separator row specifies.
func Preview(t *tablefmt.Table, theme tablefmt.Theme) string {
	styles := NewStyles(theme)
	cols := t.Columns()
	body := t.Body()

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers(t.Header()...).
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				s = styles.Header
			case row < len(body) && col < len(body[row]) && body[row][col] == "":
				s = styles.Muted
			default:
				s = styles.Cell
			}
			if col < len(cols) {
				s = s.Align(position(cols[col].Alignment))
			}
			return s
		})
	return tbl.Render()
}

func position(a tablefmt.Alignment) lipgloss.Position {
	switch a {
	case tablefmt.AlignRight:
		return lipgloss.Right
	case tablefmt.AlignCenter:
		return lipgloss.Center
	default:
		return lipgloss.Left
	}
}
