// Package goldmark re-parses rendered tables with goldmark's GFM table
// extension to confirm that the output is still a valid table with the
// schema it was rendered from.
package goldmark

import (
	"fmt"

	"github.com/fwojciec/tablefmt"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Shape is the structure of a table as seen by a GFM parser.
type Shape struct {
	Alignments []tablefmt.Alignment
	Rows       int // header and body rows, separator excluded
}

// Columns returns the number of columns.
func (s Shape) Columns() int {
	return len(s.Alignments)
}

// Inspect parses source as GFM and returns the shape of its first table.
func Inspect(source string) (Shape, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader([]byte(source)))

	var (
		shape Shape
		found bool
	)
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		tbl, ok := n.(*east.Table)
		if !ok {
			return ast.WalkContinue, nil
		}
		found = true
		for _, a := range tbl.Alignments {
			shape.Alignments = append(shape.Alignments, alignment(a))
		}
		for c := tbl.FirstChild(); c != nil; c = c.NextSibling() {
			switch c.(type) {
			case *east.TableHeader, *east.TableRow:
				shape.Rows++
			}
		}
		return ast.WalkStop, nil
	})
	if err != nil {
		return Shape{}, fmt.Errorf("walk: %w", err)
	}
	if !found {
		return Shape{}, fmt.Errorf("no table in output: %w", tablefmt.ErrMismatch)
	}
	return shape, nil
}

// Check renders t and verifies that the output parses back to t's column
// count, alignments and row count.
func Check(t *tablefmt.Table) error {
	shape, err := Inspect(t.Render())
	if err != nil {
		return err
	}
	cols := t.Columns()
	if shape.Columns() != len(cols) {
		return fmt.Errorf("parsed %d columns, want %d: %w", shape.Columns(), len(cols), tablefmt.ErrMismatch)
	}
	for i, col := range cols {
		if shape.Alignments[i] != col.Alignment {
			return fmt.Errorf("column %d parsed as %s, want %s: %w", i+1, shape.Alignments[i], col.Alignment, tablefmt.ErrMismatch)
		}
	}
	if want := len(t.Lines()) - 1; shape.Rows != want {
		return fmt.Errorf("parsed %d rows, want %d: %w", shape.Rows, want, tablefmt.ErrMismatch)
	}
	return nil
}

// alignment maps goldmark's alignment to the formatter's. A column without
// colons is left aligned, as it is when formatting.
func alignment(a east.Alignment) tablefmt.Alignment {
	switch a {
	case east.AlignRight:
		return tablefmt.AlignRight
	case east.AlignCenter:
		return tablefmt.AlignCenter
	default:
		return tablefmt.AlignLeft
	}
}
