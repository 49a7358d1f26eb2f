package goldmark_test

import (
	"testing"

	"github.com/fwojciec/tablefmt"
	"github.com/fwojciec/tablefmt/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	t.Parallel()

	t.Run("alignments and rows", func(t *testing.T) {
		t.Parallel()
		shape, err := goldmark.Inspect("| a | b | c | d |\n|:--|--:|:-:|---|\n| 1 | 2 | 3 | 4 |\n| 5 | 6 | 7 | 8 |")
		require.NoError(t, err)
		assert.Equal(t, 4, shape.Columns())
		assert.Equal(t, []tablefmt.Alignment{
			tablefmt.AlignLeft, tablefmt.AlignRight, tablefmt.AlignCenter, tablefmt.AlignLeft,
		}, shape.Alignments)
		assert.Equal(t, 3, shape.Rows)
	})

	t.Run("first table in a document", func(t *testing.T) {
		t.Parallel()
		src := "# Title\n\ntext\n\n| x |\n|--:|\n\n| p | q |\n|---|---|\n"
		shape, err := goldmark.Inspect(src)
		require.NoError(t, err)
		assert.Equal(t, []tablefmt.Alignment{tablefmt.AlignRight}, shape.Alignments)
		assert.Equal(t, 1, shape.Rows)
	})

	t.Run("no table", func(t *testing.T) {
		t.Parallel()
		_, err := goldmark.Inspect("just a paragraph")
		assert.ErrorIs(t, err, tablefmt.ErrMismatch)
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	tables := map[string][]string{
		"default alignment": {"| A | B |", "|---|---|", "| 1 | 22 |"},
		"right and center":  {"| X | Y |", "|---:|:---:|", "| 1 | 2 |"},
		"escaped pipe":      {"| H | I |", "|---|---|", `| a\|b | c |`},
		"ragged rows":       {"| A | B |", "|---|---|", "| only |", "| 1 | 2 | 3 |"},
		"header only":       {"| A | B |", "|:-:|--:|"},
	}
	for name, lines := range tables {
		name, lines := name, lines
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl, err := tablefmt.New(lines)
			require.NoError(t, err)
			assert.NoError(t, goldmark.Check(tbl))
		})
	}

	t.Run("empty center column is not valid GFM", func(t *testing.T) {
		t.Parallel()
		tbl, err := tablefmt.New([]string{"| |", "|:-:|"})
		require.NoError(t, err)
		assert.ErrorIs(t, goldmark.Check(tbl), tablefmt.ErrMismatch)
	})
}
