package tablefmt_test

import (
	"testing"

	"github.com/fwojciec/tablefmt"
	"github.com/stretchr/testify/assert"
)

func TestNew_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lines   []string
		message string
	}{
		{name: "no lines", lines: nil, message: "got 0 line(s)"},
		{name: "header only", lines: []string{"| a |"}, message: "got 1 line(s)"},
		{name: "separator without pipes", lines: []string{"| a |", "---"}, message: `separator row "---" has no '|' delimiter`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tbl, err := tablefmt.New(tt.lines)
			assert.Nil(t, tbl)
			assert.ErrorIs(t, err, tablefmt.ErrMalformed)
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

func TestNew_SingleDelimiterSeparator(t *testing.T) {
	t.Parallel()

	tbl, err := tablefmt.New([]string{"| a |", "|---"})
	assert.NoError(t, err)
	assert.Equal(t, 0, tbl.NumColumns())
	assert.Equal(t, "|  |\n||", tbl.Render())
}
