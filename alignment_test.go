package tablefmt_test

import (
	"testing"

	"github.com/fwojciec/tablefmt"
	"github.com/stretchr/testify/assert"
)

func TestParseAlignment(t *testing.T) {
	t.Parallel()

	tests := map[string]tablefmt.Alignment{
		":---":  tablefmt.AlignLeft,
		"---:":  tablefmt.AlignRight,
		":---:": tablefmt.AlignCenter,
		"---":   tablefmt.AlignLeft,
		"":      tablefmt.AlignLeft,
		":":     tablefmt.AlignCenter,
		":xx:":  tablefmt.AlignCenter,
		"::":    tablefmt.AlignCenter,
	}
	for cell, want := range tests {
		assert.Equal(t, want, tablefmt.ParseAlignment(cell), "cell %q", cell)
	}
}

func TestAlignment_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "left", tablefmt.AlignLeft.String())
	assert.Equal(t, "right", tablefmt.AlignRight.String())
	assert.Equal(t, "center", tablefmt.AlignCenter.String())
	assert.Equal(t, "unknown", tablefmt.Alignment(42).String())
}
