package json_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/tablefmt"
	tablejson "github.com/fwojciec/tablefmt/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalSchema(t *testing.T) {
	t.Parallel()

	tbl, err := tablefmt.New([]string{"| A | B |", "|---:|:---:|", "| 1 | 22 |", "| 333 |"})
	require.NoError(t, err)

	data, err := tablejson.MarshalSchema(tbl)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(1), raw["version"])
	assert.Equal(t, float64(3), raw["rows"])
	assert.JSONEq(t, `{
		"version": 1,
		"rows": 3,
		"columns": [
			{"header": "A", "width": 3, "alignment": "right"},
			{"header": "B", "width": 2, "alignment": "center"}
		]
	}`, string(data))

	cols, err := tablejson.UnmarshalSchema(data)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns(), cols)
}

func TestUnmarshalSchema_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := tablejson.UnmarshalSchema([]byte("{"))
		assert.ErrorContains(t, err, "unmarshal envelope")
	})

	t.Run("unsupported version", func(t *testing.T) {
		t.Parallel()
		_, err := tablejson.UnmarshalSchema([]byte(`{"version": 2}`))
		assert.ErrorContains(t, err, "unsupported envelope version: 2")
	})

	t.Run("unknown alignment", func(t *testing.T) {
		t.Parallel()
		_, err := tablejson.UnmarshalSchema([]byte(`{"version": 1, "columns": [{"width": 1, "alignment": "justify"}]}`))
		assert.ErrorContains(t, err, `unknown alignment: "justify"`)
	})

	t.Run("negative width", func(t *testing.T) {
		t.Parallel()
		_, err := tablejson.UnmarshalSchema([]byte(`{"version": 1, "columns": [{"width": -1, "alignment": "left"}]}`))
		assert.ErrorContains(t, err, "negative width")
	})
}
