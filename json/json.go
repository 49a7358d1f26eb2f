// Package json encodes the inferred column schema of a table as JSON.
package json

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/tablefmt"
)

// envelope is the v1 wire format for a table schema.
type envelope struct {
	Version int         `json:"version"`
	Rows    int         `json:"rows"`
	Columns []columnDTO `json:"columns"`
}

// columnDTO is the JSON representation of a Column plus its header cell.
type columnDTO struct {
	Header    string `json:"header"`
	Width     int    `json:"width"`
	Alignment string `json:"alignment"`
}

// MarshalSchema serializes the schema of t in v1 envelope format. Rows
// counts the header and body rows.
func MarshalSchema(t *tablefmt.Table) ([]byte, error) {
	header := t.Header()
	cols := t.Columns()
	env := envelope{
		Version: 1,
		Rows:    len(t.Lines()) - 1,
		Columns: make([]columnDTO, len(cols)),
	}
	for i, col := range cols {
		env.Columns[i] = columnDTO{
			Header:    header[i],
			Width:     col.Width,
			Alignment: col.Alignment.String(),
		}
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalSchema deserializes the columns of a v1 envelope.
func UnmarshalSchema(data []byte) ([]tablefmt.Column, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	cols := make([]tablefmt.Column, len(env.Columns))
	for i, dto := range env.Columns {
		a, err := unmarshalAlignment(dto.Alignment)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		if dto.Width < 0 {
			return nil, fmt.Errorf("column %d: negative width %d", i, dto.Width)
		}
		cols[i] = tablefmt.Column{Width: dto.Width, Alignment: a}
	}
	return cols, nil
}

func unmarshalAlignment(s string) (tablefmt.Alignment, error) {
	switch s {
	case "left":
		return tablefmt.AlignLeft, nil
	case "right":
		return tablefmt.AlignRight, nil
	case "center":
		return tablefmt.AlignCenter, nil
	default:
		return 0, fmt.Errorf("unknown alignment: %q", s)
	}
}
