// Package tabular holds the normalized representation of an uploaded table:
// an ordered column schema plus a sequence of rows whose cells are a tagged
// scalar union. It also implements the operations the API exposes over that
// shape: pagination and group-by aggregation.
package tabular

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CellKind tags the scalar type of a single cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellBool
)

// Cell is one scalar value of a row. Missing input values are represented by
// the empty kind, which serializes to "" so that stored rows stay type-stable
// for downstream aggregation.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	Bool bool
}

func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

// TextCell builds a text cell; the empty string maps to the empty sentinel.
func TextCell(s string) Cell {
	if s == "" {
		return EmptyCell()
	}
	return Cell{Kind: CellText, Str: s}
}

func NumberCell(f float64) Cell { return Cell{Kind: CellNumber, Num: f} }

func BoolCell(b bool) Cell { return Cell{Kind: CellBool, Bool: b} }

func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

func (c Cell) IsNumber() bool { return c.Kind == CellNumber }

// String renders the cell for use as a group key or display value.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Str
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	case CellBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

// MarshalJSON encodes the cell as a plain scalar: string, number, boolean,
// or "" for the empty sentinel.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellText:
		return json.Marshal(c.Str)
	case CellNumber:
		return json.Marshal(c.Num)
	case CellBool:
		return json.Marshal(c.Bool)
	default:
		return json.Marshal("")
	}
}

// UnmarshalJSON restores a cell from its scalar encoding. JSON null is
// accepted and treated as the empty sentinel.
func (c *Cell) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case nil:
		*c = EmptyCell()
	case string:
		*c = TextCell(value)
	case float64:
		*c = NumberCell(value)
	case bool:
		*c = BoolCell(value)
	default:
		*c = TextCell(string(b))
	}
	return nil
}

// parseCell converts a raw string value according to the column kind that
// was inferred for it.
func parseCell(raw string, kind ColumnKind) Cell {
	if raw == "" {
		return EmptyCell()
	}
	switch kind {
	case ColumnNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return TextCell(raw)
		}
		return NumberCell(f)
	case ColumnBool:
		return BoolCell(strings.EqualFold(raw, "true"))
	default:
		return TextCell(raw)
	}
}
