package tabular

import (
	"strconv"
	"strings"
)

// ColumnKind is the scalar type inferred for a column from its non-empty
// values at ingestion time. It is stored with the dataset so later reads do
// not re-infer it.
type ColumnKind string

const (
	ColumnText   ColumnKind = "text"
	ColumnNumber ColumnKind = "number"
	ColumnBool   ColumnKind = "bool"
)

// Column is one entry of the ordered dataset schema.
type Column struct {
	Name string     `json:"name"`
	Kind ColumnKind `json:"kind"`
}

// Row maps column names to cells. Every decoded row carries a cell for each
// schema column, so row keys are always a subset of the column names.
type Row map[string]Cell

// Table is the normalized result of decoding an uploaded file.
type Table struct {
	Columns []Column
	Rows    []Row
}

// ColumnNames returns the schema names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// buildTable assembles a Table from a header and raw string records,
// inferring each column's kind from its non-empty values. Records shorter
// than the header are padded with the empty sentinel.
func buildTable(header []string, records [][]string) *Table {
	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = Column{Name: name, Kind: inferKind(records, i)}
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := make(Row, len(columns))
		for i, col := range columns {
			raw := ""
			if i < len(rec) {
				raw = rec[i]
			}
			row[col.Name] = parseCell(raw, col.Kind)
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}
}

// inferKind classifies column idx by scanning the non-empty raw values:
// number when all parse as floats, bool when all are true/false, text
// otherwise (including columns that are entirely empty).
func inferKind(records [][]string, idx int) ColumnKind {
	seen := false
	allNumber := true
	allBool := true

	for _, rec := range records {
		if idx >= len(rec) || rec[idx] == "" {
			continue
		}
		seen = true
		v := rec[idx]
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			allNumber = false
		}
		if !strings.EqualFold(v, "true") && !strings.EqualFold(v, "false") {
			allBool = false
		}
		if !allNumber && !allBool {
			return ColumnText
		}
	}

	if !seen {
		return ColumnText
	}
	if allNumber {
		return ColumnNumber
	}
	if allBool {
		return ColumnBool
	}
	return ColumnText
}

// FirstNumericColumn returns the name of the first column whose cells are
// all numeric in every row. A single empty cell disqualifies a column, and a
// table without rows has no numeric columns.
func FirstNumericColumn(columns []Column, rows []Row) (string, bool) {
	if len(rows) == 0 {
		return "", false
	}
	for _, col := range columns {
		if columnAllNumeric(col.Name, rows) {
			return col.Name, true
		}
	}
	return "", false
}

func columnAllNumeric(name string, rows []Row) bool {
	for _, row := range rows {
		if !row[name].IsNumber() {
			return false
		}
	}
	return len(rows) > 0
}
