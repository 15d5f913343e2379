package models

import (
	"time"

	"github.com/dmitrijs2005/datachart/internal/server/tabular"
)

// Dataset is a persisted, user-owned tabular upload. Rows are never mutated
// in place: a dataset is created whole on upload and removed whole on delete.
type Dataset struct {
	ID          string
	Filename    string
	OwnerEmail  string
	UploadedAt  time.Time
	RowCount    int
	ColumnCount int
	Columns     []tabular.Column
	FileSize    int64
	// StorageKey points at the archived raw upload in object storage.
	// Empty when archival is disabled.
	StorageKey string
	Rows       []tabular.Row
}

// ColumnNames returns the schema names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}
