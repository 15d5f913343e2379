package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/datachart/internal/common"
)

// DecodeCSV parses raw CSV bytes into a normalized Table. The first record
// is the header. Malformed content fails with common.ErrorParse carrying the
// underlying reader message.
func DecodeCSV(raw []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorParse, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %v", common.ErrorParse, errors.New("no header row"))
	}

	return buildTable(records[0], records[1:]), nil
}
