package tabular

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/datachart/internal/common"
	"github.com/xuri/excelize/v2"
)

// DecodeExcel parses raw spreadsheet bytes into a normalized Table, reading
// the first sheet of the workbook. Cells are taken in their formatted string
// form, so date/time values arrive as their display strings. Malformed
// content fails with common.ErrorParse carrying the underlying cause.
func DecodeExcel(raw []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %v", common.ErrorParse, errors.New("workbook has no sheets"))
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorParse, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %v", common.ErrorParse, errors.New("no header row"))
	}

	return buildTable(records[0], records[1:]), nil
}
