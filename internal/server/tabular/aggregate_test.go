package tabular

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/datachart/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesTable() ([]Column, []Row) {
	columns := []Column{
		{Name: "category", Kind: ColumnText},
		{Name: "amount", Kind: ColumnNumber},
		{Name: "note", Kind: ColumnText},
	}
	rows := []Row{
		{"category": TextCell("x"), "amount": NumberCell(10), "note": TextCell("a")},
		{"category": TextCell("x"), "amount": NumberCell(5), "note": EmptyCell()},
		{"category": TextCell("y"), "amount": NumberCell(3), "note": TextCell("b")},
	}
	return columns, rows
}

func TestSummarize_Count(t *testing.T) {
	columns, rows := salesTable()

	points, err := Summarize(columns, rows, "category", AggCount, "")
	require.NoError(t, err)

	assert.Equal(t, []Point{{Name: "x", Value: 2}, {Name: "y", Value: 1}}, points)
}

func TestSummarize_Sum(t *testing.T) {
	columns, rows := salesTable()

	points, err := Summarize(columns, rows, "category", AggSum, "amount")
	require.NoError(t, err)

	assert.Equal(t, []Point{{Name: "x", Value: 15}, {Name: "y", Value: 3}}, points)
}

func TestSummarize_AvgMinMax(t *testing.T) {
	columns, rows := salesTable()

	points, err := Summarize(columns, rows, "category", AggAvg, "amount")
	require.NoError(t, err)
	assert.Equal(t, []Point{{Name: "x", Value: 7.5}, {Name: "y", Value: 3}}, points)

	points, err = Summarize(columns, rows, "category", AggAverage, "amount")
	require.NoError(t, err)
	assert.Equal(t, []Point{{Name: "x", Value: 7.5}, {Name: "y", Value: 3}}, points)

	points, err = Summarize(columns, rows, "category", AggMin, "amount")
	require.NoError(t, err)
	assert.Equal(t, []Point{{Name: "x", Value: 5}, {Name: "y", Value: 3}}, points)

	points, err = Summarize(columns, rows, "category", AggMax, "amount")
	require.NoError(t, err)
	assert.Equal(t, []Point{{Name: "x", Value: 10}, {Name: "y", Value: 3}}, points)
}

func TestSummarize_AutoSelectsFirstNumericColumn(t *testing.T) {
	columns, rows := salesTable()

	// "amount" is the first all-numeric column
	points, err := Summarize(columns, rows, "category", AggSum, "")
	require.NoError(t, err)
	assert.Equal(t, []Point{{Name: "x", Value: 15}, {Name: "y", Value: 3}}, points)
}

func TestSummarize_NoNumericColumn(t *testing.T) {
	columns := []Column{{Name: "a", Kind: ColumnText}}
	rows := []Row{{"a": TextCell("v")}}

	_, err := Summarize(columns, rows, "a", AggSum, "")
	assert.True(t, errors.Is(err, common.ErrorNoNumericColumn))
}

func TestSummarize_NumericGroupKeysRenderedAsStrings(t *testing.T) {
	columns := []Column{
		{Name: "year", Kind: ColumnNumber},
		{Name: "value", Kind: ColumnNumber},
	}
	rows := []Row{
		{"year": NumberCell(2023), "value": NumberCell(1)},
		{"year": NumberCell(2024), "value": NumberCell(2)},
		{"year": NumberCell(2023), "value": NumberCell(4)},
	}

	points, err := Summarize(columns, rows, "year", AggSum, "value")
	require.NoError(t, err)
	assert.Equal(t, []Point{{Name: "2023", Value: 5}, {Name: "2024", Value: 2}}, points)
}

func TestSummarize_Errors(t *testing.T) {
	columns, rows := salesTable()

	_, err := Summarize(columns, rows, "missing", AggCount, "")
	assert.True(t, errors.Is(err, common.ErrorInvalidColumn), "unknown group column")

	_, err = Summarize(columns, rows, "category", AggSum, "missing")
	assert.True(t, errors.Is(err, common.ErrorInvalidColumn), "unknown value column")

	_, err = Summarize(columns, rows, "category", AggSum, "note")
	assert.True(t, errors.Is(err, common.ErrorColumnNotNumeric), "non-numeric value column")

	_, err = Summarize(columns, rows, "category", "median", "amount")
	assert.True(t, errors.Is(err, common.ErrorInvalidAggregation), "unknown keyword")
}

func TestFirstNumericColumn_EmptyCellDisqualifies(t *testing.T) {
	columns := []Column{
		{Name: "a", Kind: ColumnNumber},
		{Name: "b", Kind: ColumnNumber},
	}
	rows := []Row{
		{"a": NumberCell(1), "b": NumberCell(2)},
		{"a": EmptyCell(), "b": NumberCell(3)},
	}

	name, ok := FirstNumericColumn(columns, rows)
	require.True(t, ok)
	assert.Equal(t, "b", name)
}
