package tabular

import (
	"github.com/dmitrijs2005/datachart/internal/common"
)

// Aggregation keywords accepted by Summarize.
const (
	AggCount   = "count"
	AggSum     = "sum"
	AggAvg     = "avg"
	AggAverage = "average"
	AggMin     = "min"
	AggMax     = "max"
)

// Point is one element of a chart-ready series.
type Point struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type groupState struct {
	sum   float64
	count int
	min   float64
	max   float64
}

// Summarize groups rows on groupCol and reduces them into a chart-ready
// series. Groups appear in first-seen row order, which keeps the output
// stable and deterministic.
//
// For "count" the value of each group is its row frequency. For the numeric
// aggregations (sum, avg/average, min, max) a value column is required: when
// valueCol is empty the first column whose cells are all numeric is chosen
// (common.ErrorNoNumericColumn when none exists); a supplied column must be
// present (common.ErrorInvalidColumn) and all-numeric
// (common.ErrorColumnNotNumeric). Any other aggregation keyword fails with
// common.ErrorInvalidAggregation.
func Summarize(columns []Column, rows []Row, groupCol, agg, valueCol string) ([]Point, error) {
	if !hasColumn(columns, groupCol) {
		return nil, common.ErrorInvalidColumn
	}

	if agg == AggCount {
		return countGroups(rows, groupCol), nil
	}

	switch agg {
	case AggSum, AggAvg, AggAverage, AggMin, AggMax:
	default:
		return nil, common.ErrorInvalidAggregation
	}

	if valueCol == "" {
		name, ok := FirstNumericColumn(columns, rows)
		if !ok {
			return nil, common.ErrorNoNumericColumn
		}
		valueCol = name
	} else {
		if !hasColumn(columns, valueCol) {
			return nil, common.ErrorInvalidColumn
		}
		if !columnAllNumeric(valueCol, rows) {
			return nil, common.ErrorColumnNotNumeric
		}
	}

	return reduceGroups(rows, groupCol, agg, valueCol), nil
}

func hasColumn(columns []Column, name string) bool {
	for _, c := range columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

func countGroups(rows []Row, groupCol string) []Point {
	order := make([]string, 0)
	counts := make(map[string]int)

	for _, row := range rows {
		key := row[groupCol].String()
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}

	points := make([]Point, len(order))
	for i, key := range order {
		points[i] = Point{Name: key, Value: float64(counts[key])}
	}
	return points
}

func reduceGroups(rows []Row, groupCol, agg, valueCol string) []Point {
	order := make([]string, 0)
	groups := make(map[string]*groupState)

	for _, row := range rows {
		key := row[groupCol].String()
		v := row[valueCol].Num

		st, ok := groups[key]
		if !ok {
			st = &groupState{min: v, max: v}
			groups[key] = st
			order = append(order, key)
		}
		st.sum += v
		st.count++
		if v < st.min {
			st.min = v
		}
		if v > st.max {
			st.max = v
		}
	}

	points := make([]Point, len(order))
	for i, key := range order {
		st := groups[key]
		var value float64
		switch agg {
		case AggSum:
			value = st.sum
		case AggAvg, AggAverage:
			value = st.sum / float64(st.count)
		case AggMin:
			value = st.min
		case AggMax:
			value = st.max
		}
		points[i] = Point{Name: key, Value: value}
	}
	return points
}
