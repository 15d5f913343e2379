package tabular

import (
	"strconv"
	"testing"
)

func makeRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{"i": TextCell(strconv.Itoa(i))}
	}
	return rows
}

func TestPaginate_CoversAllRowsInOrder(t *testing.T) {
	t.Parallel()

	rows := makeRows(23)
	pageSize := 5

	var got []Row
	for page := 1; page <= TotalPages(len(rows), pageSize); page++ {
		got = append(got, Paginate(rows, page, pageSize)...)
	}

	if len(got) != len(rows) {
		t.Fatalf("pages cover %d rows, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i]["i"] != rows[i]["i"] {
			t.Fatalf("row %d out of order", i)
		}
	}
}

func TestPaginate_OutOfRangePageIsEmpty(t *testing.T) {
	t.Parallel()

	rows := makeRows(10)
	if got := Paginate(rows, 3, 5); len(got) != 0 {
		t.Fatalf("expected empty slice, got %d rows", len(got))
	}
	if got := Paginate(rows, 100, 5); len(got) != 0 {
		t.Fatalf("expected empty slice, got %d rows", len(got))
	}
}

func TestPaginate_LastPagePartial(t *testing.T) {
	t.Parallel()

	rows := makeRows(12)
	if got := Paginate(rows, 3, 5); len(got) != 2 {
		t.Fatalf("expected 2 rows on last page, got %d", len(got))
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total, pageSize, want int
	}{
		{0, 50, 0},
		{1, 50, 1},
		{50, 50, 1},
		{51, 50, 2},
		{23, 5, 5},
	}
	for _, tc := range tests {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}
