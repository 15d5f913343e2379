package tabular

// Paginate returns the 1-based page of rows with the given page size.
// Slicing is clamped: an out-of-range page yields an empty slice, not an
// error.
func Paginate(rows []Row, page, pageSize int) []Row {
	if page < 1 || pageSize < 1 {
		return []Row{}
	}

	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []Row{}
	}

	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}

	return rows[start:end]
}

// TotalPages computes ceil(total / pageSize).
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
