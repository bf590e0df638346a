package query

import (
	"healthgrid/internal/ui/columns"
	"healthgrid/internal/ui/services/search"
	"healthgrid/internal/ui/services/sorting"
)

// Compute runs the pipeline search -> filter -> sort -> paginate over rows.
// page is 1-based and is clamped into range. It never modifies rows.
func Compute[T any](rows []T, cols []columns.Column[T], term string, filters map[string]string, spec sorting.Spec, page, pageSize int) Result[T] {
	entries := columns.Entries(rows)
	filtered := search.Apply(entries, cols, term, filters)
	sorted := sorting.Apply(filtered, cols, spec)

	count := PageCount(len(sorted), pageSize)
	page = ClampPage(page, count)
	start, end := PageBounds(len(sorted), page, pageSize)

	return Result[T]{
		Rows:      sorted[start:end],
		Filtered:  sorted,
		Total:     len(rows),
		Page:      page,
		PageCount: count,
		PageSize:  pageSize,
	}
}

// PageCount returns the number of pages for n rows; never less than 1.
// A non-positive page size means a single page.
func PageCount(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// ClampPage limits page to [1, count]
func ClampPage(page, count int) int {
	if page < 1 {
		return 1
	}
	if count < 1 {
		count = 1
	}
	if page > count {
		return count
	}
	return page
}

// PageBounds returns the slice bounds of page within n rows
func PageBounds(n, page, pageSize int) (start, end int) {
	if pageSize <= 0 {
		return 0, n
	}
	start = (page - 1) * pageSize
	if start > n {
		start = n
	}
	if start < 0 {
		start = 0
	}
	end = start + pageSize
	if end > n {
		end = n
	}
	return start, end
}
