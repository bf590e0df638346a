package query

import (
	"healthgrid/internal/ui/columns"
)

// Result is the output of one pipeline run
type Result[T any] struct {
	Rows      []columns.Entry[T] // visible page
	Filtered  []columns.Entry[T] // every searched, filtered and sorted entry
	Total     int                // size of the unfiltered collection
	Page      int                // clamped 1-based page
	PageCount int
	PageSize  int
}

// FilteredCount returns the number of rows surviving search and filters
func (r Result[T]) FilteredCount() int {
	return len(r.Filtered)
}

// State holds pagination state
type State struct {
	Page     int
	PageSize int
}

// Event types
type PageChangedEvent struct {
	OldPage   int
	NewPage   int
	PageCount int
}
