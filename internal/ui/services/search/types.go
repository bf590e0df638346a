package search

// State holds the free-text search term and per-column filters
type State struct {
	Term    string
	Filters map[string]string
}

// Event types
type SearchChangedEvent struct {
	OldTerm string
	NewTerm string
}

type FilterChangedEvent struct {
	ColumnKey string
	OldValue  string
	NewValue  string
}

type FiltersClearedEvent struct {
	Removed map[string]string
}
