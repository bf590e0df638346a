package grid

import (
	"errors"

	"healthgrid/internal/ui/columns"
	"healthgrid/internal/ui/services/announce"
	"healthgrid/internal/ui/services/events"
	"healthgrid/internal/ui/services/navigation"
	"healthgrid/internal/ui/services/sorting"
)

// Errors returned for calls that name columns the grid cannot act on
var (
	ErrUnknownColumn  = errors.New("unknown column")
	ErrNotSortable    = errors.New("column is not sortable")
	ErrNotFilterable  = errors.New("column is not filterable")
	ErrSearchDisabled = errors.New("search is disabled")
)

// SelectColumnKey identifies the checkbox column in views and zones
const SelectColumnKey = "__select"

// Callbacks are informational; the grid never waits on them
type Callbacks[T any] struct {
	OnRowClick        func(row T)
	OnSort            func(columnKey string, direction sorting.Direction)
	OnFilter          func(columnKey, value string)
	OnSearch          func(term string)
	OnSelectionChange func(selectedIDs []string)
}

// Options configure a grid instance
type Options[T any] struct {
	PageSize     int
	Selectable   bool
	Searchable   bool
	EmptyMessage string

	// RowID returns a stable identifier. When nil, or when it returns "",
	// an ID field or "id" map key is used, falling back to the row's position.
	RowID func(row T) string

	// Announcer defaults to an announce.Queue with default options
	Announcer announce.Announcer

	// Bus carries the internal service events; nil creates a private bus
	Bus events.EventBus

	Callbacks Callbacks[T]
}

// HeaderCell describes one column header
type HeaderCell struct {
	Key         string
	Title       string
	Description string
	Sortable    bool
	Filterable  bool
	Direction   sorting.Direction
	Filter      string
	Align       columns.Align
	Width       int
}

// RowView is one rendered body row. Cells holds data columns only.
type RowView struct {
	ID       string
	Cells    []string
	Selected bool
}

// ViewState is everything a renderer needs, with no reference back to T
type ViewState struct {
	Headers       []HeaderCell
	Rows          []RowView
	Selectable    bool
	Searchable    bool
	AllSelected   bool
	SelectedCount int
	Focused       bool
	CursorRow     int
	CursorCol     int // counts the checkbox column when Selectable
	Page          int
	PageCount     int
	PageSize      int
	Total         int
	RowCount      int // rows surviving search and filters
	Search        string
	EmptyMessage  string
	Announcements []string
}

// FilterActive reports whether any column filter is set
func (v ViewState) FilterActive() bool {
	for _, h := range v.Headers {
		if h.Filter != "" {
			return true
		}
	}
	return false
}

// Controller is the row-type independent surface the terminal UI drives
type Controller interface {
	SetSearch(term string) error
	Search() string
	SetFilter(columnKey, value string) error
	Filter(columnKey string) string
	ClearFilters() bool
	ToggleSort(columnKey string) error
	SetSort(columnKey string, direction sorting.Direction) error
	SortSpec() sorting.Spec
	ClearSort() bool
	SetPage(page int) bool
	NextPage() bool
	PrevPage() bool
	Navigate(direction navigation.Direction) bool
	Focus(row, col int) bool
	Activate() bool
	ToggleSelection() bool
	ToggleSelectAll() bool
	ClearSelection() bool
	Selected() []string
	CursorColumn() (string, bool)
	View() ViewState
	Export() ViewState
	Close()
}
