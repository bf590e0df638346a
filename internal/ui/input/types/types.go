package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeFilter
	ModeSortSelect
	ModeConfirmClear
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// ColumnOption is a column offered for sorting
type ColumnOption struct {
	Key   string
	Title string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	HasTable() bool
	Searchable() bool
	Selectable() bool
	HasSelection() bool
	SelectedCount() int
	SearchQuery() string

	// CursorColumn returns the data column under the cursor
	CursorColumn() (key, title string, ok bool)
	IsFilterable(key string) bool
	FilterValue(key string) string

	SortableColumns() []ColumnOption
	CurrentSort() (key string, descending bool)
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
