package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type PageAction struct {
	Direction string // "next" or "prev"
}

func (a PageAction) Type() string { return "page" }

type SwitchTabAction struct {
	Delta int
}

func (a SwitchTabAction) Type() string { return "switch_tab" }

type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// Selection actions
type SelectAction struct{}

func (a SelectAction) Type() string { return "select" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// BeginEditAction is emitted when a text mode starts editing a value, so the
// model can restore it on cancel
type BeginEditAction struct {
	Mode      Mode
	ColumnKey string // filter target; empty for search
	Original  string
}

func (a BeginEditAction) Type() string { return "begin_edit" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Sort actions
type SortCursorAction struct{}

func (a SortCursorAction) Type() string { return "sort_cursor" }

type SortByAction struct {
	ColumnKey  string // empty clears the sort
	Descending bool
}

func (a SortByAction) Type() string { return "sort_by" }

type ClearSortAction struct{}

func (a ClearSortAction) Type() string { return "clear_sort" }

type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }

// Filter actions
type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

type ToggleFilterRowAction struct{}

func (a ToggleFilterRowAction) Type() string { return "toggle_filter_row" }

// Command actions
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type StatusAction struct {
	Message string
	IsError bool
}

func (a StatusAction) Type() string { return "status" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
