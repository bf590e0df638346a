package state

import (
	"healthgrid/internal/ui/grid"
	"healthgrid/internal/ui/input/types"
)

// Tab is one dataset shown in the UI
type Tab struct {
	Name string
	Grid grid.Controller
}

// EditState remembers what a search or filter prompt started from, so
// cancelling can restore it
type EditState struct {
	Mode      types.Mode
	ColumnKey string
	Original  string
}

// AppState contains all the application state
type AppState struct {
	Tabs   []Tab
	Active int

	// UI state
	Loading         bool // whether datasets are still being loaded
	ShowFilters     bool // filter row forced visible
	SortOptionIndex int  // highlighted entry in the sort menu
	StatusMessage   string
	StatusIsError   bool
	StatusSeq       int // bumped on every SetStatus so stale clears are ignored

	Edit EditState
}

// NewAppState creates a new application state
func NewAppState(tabs []Tab) *AppState {
	return &AppState{Tabs: tabs}
}

// AddTab appends a tab; the active tab stays where it is
func (s *AppState) AddTab(t Tab) {
	s.Tabs = append(s.Tabs, t)
}

// ActiveGrid returns the grid of the active tab, or nil when there is none
func (s *AppState) ActiveGrid() grid.Controller {
	if s.Active < 0 || s.Active >= len(s.Tabs) {
		return nil
	}
	return s.Tabs[s.Active].Grid
}

// ActiveName returns the name of the active tab
func (s *AppState) ActiveName() string {
	if s.Active < 0 || s.Active >= len(s.Tabs) {
		return ""
	}
	return s.Tabs[s.Active].Name
}

// TabIndex finds a tab by dataset name
func (s *AppState) TabIndex(name string) (int, bool) {
	for i, t := range s.Tabs {
		if t.Name == name {
			return i, true
		}
	}
	return 0, false
}

// SwitchTab moves the active tab by delta, wrapping around
func (s *AppState) SwitchTab(delta int) bool {
	n := len(s.Tabs)
	if n < 2 {
		return false
	}
	s.Active = ((s.Active+delta)%n + n) % n
	return true
}

// SelectTab activates tab i when it exists
func (s *AppState) SelectTab(i int) bool {
	if i < 0 || i >= len(s.Tabs) || i == s.Active {
		return false
	}
	s.Active = i
	return true
}

// SetStatus shows a message in the status line
func (s *AppState) SetStatus(message string, isError bool) {
	s.StatusMessage = message
	s.StatusIsError = isError
	s.StatusSeq++
}

// ClearStatus removes the status line
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// ClearStatusIfCurrent removes the status line unless a newer one replaced it
func (s *AppState) ClearStatusIfCurrent(seq int) bool {
	if seq != s.StatusSeq {
		return false
	}
	s.ClearStatus()
	return true
}

// TabNames lists the tab titles in display order
func (s *AppState) TabNames() []string {
	names := make([]string, len(s.Tabs))
	for i, t := range s.Tabs {
		names[i] = t.Name
	}
	return names
}

// Close releases every grid
func (s *AppState) Close() {
	for _, t := range s.Tabs {
		if t.Grid != nil {
			t.Grid.Close()
		}
	}
}
