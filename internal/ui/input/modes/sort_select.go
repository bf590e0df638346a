package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"healthgrid/internal/ui/input/types"
)

// SortSelectMode lets the user pick the sort column from a list. The first
// option clears the sort; moving through the list applies each choice live.
type SortSelectMode struct {
	options            []types.ColumnOption
	sortIndex          int
	originalIndex      int // Remember the original sort when entering
	originalDescending bool
}

func NewSortSelectMode() *SortSelectMode {
	return &SortSelectMode{}
}

func (m *SortSelectMode) Name() string {
	return "sort"
}

// Options returns the entries shown in the menu
func (m *SortSelectMode) Options() []types.ColumnOption {
	return m.options
}

func (m *SortSelectMode) Enter(ctx types.Context) []types.Action {
	m.options = append([]types.ColumnOption{{Key: "", Title: "Original order"}}, ctx.SortableColumns()...)
	m.sortIndex = 0
	m.originalIndex = 0

	current, descending := ctx.CurrentSort()
	m.originalDescending = descending
	for i, option := range m.options {
		if option.Key == current {
			m.sortIndex = i
			m.originalIndex = i
			break
		}
	}

	return []types.Action{types.UpdateSortIndexAction{Index: m.sortIndex}}
}

func (m *SortSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey processes key messages for sort selection
func (m *SortSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		// Cancel and restore original sort
		return []types.Action{
			types.SortByAction{ColumnKey: m.options[m.originalIndex].Key, Descending: m.originalDescending},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "k":
		m.sortIndex--
		if m.sortIndex < 0 {
			m.sortIndex = len(m.options) - 1
		}
		return m.apply(), true

	case "down", "j":
		m.sortIndex++
		if m.sortIndex >= len(m.options) {
			m.sortIndex = 0
		}
		return m.apply(), true
	}

	return nil, true
}

func (m *SortSelectMode) apply() []types.Action {
	return []types.Action{
		types.UpdateSortIndexAction{Index: m.sortIndex},
		types.SortByAction{ColumnKey: m.options[m.sortIndex].Key},
	}
}

// GetCurrentIndex returns the current sort option index
func (m *SortSelectMode) GetCurrentIndex() int {
	return m.sortIndex
}
