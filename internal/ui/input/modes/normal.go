package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"healthgrid/internal/ui/input/types"
)

// ggTimeout is how long a first "g" waits for the second
const ggTimeout = 500 * time.Millisecond

type NormalMode struct {
	keys        types.KeyMap
	lastKeyWasG bool
	lastGTime   time.Time
	now         func() time.Time
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys, now: time.Now}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// "gg" jumps to the first cell; any other key cancels the prefix
	if msg.String() == "g" {
		if m.lastKeyWasG && m.now().Sub(m.lastGTime) < ggTimeout {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = m.now()
		return nil, true
	}
	m.lastKeyWasG = false

	switch {
	case key.Matches(msg, m.keys.Force):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, m.keys.NextTab):
		return []types.Action{types.SwitchTabAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.PrevTab):
		return []types.Action{types.SwitchTabAction{Delta: -1}}, true
	}

	if !ctx.HasTable() {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		return navigate("up"), true
	case key.Matches(msg, m.keys.Down):
		return navigate("down"), true
	case key.Matches(msg, m.keys.Left):
		return navigate("left"), true
	case key.Matches(msg, m.keys.Right):
		return navigate("right"), true
	case key.Matches(msg, m.keys.Home):
		return navigate("home"), true
	case key.Matches(msg, m.keys.End):
		return navigate("end"), true

	case key.Matches(msg, m.keys.NextPage):
		return []types.Action{types.PageAction{Direction: "next"}}, true
	case key.Matches(msg, m.keys.PrevPage):
		return []types.Action{types.PageAction{Direction: "prev"}}, true

	case key.Matches(msg, m.keys.Activate):
		return []types.Action{types.ActivateAction{}}, true

	case key.Matches(msg, m.keys.Select):
		if !ctx.Selectable() {
			return nil, true
		}
		return []types.Action{types.SelectAction{}}, true

	case key.Matches(msg, m.keys.SelectAll):
		if !ctx.Selectable() {
			return nil, true
		}
		return []types.Action{types.SelectAllAction{}}, true

	case key.Matches(msg, m.keys.Deselect):
		// Clearing a selection asks first
		if ctx.HasSelection() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirmClear}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Search):
		if !ctx.Searchable() {
			return []types.Action{types.StatusAction{Message: "Search is disabled for this dataset"}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.Filter):
		colKey, title, ok := ctx.CursorColumn()
		if !ok {
			return []types.Action{types.StatusAction{Message: "Move the cursor onto a column to filter it"}}, true
		}
		if !ctx.IsFilterable(colKey) {
			return []types.Action{types.StatusAction{Message: title + " cannot be filtered"}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Data: colKey}}, true

	case key.Matches(msg, m.keys.FilterRow):
		return []types.Action{types.ToggleFilterRowAction{}}, true

	case key.Matches(msg, m.keys.ClearFilters):
		return []types.Action{types.ClearFiltersAction{}}, true

	case key.Matches(msg, m.keys.Sort):
		return []types.Action{types.SortCursorAction{}}, true

	case key.Matches(msg, m.keys.SortMenu):
		if len(ctx.SortableColumns()) == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSortSelect}}, true

	case key.Matches(msg, m.keys.ClearSort):
		return []types.Action{types.ClearSortAction{}}, true

	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.OpenPagerAction{}}, true
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
