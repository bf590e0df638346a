package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"healthgrid/internal/ui/input/types"
)

// FilterMode edits the filter of the column under the cursor
type FilterMode struct {
	TextInputMode
	title string
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", "Filter: ", ti),
	}
}

// Enter targets the cursor column and prefills its current filter value
func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	key, title, ok := ctx.CursorColumn()
	if !ok {
		m.title = ""
		m.start("")
		return nil
	}

	m.title = title
	value := ctx.FilterValue(key)
	m.start(value)
	return []types.Action{types.BeginEditAction{Mode: types.ModeFilter, ColumnKey: key, Original: value}}
}

// Prompt names the target column
func (m *FilterMode) Prompt() string {
	if m.title == "" {
		return m.prompt
	}
	return "Filter " + m.title + ": "
}
