package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"healthgrid/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

// Enter prefills the current term so editing starts where the user left off
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	term := ctx.SearchQuery()
	m.start(term)
	return []types.Action{types.BeginEditAction{Mode: types.ModeSearch, Original: term}}
}
