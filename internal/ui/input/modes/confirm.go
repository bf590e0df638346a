package modes

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"healthgrid/internal/ui/input/types"
)

// ConfirmClearMode asks before dropping a selection
type ConfirmClearMode struct {
	count int
}

func NewConfirmClearMode() *ConfirmClearMode {
	return &ConfirmClearMode{}
}

func (m *ConfirmClearMode) Name() string {
	return "confirm-clear"
}

// Question is the prompt shown while confirming
func (m *ConfirmClearMode) Question() string {
	return fmt.Sprintf("Clear selection of %d rows? (y/n): ", m.count)
}

func (m *ConfirmClearMode) Enter(ctx types.Context) []types.Action {
	m.count = ctx.SelectedCount()
	return nil
}

func (m *ConfirmClearMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmClearMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.DeselectAllAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	return nil, true
}
