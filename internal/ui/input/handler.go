package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"healthgrid/internal/ui/input/modes"
	"healthgrid/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes

	search  *modes.SearchMode
	filter  *modes.FilterMode
	sort    *modes.SortSelectMode
	confirm *modes.ConfirmClearMode
}

func New(keys types.KeyMap) *Handler {
	ti := textinput.New()

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.search = modes.NewSearchMode(h.textInput)
	h.filter = modes.NewFilterMode(h.textInput)
	h.sort = modes.NewSortSelectMode()
	h.confirm = modes.NewConfirmClearMode()

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeSearch] = h.search
	h.modes[types.ModeFilter] = h.filter
	h.modes[types.ModeSortSelect] = h.sort
	h.modes[types.ModeConfirmClear] = h.confirm

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// Unconsumed keys only matter to text modes, which feed them to the input
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
	}

	if h.isTextMode(h.currentMode) && !consumed {
		*h.textInput, cmd = h.textInput.Update(msg)
		// Always report the value so live search and filter stay in sync
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// switchMode runs the exit hook of the current mode and the enter hook of the next
func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	h.currentMode = mode

	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// TextInput returns the shared input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Prompt returns the label of the active text mode
func (h *Handler) Prompt() string {
	switch h.currentMode {
	case types.ModeSearch:
		return h.search.Prompt()
	case types.ModeFilter:
		return h.filter.Prompt()
	case types.ModeConfirmClear:
		return h.confirm.Question()
	}
	return ""
}

// SortMenu returns the sort options and the highlighted index
func (h *Handler) SortMenu() ([]types.ColumnOption, int) {
	return h.sort.Options(), h.sort.GetCurrentIndex()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeSearch, types.ModeFilter:
		return true
	default:
		return false
	}
}

// Reset drops back to normal mode without emitting actions
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
