package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"healthgrid/internal/ui/input/types"
	"healthgrid/internal/ui/state"
	"healthgrid/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	width            int
	height           int
	help             help.Model
	keys             types.KeyMap
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, keys types.KeyMap, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		keys:             keys,
		help:             help.New(),
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// SetPrompt sets the input line label
func (vm *ViewModel) SetPrompt(prompt string) {
	vm.inputTransformer.SetPrompt(prompt)
}

// SetSortMenu sets the sort menu entries
func (vm *ViewModel) SetSortMenu(options []types.ColumnOption, index int) {
	titles := make([]string, len(options))
	for i, o := range options {
		titles[i] = o.Title
	}
	vm.inputTransformer.SetSortMenu(titles, index)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// ModeFor converts an input handler mode to a view model mode
func ModeFor(mode types.Mode) InputMode {
	switch mode {
	case types.ModeSearch:
		return InputModeSearch
	case types.ModeFilter:
		return InputModeFilter
	case types.ModeSortSelect:
		return InputModeSort
	case types.ModeConfirmClear:
		return InputModeConfirmClear
	default:
		return InputModeNormal
	}
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Tabs:          vm.state.TabNames(),
		ActiveTab:     vm.state.Active,
		ShowFilters:   vm.state.ShowFilters || vm.inputTransformer.mode == InputModeFilter,
		Loading:       vm.state.Loading,
		InputMode:     vm.inputTransformer.GetInputModeString(),
		TextInput:     vm.inputTransformer.GetInputText(),
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		HelpLine:      vm.help.View(vm.keys),
	}
	if g := vm.state.ActiveGrid(); g != nil {
		vs.Table = g.View()
		vs.HasTable = true
	}
	return vs
}
