package viewmodels

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeSearch
	InputModeFilter
	InputModeSort
	InputModeConfirmClear
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode        InputMode
	prompt      string
	textInput   textinput.Model
	sortOptions []string
	sortIndex   int
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// SetPrompt sets the label shown before the text input or the question
func (it *InputTransformer) SetPrompt(prompt string) {
	it.prompt = prompt
}

// SetSortMenu sets the sort menu entries and the highlighted one
func (it *InputTransformer) SetSortMenu(options []string, index int) {
	it.sortOptions = options
	it.sortIndex = index
}

// GetInputText returns the current input line for the view
func (it *InputTransformer) GetInputText() string {
	switch it.mode {
	case InputModeNormal:
		return ""
	case InputModeConfirmClear:
		return it.prompt
	case InputModeSearch, InputModeFilter:
		return it.prompt + it.textInput.View()
	case InputModeSort:
		return it.sortMenu()
	default:
		return it.textInput.View()
	}
}

// sortMenu lists the options on one line with the highlighted one bracketed
func (it *InputTransformer) sortMenu() string {
	parts := make([]string, len(it.sortOptions))
	for i, option := range it.sortOptions {
		if i == it.sortIndex {
			parts[i] = "[" + option + "]"
		} else {
			parts[i] = option
		}
	}
	return "Sort by: " + strings.Join(parts, "  ") + "   (↑/↓ choose, enter keep, esc restore)"
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeSearch:
		return "search"
	case InputModeFilter:
		return "filter"
	case InputModeSort:
		return "sort"
	case InputModeConfirmClear:
		return "confirm-clear"
	default:
		return ""
	}
}
