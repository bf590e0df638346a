package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"healthgrid/internal/config"
	"healthgrid/internal/ui/grid"
	"healthgrid/internal/ui/handlers"
	"healthgrid/internal/ui/input"
	inputtypes "healthgrid/internal/ui/input/types"
	"healthgrid/internal/ui/services/navigation"
	"healthgrid/internal/ui/services/sorting"
	"healthgrid/internal/ui/state"
	"healthgrid/internal/ui/viewmodels"
	"healthgrid/internal/ui/views"
)

// tickInterval drives the spinner and makes expired announcements disappear
const tickInterval = 80 * time.Millisecond

var errNoProgram = errors.New("pager needs a running program")

// Model represents the UI state
type Model struct {
	config *config.Config
	state  *state.AppState // centralized state
	keys   inputtypes.KeyMap

	// UI-specific state not in AppState
	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	zones        *zone.Manager          // mouse zones marked by the renderer
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer          // help content for the pager
	pager        *PagerOps              // ov pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over one tab per dataset
func NewModel(cfg *config.Config, tabs []state.Tab) *Model {
	appState := state.NewAppState(tabs)
	keys := inputtypes.DefaultKeyMap()
	zones := zone.New()

	m := &Model{
		config:       cfg,
		state:        appState,
		keys:         keys,
		zones:        zones,
		renderer:     views.NewRenderer(zones),
		inputHandler: input.New(keys),
		helpRenderer: NewHelpRenderer(keys),
		pager:        NewPagerOps(nil),
	}
	m.eventHandler = handlers.NewEventHandler(appState)
	// The real text input lives in the input handler; View copies it over
	m.viewModel = viewmodels.NewViewModel(appState, keys, textinput.New())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// SetStatus shows a message in the status line until the next one replaces it
func (m *Model) SetStatus(message string, isError bool) {
	m.state.SetStatus(message, isError)
}

// SetLoading toggles the loading indicator; LoadFinishedMsg turns it off
func (m *Model) SetLoading(loading bool) {
	m.state.Loading = loading
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		ctx := input.NewModelContext(m.state.ActiveGrid())

		// Handle input through the input handler
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		// Blink and other text input messages
		var cmds []tea.Cmd
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if cmd := m.handleNonKeyboardMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	mode := m.inputHandler.CurrentMode()
	m.viewModel.SetInputMode(viewmodels.ModeFor(mode))
	m.viewModel.SetPrompt(m.inputHandler.Prompt())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	if mode == inputtypes.ModeSortSelect {
		options, _ := m.inputHandler.SortMenu()
		m.viewModel.SetSortMenu(options, m.state.SortOptionIndex)
	}

	return m.zones.Scan(m.renderer.Render(m.viewModel.BuildViewState()))
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	g := m.state.ActiveGrid()

	switch a := action.(type) {
	case inputtypes.QuitAction:
		return func() tea.Msg { return quitMsg{} }

	case inputtypes.ToggleHelpAction:
		return m.showInPager("help", m.helpRenderer.RenderHelpContent())

	case inputtypes.SwitchTabAction:
		m.state.SwitchTab(a.Delta)
		return nil

	case inputtypes.StatusAction:
		return m.setStatus(a.Message, a.IsError)

	case inputtypes.UpdateSortIndexAction:
		m.state.SortOptionIndex = a.Index
		return nil
	}

	if g == nil {
		return nil
	}

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		g.Navigate(navigation.Direction(a.Direction))

	case inputtypes.PageAction:
		if a.Direction == "next" {
			g.NextPage()
		} else {
			g.PrevPage()
		}

	case inputtypes.ActivateAction:
		g.Activate()

	case inputtypes.SelectAction:
		g.ToggleSelection()

	case inputtypes.SelectAllAction:
		g.ToggleSelectAll()

	case inputtypes.DeselectAllAction:
		g.ClearSelection()

	case inputtypes.BeginEditAction:
		m.state.Edit = state.EditState{Mode: a.Mode, ColumnKey: a.ColumnKey, Original: a.Original}

	case inputtypes.UpdateTextAction:
		return m.applyEdit(g, a.Text)

	case inputtypes.SubmitTextAction:
		cmd := m.applyEdit(g, a.Text)
		m.state.Edit = state.EditState{}
		return cmd

	case inputtypes.CancelTextAction:
		cmd := m.applyEdit(g, m.state.Edit.Original)
		m.state.Edit = state.EditState{}
		return cmd

	case inputtypes.SortCursorAction:
		key, ok := g.CursorColumn()
		if !ok {
			return m.setStatus("Move the cursor onto a column to sort it", false)
		}
		if err := g.ToggleSort(key); err != nil {
			return m.gridError(err)
		}

	case inputtypes.SortByAction:
		if a.ColumnKey == "" {
			g.ClearSort()
			return nil
		}
		direction := sorting.Ascending
		if a.Descending {
			direction = sorting.Descending
		}
		if err := g.SetSort(a.ColumnKey, direction); err != nil {
			return m.gridError(err)
		}

	case inputtypes.ClearSortAction:
		g.ClearSort()

	case inputtypes.ClearFiltersAction:
		g.ClearFilters()

	case inputtypes.ToggleFilterRowAction:
		m.state.ShowFilters = !m.state.ShowFilters

	case inputtypes.OpenPagerAction:
		return m.showInPager("table", views.RenderPlain(m.state.ActiveName(), g.Export()))
	}

	return nil
}

// applyEdit pushes the prompt text into the search term or the edited filter
func (m *Model) applyEdit(g grid.Controller, text string) tea.Cmd {
	var err error
	switch m.state.Edit.Mode {
	case inputtypes.ModeSearch:
		err = g.SetSearch(text)
	case inputtypes.ModeFilter:
		err = g.SetFilter(m.state.Edit.ColumnKey, text)
	}
	if err != nil {
		return m.gridError(err)
	}
	return nil
}

// gridError turns an API error from the grid into a status message
func (m *Model) gridError(err error) tea.Cmd {
	switch {
	case errors.Is(err, grid.ErrNotSortable):
		return m.setStatus("This column cannot be sorted", false)
	case errors.Is(err, grid.ErrNotFilterable):
		return m.setStatus("This column cannot be filtered", false)
	case errors.Is(err, grid.ErrSearchDisabled):
		return m.setStatus("Search is disabled for this dataset", false)
	}
	log.Printf("Grid error: %v", err)
	return m.setStatus(err.Error(), true)
}

// handleMouse maps clicks on marked zones to grid operations. The cursor
// moves first; clicking the focused cell again activates it.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.config.UISettings.Mouse || m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
		return nil
	}
	g := m.state.ActiveGrid()

	if msg.Action == tea.MouseActionPress && g != nil {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			g.Navigate(navigation.DirectionUp)
			return nil
		case tea.MouseButtonWheelDown:
			g.Navigate(navigation.DirectionDown)
			return nil
		}
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	for i := range m.state.Tabs {
		if m.zones.Get(views.TabZoneID(i)).InBounds(msg) {
			m.state.SelectTab(i)
			return nil
		}
	}
	if g == nil {
		return nil
	}

	v := g.View()
	if v.Selectable && m.zones.Get(views.HeaderZoneID(grid.SelectColumnKey)).InBounds(msg) {
		g.ToggleSelectAll()
		return nil
	}
	for _, h := range v.Headers {
		if !m.zones.Get(views.HeaderZoneID(h.Key)).InBounds(msg) {
			continue
		}
		if !h.Sortable {
			return nil
		}
		if err := g.ToggleSort(h.Key); err != nil {
			return m.gridError(err)
		}
		return nil
	}

	cols := len(v.Headers)
	if v.Selectable {
		cols++
	}
	for row := range v.Rows {
		for col := 0; col < cols; col++ {
			if !m.zones.Get(views.CellZoneID(row, col)).InBounds(msg) {
				continue
			}
			if v.Focused && v.CursorRow == row && v.CursorCol == col {
				g.Activate()
			} else {
				g.Focus(row, col)
			}
			return nil
		}
	}
	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		return m.eventHandler.HandleEvent(msg.Event)

	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode {
			return nil
		}
		return tick()

	case TabAddedMsg:
		m.state.AddTab(msg.Tab)
		return nil

	case LoadFinishedMsg:
		m.state.Loading = false
		switch {
		case msg.Err != nil:
			return m.setStatus(fmt.Sprintf("Error loading datasets: %v", msg.Err), true)
		case msg.Failed > 0:
			return m.setStatus(fmt.Sprintf("%d dataset file(s) failed to load, see the log", msg.Failed), true)
		}
		return nil

	case handlers.ClearStatusMsg:
		m.state.ClearStatusIfCurrent(msg.Seq)
		return nil

	case pagerMsg:
		if msg.err != nil {
			log.Printf("%s pager failed: %v", msg.what, msg.err)
			return m.setStatus(fmt.Sprintf("Could not open the %s pager: %v", msg.what, msg.err), true)
		}
		// Pager succeeded, RestoreTerminal() should have restored the screen
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return tick()

	case quitMsg:
		m.state.Close()
		return tea.Quit
	}
	return nil
}

// showInPager returns a command that shows content in ov, pausing rendering
func (m *Model) showInPager(what, content string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		if program == nil {
			return pagerMsg{what: what, err: errNoProgram}
		}

		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerMsg{what: what, err: err}
	}
}

// setStatus sets the status line and schedules its removal
func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.state.SetStatus(message, isError)
	return handlers.ClearStatusAfter(m.state.StatusSeq)
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
