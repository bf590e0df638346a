package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"healthgrid/internal/eventbus"
	"healthgrid/internal/ui/state"
)

// StatusTimeout is how long a status message stays on screen
const StatusTimeout = 3 * time.Second

// ClearStatusMsg asks the model to drop the status set with Seq
type ClearStatusMsg struct {
	Seq int
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.RowActivatedEvent:
		return h.status(e.Summary, false)

	case eventbus.SelectionChangedEvent:
		// Only the active tab reports; other tabs keep their selection quietly
		if e.Dataset != h.state.ActiveName() {
			return nil
		}
		if len(e.Selected) == 0 {
			return h.status("Selection cleared", false)
		}
		return h.status(fmt.Sprintf("%d selected", len(e.Selected)), false)

	case eventbus.ErrorEvent:
		log.Printf("Error event: %s: %v", e.Message, e.Err)
		return h.status(fmt.Sprintf("Error: %s", e.Message), true)

	case eventbus.ScanStartedEvent:
		// Loading itself ends when the model gets the load result, parsing
		// still runs after the scan completes
		return h.status("Scanning "+strings.Join(e.Paths, ", ")+" for datasets...", false)

	case eventbus.ScanCompletedEvent:
		return h.status(fmt.Sprintf("Scan complete. Found %d dataset files.", e.DatasetsFound), false)

	case eventbus.ConfigSavedEvent:
		return h.status("Config saved to "+e.Path, false)
	}

	return nil
}

// status sets the status line and schedules its removal
func (h *EventHandler) status(message string, isError bool) tea.Cmd {
	if message == "" {
		return nil
	}
	h.state.SetStatus(message, isError)
	return ClearStatusAfter(h.state.StatusSeq)
}

// ClearStatusAfter returns a command that clears status seq after StatusTimeout
func ClearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
