package ui

import (
	"time"

	"healthgrid/internal/eventbus"
	"healthgrid/internal/ui/state"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// TabAddedMsg delivers the grid of a dataset that finished loading
type TabAddedMsg struct {
	Tab state.Tab
}

// LoadFinishedMsg ends the loading phase. Failed counts dataset files that
// could not be parsed; Err is set when nothing could be loaded at all.
type LoadFinishedMsg struct {
	Failed int
	Err    error
}

// tickMsg is sent on a timer for animations and announcement expiry
type tickMsg time.Time

// pagerMsg reports how showing help or the table in the pager went
type pagerMsg struct {
	what string
	err  error
}

// quitMsg signals that the application should quit
type quitMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
