package navigation

import (
	"healthgrid/internal/ui/services/events"
)

// Service is the two-dimensional cursor state machine.
// The cursor starts unfocused; the first move focuses the top-left cell.
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// State returns a copy of the cursor state
func (s *Service) State() State {
	return *s.state
}

// Cell returns the focused cell. ok is false before focus or on an empty page.
func (s *Service) Cell() (row, col int, ok bool) {
	if !s.state.Focused || s.state.Rows == 0 || s.state.Cols == 0 {
		return 0, 0, false
	}
	return s.state.Row, s.state.Col, true
}

// SetBounds updates the page shape and pulls the cursor inside it
func (s *Service) SetBounds(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	s.state.Rows = rows
	s.state.Cols = cols
	s.moveTo(s.state.Row, s.state.Col)
}

// Navigate moves the cursor and reports whether the focused cell changed.
// Moves past an edge are no-ops.
func (s *Service) Navigate(direction Direction) bool {
	if s.state.Rows == 0 || s.state.Cols == 0 {
		return false
	}

	row, col := s.state.Row, s.state.Col
	if !s.state.Focused {
		row, col = 0, 0
	} else {
		switch direction {
		case DirectionUp:
			row--
		case DirectionDown:
			row++
		case DirectionLeft:
			col--
		case DirectionRight:
			col++
		}
	}

	switch direction {
	case DirectionHome:
		row, col = 0, 0
	case DirectionEnd:
		row, col = s.state.Rows-1, s.state.Cols-1
	}

	if row < 0 || row >= s.state.Rows || col < 0 || col >= s.state.Cols {
		return false
	}
	return s.focus(row, col)
}

// MoveTo focuses a specific cell, clamped to the page
func (s *Service) MoveTo(row, col int) bool {
	if s.state.Rows == 0 || s.state.Cols == 0 {
		return false
	}
	return s.focus(clamp(row, s.state.Rows), clamp(col, s.state.Cols))
}

// Reset returns the cursor to the top-left cell, keeping the focused flag
func (s *Service) Reset() {
	s.moveTo(0, 0)
}

func (s *Service) focus(row, col int) bool {
	wasFocused := s.state.Focused
	s.state.Focused = true
	if wasFocused && row == s.state.Row && col == s.state.Col {
		return false
	}
	s.moveTo(row, col)
	return true
}

func (s *Service) moveTo(row, col int) {
	oldRow, oldCol := s.state.Row, s.state.Col
	s.state.Row = clamp(row, s.state.Rows)
	s.state.Col = clamp(col, s.state.Cols)

	if oldRow != s.state.Row || oldCol != s.state.Col {
		s.bus.Publish(CursorMovedEvent{
			OldRow: oldRow, OldCol: oldCol,
			NewRow: s.state.Row, NewCol: s.state.Col,
		})
	}
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
