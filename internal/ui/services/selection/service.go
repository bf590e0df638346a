package selection

import (
	"sort"

	"healthgrid/internal/ui/services/events"
)

// Service tracks selected row ids independently of page and sort order
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new selection service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			Selected: make(map[string]bool),
		},
		bus: bus,
	}
}

// Toggle flips membership of id and reports whether it is now selected
func (s *Service) Toggle(id string) bool {
	var added, removed []string

	if s.state.Selected[id] {
		delete(s.state.Selected, id)
		removed = append(removed, id)
	} else {
		s.state.Selected[id] = true
		added = append(added, id)
	}

	s.bus.Publish(SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(s.state.Selected),
	})
	return len(added) > 0
}

// SelectAll makes the selection exactly ids
func (s *Service) SelectAll(ids []string) {
	s.state.Selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		s.state.Selected[id] = true
	}

	s.bus.Publish(AllSelectedEvent{
		IDs: append([]string(nil), ids...),
	})
}

// DeselectAll clears all selections
func (s *Service) DeselectAll() {
	removed := s.Selected()
	s.state.Selected = make(map[string]bool)

	s.bus.Publish(SelectionClearedEvent{Removed: removed})
}

// IsSelected checks if a row is selected
func (s *Service) IsSelected(id string) bool {
	return s.state.Selected[id]
}

// AllSelected reports whether every id is selected. False for no ids.
func (s *Service) AllSelected(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !s.state.Selected[id] {
			return false
		}
	}
	return true
}

// Selected returns all selected ids in sorted order
func (s *Service) Selected() []string {
	selected := make([]string, 0, len(s.state.Selected))
	for id := range s.state.Selected {
		selected = append(selected, id)
	}
	sort.Strings(selected)
	return selected
}

// Count returns the number of selected items
func (s *Service) Count() int {
	return len(s.state.Selected)
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return len(s.state.Selected) > 0
}
