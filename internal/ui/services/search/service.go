package search

import (
	"log"
	"sort"

	"healthgrid/internal/ui/services/events"
)

// Service holds the active search term and column filters
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new search service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			Filters: make(map[string]string),
		},
		bus: bus,
	}
}

// SetTerm replaces the search term. Returns false when nothing changed.
func (s *Service) SetTerm(term string) bool {
	if term == s.state.Term {
		return false
	}

	old := s.state.Term
	s.state.Term = term
	log.Printf("Search term changed: %q -> %q", old, term)

	s.bus.Publish(SearchChangedEvent{OldTerm: old, NewTerm: term})
	return true
}

// Term returns the current search term
func (s *Service) Term() string {
	return s.state.Term
}

// SetFilter sets the filter for a column; an empty value removes it
func (s *Service) SetFilter(columnKey, value string) bool {
	old := s.state.Filters[columnKey]
	if old == value {
		return false
	}

	if value == "" {
		delete(s.state.Filters, columnKey)
	} else {
		s.state.Filters[columnKey] = value
	}

	s.bus.Publish(FilterChangedEvent{
		ColumnKey: columnKey,
		OldValue:  old,
		NewValue:  value,
	})
	return true
}

// Filter returns the filter value for a column
func (s *Service) Filter(columnKey string) string {
	return s.state.Filters[columnKey]
}

// Filters returns a copy of the active filters
func (s *Service) Filters() map[string]string {
	out := make(map[string]string, len(s.state.Filters))
	for k, v := range s.state.Filters {
		out[k] = v
	}
	return out
}

// FilterKeys returns the keys of active filters in sorted order
func (s *Service) FilterKeys() []string {
	keys := make([]string, 0, len(s.state.Filters))
	for k := range s.state.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ClearFilters removes every column filter
func (s *Service) ClearFilters() bool {
	if len(s.state.Filters) == 0 {
		return false
	}

	removed := s.state.Filters
	s.state.Filters = make(map[string]string)

	s.bus.Publish(FiltersClearedEvent{Removed: removed})
	return true
}

// Active reports whether a search term or any filter is set
func (s *Service) Active() bool {
	return s.state.Term != "" || len(s.state.Filters) > 0
}
