package sorting

import (
	"log"
	"sort"

	"healthgrid/internal/ui/columns"
	"healthgrid/internal/ui/services/events"
)

// Service handles sorting state
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new sorting service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// Current returns the active sort spec
func (s *Service) Current() Spec {
	return s.state.Current
}

// Cycle advances the sort for key. A different column starts ascending
// and replaces whatever was sorted before.
func (s *Service) Cycle(key string) Spec {
	next := Spec{ColumnKey: key, Direction: s.state.Current.DirectionFor(key).Next()}
	s.Set(next)
	return next
}

// Set replaces the active sort spec
func (s *Service) Set(spec Spec) {
	if !spec.Active() {
		spec = Spec{}
	}
	if spec == s.state.Current {
		return
	}

	old := s.state.Current
	s.state.Current = spec
	log.Printf("Sort changed: %s %s -> %s %s", old.ColumnKey, old.Direction, spec.ColumnKey, spec.Direction)

	s.bus.Publish(SortChangedEvent{Old: old, New: spec})
}

// Clear removes the active sort, restoring original order
func (s *Service) Clear() bool {
	if !s.state.Current.Active() {
		return false
	}
	s.Set(Spec{})
	return true
}

// Apply returns a stably sorted copy of entries according to spec.
// Undefined values sort after every defined value in both directions.
func Apply[T any](entries []columns.Entry[T], cols []columns.Column[T], spec Spec) []columns.Entry[T] {
	out := make([]columns.Entry[T], len(entries))
	copy(out, entries)

	if !spec.Active() {
		return out
	}
	i := columns.IndexOf(cols, spec.ColumnKey)
	if i < 0 {
		return out
	}
	col := cols[i]

	cmp := col.Compare
	if cmp == nil {
		cmp = columns.CompareValues
	}

	// Extract each key once rather than on every comparison
	type keyed struct {
		entry   columns.Entry[T]
		value   any
		defined bool
	}
	items := make([]keyed, len(out))
	for j, e := range out {
		v, ok := col.Raw(e.Row)
		items[j] = keyed{entry: e, value: v, defined: ok}
	}

	sort.SliceStable(items, func(a, b int) bool {
		ka, kb := items[a], items[b]
		if !ka.defined || !kb.defined {
			return ka.defined && !kb.defined
		}
		c := compareSafe(cmp, ka.value, kb.value)
		if spec.Direction == Descending {
			c = -c
		}
		return c < 0
	})

	for j, item := range items {
		out[j] = item.entry
	}
	return out
}

// compareSafe treats a panicking comparator as equality so the sort stays stable
func compareSafe(cmp func(a, b any) int, a, b any) (c int) {
	defer func() {
		if r := recover(); r != nil {
			c = 0
		}
	}()
	return cmp(a, b)
}
