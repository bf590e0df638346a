package sorting

// Direction is the sort direction of the active column
type Direction int

const (
	None Direction = iota
	Ascending
	Descending
)

// String returns the word used in announcements and logs
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "none"
	}
}

// Next returns the direction after d in the header cycle none -> asc -> desc -> asc
func (d Direction) Next() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Spec is the single active sort. The zero value means no sort.
type Spec struct {
	ColumnKey string
	Direction Direction
}

// Active reports whether the spec sorts anything
func (s Spec) Active() bool {
	return s.ColumnKey != "" && s.Direction != None
}

// DirectionFor returns the direction applied to key, None if key is not sorted
func (s Spec) DirectionFor(key string) Direction {
	if !s.Active() || s.ColumnKey != key {
		return None
	}
	return s.Direction
}

// State holds sorting state
type State struct {
	Current Spec
}

// Event types
type SortChangedEvent struct {
	Old Spec
	New Spec
}
