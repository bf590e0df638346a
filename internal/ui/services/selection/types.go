package selection

// State holds selection state
type State struct {
	Selected map[string]bool
}

// Event types
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

type SelectionClearedEvent struct {
	Removed []string
}

type AllSelectedEvent struct {
	IDs []string
}
