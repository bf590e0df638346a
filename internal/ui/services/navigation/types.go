package navigation

// State is the focus cursor over the rendered page.
// Rows and Cols are the current page shape.
type State struct {
	Row     int
	Col     int
	Focused bool
	Rows    int
	Cols    int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionHome  Direction = "home"
	DirectionEnd   Direction = "end"
)

// Event types for navigation changes
type CursorMovedEvent struct {
	OldRow, OldCol int
	NewRow, NewCol int
}
