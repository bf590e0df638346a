package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDatasetDiscovered EventType = "DatasetDiscovered"
	EventDatasetLoaded     EventType = "DatasetLoaded"
	EventScanStarted       EventType = "ScanStarted"
	EventScanCompleted     EventType = "ScanCompleted"
	EventRowActivated      EventType = "RowActivated"
	EventSortChanged       EventType = "SortChanged"
	EventFilterChanged     EventType = "FilterChanged"
	EventSearchChanged     EventType = "SearchChanged"
	EventSelectionChanged  EventType = "SelectionChanged"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DatasetDiscoveredEvent is emitted when a dataset file is found on disk
type DatasetDiscoveredEvent struct {
	Path string
}

func (e DatasetDiscoveredEvent) Type() EventType { return EventDatasetDiscovered }

// DatasetLoadedEvent is emitted when a dataset has been parsed
type DatasetLoadedEvent struct {
	Dataset Dataset
	Records int
}

func (e DatasetLoadedEvent) Type() EventType { return EventDatasetLoaded }

// ScanStartedEvent is emitted when dataset discovery begins
type ScanStartedEvent struct {
	Paths []string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when dataset discovery completes
type ScanCompletedEvent struct {
	DatasetsFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// RowActivatedEvent is emitted when a row's interactive cell is activated
type RowActivatedEvent struct {
	Dataset string
	RowID   string
	Summary string
}

func (e RowActivatedEvent) Type() EventType { return EventRowActivated }

// SortChangedEvent mirrors a grid's sort callback
type SortChangedEvent struct {
	Dataset   string
	ColumnKey string
	Direction string
}

func (e SortChangedEvent) Type() EventType { return EventSortChanged }

// FilterChangedEvent mirrors a grid's filter callback
type FilterChangedEvent struct {
	Dataset   string
	ColumnKey string
	Value     string
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// SearchChangedEvent mirrors a grid's search callback
type SearchChangedEvent struct {
	Dataset string
	Term    string
}

func (e SearchChangedEvent) Type() EventType { return EventSearchChanged }

// SelectionChangedEvent mirrors a grid's selection callback
type SelectionChangedEvent struct {
	Dataset  string
	Selected []string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	DataDir  string
	Datasets int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
