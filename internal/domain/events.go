package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventControlMounted   EventType = "ControlMounted"
	EventControlUnmounted EventType = "ControlUnmounted"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted after the host accepts a new selection
type SelectionChangedEvent struct {
	Values []string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ControlMountedEvent is emitted when the selection control is mounted
type ControlMountedEvent struct {
	Generation int
}

func (e ControlMountedEvent) Type() EventType { return EventControlMounted }

// ControlUnmountedEvent is emitted when the selection control is torn down
type ControlUnmountedEvent struct {
	Generation int
	WasOpen    bool
}

func (e ControlUnmountedEvent) Type() EventType { return EventControlUnmounted }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path        string
	OptionCount int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
