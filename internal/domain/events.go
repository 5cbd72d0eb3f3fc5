package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventKeyPressed      EventType = "KeyPressed"
	EventSequenceMatched EventType = "SequenceMatched"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
	EventAppReady        EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// KeyPressedEvent is emitted for every key press observed by the UI.
// Key carries the symbol exactly as the terminal layer reports it
// (e.g. "up", "b", "enter").
type KeyPressedEvent struct {
	Key string
}

func (e KeyPressedEvent) Type() EventType { return EventKeyPressed }

// SequenceMatchedEvent is emitted when a combo's full key sequence
// has just been typed
type SequenceMatchedEvent struct {
	Combo string
}

func (e SequenceMatchedEvent) Type() EventType { return EventSequenceMatched }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Combos []Combo
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	Combos []Combo // Current combo configuration
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
