package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventActionInvoked     EventType = "ActionInvoked"
	EventMenuItemActivated EventType = "MenuItemActivated"
	EventMenuEscaped       EventType = "MenuEscaped"
	EventFocusChanged      EventType = "FocusChanged"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ActionInvokedEvent is emitted when a toolbar button runs its action
type ActionInvokedEvent struct {
	Control string
}

func (e ActionInvokedEvent) Type() EventType { return EventActionInvoked }

// MenuItemActivatedEvent is emitted when a menu item is activated
type MenuItemActivatedEvent struct {
	Index int
	Label string
}

func (e MenuItemActivatedEvent) Type() EventType { return EventMenuItemActivated }

// MenuEscapedEvent is emitted when Escape is pressed inside the menu
type MenuEscapedEvent struct{}

func (e MenuEscapedEvent) Type() EventType { return EventMenuEscaped }

// FocusChangedEvent is emitted when application focus moves between controls
type FocusChangedEvent struct {
	From string
	To   string
}

func (e FocusChangedEvent) Type() EventType { return EventFocusChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
