package ui

import "konamikey/internal/eventbus"

// EventMsg wraps a domain event delivered to the UI from outside the
// bubbletea loop
type EventMsg struct {
	Event eventbus.DomainEvent
}

// matchLogMsg contains the result of a match log pager command
type matchLogMsg struct {
	err error
}

// statusClearMsg clears a transient status message
type statusClearMsg struct{}
