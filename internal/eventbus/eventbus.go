package eventbus

import (
	"konamikey/internal/domain"
	"log"
	"runtime/debug"
	"sync"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventKeyPressed      = domain.EventKeyPressed
	EventSequenceMatched = domain.EventSequenceMatched
	EventError           = domain.EventError
	EventConfigLoaded    = domain.EventConfigLoaded
	EventConfigSaved     = domain.EventConfigSaved
	EventConfigChanged   = domain.EventConfigChanged
	EventAppReady        = domain.EventAppReady
)

// Re-export domain event types
type KeyPressedEvent = domain.KeyPressedEvent
type SequenceMatchedEvent = domain.SequenceMatchedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ConfigChangedEvent = domain.ConfigChangedEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// subscription ties a handler to a removable id
type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Dispatch is synchronous: Publish calls every subscribed handler in
// subscription order on the caller's goroutine before returning, so
// key presses are always processed in delivery order and a returned
// unsubscribe function takes effect immediately.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   int
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventKeyPressed:
		// Don't log individual key presses as they're too frequent
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	b.mu.RLock()
	subs := b.handlers[event.Type()]
	// Make a copy so handlers can unsubscribe while we iterate
	subsCopy := make([]subscription, len(subs))
	copy(subsCopy, subs)
	b.mu.RUnlock()

	for _, sub := range subsCopy {
		b.invoke(sub.handler, event)
	}
}

// invoke calls a single handler with panic recovery
func (b *bus) invoke(handler EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	handler(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	// Return unsubscribe function
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}
