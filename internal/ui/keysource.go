package ui

import (
	"konamikey/internal/eventbus"
)

// KeyStream adapts the event bus to the binding.KeySource interface.
// The UI publishes one KeyPressedEvent per observed key press; combo
// bindings subscribe through a KeyStream and the unsubscribe function
// returned by the bus is the binding's release handle.
type KeyStream struct {
	bus eventbus.EventBus
}

// NewKeyStream creates a key stream backed by the event bus
func NewKeyStream(bus eventbus.EventBus) *KeyStream {
	return &KeyStream{bus: bus}
}

// SubscribeKeys registers a handler for every key press and returns
// the cancel function that removes it
func (s *KeyStream) SubscribeKeys(handler func(key string)) func() {
	return s.bus.Subscribe(eventbus.EventKeyPressed, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.KeyPressedEvent); ok {
			handler(evt.Key)
		}
	})
}
