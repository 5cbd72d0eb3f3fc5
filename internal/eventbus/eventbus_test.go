package eventbus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"konamikey/internal/domain"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	b := New()

	var got []string
	b.Subscribe(EventKeyPressed, func(e DomainEvent) {
		got = append(got, "first")
	})
	b.Subscribe(EventKeyPressed, func(e DomainEvent) {
		got = append(got, "second")
	})

	b.Publish(KeyPressedEvent{Key: "a"})

	require.Equal(t, []string{"first", "second"}, got, "handlers should run synchronously in subscription order")
}

func TestPublishDeliversEventsInOrder(t *testing.T) {
	b := New()

	var keys []string
	b.Subscribe(EventKeyPressed, func(e DomainEvent) {
		keys = append(keys, e.(KeyPressedEvent).Key)
	})

	for _, k := range []string{"up", "up", "down", "down"} {
		b.Publish(KeyPressedEvent{Key: k})
	}

	require.Equal(t, []string{"up", "up", "down", "down"}, keys)
}

func TestSubscribeFiltersByEventType(t *testing.T) {
	b := New()

	matched := 0
	b.Subscribe(EventSequenceMatched, func(e DomainEvent) {
		matched++
	})

	b.Publish(KeyPressedEvent{Key: "a"})
	b.Publish(SequenceMatchedEvent{Combo: "konami"})
	b.Publish(domain.ConfigSavedEvent{})

	require.Equal(t, 1, matched)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()

	calls := 0
	unsubscribe := b.Subscribe(EventKeyPressed, func(e DomainEvent) {
		calls++
	})

	b.Publish(KeyPressedEvent{Key: "a"})
	unsubscribe()
	b.Publish(KeyPressedEvent{Key: "a"})
	b.Publish(KeyPressedEvent{Key: "b"})

	require.Equal(t, 1, calls, "no deliveries after unsubscribe")
}

func TestUnsubscribeRemovesOnlyItsHandler(t *testing.T) {
	b := New()

	var first, second int
	unsubFirst := b.Subscribe(EventKeyPressed, func(e DomainEvent) { first++ })
	b.Subscribe(EventKeyPressed, func(e DomainEvent) { second++ })

	unsubFirst()
	b.Publish(KeyPressedEvent{Key: "a"})

	require.Equal(t, 0, first)
	require.Equal(t, 1, second)
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New()

	delivered := false
	b.Subscribe(EventKeyPressed, func(e DomainEvent) {
		panic("boom")
	})
	b.Subscribe(EventKeyPressed, func(e DomainEvent) {
		delivered = true
	})

	require.NotPanics(t, func() {
		b.Publish(KeyPressedEvent{Key: "a"})
	})
	require.True(t, delivered, "later handlers still run after a panicking handler")
}
