package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	"konamikey/internal/eventbus"
)

func TestRecorderRecordsMatches(t *testing.T) {
	bus := eventbus.New()
	rec := NewRecorder(bus)

	require.Zero(t, rec.Count())

	bus.Publish(eventbus.SequenceMatchedEvent{Combo: "konami"})
	bus.Publish(eventbus.SequenceMatchedEvent{Combo: "secret"})
	bus.Publish(eventbus.SequenceMatchedEvent{Combo: "konami"})

	require.Equal(t, 3, rec.Count())
	require.Equal(t, 2, rec.CountFor("konami"))
	require.Equal(t, 1, rec.CountFor("secret"))
	require.Zero(t, rec.CountFor("missing"))

	records := rec.Records()
	require.Len(t, records, 3)
	require.Equal(t, "konami", records[0].Combo)
	require.Equal(t, "secret", records[1].Combo)
	require.Equal(t, "konami", records[2].Combo)
	require.False(t, records[0].At.IsZero())
}

func TestRecorderRecordsIsACopy(t *testing.T) {
	bus := eventbus.New()
	rec := NewRecorder(bus)

	bus.Publish(eventbus.SequenceMatchedEvent{Combo: "konami"})

	records := rec.Records()
	records[0].Combo = "mutated"
	require.Equal(t, "konami", rec.Records()[0].Combo)
}

func TestRecorderIgnoresOtherEvents(t *testing.T) {
	bus := eventbus.New()
	rec := NewRecorder(bus)

	bus.Publish(eventbus.KeyPressedEvent{Key: "up"})
	bus.Publish(eventbus.AppReadyEvent{})

	require.Zero(t, rec.Count())
}

func TestRecorderClear(t *testing.T) {
	bus := eventbus.New()
	rec := NewRecorder(bus)

	bus.Publish(eventbus.SequenceMatchedEvent{Combo: "konami"})
	require.Equal(t, 1, rec.Count())

	rec.Clear()
	require.Zero(t, rec.Count())
	require.Empty(t, rec.Records())

	bus.Publish(eventbus.SequenceMatchedEvent{Combo: "konami"})
	require.Equal(t, 1, rec.Count())
}
