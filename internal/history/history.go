package history

import (
	"sync"
	"time"

	"konamikey/internal/domain"
	"konamikey/internal/eventbus"
)

// Recorder keeps the session's match log
type Recorder interface {
	Records() []domain.MatchRecord
	Count() int
	CountFor(name string) int
	Clear()
}

// recorder is the concrete implementation
type recorder struct {
	bus     eventbus.EventBus
	mu      sync.RWMutex
	records []domain.MatchRecord
}

// NewRecorder creates a recorder fed by sequence-match events
func NewRecorder(bus eventbus.EventBus) Recorder {
	r := &recorder{bus: bus}

	bus.Subscribe(eventbus.EventSequenceMatched, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.SequenceMatchedEvent); ok {
			r.add(evt.Combo)
		}
	})

	return r
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, domain.MatchRecord{Combo: name, At: time.Now()})
}

// Records returns a copy of the match log in arrival order
func (r *recorder) Records() []domain.MatchRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.MatchRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Count returns the number of matches this session
func (r *recorder) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// CountFor returns the number of matches for one combo
func (r *recorder) CountFor(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, rec := range r.records {
		if rec.Combo == name {
			n++
		}
	}
	return n
}

// Clear empties the match log
func (r *recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}
