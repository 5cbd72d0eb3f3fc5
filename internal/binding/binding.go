// Package binding connects a live key-press stream to a sequence
// matcher and a caller-supplied callback.
package binding

import (
	"fmt"

	"konamikey/internal/konami"
)

// KeySource is a stream of key presses a binding can subscribe to.
// SubscribeKeys registers the handler and returns a cancel function
// that removes it; after cancel returns the handler is never called
// again.
type KeySource interface {
	SubscribeKeys(handler func(key string)) func()
}

// Binding feeds every key press from a source into a sequence matcher
// and invokes the callback when the full sequence has been typed.
//
// The subscription is a scoped resource: Activate acquires it and
// Deactivate releases it, so a discarded binding never leaves a
// listener behind. Like the matcher it drives, a Binding belongs to a
// single event loop and is not safe for concurrent use.
type Binding struct {
	matcher  *konami.Matcher
	callback func()
	cancel   func()
}

// New creates a binding for the given keys and callback.
// keys accepts a single key or a list of keys (see konami.Keys).
func New(keys any, callback func()) (*Binding, error) {
	seq, err := konami.Keys(keys)
	if err != nil {
		return nil, err
	}
	matcher, err := konami.NewMatcher(seq)
	if err != nil {
		return nil, err
	}
	if callback == nil {
		return nil, fmt.Errorf("binding: callback must not be nil")
	}
	return &Binding{matcher: matcher, callback: callback}, nil
}

// Activate subscribes the binding to the key source.
// At most one subscription exists per binding; activating an already
// active binding is an error.
func (b *Binding) Activate(src KeySource) error {
	if b.cancel != nil {
		return fmt.Errorf("binding: already active")
	}
	b.cancel = src.SubscribeKeys(b.feed)
	return nil
}

// Deactivate releases the subscription. The callback is never invoked
// after Deactivate returns. Deactivating an inactive binding is a no-op.
func (b *Binding) Deactivate() {
	if b.cancel == nil {
		return
	}
	b.cancel()
	b.cancel = nil
	b.matcher.Reset()
}

// Active reports whether the binding currently holds a subscription
func (b *Binding) Active() bool {
	return b.cancel != nil
}

// SetSequence replaces the configured key sequence with a fresh
// matcher. Partial progress against the old sequence is discarded and
// the existing subscription, if any, is kept as-is.
func (b *Binding) SetSequence(keys any) error {
	seq, err := konami.Keys(keys)
	if err != nil {
		return err
	}
	matcher, err := konami.NewMatcher(seq)
	if err != nil {
		return err
	}
	b.matcher = matcher
	return nil
}

// Progress returns the current match progress and the sequence length
func (b *Binding) Progress() (int, int) {
	return b.matcher.Progress(), b.matcher.Len()
}

// Sequence returns a copy of the configured key sequence
func (b *Binding) Sequence() []string {
	return b.matcher.Sequence()
}

// feed forwards one key press to the matcher and fires the callback
// on a completed match
func (b *Binding) feed(key string) {
	if b.matcher.Feed(key) {
		b.callback()
	}
}
