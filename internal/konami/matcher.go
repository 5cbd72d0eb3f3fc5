package konami

import "fmt"

// ErrEmptySequence is returned when a matcher is constructed without any keys
var ErrEmptySequence = fmt.Errorf("konami: sequence must contain at least one key")

// Matcher recognizes one fixed key sequence in a stream of key presses.
// It holds a cursor into the configured sequence: the number of
// consecutive correct keys seen so far. A wrong key resets the cursor
// to the start and the wrong key itself is discarded, not re-checked
// against the first position. Completing the sequence also resets the
// cursor, so the same sequence can be matched again immediately.
//
// A Matcher is not safe for concurrent use; it is meant to be driven
// from a single event loop.
type Matcher struct {
	seq   []string
	index int
}

// NewMatcher creates a matcher for the given key sequence
func NewMatcher(keys []string) (*Matcher, error) {
	if len(keys) == 0 {
		return nil, ErrEmptySequence
	}
	seq := make([]string, len(keys))
	copy(seq, keys)
	return &Matcher{seq: seq}, nil
}

// Feed consumes one key press and reports whether it completed the sequence
func (m *Matcher) Feed(key string) bool {
	if key != m.seq[m.index] {
		m.index = 0
		return false
	}
	if m.index == len(m.seq)-1 {
		m.index = 0
		return true
	}
	m.index++
	return false
}

// Progress returns how many consecutive keys have matched so far
func (m *Matcher) Progress() int {
	return m.index
}

// Len returns the length of the configured sequence
func (m *Matcher) Len() int {
	return len(m.seq)
}

// Reset clears any partial match progress
func (m *Matcher) Reset() {
	m.index = 0
}

// Sequence returns a copy of the configured key sequence
func (m *Matcher) Sequence() []string {
	seq := make([]string, len(m.seq))
	copy(seq, m.seq)
	return seq
}
