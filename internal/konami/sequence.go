package konami

import (
	"fmt"
	"strings"
)

// Code is the classic cheat sequence, in the key symbols the terminal
// layer reports (bubbletea's KeyMsg.String() names)
var Code = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a", "enter"}

// Keys normalizes a configured key value into a key sequence.
// The configuration surface accepts either a single key or a list of
// keys; a bare string becomes a one-element sequence. TOML decoding
// hands list values over as []interface{}, which is accepted as long
// as every element is a string.
func Keys(v any) ([]string, error) {
	switch val := v.(type) {
	case string:
		if val == "" {
			return nil, ErrEmptySequence
		}
		return []string{val}, nil
	case []string:
		if len(val) == 0 {
			return nil, ErrEmptySequence
		}
		keys := make([]string, len(val))
		copy(keys, val)
		return keys, nil
	case []any:
		if len(val) == 0 {
			return nil, ErrEmptySequence
		}
		keys := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("konami: key must be a string, got %T", item)
			}
			keys = append(keys, s)
		}
		return keys, nil
	case nil:
		return nil, ErrEmptySequence
	default:
		return nil, fmt.Errorf("konami: keys must be a string or a list of strings, got %T", v)
	}
}

// ParseSequence splits a space-separated key list into a sequence.
// Example: "up up down down left right left right b a enter"
func ParseSequence(s string) []string {
	return strings.Fields(s)
}
