package input

import (
	"fmt"
	"strings"
)

// Bindings maps key names, as reported by the window layer, to actions.
// Names are matched case-insensitively.
type Bindings struct {
	keys map[string]Action
}

// DefaultBindings returns WASD plus the arrow keys.
func DefaultBindings() *Bindings {
	b, _ := NewBindings(map[string][]string{
		"forward":  {"W", "ArrowUp"},
		"backward": {"S", "ArrowDown"},
		"left":     {"A", "ArrowLeft"},
		"right":    {"D", "ArrowRight"},
	})
	return b
}

// NewBindings builds a key table from action name -> key names.
// A key bound to two different actions is rejected.
func NewBindings(table map[string][]string) (*Bindings, error) {
	b := &Bindings{keys: make(map[string]Action)}
	for name, keys := range table {
		action, ok := ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		for _, key := range keys {
			k := NormalizeKey(key)
			if k == "" {
				continue
			}
			if prev, dup := b.keys[k]; dup && prev != action {
				return nil, fmt.Errorf("key %q bound to both %s and %s", key, prev, action)
			}
			b.keys[k] = action
		}
	}
	return b, nil
}

// Lookup returns the action bound to key. Unmapped keys report false.
func (b *Bindings) Lookup(key string) (Action, bool) {
	if b == nil {
		return ActionCount, false
	}
	a, ok := b.keys[NormalizeKey(key)]
	return a, ok
}

// Keys returns every bound key name (normalized).
func (b *Bindings) Keys() []string {
	out := make([]string, 0, len(b.keys))
	for k := range b.keys {
		out = append(out, k)
	}
	return out
}

// NormalizeKey is the form keys are stored and matched in.
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
