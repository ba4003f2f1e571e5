package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatorSetActionIsIdempotent(t *testing.T) {
	agg := NewAggregator()

	agg.SetAction(ActionForward, true)
	agg.SetAction(ActionForward, true)

	assert.Equal(t, 1, agg.CountPressed())
	assert.True(t, agg.Pressed(ActionForward))

	agg.SetAction(ActionForward, false)
	agg.SetAction(ActionForward, false)

	assert.Equal(t, 0, agg.CountPressed())
}

func TestAggregatorIgnoresUnknownActions(t *testing.T) {
	agg := NewAggregator()

	agg.SetAction(ActionCount, true)
	agg.SetAction(Action(42), true)

	assert.Equal(t, 0, agg.CountPressed())
	assert.False(t, agg.Pressed(Action(42)))
}

func TestAggregatorResetAll(t *testing.T) {
	agg := NewAggregator()
	for a := ActionForward; a < ActionCount; a++ {
		agg.SetAction(a, true)
	}
	require.Equal(t, 4, agg.CountPressed())

	agg.ResetAll()

	assert.Equal(t, 0, agg.CountPressed())
	assert.Equal(t, ActionSet{}, agg.Snapshot())
}

func TestSnapshotIsDetached(t *testing.T) {
	agg := NewAggregator()
	agg.SetAction(ActionLeft, true)

	snap := agg.Snapshot()
	agg.SetAction(ActionLeft, false)
	agg.SetAction(ActionRight, true)

	assert.True(t, snap.Has(ActionLeft))
	assert.False(t, snap.Has(ActionRight))
	assert.Equal(t, 1, snap.Count())
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		want Action
		ok   bool
	}{
		{"forward", ActionForward, true},
		{"backward", ActionBackward, true},
		{"left", ActionLeft, true},
		{"right", ActionRight, true},
		{"jump", ActionCount, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAction(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "unknown", Action(9).String())
}

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		key  string
		want Action
	}{
		{"W", ActionForward},
		{"w", ActionForward},
		{"ArrowUp", ActionForward},
		{"S", ActionBackward},
		{"a", ActionLeft},
		{"ArrowRight", ActionRight},
	}
	for _, tt := range tests {
		got, ok := b.Lookup(tt.key)
		require.True(t, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}

	_, ok := b.Lookup("Q")
	assert.False(t, ok)
	assert.Len(t, b.Keys(), 8)
}

func TestNewBindingsRejectsConflicts(t *testing.T) {
	_, err := NewBindings(map[string][]string{
		"forward": {"W"},
		"left":    {"w"},
	})
	require.Error(t, err)

	_, err = NewBindings(map[string][]string{"jump": {"Space"}})
	require.Error(t, err)
}

func TestNilBindingsLookup(t *testing.T) {
	var b *Bindings
	_, ok := b.Lookup("W")
	assert.False(t, ok)
}
