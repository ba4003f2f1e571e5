package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisabled(t *testing.T) {
	m, err := New(false)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		m.Record(context.Background(), "moved")
		m.Warning(context.Background(), "too_many_directions")
	})
}

func TestNewEnabledUsesGlobalProvider(t *testing.T) {
	m, err := New(true)
	require.NoError(t, err)
	assert.NotPanics(t, func() { m.Record(context.Background(), "idle") })
}

func TestNop(t *testing.T) {
	assert.NotNil(t, Nop())
}
