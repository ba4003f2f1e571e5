package main

import (
	"path/filepath"
	"testing"

	"arena-drive/internal/arena"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesTraceableLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pen.png")

	require.Equal(t, 0, run([]string{"--out", path, "--size", "20", "--border", "1", "--pillar", "2"}))

	reg, grid, err := arena.LoadImage(path, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, arena.CellWall, grid.Get(0, 0))
	assert.Equal(t, arena.CellSpawn, grid.Get(10, 10))
	assert.Equal(t, arena.CellWall, grid.Get(10, 5))
	assert.Greater(t, reg.Len(), 4)
}

func TestRunFailsOnUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "pen.png")

	assert.Equal(t, 1, run([]string{"--out", path}))
}
