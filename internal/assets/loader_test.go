package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"arena-drive/internal/arena"
	"arena-drive/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vehicleYAML = `
name: roadster
width: 1.8
length: 4.2
color: "#00aa33"
spawn: {x: 1, y: 0, z: -3, yaw: 0.5}
wheels: [wheel_fl, wheel_fr]
`

func TestDecodeVehicle(t *testing.T) {
	v, err := DecodeVehicle(strings.NewReader(vehicleYAML))
	require.NoError(t, err)

	assert.Equal(t, "roadster", v.Name)
	assert.Equal(t, physics.Footprint{Width: 1.8, Length: 4.2}, v.Footprint())
	assert.Equal(t, mgl64.Vec3{1, 0, -3}, v.Position())
	assert.Equal(t, 0.5, v.Transform().Yaw)
	assert.Equal(t, "#00aa33", v.BodyColor)
	assert.Len(t, v.Wheels(), 2)
}

func TestDecodeVehicleErrors(t *testing.T) {
	tests := map[string]string{
		"bad footprint": "name: x\nwidth: 0\nlength: 2\n",
		"bad color":     "name: x\nwidth: 1\nlength: 2\ncolor: red\n",
		"unknown field": "name: x\nwidth: 1\nlength: 2\nmass: 1200\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeVehicle(strings.NewReader(src))
			require.Error(t, err)
		})
	}

	_, err := DecodeVehicle(strings.NewReader("name: x\nwidth: -1\nlength: 2\n"))
	assert.ErrorIs(t, err, physics.ErrInvalidFootprint)
}

func TestDefaultVehicle(t *testing.T) {
	v := DefaultVehicle()

	assert.Equal(t, DefaultVehicleName, v.Name)
	assert.Equal(t, DefaultBodyColor, v.BodyColor)
	assert.Len(t, v.Wheels(), 4)
	assert.Equal(t, mgl64.Vec3{}, v.Position())
}

func TestLoadDefaults(t *testing.T) {
	res := <-Load(context.Background(), VehicleFromFile(""), ArenaFromFile("", 1, 1))

	require.NoError(t, res.Err)
	assert.NotNil(t, res.Vehicle)
	assert.Equal(t, arena.Default().All(), res.Obstacles.All())
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	vehiclePath := filepath.Join(dir, "car.yaml")
	arenaPath := filepath.Join(dir, "pen.yml")
	require.NoError(t, os.WriteFile(vehiclePath, []byte(vehicleYAML), 0o644))
	require.NoError(t, os.WriteFile(arenaPath, []byte("walls:\n  - {x: 5, z: 0, width: 2, depth: 2}\n"), 0o644))

	res := <-Load(context.Background(), VehicleFromFile(vehiclePath), ArenaFromFile(arenaPath, 1, 1))

	require.NoError(t, res.Err)
	assert.Equal(t, "roadster", res.Vehicle.Name)
	assert.Equal(t, 1, res.Obstacles.Len())
}

func TestLoadDeliversExactlyOneResult(t *testing.T) {
	ch := Load(context.Background(), VehicleFromFile(""), ArenaFromFile("", 1, 1))

	_, ok := <-ch
	require.True(t, ok)

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed after one result")
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func TestLoadFailure(t *testing.T) {
	boom := errors.New("decoder unavailable")
	failing := func(ctx context.Context) (*physics.Vehicle, error) { return nil, boom }

	res := <-Load(context.Background(), failing, ArenaFromFile("", 1, 1))

	assert.ErrorIs(t, res.Err, boom)
	assert.Nil(t, res.Vehicle)
	assert.Nil(t, res.Obstacles)
}

func TestArenaFromMissingFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := ArenaFromFile(filepath.Join(dir, "missing.yaml"), 1, 1)(context.Background())
	assert.Error(t, err)

	_, err = ArenaFromFile(filepath.Join(dir, "missing.png"), 1, 1)(context.Background())
	assert.Error(t, err)

	_, err = VehicleFromFile(filepath.Join(dir, "missing.yaml"))(context.Background())
	assert.Error(t, err)
}
