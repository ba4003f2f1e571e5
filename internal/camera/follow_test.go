package camera

import (
	"math"
	"testing"

	"arena-drive/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vehicleAt(t *testing.T, pos mgl64.Vec3, yaw float64) *physics.Vehicle {
	t.Helper()
	v, err := physics.NewVehicle("car", physics.Transform{Position: pos, Yaw: yaw}, physics.Footprint{Width: 2, Length: 4})
	require.NoError(t, err)
	return v
}

func TestNewRig(t *testing.T) {
	r := NewRig(800, 600)

	assert.Equal(t, mgl64.Vec3{0, 0, 5}, r.Position)
	assert.InDelta(t, 800.0/600.0, r.Aspect, 1e-12)
	assert.Equal(t, DefaultOffset, r.Offset)

	r.SetAspect(0, 100)
	assert.InDelta(t, 800.0/600.0, r.Aspect, 1e-12)
}

func TestFollowNilVehicleIsNoop(t *testing.T) {
	r := NewRig(800, 600)
	before := *r

	r.Follow(nil)

	assert.Equal(t, before, *r)
}

func TestDesiredRotatesWithVehicle(t *testing.T) {
	r := NewRig(800, 600)

	tests := []struct {
		name string
		pos  mgl64.Vec3
		yaw  float64
		want mgl64.Vec3
	}{
		{"facing -z", mgl64.Vec3{}, 0, mgl64.Vec3{0, 3, 10}},
		{"facing +z", mgl64.Vec3{1, 0, 1}, math.Pi, mgl64.Vec3{1, 3, -9}},
		{"facing -x", mgl64.Vec3{}, math.Pi / 2, mgl64.Vec3{10, 3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Desired(vehicleAt(t, tt.pos, tt.yaw))
			assert.InDelta(t, tt.want.X(), got.X(), 1e-9)
			assert.InDelta(t, tt.want.Y(), got.Y(), 1e-9)
			assert.InDelta(t, tt.want.Z(), got.Z(), 1e-9)
		})
	}
}

func TestFollowEasesInsteadOfSnapping(t *testing.T) {
	r := NewRig(800, 600)
	start := r.Position
	v := vehicleAt(t, mgl64.Vec3{100, 0, -50}, 0)
	desired := r.Desired(v)

	r.Follow(v)

	want := start.Add(desired.Sub(start).Mul(0.1))
	assert.True(t, r.Position.ApproxEqualThreshold(want, 1e-9))
	assert.Equal(t, v.Position(), r.Target)
}

func TestFollowConvergesGeometrically(t *testing.T) {
	r := NewRig(800, 600)
	v := vehicleAt(t, mgl64.Vec3{4, 0, -7}, 0.8)
	desired := r.Desired(v)

	prev := r.Position.Sub(desired).Len()
	ticks := 0
	for prev > 1e-6 {
		r.Follow(v)
		d := r.Position.Sub(desired).Len()
		require.Less(t, d, prev)
		assert.InDelta(t, 0.9, d/prev, 1e-6)
		prev = d
		ticks++
		require.Less(t, ticks, 1000)
	}
}

func TestProjectCentersTarget(t *testing.T) {
	r := NewRig(800, 600)
	r.Follow(vehicleAt(t, mgl64.Vec3{}, 0))
	r.Position = mgl64.Vec3{0, 3, 10}

	x, y, ok := r.Project(mgl64.Vec3{}, 800, 600)
	require.True(t, ok)
	assert.InDelta(t, 400, x, 1e-6)
	assert.InDelta(t, 300, y, 1e-6)

	// right of the target lands right of centre
	x, _, ok = r.Project(mgl64.Vec3{1, 0, 0}, 800, 600)
	require.True(t, ok)
	assert.Greater(t, x, 400.0)

	_, _, ok = r.Project(mgl64.Vec3{0, 3, 20}, 800, 600)
	assert.False(t, ok)
}

func TestViewAndProjection(t *testing.T) {
	r := NewRig(800, 600)
	r.Target = mgl64.Vec3{}

	eye := r.View().Mul4x1(r.Position.Vec4(1))
	assert.True(t, eye.Vec3().ApproxEqualThreshold(mgl64.Vec3{}, 1e-9))

	proj := r.Projection()
	assert.False(t, math.IsNaN(proj.At(0, 0)))
}
