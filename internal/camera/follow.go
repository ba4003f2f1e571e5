package camera

import (
	"math"

	"arena-drive/internal/common"
	"arena-drive/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

// Rig defaults
const (
	DefaultFOV       = 70.0 // Degrees, vertical
	DefaultNear      = 0.1
	DefaultFar       = 100.0
	DefaultSmoothing = 0.1 // Fraction of the remaining gap closed per tick
	DefaultStartZ    = 5.0
)

// DefaultOffset places the camera 3 units up and 10 behind the vehicle,
// in vehicle space.
var DefaultOffset = mgl64.Vec3{0, 3, 10}

// Rig is the follow camera. Only Follow moves it.
type Rig struct {
	Position  mgl64.Vec3
	Target    mgl64.Vec3 // Look-at point
	Offset    mgl64.Vec3 // Vehicle-local offset of the desired position
	Smoothing float64

	FOV    float64 // Degrees
	Near   float64
	Far    float64
	Aspect float64
}

// NewRig returns a rig with the stock lens, parked at (0, 0, DefaultStartZ)
// looking at the origin.
func NewRig(width, height int) *Rig {
	r := &Rig{
		Position:  mgl64.Vec3{0, 0, DefaultStartZ},
		Offset:    DefaultOffset,
		Smoothing: DefaultSmoothing,
		FOV:       DefaultFOV,
		Near:      DefaultNear,
		Far:       DefaultFar,
		Aspect:    1,
	}
	r.SetAspect(width, height)
	return r
}

// SetAspect updates the projection aspect ratio after a resize.
// Degenerate sizes are ignored.
func (r *Rig) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.Aspect = float64(width) / float64(height)
}

// Desired returns where the camera wants to be for the vehicle's current pose.
func (r *Rig) Desired(v *physics.Vehicle) mgl64.Vec3 {
	t := v.Transform()
	return t.Position.Add(t.ToWorld(r.Offset))
}

// Follow eases the camera toward its desired position and points it at the
// vehicle. The position converges geometrically and never snaps; the look-at
// is exact every tick. A nil vehicle leaves the rig untouched.
func (r *Rig) Follow(v *physics.Vehicle) {
	if v == nil {
		return
	}
	r.Position = common.Lerp3(r.Position, r.Desired(v), r.Smoothing)
	r.Target = v.Position()
}

// View returns the world-to-camera matrix.
func (r *Rig) View() mgl64.Mat4 {
	return mgl64.LookAtV(r.Position, r.Target, common.YAxis)
}

// Projection returns the perspective matrix.
func (r *Rig) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(r.FOV), r.Aspect, r.Near, r.Far)
}

// Project maps a world point to pixel coordinates on a width x height
// screen. ok is false for points behind the near plane or beyond the far
// plane.
func (r *Rig) Project(p mgl64.Vec3, width, height int) (x, y float64, ok bool) {
	clip := r.Projection().Mul4(r.View()).Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= r.Near {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() > 1 || math.IsNaN(ndc.X()) {
		return 0, 0, false
	}
	x = (ndc.X() + 1) / 2 * float64(width)
	y = (1 - ndc.Y()) / 2 * float64(height)
	return x, y, true
}
