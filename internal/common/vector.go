package common

import "github.com/go-gl/mathgl/mgl64"

// Vec2 is a point or direction on the ground plane (world x, world z).
type Vec2 struct {
	X, Z float64
}

// Flat drops the vertical component of a world-space vector.
func Flat(v mgl64.Vec3) Vec2 {
	return Vec2{X: v.X(), Z: v.Z()}
}

// Lift places the ground-plane point at height y.
func (v Vec2) Lift(y float64) mgl64.Vec3 {
	return mgl64.Vec3{v.X, y, v.Z}
}

// Add adds two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Z + other.Z}
}

// Sub subtracts other from v.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Z - other.Z}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Z * s}
}

// Lerp3 moves a toward b by fraction t. t=0 returns a, t=1 returns b.
func Lerp3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// YAxis is the world up vector; all vehicle rotation happens about it.
var YAxis = mgl64.Vec3{0, 1, 0}

// YawRotation returns the quaternion for a rotation of yaw radians about +Y.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, YAxis)
}
