package physics

import (
	"errors"
	"fmt"

	"arena-drive/internal/common"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is the vehicle pose. Orientation is a yaw about +Y only;
// the angle is unbounded and only meaningful modulo 2π.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64 // Radians
}

// Rotation returns the orientation as a quaternion.
func (t Transform) Rotation() mgl64.Quat {
	return common.YawRotation(t.Yaw)
}

// ToWorld rotates a vehicle-local vector into world space.
func (t Transform) ToWorld(local mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation().Rotate(local)
}

// Footprint is the vehicle's ground-plane bounding box, measured once from
// its geometry. Width runs along x, Length along z.
type Footprint struct {
	Width  float64
	Length float64
}

var ErrInvalidFootprint = errors.New("footprint must have positive width and length")

// Wheel is a named decorative sub-object spun by the animator.
type Wheel struct {
	Name string
	Spin float64 // Radians about the wheel's local x axis
}

// Vehicle is the controlled entity. Its transform is written only by Advance;
// everything else reads it through Transform.
type Vehicle struct {
	Name         string
	Controllable bool
	BodyColor    string // #rrggbb

	transform Transform
	footprint Footprint
	wheels    []*Wheel
}

// NewVehicle builds a vehicle at the spawn transform.
func NewVehicle(name string, spawn Transform, fp Footprint, wheelNames ...string) (*Vehicle, error) {
	if fp.Width <= 0 || fp.Length <= 0 {
		return nil, fmt.Errorf("vehicle %q: %w", name, ErrInvalidFootprint)
	}
	wheels := make([]*Wheel, 0, len(wheelNames))
	for _, n := range wheelNames {
		wheels = append(wheels, &Wheel{Name: n})
	}
	return &Vehicle{
		Name:         name,
		Controllable: true,
		transform:    spawn,
		footprint:    fp,
		wheels:       wheels,
	}, nil
}

// Transform returns the current pose.
func (v *Vehicle) Transform() Transform {
	return v.transform
}

// Position returns the current world position.
func (v *Vehicle) Position() mgl64.Vec3 {
	return v.transform.Position
}

// Footprint returns the immutable collision footprint.
func (v *Vehicle) Footprint() Footprint {
	return v.footprint
}

// Wheels returns the wheel sub-objects.
func (v *Vehicle) Wheels() []*Wheel {
	return v.wheels
}
