package arena

import (
	"fmt"

	"arena-drive/internal/common"
)

// Default arena layout: a square pen of four walls.
const (
	DefaultHalfSize      = 20.0 // Wall centre lines sit at ±20 on x and z
	DefaultWallThickness = 1.0
	DefaultWallHeight    = 2.0
	DefaultWallSpan      = 40.0
)

// Obstacle is a static axis-aligned box on the ground plane.
type Obstacle struct {
	Center    common.Vec2
	HalfWidth float64 // Half extent along x
	HalfDepth float64 // Half extent along z
	Height    float64 // Drawing only; collisions ignore the vertical axis
}

// NewWall builds an obstacle from full width (x) and depth (z) extents.
func NewWall(x, z, width, depth, height float64) Obstacle {
	return Obstacle{
		Center:    common.Vec2{X: x, Z: z},
		HalfWidth: width / 2,
		HalfDepth: depth / 2,
		Height:    height,
	}
}

// Min returns the (x, z) corner with the smallest coordinates.
func (o Obstacle) Min() common.Vec2 {
	return o.Center.Sub(o.half())
}

// Max returns the (x, z) corner with the largest coordinates.
func (o Obstacle) Max() common.Vec2 {
	return o.Center.Add(o.half())
}

func (o Obstacle) half() common.Vec2 {
	return common.Vec2{X: o.HalfWidth, Z: o.HalfDepth}
}

func (o Obstacle) validate() error {
	if o.HalfWidth <= 0 || o.HalfDepth <= 0 {
		return fmt.Errorf("obstacle at (%.2f, %.2f) has non-positive extent", o.Center.X, o.Center.Z)
	}
	return nil
}

// Registry holds the arena's obstacles. It is built once and never
// mutated afterwards; a nil Registry behaves as an empty arena.
type Registry struct {
	obstacles []Obstacle
}

// NewRegistry validates and copies the obstacles.
func NewRegistry(obstacles ...Obstacle) (*Registry, error) {
	for _, o := range obstacles {
		if err := o.validate(); err != nil {
			return nil, err
		}
	}
	owned := make([]Obstacle, len(obstacles))
	copy(owned, obstacles)
	return &Registry{obstacles: owned}, nil
}

// All returns the obstacles in registration order. Callers must not modify
// the returned slice.
func (r *Registry) All() []Obstacle {
	if r == nil {
		return nil
	}
	return r.obstacles
}

// Len returns the number of obstacles.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.obstacles)
}

// SquareWalls returns four walls enclosing a square of the given half size.
func SquareWalls(halfSize, thickness, span, height float64) []Obstacle {
	return []Obstacle{
		NewWall(-halfSize, 0, thickness, span, height),
		NewWall(halfSize, 0, thickness, span, height),
		NewWall(0, -halfSize, span, thickness, height),
		NewWall(0, halfSize, span, thickness, height),
	}
}

// Default returns the standard square pen.
func Default() *Registry {
	r, _ := NewRegistry(SquareWalls(DefaultHalfSize, DefaultWallThickness, DefaultWallSpan, DefaultWallHeight)...)
	return r
}
