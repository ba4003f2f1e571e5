package physics

import (
	"arena-drive/internal/arena"
	"arena-drive/internal/common"

	"github.com/go-gl/mathgl/mgl64"
)

// IsBlocked reports whether a footprint centred at position overlaps any
// obstacle on the ground plane. The vertical axis is ignored and boxes that
// only touch along an edge do not overlap. No obstacles means never blocked.
func IsBlocked(position mgl64.Vec3, fp Footprint, obstacles []arena.Obstacle) bool {
	p := common.Flat(position)
	halfW := fp.Width / 2
	halfL := fp.Length / 2

	for _, o := range obstacles {
		if p.X-halfW < o.Center.X+o.HalfWidth &&
			p.X+halfW > o.Center.X-o.HalfWidth &&
			p.Z-halfL < o.Center.Z+o.HalfDepth &&
			p.Z+halfL > o.Center.Z-o.HalfDepth {
			return true
		}
	}
	return false
}

// Corners returns the footprint's four ground-plane corners in world space,
// rotated by the vehicle heading. Used for drawing; collisions stay
// axis-aligned.
func Corners(t Transform, fp Footprint) [4]mgl64.Vec3 {
	halfW := fp.Width / 2
	halfL := fp.Length / 2

	// Local corner offsets
	offsets := [4]mgl64.Vec3{
		{halfW, 0, -halfL},  // Front Right
		{-halfW, 0, -halfL}, // Front Left
		{-halfW, 0, halfL},  // Rear Left
		{halfW, 0, halfL},   // Rear Right
	}

	var out [4]mgl64.Vec3
	for i, off := range offsets {
		out[i] = t.Position.Add(t.ToWorld(off))
	}
	return out
}
