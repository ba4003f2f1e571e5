package scene

import (
	"image/color"
	"math"

	"arena-drive/internal/arena"
	"arena-drive/internal/common"
	"arena-drive/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind tags what an Item carries.
type Kind uint8

const (
	KindSolid     Kind = iota // Filled ground polygon
	KindWireframe             // Loose line segments
	KindGroup                 // Children only
)

// Segment is a world-space line.
type Segment [2]mgl64.Vec3

// Item is one renderable node. Only the fields for its Kind are set.
type Item struct {
	Kind  Kind
	Name  string
	Color color.RGBA

	Polygon  []mgl64.Vec3 // KindSolid
	Segments []Segment    // KindWireframe
	Children []Item       // KindGroup
}

// Walk visits the item and its descendants depth first.
func (it Item) Walk(fn func(Item)) {
	fn(it)
	for _, c := range it.Children {
		c.Walk(fn)
	}
}

// Scene colors
var (
	ColorFloor   = color.RGBA{60, 60, 60, 255}
	ColorWall    = color.RGBA{200, 200, 200, 255}
	ColorHeading = color.RGBA{255, 255, 0, 255}
	ColorWheel   = color.RGBA{30, 30, 30, 255}
	ColorSpoke   = color.RGBA{240, 240, 240, 255}
)

const (
	WheelRadius  = 0.35
	headingReach = 1.5 // Past the front bumper
	gridStep     = 5.0
)

// Box returns the 12 edges of an obstacle's bounding box, standing on y=0.
func Box(o arena.Obstacle) []Segment {
	lo, hi := o.Min(), o.Max()
	var bottom, top [4]mgl64.Vec3
	for i, c := range [4]common.Vec2{
		{X: lo.X, Z: lo.Z},
		{X: hi.X, Z: lo.Z},
		{X: hi.X, Z: hi.Z},
		{X: lo.X, Z: hi.Z},
	} {
		bottom[i] = c.Lift(0)
		top[i] = c.Lift(o.Height)
	}

	edges := make([]Segment, 0, 12)
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		edges = append(edges,
			Segment{bottom[i], bottom[j]},
			Segment{top[i], top[j]},
			Segment{bottom[i], top[i]},
		)
	}
	return edges
}

// Walls builds one wireframe item per obstacle.
func Walls(reg *arena.Registry) Item {
	group := Item{Kind: KindGroup, Name: "walls"}
	for _, o := range reg.All() {
		group.Children = append(group.Children, Item{
			Kind:     KindWireframe,
			Name:     "wall",
			Color:    ColorWall,
			Segments: Box(o),
		})
	}
	return group
}

// Floor draws a ground grid covering the given half extent.
func Floor(half float64) Item {
	floor := Item{Kind: KindWireframe, Name: "floor", Color: ColorFloor}
	for x := -half; x <= half+1e-9; x += gridStep {
		floor.Segments = append(floor.Segments,
			Segment{{x, 0, -half}, {x, 0, half}},
			Segment{{-half, 0, x}, {half, 0, x}},
		)
	}
	return floor
}

// wheelMounts gives the wheel hub positions in vehicle space, in the
// vehicle's wheel order: front left, front right, rear left, rear right.
func wheelMounts(fp physics.Footprint) []mgl64.Vec3 {
	halfW := fp.Width / 2
	axle := fp.Length/2 - WheelRadius*1.5
	return []mgl64.Vec3{
		{-halfW, WheelRadius, -axle},
		{halfW, WheelRadius, -axle},
		{-halfW, WheelRadius, axle},
		{halfW, WheelRadius, axle},
	}
}

// Wheel draws a hub ring and one spoke turned by the wheel's spin about
// the vehicle's x axis.
func Wheel(t physics.Transform, hub mgl64.Vec3, spin float64) Item {
	const sides = 8
	ring := make([]Segment, 0, sides+1)
	point := func(a float64) mgl64.Vec3 {
		local := hub.Add(mgl64.Vec3{0, WheelRadius * math.Cos(a), WheelRadius * math.Sin(a)})
		return t.Position.Add(t.ToWorld(local))
	}
	for i := 0; i < sides; i++ {
		a0 := 2 * math.Pi * float64(i) / sides
		a1 := 2 * math.Pi * float64(i+1) / sides
		ring = append(ring, Segment{point(a0), point(a1)})
	}
	center := t.Position.Add(t.ToWorld(hub))

	return Item{Kind: KindGroup, Name: "wheel", Children: []Item{
		{Kind: KindWireframe, Name: "rim", Color: ColorWheel, Segments: ring},
		{Kind: KindWireframe, Name: "spoke", Color: ColorSpoke, Segments: []Segment{{center, point(spin)}}},
	}}
}

// Vehicle builds the body footprint, heading marker and wheels.
func Vehicle(v *physics.Vehicle) Item {
	t := v.Transform()
	fp := v.Footprint()

	body, err := common.ParseHexColor(v.BodyColor)
	if err != nil {
		body = color.RGBA{255, 0, 0, 255}
	}
	corners := physics.Corners(t, fp)

	tip := t.Position.Add(t.ToWorld(mgl64.Vec3{0, 0, -(fp.Length/2 + headingReach)}))
	group := Item{Kind: KindGroup, Name: v.Name, Children: []Item{
		{Kind: KindSolid, Name: "body", Color: body, Polygon: corners[:]},
		{Kind: KindWireframe, Name: "heading", Color: ColorHeading, Segments: []Segment{{t.Position, tip}}},
	}}

	mounts := wheelMounts(fp)
	for i, w := range v.Wheels() {
		if w == nil || i >= len(mounts) {
			continue
		}
		wheel := Wheel(t, mounts[i], w.Spin)
		wheel.Name = w.Name
		group.Children = append(group.Children, wheel)
	}
	return group
}

// Build assembles everything drawn each frame. A nil vehicle draws only
// the arena.
func Build(v *physics.Vehicle, reg *arena.Registry) Item {
	root := Item{Kind: KindGroup, Name: "scene", Children: []Item{
		Floor(arena.DefaultHalfSize),
		Walls(reg),
	}}
	if v != nil {
		root.Children = append(root.Children, Vehicle(v))
	}
	return root
}
