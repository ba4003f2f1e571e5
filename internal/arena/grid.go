package arena

import (
	"image/color"

	"arena-drive/internal/common"
)

// CellType represents the surface of one layout pixel.
type CellType int

const (
	CellFloor CellType = iota
	CellWall
	CellSpawn // Optional marker for where the vehicle starts
)

// Grid is the discretized arena layout, indexed Cells[x][y].
type Grid struct {
	Width, Height int
	Cells         [][]CellType
}

// NewGrid creates a new grid of the specified size, all floor.
func NewGrid(width, height int) *Grid {
	cells := make([][]CellType, width)
	for i := range cells {
		cells[i] = make([]CellType, height)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// Get returns the cell at (x, y). Out of bounds reads as floor so the
// layout border is whatever the image draws.
func (g *Grid) Get(x, y int) CellType {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return CellFloor
	}
	return g.Cells[x][y]
}

// ColorToCellType maps a pixel color to a cell type.
// Dark pixels are walls, saturated red marks the spawn, everything else is floor.
func ColorToCellType(c color.Color) CellType {
	r, g, b, a := c.RGBA()
	if a>>8 < 128 {
		return CellFloor
	}
	r8, g8, b8 := r>>8, g>>8, b>>8

	if r8 > 200 && g8 < 100 && b8 < 100 {
		return CellSpawn
	}
	if r8 < 80 && g8 < 80 && b8 < 80 {
		return CellWall
	}
	return CellFloor
}

type cellRect struct {
	x0, y0, x1, y1 int // half-open
}

// wallRects merges wall cells into a small set of disjoint rectangles.
// Each row run is grown downward while the rows below repeat it exactly.
func (g *Grid) wallRects() []cellRect {
	used := make([][]bool, g.Width)
	for i := range used {
		used[i] = make([]bool, g.Height)
	}
	free := func(x, y int) bool {
		return g.Get(x, y) == CellWall && !used[x][y]
	}

	var rects []cellRect
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !free(x, y) {
				continue
			}

			// 1. Extend the run to the right
			x1 := x
			for x1 < g.Width && free(x1, y) {
				x1++
			}

			// 2. Grow downward while the whole run is free wall
			y1 := y + 1
		grow:
			for y1 < g.Height {
				for cx := x; cx < x1; cx++ {
					if !free(cx, y1) {
						break grow
					}
				}
				y1++
			}

			for cx := x; cx < x1; cx++ {
				for cy := y; cy < y1; cy++ {
					used[cx][cy] = true
				}
			}
			rects = append(rects, cellRect{x, y, x1, y1})
			x = x1 - 1
		}
	}
	return rects
}

// CellBox converts the half-open pixel rectangle [x0,x1)x[y0,y1) of a
// width x height layout to a world-space wall. The layout centre maps to
// the world origin and layout +y maps to world +z.
func CellBox(x0, y0, x1, y1, width, height int, cellSize, wallHeight float64) Obstacle {
	center := common.Vec2{
		X: float64(x0+x1)/2 - float64(width)/2,
		Z: float64(y0+y1)/2 - float64(height)/2,
	}.Scale(cellSize)
	return NewWall(center.X, center.Z, float64(x1-x0)*cellSize, float64(y1-y0)*cellSize, wallHeight)
}

// Obstacles converts the wall cells to world-space boxes, each cell
// cellSize world units wide.
func (g *Grid) Obstacles(cellSize, height float64) []Obstacle {
	rects := g.wallRects()
	out := make([]Obstacle, 0, len(rects))
	for _, r := range rects {
		out = append(out, CellBox(r.x0, r.y0, r.x1, r.y1, g.Width, g.Height, cellSize, height))
	}
	return out
}

// Spawn returns the world position of the first spawn marker, if any.
func (g *Grid) Spawn(cellSize float64) (x, z float64, ok bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[x][y] == CellSpawn {
				wx := (float64(x) + 0.5 - float64(g.Width)/2) * cellSize
				wz := (float64(y) + 0.5 - float64(g.Height)/2) * cellSize
				return wx, wz, true
			}
		}
	}
	return 0, 0, false
}
