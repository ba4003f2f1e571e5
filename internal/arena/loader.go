package arena

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WallConfig is one wall entry in an arena descriptor.
type WallConfig struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Width  float64 `yaml:"width"`
	Depth  float64 `yaml:"depth"`
	Height float64 `yaml:"height,omitempty"`
}

// File is the YAML arena descriptor.
type File struct {
	Name  string       `yaml:"name,omitempty"`
	Walls []WallConfig `yaml:"walls"`
}

// LoadYAML decodes an arena descriptor into a registry.
func LoadYAML(r io.Reader) (*Registry, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode arena: %w", err)
	}

	obstacles := make([]Obstacle, 0, len(f.Walls))
	for _, w := range f.Walls {
		h := w.Height
		if h == 0 {
			h = DefaultWallHeight
		}
		obstacles = append(obstacles, NewWall(w.X, w.Z, w.Width, w.Depth, h))
	}
	reg, err := NewRegistry(obstacles...)
	if err != nil {
		return nil, fmt.Errorf("arena %q: %w", f.Name, err)
	}
	return reg, nil
}

// WriteYAML encodes obstacles as an arena descriptor.
func WriteYAML(w io.Writer, name string, obstacles []Obstacle) error {
	f := File{Name: name, Walls: make([]WallConfig, 0, len(obstacles))}
	for _, o := range obstacles {
		f.Walls = append(f.Walls, WallConfig{
			X:      o.Center.X,
			Z:      o.Center.Z,
			Width:  o.HalfWidth * 2,
			Depth:  o.HalfDepth * 2,
			Height: o.Height,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode arena: %w", err)
	}
	return enc.Close()
}

// LoadYAMLFile opens path and decodes it with LoadYAML.
func LoadYAMLFile(path string) (*Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadYAML(file)
}

// GridFromImage decodes a layout image into a Grid.
func GridFromImage(r io.Reader) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode arena image: %w", err)
	}

	bounds := img.Bounds()
	grid := NewGrid(bounds.Dx(), bounds.Dy())
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			grid.Cells[x][y] = ColorToCellType(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return grid, nil
}

// LoadImage loads a layout image and converts its dark pixels to walls.
func LoadImage(path string, cellSize, height float64) (*Registry, *Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	grid, err := GridFromImage(file)
	if err != nil {
		return nil, nil, err
	}
	reg, err := NewRegistry(grid.Obstacles(cellSize, height)...)
	if err != nil {
		return nil, nil, err
	}
	return reg, grid, nil
}
