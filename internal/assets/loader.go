package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"arena-drive/internal/arena"
	"arena-drive/internal/common"
	"arena-drive/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Stock vehicle, used when no descriptor is configured.
const (
	DefaultVehicleName   = "ferrari"
	DefaultVehicleWidth  = 2.0
	DefaultVehicleLength = 4.5
	DefaultBodyColor     = "#c00000"
)

// DefaultWheels are the wheel sub-object names the animator spins.
var DefaultWheels = []string{"wheel_fl", "wheel_fr", "wheel_rl", "wheel_rr"}

// SpawnConfig is the vehicle's starting pose.
type SpawnConfig struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Z   float64 `yaml:"z"`
	Yaw float64 `yaml:"yaw"`
}

// VehicleFile is the YAML vehicle descriptor.
type VehicleFile struct {
	Name   string      `yaml:"name"`
	Width  float64     `yaml:"width"`
	Length float64     `yaml:"length"`
	Color  string      `yaml:"color,omitempty"`
	Spawn  SpawnConfig `yaml:"spawn"`
	Wheels []string    `yaml:"wheels"`
}

// Build validates the descriptor and creates the vehicle.
func (f VehicleFile) Build() (*physics.Vehicle, error) {
	spawn := physics.Transform{
		Position: mgl64.Vec3{f.Spawn.X, f.Spawn.Y, f.Spawn.Z},
		Yaw:      f.Spawn.Yaw,
	}
	v, err := physics.NewVehicle(f.Name, spawn, physics.Footprint{Width: f.Width, Length: f.Length}, f.Wheels...)
	if err != nil {
		return nil, err
	}

	v.BodyColor = DefaultBodyColor
	if f.Color != "" {
		if _, err := common.ParseHexColor(f.Color); err != nil {
			return nil, fmt.Errorf("vehicle %q: %w", f.Name, err)
		}
		v.BodyColor = f.Color
	}
	return v, nil
}

// DecodeVehicle reads a vehicle descriptor.
func DecodeVehicle(r io.Reader) (*physics.Vehicle, error) {
	var f VehicleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode vehicle: %w", err)
	}
	return f.Build()
}

// DefaultVehicle returns the stock vehicle at the origin.
func DefaultVehicle() *physics.Vehicle {
	v, _ := VehicleFile{
		Name:   DefaultVehicleName,
		Width:  DefaultVehicleWidth,
		Length: DefaultVehicleLength,
		Wheels: DefaultWheels,
	}.Build()
	return v
}

// VehicleSource produces the vehicle handle.
type VehicleSource func(ctx context.Context) (*physics.Vehicle, error)

// ArenaSource produces the obstacle registry.
type ArenaSource func(ctx context.Context) (*arena.Registry, error)

// VehicleFromFile loads a descriptor from disk; an empty path yields the
// stock vehicle.
func VehicleFromFile(path string) VehicleSource {
	return func(ctx context.Context) (*physics.Vehicle, error) {
		if path == "" {
			return DefaultVehicle(), nil
		}
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open vehicle: %w", err)
		}
		defer file.Close()
		return DecodeVehicle(file)
	}
}

// ArenaFromFile picks a loader by extension: .yaml/.yml descriptors,
// anything else is treated as a layout image. An empty path yields the
// default square pen.
func ArenaFromFile(path string, cellSize, wallHeight float64) ArenaSource {
	return func(ctx context.Context) (*arena.Registry, error) {
		switch ext := strings.ToLower(filepath.Ext(path)); {
		case path == "":
			return arena.Default(), nil
		case ext == ".yaml" || ext == ".yml":
			reg, err := arena.LoadYAMLFile(path)
			if err != nil {
				return nil, fmt.Errorf("load arena: %w", err)
			}
			return reg, nil
		default:
			reg, _, err := arena.LoadImage(path, cellSize, wallHeight)
			if err != nil {
				return nil, fmt.Errorf("load arena image: %w", err)
			}
			return reg, nil
		}
	}
}

// Result is the one-shot outcome of Load.
type Result struct {
	Vehicle   *physics.Vehicle
	Obstacles *arena.Registry
	Err       error
}

// Load runs both sources concurrently and delivers exactly one Result on
// the returned channel, then closes it. On error neither handle is set.
func Load(ctx context.Context, vehicles VehicleSource, arenas ArenaSource) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		defer close(out)

		var (
			vehicle *physics.Vehicle
			reg     *arena.Registry
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			v, err := vehicles(gctx)
			if err != nil {
				return err
			}
			vehicle = v
			return nil
		})
		g.Go(func() error {
			r, err := arenas(gctx)
			if err != nil {
				return err
			}
			reg = r
			return nil
		})

		if err := g.Wait(); err != nil {
			out <- Result{Err: err}
			return
		}
		out <- Result{Vehicle: vehicle, Obstacles: reg}
	}()

	return out
}
