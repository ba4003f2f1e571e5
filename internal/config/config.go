package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. ARENA_LOG_LEVEL.
const EnvPrefix = "ARENA"

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// VehicleConfig points at the vehicle descriptor. An empty path uses the
// built-in vehicle.
type VehicleConfig struct {
	Path       string  `mapstructure:"path"`
	WheelSpeed float64 `mapstructure:"wheelSpeed"`
}

type MovementConfig struct {
	MoveSpeed    float64 `mapstructure:"moveSpeed"`
	TurnSpeed    float64 `mapstructure:"turnSpeed"`
	KeyLimit     int     `mapstructure:"keyLimit"`
	ScaleByDelta bool    `mapstructure:"scaleByDelta"`
}

type CameraConfig struct {
	FOV       float64   `mapstructure:"fov"`
	Near      float64   `mapstructure:"near"`
	Far       float64   `mapstructure:"far"`
	Smoothing float64   `mapstructure:"smoothing"`
	Offset    []float64 `mapstructure:"offset"`
}

// ArenaConfig selects the obstacle source: a .yaml/.yml descriptor, an
// image layout, or the default square pen when Path is empty.
type ArenaConfig struct {
	Path     string  `mapstructure:"path"`
	CellSize float64 `mapstructure:"cellSize"`
	Height   float64 `mapstructure:"wallHeight"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is the whole program configuration.
type Config struct {
	Log      LogConfig           `mapstructure:"log"`
	Window   WindowConfig        `mapstructure:"window"`
	Vehicle  VehicleConfig       `mapstructure:"vehicle"`
	Movement MovementConfig      `mapstructure:"movement"`
	Camera   CameraConfig        `mapstructure:"camera"`
	Arena    ArenaConfig         `mapstructure:"arena"`
	Controls map[string][]string `mapstructure:"controls"`
	Metrics  MetricsConfig       `mapstructure:"metrics"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")

	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Arena Drive")

	v.SetDefault("vehicle.path", "")
	v.SetDefault("vehicle.wheelSpeed", 0.005)

	v.SetDefault("movement.moveSpeed", 0.2)
	v.SetDefault("movement.turnSpeed", 0.01)
	v.SetDefault("movement.keyLimit", 3)
	v.SetDefault("movement.scaleByDelta", false)

	v.SetDefault("camera.fov", 70.0)
	v.SetDefault("camera.near", 0.1)
	v.SetDefault("camera.far", 100.0)
	v.SetDefault("camera.smoothing", 0.1)
	v.SetDefault("camera.offset", []float64{0, 3, 10})

	v.SetDefault("arena.path", "")
	v.SetDefault("arena.cellSize", 0.5)
	v.SetDefault("arena.wallHeight", 2.0)

	v.SetDefault("controls.forward", []string{"W", "ArrowUp"})
	v.SetDefault("controls.backward", []string{"S", "ArrowDown"})
	v.SetDefault("controls.left", []string{"A", "ArrowLeft"})
	v.SetDefault("controls.right", []string{"D", "ArrowRight"})

	v.SetDefault("metrics.enabled", false)
}

// Load reads configuration from path (YAML) on top of the defaults, then
// applies ARENA_* environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with no file and no environment.
// The defaults are static, so a decode failure is a programming error.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: decode defaults: %v", err))
	}
	return &cfg
}

// Validate checks ranges that would otherwise break the simulation.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Movement.KeyLimit < 1 {
		errs = append(errs, fmt.Errorf("movement.keyLimit must be at least 1, got %d", c.Movement.KeyLimit))
	}
	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("camera.smoothing must be in (0, 1], got %g", c.Camera.Smoothing))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes invalid: near %g far %g", c.Camera.Near, c.Camera.Far))
	}
	if len(c.Camera.Offset) != 3 {
		errs = append(errs, fmt.Errorf("camera.offset needs 3 components, got %d", len(c.Camera.Offset)))
	}
	if c.Arena.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("arena.cellSize must be positive, got %g", c.Arena.CellSize))
	}
	return errors.Join(errs...)
}
