// Package config loads the subtour TOML configuration.
//
// Example file:
//
//	[solver]
//	max_iterations = 100
//
//	[log]
//	level = "info"
//
//	[render]
//	width = 800
//	height = 800
//	point_radius = 5
//	line_width = 2
//
//	[metrics]
//	textfile = ""
//
// Missing sections keep their defaults. Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/subtour/tsp"
)

// ErrInvalid is returned by Validate (and Load) for out-of-range values.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full configuration tree.
type Config struct {
	Solver  Solver  `toml:"solver"`
	Log     Log     `toml:"log"`
	Render  Render  `toml:"render"`
	Metrics Metrics `toml:"metrics"`
}

// Solver tunes the iteration controller.
type Solver struct {
	MaxIterations int `toml:"max_iterations"`
}

// Log selects the logger level: debug, info, warn or error.
type Log struct {
	Level string `toml:"level"`
}

// Render sizes the image frames.
type Render struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	PointRadius float64 `toml:"point_radius"`
	LineWidth   float64 `toml:"line_width"`
}

// Metrics configures the Prometheus text-file export. Empty disables it.
type Metrics struct {
	Textfile string `toml:"textfile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver: Solver{MaxIterations: tsp.DefaultMaxIterations},
		Log:    Log{Level: "info"},
		Render: Render{Width: 800, Height: 800, PointRadius: 5, LineWidth: 2},
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, cfg)
}

// Parse decodes TOML data on top of base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	md, err := toml.Decode(string(data), &base)
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}

		return base, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}

	return base, base.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Solver.MaxIterations <= 0 {
		return fmt.Errorf("%w: solver.max_iterations must be positive, got %d", ErrInvalid, c.Solver.MaxIterations)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("%w: render size %dx%d", ErrInvalid, c.Render.Width, c.Render.Height)
	}
	if c.Render.PointRadius <= 0 || c.Render.LineWidth <= 0 {
		return fmt.Errorf("%w: render.point_radius and render.line_width must be positive", ErrInvalid)
	}

	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	return lvl, nil
}
