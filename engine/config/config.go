// Package config loads the optional TOML configuration file and applies the
// hard limits the render loop depends on, most importantly the instance
// count range.
package config

import (
	"fmt"
	"os"

	"github.com/lp249839965/180622-WebGPU-Demos/common"
	"github.com/pelletier/go-toml/v2"
)

// Instance count limits. Runtime adjustments move in CountStep increments
// and never leave [CountMin, CountMax].
const (
	CountMin  = 1000
	CountMax  = 6000
	CountStep = 100
)

// Config is the root of the TOML configuration file.
type Config struct {
	Window WindowConfig `toml:"window"`
	Swarm  SwarmConfig  `toml:"swarm"`
	Camera CameraConfig `toml:"camera"`
}

// WindowConfig configures the platform window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// SwarmConfig configures the instance pool and the optional mesh substitute.
type SwarmConfig struct {
	// InitialCount is clamped and snapped to the count limits on load.
	InitialCount int `toml:"initial_count"`

	// RegionSize is the side length of the cube the swarm fills.
	RegionSize float32 `toml:"region_size"`

	// MeshPath optionally points at a .glb/.gltf file used when the mesh
	// substitute is toggled on. Empty disables the toggle.
	MeshPath string `toml:"mesh_path"`
}

// CameraConfig configures the orbit controller's starting state.
type CameraConfig struct {
	Radius         float32 `toml:"radius"`
	AutoOrbitSpeed float32 `toml:"auto_orbit_speed"`
}

// Default returns the configuration used when no file is present.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Swarm",
			Width:  1280,
			Height: 720,
		},
		Swarm: SwarmConfig{
			InitialCount: 2000,
			RegionSize:   100,
		},
		Camera: CameraConfig{
			Radius:         250,
			AutoOrbitSpeed: 0.1,
		},
	}
}

// Load reads a TOML configuration file, filling unset fields from Default
// and normalizing out-of-range values. A missing file is not an error; the
// defaults are returned.
//
// Parameters:
//   - path: the configuration file path
//
// Returns:
//   - Config: the loaded configuration
//   - error: a decode error for a malformed file
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %q: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize pulls every field back into its supported range.
func (c *Config) normalize() {
	defaults := Default()

	if c.Window.Width <= 0 {
		c.Window.Width = defaults.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = defaults.Window.Height
	}
	c.Window.Title = common.Coalesce(c.Window.Title, defaults.Window.Title)

	c.Swarm.InitialCount = ClampCount(c.Swarm.InitialCount)
	if c.Swarm.RegionSize <= 0 {
		c.Swarm.RegionSize = defaults.Swarm.RegionSize
	}

	if c.Camera.Radius <= 0 {
		c.Camera.Radius = defaults.Camera.Radius
	}
}

// ClampCount snaps an instance count to the nearest CountStep multiple
// within [CountMin, CountMax].
//
// Parameters:
//   - n: the requested count
//
// Returns:
//   - int: the clamped, snapped count
func ClampCount(n int) int {
	if n < CountMin {
		return CountMin
	}
	if n > CountMax {
		return CountMax
	}
	return (n / CountStep) * CountStep
}
