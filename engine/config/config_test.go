package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swarm.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
title = "Demo"
width = 1920
height = 1080

[swarm]
initial_count = 4200
region_size = 80.0
mesh_path = "assets/monkey.glb"

[camera]
radius = 300.0
auto_orbit_speed = 0.25
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Demo", cfg.Window.Title)
	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, 4200, cfg.Swarm.InitialCount)
	assert.Equal(t, float32(80), cfg.Swarm.RegionSize)
	assert.Equal(t, "assets/monkey.glb", cfg.Swarm.MeshPath)
	assert.Equal(t, float32(300), cfg.Camera.Radius)
	assert.Equal(t, float32(0.25), cfg.Camera.AutoOrbitSpeed)
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\ntitle ="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadNormalizesOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swarm.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
width = -5

[swarm]
initial_count = 99999
region_size = 0.0
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Default().Window.Width, cfg.Window.Width)
	assert.Equal(t, CountMax, cfg.Swarm.InitialCount)
	assert.Equal(t, Default().Swarm.RegionSize, cfg.Swarm.RegionSize)
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, CountMin, ClampCount(0))
	assert.Equal(t, CountMin, ClampCount(1000))
	assert.Equal(t, CountMax, ClampCount(6100))
	assert.Equal(t, 4200, ClampCount(4200))
	assert.Equal(t, 4200, ClampCount(4299), "counts snap down to the step")
}
