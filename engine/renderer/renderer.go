// Package renderer owns the per-frame tick: it initializes the WebGPU device
// and surface, advances the scene, stages and flushes per-instance uniforms,
// and encodes the two render passes into a single submission. Everything here
// runs on the window's message loop thread.
package renderer

import (
	"errors"
	"fmt"

	"github.com/lp249839965/180622-WebGPU-Demos/engine/camera"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/geometry"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/pool"
)

// ErrSurfaceUnavailable marks a recoverable frame failure: the surface
// texture could not be acquired this tick. The caller skips the frame and
// tries again on the next one.
var ErrSurfaceUnavailable = errors.New("surface texture unavailable")

// CapabilityError is a fatal initialization error: the platform has no
// usable adapter, device, or surface format. The application cannot start.
type CapabilityError struct {
	Stage string
	Err   error
}

func (e *CapabilityError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("renderer: %s unavailable", e.Stage)
	}
	return fmt.Sprintf("renderer: %s: %v", e.Stage, e.Err)
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}

// PresentMode controls how finished frames are delivered to the display.
type PresentMode int

const (
	// PresentModeUncapped presents immediately without waiting for vblank.
	PresentModeUncapped PresentMode = iota

	// PresentModeVSync waits for vblank (FIFO).
	PresentModeVSync
)

// FrameRenderer drives the render loop. One Tick advances the scene by one
// frame and draws it; requests made between ticks (count changes, geometry
// swaps) are applied atomically at the start of the next tick.
type FrameRenderer interface {
	// Tick runs one frame: apply pending requests, advance the swarm, light,
	// and camera, stage and flush uniforms, then encode and present both
	// render passes.
	//
	// Returns:
	//   - error: nil on success; an error wrapping ErrSurfaceUnavailable when
	//     the frame should be skipped; any other error is fatal
	Tick() error

	// AdjustCount schedules a clamped instance count change for the next
	// tick. The target moves by delta and snaps to the supported range.
	//
	// Parameters:
	//   - delta: the signed count change
	AdjustCount(delta int)

	// SetAlternateGeometry uploads a substitute geometry that ToggleGeometry
	// switches to. Passing a geometry while one is already set replaces it.
	//
	// Parameters:
	//   - geo: the substitute geometry
	//
	// Returns:
	//   - error: any GPU buffer creation error
	SetAlternateGeometry(geo geometry.Geometry) error

	// ToggleGeometry schedules a swap between the cube primitive and the
	// alternate geometry for the next tick. A no-op when no alternate
	// geometry has been set.
	ToggleGeometry()

	// Pool returns the instance pool the renderer draws.
	//
	// Returns:
	//   - pool.InstancePool: the pool
	Pool() pool.InstancePool

	// Camera returns the camera the renderer projects with.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Frame returns the number of completed ticks.
	//
	// Returns:
	//   - uint64: the frame counter
	Frame() uint64

	// Close releases every GPU resource the renderer owns. Tick must not be
	// called afterwards.
	Close()
}
