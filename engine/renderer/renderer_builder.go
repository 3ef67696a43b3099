package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/lp249839965/180622-WebGPU-Demos/engine/camera"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/config"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/light"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/pool"
)

// FrameRendererBuilderOption is a functional option for configuring a FrameRenderer.
type FrameRendererBuilderOption func(*frameRenderer)

// WithPresentMode selects how frames reach the display. VSync is the default.
//
// Parameters:
//   - mode: the present mode
//
// Returns:
//   - FrameRendererBuilderOption: the option to apply
func WithPresentMode(mode PresentMode) FrameRendererBuilderOption {
	return func(r *frameRenderer) {
		switch mode {
		case PresentModeUncapped:
			r.presentMode = wgpu.PresentModeImmediate
		default:
			r.presentMode = wgpu.PresentModeFifo
		}
	}
}

// WithInitialCount sets the starting instance count, clamped to the
// supported range.
//
// Parameters:
//   - n: the requested count
//
// Returns:
//   - FrameRendererBuilderOption: the option to apply
func WithInitialCount(n int) FrameRendererBuilderOption {
	return func(r *frameRenderer) {
		r.countTarget = config.ClampCount(n)
	}
}

// WithCamera attaches a caller-configured camera.
//
// Parameters:
//   - cam: the camera to render with
//
// Returns:
//   - FrameRendererBuilderOption: the option to apply
func WithCamera(cam camera.Camera) FrameRendererBuilderOption {
	return func(r *frameRenderer) {
		r.cam = cam
	}
}

// WithLight attaches a caller-configured directional light.
//
// Parameters:
//   - sun: the scene light
//
// Returns:
//   - FrameRendererBuilderOption: the option to apply
func WithLight(sun light.DirectionalLight) FrameRendererBuilderOption {
	return func(r *frameRenderer) {
		r.sun = sun
	}
}

// WithWorkerCount sets the size of the uniform staging pool.
//
// Parameters:
//   - workers: the worker count, must be positive
//
// Returns:
//   - FrameRendererBuilderOption: the option to apply
func WithWorkerCount(workers int) FrameRendererBuilderOption {
	return func(r *frameRenderer) {
		if workers > 0 {
			r.workers = workers
		}
	}
}

// WithClearColor sets the background color of the swarm pass.
//
// Parameters:
//   - r, g, b: color components in [0, 1]
//
// Returns:
//   - FrameRendererBuilderOption: the option to apply
func WithClearColor(red, green, blue float64) FrameRendererBuilderOption {
	return func(r *frameRenderer) {
		r.clearTone = wgpu.Color{R: red, G: green, B: blue, A: 1.0}
	}
}

// WithPoolOptions forwards options to the instance pool the renderer builds.
//
// Parameters:
//   - options: the pool options
//
// Returns:
//   - FrameRendererBuilderOption: the option to apply
func WithPoolOptions(options ...pool.InstancePoolBuilderOption) FrameRendererBuilderOption {
	return func(r *frameRenderer) {
		r.poolOptions = options
	}
}

// WithForceFallbackAdapter requests a software adapter, for environments
// without GPU access.
//
// Returns:
//   - FrameRendererBuilderOption: the option to apply
func WithForceFallbackAdapter() FrameRendererBuilderOption {
	return func(r *frameRenderer) {
		r.forceFallbackAdapter = true
	}
}
