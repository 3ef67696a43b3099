package object

import "github.com/lp249839965/180622-WebGPU-Demos/engine/uniform"

// SceneObjectBuilderOption is a functional option applied to a SceneObject during construction.
type SceneObjectBuilderOption func(*sceneObject)

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - SceneObjectBuilderOption: a function that applies the position
func WithPosition(x, y, z float32) SceneObjectBuilderOption {
	return func(o *sceneObject) {
		o.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the initial Euler rotation in radians.
//
// Parameters:
//   - rx, ry, rz: rotation angles around each axis
//
// Returns:
//   - SceneObjectBuilderOption: a function that applies the rotation
func WithRotation(rx, ry, rz float32) SceneObjectBuilderOption {
	return func(o *sceneObject) {
		o.rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the initial scale factors.
//
// Parameters:
//   - sx, sy, sz: scale components
//
// Returns:
//   - SceneObjectBuilderOption: a function that applies the scale
func WithScale(sx, sy, sz float32) SceneObjectBuilderOption {
	return func(o *sceneObject) {
		o.scale = [3]float32{sx, sy, sz}
	}
}

// WithBaseColor sets the material RGBA color.
//
// Parameters:
//   - r, g, b, a: color components in [0, 1]
//
// Returns:
//   - SceneObjectBuilderOption: a function that applies the color
func WithBaseColor(r, g, b, a float32) SceneObjectBuilderOption {
	return func(o *sceneObject) {
		o.baseColor = [4]float32{r, g, b, a}
	}
}

// WithSlot binds a uniform slot at construction time.
//
// Parameters:
//   - s: the slot to bind
//
// Returns:
//   - SceneObjectBuilderOption: a function that binds the slot
func WithSlot(s uniform.Slot) SceneObjectBuilderOption {
	return func(o *sceneObject) {
		o.slot = s
	}
}
