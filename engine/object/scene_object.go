// Package object defines the per-instance scene entity: a transform, a base
// color, and a binding to exactly one uniform slot. The object owns only the
// binding; the slot's buffer memory belongs to the pool.
package object

import (
	"github.com/lp249839965/180622-WebGPU-Demos/common"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/uniform"
)

// sceneObject is the implementation of the SceneObject interface.
type sceneObject struct {
	position  [3]float32
	rotation  [3]float32
	scale     [3]float32
	baseColor [4]float32

	slot uniform.Slot
}

// SceneObject is one drawable instance: position, rotation (radians), scale,
// a material base color, and its uniform slot binding. A live object always
// has a non-nil slot while rendered.
type SceneObject interface {
	// Position returns the object's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the object's Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles around each axis
	Rotation() (rx, ry, rz float32)

	// Scale returns the object's scale factors.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// BaseColor returns the object's material RGBA color.
	//
	// Returns:
	//   - [4]float32: the base color
	BaseColor() [4]float32

	// Slot returns the uniform slot bound to this object, or nil if the
	// object has been unbound (recycled).
	//
	// Returns:
	//   - uniform.Slot: the bound slot
	Slot() uniform.Slot

	// SetPosition sets the object's world-space position.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetRotation sets the object's Euler rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: rotation angles around each axis
	SetRotation(rx, ry, rz float32)

	// SetScale sets the object's scale factors.
	//
	// Parameters:
	//   - sx, sy, sz: scale components
	SetScale(sx, sy, sz float32)

	// SetBaseColor sets the object's material RGBA color.
	//
	// Parameters:
	//   - color: the base color
	SetBaseColor(color [4]float32)

	// BindSlot binds a uniform slot to this object. Passing nil unbinds.
	//
	// Parameters:
	//   - s: the slot to bind
	BindSlot(s uniform.Slot)

	// ModelMatrix writes the object's 4x4 model matrix into out, composed as
	// scale, then rotate-X, then rotate-Z, then translate. Pure function of
	// the current transform fields; the Y rotation component does not
	// participate in the composition.
	//
	// Parameters:
	//   - out: destination slice (must be at least 16 elements)
	ModelMatrix(out []float32)
}

var _ SceneObject = &sceneObject{}

// NewSceneObject creates a new SceneObject configured with the given options.
// Scale defaults to (1, 1, 1) and the base color to opaque white.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - SceneObject: the newly created object
func NewSceneObject(options ...SceneObjectBuilderOption) SceneObject {
	obj := &sceneObject{
		scale:     [3]float32{1, 1, 1},
		baseColor: [4]float32{1, 1, 1, 1},
	}
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (o *sceneObject) Position() (x, y, z float32) {
	return o.position[0], o.position[1], o.position[2]
}

func (o *sceneObject) Rotation() (rx, ry, rz float32) {
	return o.rotation[0], o.rotation[1], o.rotation[2]
}

func (o *sceneObject) Scale() (sx, sy, sz float32) {
	return o.scale[0], o.scale[1], o.scale[2]
}

func (o *sceneObject) BaseColor() [4]float32 {
	return o.baseColor
}

func (o *sceneObject) Slot() uniform.Slot {
	return o.slot
}

func (o *sceneObject) SetPosition(x, y, z float32) {
	o.position = [3]float32{x, y, z}
}

func (o *sceneObject) SetRotation(rx, ry, rz float32) {
	o.rotation = [3]float32{rx, ry, rz}
}

func (o *sceneObject) SetScale(sx, sy, sz float32) {
	o.scale = [3]float32{sx, sy, sz}
}

func (o *sceneObject) SetBaseColor(color [4]float32) {
	o.baseColor = color
}

func (o *sceneObject) BindSlot(s uniform.Slot) {
	o.slot = s
}

func (o *sceneObject) ModelMatrix(out []float32) {
	common.BuildModelMatrix(out,
		o.position[0], o.position[1], o.position[2],
		o.rotation[0], o.rotation[2],
		o.scale[0], o.scale[1], o.scale[2],
	)
}
