package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSceneObjectDefaults(t *testing.T) {
	obj := NewSceneObject()

	sx, sy, sz := obj.Scale()
	assert.Equal(t, float32(1), sx)
	assert.Equal(t, float32(1), sy)
	assert.Equal(t, float32(1), sz)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, obj.BaseColor())
	assert.Nil(t, obj.Slot())
}

func TestBuilderOptionsApply(t *testing.T) {
	obj := NewSceneObject(
		WithPosition(1, 2, 3),
		WithRotation(0.1, 0.2, 0.3),
		WithScale(2, 3, 4),
		WithBaseColor(0.5, 0.25, 0.75, 1),
	)

	x, y, z := obj.Position()
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{x, y, z})
	rx, ry, rz := obj.Rotation()
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, [3]float32{rx, ry, rz})
	sx, sy, sz := obj.Scale()
	assert.Equal(t, [3]float32{2, 3, 4}, [3]float32{sx, sy, sz})
	assert.Equal(t, [4]float32{0.5, 0.25, 0.75, 1}, obj.BaseColor())
}

func TestModelMatrixTranslationColumn(t *testing.T) {
	obj := NewSceneObject(WithPosition(5, -6, 7))

	var m [16]float32
	obj.ModelMatrix(m[:])

	assert.Equal(t, float32(5), m[12])
	assert.Equal(t, float32(-6), m[13])
	assert.Equal(t, float32(7), m[14])
	assert.Equal(t, float32(1), m[15])
}

func TestModelMatrixIgnoresSecondRotationComponent(t *testing.T) {
	// Only the X and Z rotation components participate in the composition;
	// the middle component is carried for animation state but never baked in.
	plain := NewSceneObject()
	spun := NewSceneObject(WithRotation(0, 2.5, 0))

	var a, b [16]float32
	plain.ModelMatrix(a[:])
	spun.ModelMatrix(b[:])

	assert.Equal(t, a, b)
}

func TestModelMatrixRespondsToSetters(t *testing.T) {
	obj := NewSceneObject()

	var before, after [16]float32
	obj.ModelMatrix(before[:])

	obj.SetRotation(0.5, 0, 0)
	obj.SetScale(2, 2, 2)
	obj.SetPosition(1, 1, 1)
	obj.ModelMatrix(after[:])

	assert.NotEqual(t, before, after)
	assert.Equal(t, float32(1), after[12])
}
