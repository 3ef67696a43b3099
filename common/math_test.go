package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVec3Near(t *testing.T, wantX, wantY, wantZ, gotX, gotY, gotZ float32) {
	t.Helper()
	assert.InDelta(t, wantX, gotX, tol)
	assert.InDelta(t, wantY, gotY, tol)
	assert.InDelta(t, wantZ, gotZ, tol)
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 7
	}
	Identity(m)

	x, y, z := TransformVec3(m, 3, -2, 5)
	assertVec3Near(t, 3, -2, 5, x, y, z)
}

func TestBuildModelMatrixScaleOnly(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, 0, 0, 2, 2, 2)

	want := []float32{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	}
	for i := range want {
		assert.InDelta(t, want[i], m[i], tol, "element %d", i)
	}
}

func TestBuildModelMatrixRotateXMapsZToNegY(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, float32(math.Pi/2), 0, 1, 1, 1)

	x, y, z := TransformVec3(m, 0, 0, 1)
	assertVec3Near(t, 0, -1, 0, x, y, z)
}

func TestBuildModelMatrixCompositionOrder(t *testing.T) {
	// Scale first, then rotate X, then rotate Z, then translate.
	// Unit +Y, scale 3 -> (0,3,0); rotX 90 deg -> (0,0,3); rotZ 90 deg -> (0,0,3);
	// translate (1,2,3) -> (1,2,6).
	m := make([]float32, 16)
	BuildModelMatrix(m, 1, 2, 3, float32(math.Pi/2), float32(math.Pi/2), 3, 3, 3)

	x, y, z := TransformVec3(m, 0, 1, 0)
	assertVec3Near(t, 1, 2, 6, x, y, z)

	// Unit +X picks up the Z rotation after the X rotation leaves it in place:
	// (1,0,0) -> scale (3,0,0) -> rotX (3,0,0) -> rotZ (0,3,0) -> translate (1,5,3).
	x, y, z = TransformVec3(m, 1, 0, 0)
	assertVec3Near(t, 1, 5, 3, x, y, z)
}

func TestMul4IdentityIsNeutral(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)

	m := make([]float32, 16)
	BuildModelMatrix(m, 4, 5, 6, 0.3, 0.7, 1, 2, 3)

	out := make([]float32, 16)
	Mul4(out, id, m)
	assert.Equal(t, m, out)

	Mul4(out, m, id)
	assert.Equal(t, m, out)
}

func TestMul4MatchesSequentialTransforms(t *testing.T) {
	a := make([]float32, 16)
	b := make([]float32, 16)
	BuildModelMatrix(a, 1, 0, 0, 0, 0, 1, 1, 1)           // translate +X
	BuildModelMatrix(b, 0, 0, 0, 0, float32(math.Pi/2), 1, 1, 1) // rotate Z 90 deg

	ab := make([]float32, 16)
	Mul4(ab, a, b)

	// (a*b)*v must equal a*(b*v)
	bx, by, bz := TransformVec3(b, 1, 0, 0)
	wx, wy, wz := TransformVec3(a, bx, by, bz)
	gx, gy, gz := TransformVec3(ab, 1, 0, 0)
	assertVec3Near(t, wx, wy, wz, gx, gy, gz)
}

func TestLookAtFromZAxis(t *testing.T) {
	v := make([]float32, 16)
	LookAt(v, 0, 0, 10, 0, 0, 0, 0, 1, 0)

	// The target should land on the -Z axis in view space, 10 units out.
	x, y, z := TransformVec3(v, 0, 0, 0)
	assertVec3Near(t, 0, 0, -10, x, y, z)

	// A point at the eye maps to the view-space origin.
	x, y, z = TransformVec3(v, 0, 0, 10)
	assertVec3Near(t, 0, 0, 0, x, y, z)
}

func TestPerspectiveDepthRange(t *testing.T) {
	p := make([]float32, 16)
	Perspective(p, float32(math.Pi/3), 16.0/9.0, 1, 100)

	// WebGPU clip space: near plane maps to depth 0, far plane to depth 1
	// (after perspective division by w = -z_view).
	nearZ := p[10]*-1 + p[14]
	assert.InDelta(t, 0, nearZ/1, tol)

	farZ := p[10]*-100 + p[14]
	assert.InDelta(t, 1, farZ/100, tol)
}

func TestSliceToBytesLength(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	b := SliceToBytes(data)
	assert.Len(t, b, 16)
	assert.Nil(t, SliceToBytes([]float32(nil)))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 0, 5, 9))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
