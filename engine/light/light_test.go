package light

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrbitKeepsRadiusAndHeight(t *testing.T) {
	l := NewDirectionalLight(WithOrbit(80, 40))

	for _, frame := range []uint64{0, 17, 250, 9999} {
		l.Advance(frame)
		p := l.Position()

		radial := math.Sqrt(float64(p[0]*p[0] + p[2]*p[2]))
		assert.InDelta(t, 80, radial, 1e-2, "frame %d", frame)
		assert.Equal(t, float32(40), p[1], "frame %d", frame)
	}
}

func TestDirectionPointsAtOrigin(t *testing.T) {
	l := NewDirectionalLight()
	l.Advance(123)

	p := l.Position()
	d := l.Direction()

	// Unit length.
	norm := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
	assert.InDelta(t, 1, norm, 1e-5)

	// Anti-parallel to the position vector.
	pLen := math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]))
	for i := 0; i < 3; i++ {
		assert.InDelta(t, float64(-p[i])/pLen, float64(d[i]), 1e-5)
	}
}

func TestAdvanceIsAFunctionOfFrame(t *testing.T) {
	a := NewDirectionalLight()
	b := NewDirectionalLight()

	a.Advance(5)
	a.Advance(500)
	b.Advance(500)

	// Position depends on the frame alone, not on the advance history.
	assert.Equal(t, b.Position(), a.Position())
	assert.Equal(t, b.Direction(), a.Direction())
}

func TestBuilderOptions(t *testing.T) {
	l := NewDirectionalLight(
		WithOrbit(120, -10),
		WithAngularSpeed(0.5),
		WithColor(1, 0, 0, 1),
		WithAmbient(0.1, 0.1, 0.1, 1),
	)

	assert.Equal(t, float32(120), l.OrbitRadius())
	assert.Equal(t, [4]float32{1, 0, 0, 1}, l.Color())
	assert.Equal(t, [4]float32{0.1, 0.1, 0.1, 1}, l.Ambient())

	p0 := l.Position()
	l.Advance(1)
	p1 := l.Position()
	assert.NotEqual(t, p0, p1, "angular speed moves the marker between frames")
}
