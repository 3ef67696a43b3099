// Package light models the scene's single directional light. The light
// orbits the swarm in the horizontal plane at a fixed height, and its marker
// position drives the line-strip helper drawn each frame.
package light

import "github.com/chewxy/math32"

// directionalLight is the implementation of the DirectionalLight interface.
type directionalLight struct {
	orbitRadius  float32
	height       float32
	angularSpeed float32

	color   [4]float32
	ambient [4]float32

	position  [3]float32
	direction [3]float32
}

// DirectionalLight is a sun-style light with no attenuation. Its direction
// always points from the orbiting marker position toward the scene origin,
// so the lit side of the swarm tracks the helper.
type DirectionalLight interface {
	// Advance repositions the light for the given frame. The orbit angle is
	// an absolute function of the frame counter, so replaying a frame number
	// reproduces the same position.
	//
	// Parameters:
	//   - frame: the monotonically increasing frame counter
	Advance(frame uint64)

	// Position returns the world-space marker position on the orbit.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Direction returns the normalized light direction, pointing from the
	// marker toward the origin.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the directional light color.
	//
	// Returns:
	//   - [4]float32: color as (r, g, b, a)
	Color() [4]float32

	// Ambient returns the ambient contribution applied to every object.
	//
	// Returns:
	//   - [4]float32: color as (r, g, b, a)
	Ambient() [4]float32

	// OrbitRadius returns the radius of the horizontal orbit.
	//
	// Returns:
	//   - float32: the orbit radius
	OrbitRadius() float32
}

var _ DirectionalLight = &directionalLight{}

// NewDirectionalLight creates a directional light with the provided options
// applied, positioned for frame zero. Defaults: orbit radius 90, height 50,
// angular speed 0.01 rad per frame, warm white light over a dim gray ambient.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - DirectionalLight: the newly created light
func NewDirectionalLight(options ...DirectionalLightBuilderOption) DirectionalLight {
	l := &directionalLight{
		orbitRadius:  90,
		height:       50,
		angularSpeed: 0.01,
		color:        [4]float32{1, 0.96, 0.88, 1},
		ambient:      [4]float32{0.25, 0.25, 0.28, 1},
	}
	for _, option := range options {
		option(l)
	}
	l.Advance(0)
	return l
}

func (l *directionalLight) Advance(frame uint64) {
	angle := float32(frame) * l.angularSpeed

	l.position = [3]float32{
		l.orbitRadius * math32.Cos(angle),
		l.height,
		l.orbitRadius * math32.Sin(angle),
	}

	// Direction points at the origin; the marker never sits there because
	// height is fixed, so the norm is always positive.
	length := math32.Sqrt(l.position[0]*l.position[0] + l.position[1]*l.position[1] + l.position[2]*l.position[2])
	l.direction = [3]float32{
		-l.position[0] / length,
		-l.position[1] / length,
		-l.position[2] / length,
	}
}

func (l *directionalLight) Position() [3]float32 {
	return l.position
}

func (l *directionalLight) Direction() [3]float32 {
	return l.direction
}

func (l *directionalLight) Color() [4]float32 {
	return l.color
}

func (l *directionalLight) Ambient() [4]float32 {
	return l.ambient
}

func (l *directionalLight) OrbitRadius() float32 {
	return l.orbitRadius
}
