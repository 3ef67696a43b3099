package camera

import (
	"math"
	"sync"
)

// controllerImpl is the implementation of the Controller interface. It keeps
// the camera on a sphere around the target: drag input and the per-tick auto
// orbit adjust the spherical coordinates, zoom adjusts the radius.
type controllerImpl struct {
	mu *sync.Mutex

	position [3]float32
	target   [3]float32

	radius    float32
	azimuth   float32
	elevation float32

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	// autoOrbitSpeed advances the azimuth each Advance, in radians per second.
	autoOrbitSpeed   float32
	mouseSensitivity float32
	zoomSpeed        float32
}

// Controller owns the orbit state of a Camera. The camera reads Position and
// Target once per tick; input callbacks mutate the orbit between ticks.
type Controller interface {
	// Position returns the computed camera position.
	//
	// Returns:
	//   - x, y, z: the camera position
	Position() (x, y, z float32)

	// Target returns the orbit center.
	//
	// Returns:
	//   - x, y, z: the target position
	Target() (x, y, z float32)

	// Advance applies the automatic orbit for one tick.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous tick
	Advance(dt float32)

	// Drag applies a mouse drag: horizontal motion changes the azimuth,
	// vertical motion changes the elevation within its limits.
	//
	// Parameters:
	//   - dx, dy: the cursor delta in pixels
	Drag(dx, dy float32)

	// Zoom moves the camera along the view ray by delta scroll steps,
	// clamped to the radius limits.
	//
	// Parameters:
	//   - delta: positive values zoom in
	Zoom(delta float32)

	// Radius returns the current orbit radius.
	//
	// Returns:
	//   - float32: the orbit radius
	Radius() float32

	// Azimuth returns the horizontal orbit angle in radians.
	//
	// Returns:
	//   - float32: the azimuth
	Azimuth() float32

	// Elevation returns the vertical orbit angle in radians.
	//
	// Returns:
	//   - float32: the elevation
	Elevation() float32
}

var _ Controller = &controllerImpl{}

// NewController creates an orbit controller with sensible defaults for a
// swarm filling a cube of side 100: radius 250, slight downward view, slow
// automatic orbit.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerBuilderOption) Controller {
	cc := &controllerImpl{
		mu:     &sync.Mutex{},
		target: [3]float32{0, 0, 0},

		radius:    250.0,
		azimuth:   0.0,
		elevation: float32(math.Pi / 6),

		minRadius:    20.0,
		maxRadius:    2000.0,
		minElevation: -float32(math.Pi/2 - 0.1),
		maxElevation: float32(math.Pi/2 - 0.1),

		autoOrbitSpeed:   0.1,
		mouseSensitivity: 0.005,
		zoomSpeed:        15.0,
	}
	for _, option := range options {
		option(cc)
	}
	cc.updatePosition()
	return cc
}

// updatePosition recomputes the camera position from the spherical
// coordinates. Caller must hold the mutex.
func (cc *controllerImpl) updatePosition() {
	cosElev := float32(math.Cos(float64(cc.elevation)))
	sinElev := float32(math.Sin(float64(cc.elevation)))
	cosAzim := float32(math.Cos(float64(cc.azimuth)))
	sinAzim := float32(math.Sin(float64(cc.azimuth)))

	cc.position[0] = cc.target[0] + cc.radius*cosElev*sinAzim
	cc.position[1] = cc.target[1] + cc.radius*sinElev
	cc.position[2] = cc.target[2] + cc.radius*cosElev*cosAzim
}

// clampOrbit enforces the radius and elevation limits. Caller must hold the
// mutex.
func (cc *controllerImpl) clampOrbit() {
	if cc.radius < cc.minRadius {
		cc.radius = cc.minRadius
	}
	if cc.radius > cc.maxRadius {
		cc.radius = cc.maxRadius
	}
	if cc.elevation < cc.minElevation {
		cc.elevation = cc.minElevation
	}
	if cc.elevation > cc.maxElevation {
		cc.elevation = cc.maxElevation
	}
}

func (cc *controllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *controllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *controllerImpl) Advance(dt float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth += cc.autoOrbitSpeed * dt
	cc.updatePosition()
}

func (cc *controllerImpl) Drag(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth -= dx * cc.mouseSensitivity
	cc.elevation += dy * cc.mouseSensitivity
	cc.clampOrbit()
	cc.updatePosition()
}

func (cc *controllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius -= delta * cc.zoomSpeed
	cc.clampOrbit()
	cc.updatePosition()
}

func (cc *controllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *controllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *controllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}
