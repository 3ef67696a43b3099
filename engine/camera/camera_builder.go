package camera

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithFov sets the field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: the option to apply
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - CameraBuilderOption: the option to apply
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: the option to apply
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}

// WithController attaches an orbit controller at construction time.
//
// Parameters:
//   - ctrl: the controller to attach
//
// Returns:
//   - CameraBuilderOption: the option to apply
func WithController(ctrl Controller) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controllerImpl)

// WithRadius sets the starting orbit radius within the current limits.
//
// Parameters:
//   - radius: the orbit radius
//
// Returns:
//   - ControllerBuilderOption: the option to apply
func WithRadius(radius float32) ControllerBuilderOption {
	return func(cc *controllerImpl) {
		cc.radius = radius
		cc.clampOrbit()
	}
}

// WithOrbitAngles sets the starting azimuth and elevation in radians.
//
// Parameters:
//   - azimuth: the horizontal angle
//   - elevation: the vertical angle, clamped to the limits
//
// Returns:
//   - ControllerBuilderOption: the option to apply
func WithOrbitAngles(azimuth, elevation float32) ControllerBuilderOption {
	return func(cc *controllerImpl) {
		cc.azimuth = azimuth
		cc.elevation = elevation
		cc.clampOrbit()
	}
}

// WithAutoOrbitSpeed sets the automatic orbit speed in radians per second.
//
// Parameters:
//   - speed: the orbit speed, zero disables the auto orbit
//
// Returns:
//   - ControllerBuilderOption: the option to apply
func WithAutoOrbitSpeed(speed float32) ControllerBuilderOption {
	return func(cc *controllerImpl) {
		cc.autoOrbitSpeed = speed
	}
}

// WithZoomSpeed sets the distance moved per scroll step.
//
// Parameters:
//   - speed: the zoom speed
//
// Returns:
//   - ControllerBuilderOption: the option to apply
func WithZoomSpeed(speed float32) ControllerBuilderOption {
	return func(cc *controllerImpl) {
		cc.zoomSpeed = speed
	}
}
