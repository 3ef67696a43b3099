package light

// DirectionalLightBuilderOption is a functional option for configuring a DirectionalLight.
type DirectionalLightBuilderOption func(*directionalLight)

// WithOrbit sets the horizontal orbit radius and the fixed height.
//
// Parameters:
//   - radius: the orbit radius, must be positive
//   - height: the fixed Y position of the light
//
// Returns:
//   - DirectionalLightBuilderOption: the option to apply
func WithOrbit(radius, height float32) DirectionalLightBuilderOption {
	return func(l *directionalLight) {
		if radius > 0 {
			l.orbitRadius = radius
		}
		l.height = height
	}
}

// WithAngularSpeed sets the orbit speed in radians per frame.
//
// Parameters:
//   - speed: the angular speed
//
// Returns:
//   - DirectionalLightBuilderOption: the option to apply
func WithAngularSpeed(speed float32) DirectionalLightBuilderOption {
	return func(l *directionalLight) {
		l.angularSpeed = speed
	}
}

// WithColor sets the directional light color.
//
// Parameters:
//   - r, g, b, a: color components in [0, 1]
//
// Returns:
//   - DirectionalLightBuilderOption: the option to apply
func WithColor(r, g, b, a float32) DirectionalLightBuilderOption {
	return func(l *directionalLight) {
		l.color = [4]float32{r, g, b, a}
	}
}

// WithAmbient sets the ambient contribution applied to every object.
//
// Parameters:
//   - r, g, b, a: color components in [0, 1]
//
// Returns:
//   - DirectionalLightBuilderOption: the option to apply
func WithAmbient(r, g, b, a float32) DirectionalLightBuilderOption {
	return func(l *directionalLight) {
		l.ambient = [4]float32{r, g, b, a}
	}
}
