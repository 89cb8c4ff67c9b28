package scene

import "github.com/lucasb-eyer/go-colorful"

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithRotationSpeed sets how fast the globe turns, in radians per second.
//
// Parameters:
//   - speed: the rotation speed
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRotationSpeed(speed float32) SceneBuilderOption {
	return func(s *scene) {
		s.rotationSpeed = speed
	}
}

// WithSun sets the sun's spherical angles.
//
// Parameters:
//   - phi: polar angle from +Y in radians
//   - theta: azimuth around Y from +Z in radians
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSun(phi, theta float32) SceneBuilderOption {
	return func(s *scene) {
		s.sunPhi = phi
		s.sunTheta = theta
	}
}

// WithCloudsMix sets the cloud layer blend factor.
//
// Parameters:
//   - mix: the blend factor
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCloudsMix(mix float32) SceneBuilderOption {
	return func(s *scene) {
		s.cloudsMix = mix
	}
}

// WithAtmosphereColors sets the day-side and twilight atmosphere colours.
//
// Parameters:
//   - day: the day-side colour
//   - twilight: the twilight colour
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAtmosphereColors(day, twilight colorful.Color) SceneBuilderOption {
	return func(s *scene) {
		s.atmosphereDay = day
		s.atmosphereTwilight = twilight
	}
}
