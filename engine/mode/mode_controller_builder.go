package mode

import (
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/tanema/gween/ease"
)

type ControllerBuilderOption func(*controllerImpl)

// WithTransitionDuration sets how long entering and exiting exploration take.
//
// Parameters:
//   - d: the transition duration
//
// Returns:
//   - ControllerBuilderOption: a function that sets the duration
func WithTransitionDuration(d time.Duration) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.duration = d
	}
}

// WithFlyInDuration sets how long the intro fly-in takes.
//
// Parameters:
//   - d: the fly-in duration
//
// Returns:
//   - ControllerBuilderOption: a function that sets the duration
func WithFlyInDuration(d time.Duration) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.flyInDuration = d
	}
}

// WithEasing sets the easing curve for every transition.
//
// Parameters:
//   - easing: the curve
//
// Returns:
//   - ControllerBuilderOption: a function that sets the curve
func WithEasing(easing ease.TweenFunc) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.easing = easing
	}
}

// WithExploreOrigin sets the pose the orbit controller is anchored at.
//
// Parameters:
//   - pose: the explore origin
//
// Returns:
//   - ControllerBuilderOption: a function that sets the origin
func WithExploreOrigin(pose camera.Pose) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.exploreOrigin = pose
	}
}

// WithModeChanged registers a callback fired after every mode change.
//
// Parameters:
//   - fn: the callback
//
// Returns:
//   - ControllerBuilderOption: a function that sets the callback
func WithModeChanged(fn ChangedFunc) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.onChanged = fn
	}
}
