package frame

import "github.com/Carmen-Shannon/oxy-scroll/engine/profiler"

type DriverBuilderOption func(*driverImpl)

// WithLerpFactor sets the fraction of the remaining distance the camera covers each narrative frame.
//
// Parameters:
//   - factor: the smoothing factor in (0, 1]
//
// Returns:
//   - DriverBuilderOption: a function that sets the factor
func WithLerpFactor(factor float32) DriverBuilderOption {
	return func(d *driverImpl) {
		d.lerpFactor = factor
	}
}

// WithScrollStep sets how many pixels one wheel notch scrolls the page.
//
// Parameters:
//   - step: pixels per notch
//
// Returns:
//   - DriverBuilderOption: a function that sets the step
func WithScrollStep(step float32) DriverBuilderOption {
	return func(d *driverImpl) {
		d.scrollStep = step
	}
}

// WithZoomStep sets how far one wheel notch zooms the orbit camera.
//
// Parameters:
//   - step: world units per notch
//
// Returns:
//   - DriverBuilderOption: a function that sets the step
func WithZoomStep(step float32) DriverBuilderOption {
	return func(d *driverImpl) {
		d.zoomStep = step
	}
}

// WithMusic sets the player the music key toggles.
//
// Parameters:
//   - m: the music player
//
// Returns:
//   - DriverBuilderOption: a function that sets the player
func WithMusic(m MusicPlayer) DriverBuilderOption {
	return func(d *driverImpl) {
		d.music = m
	}
}

// WithProfiler enables per-frame profiling.
//
// Parameters:
//   - p: the profiler
//
// Returns:
//   - DriverBuilderOption: a function that sets the profiler
func WithProfiler(p *profiler.Profiler) DriverBuilderOption {
	return func(d *driverImpl) {
		d.profiler = p
	}
}

// WithQuit sets the function called when the quit key or event arrives.
//
// Parameters:
//   - fn: the quit function
//
// Returns:
//   - DriverBuilderOption: a function that sets the quit function
func WithQuit(fn func()) DriverBuilderOption {
	return func(d *driverImpl) {
		d.onQuit = fn
	}
}
