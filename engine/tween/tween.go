// Package tween drives time-bounded, eased camera animations.
//
// Each Animation interpolates a camera pose from a start to an end value over
// a fixed duration using per-axis gween tweens. Time only moves when the
// owner calls Update with a positive delta, so a stalled clock leaves the
// animation (and whoever waits on it) parked where it is.
package tween

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is an in-flight tween between two camera poses.
type Animation interface {
	// Update advances the animation by dt seconds and returns the interpolated pose.
	// Once finished, it keeps returning the end pose.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous Update
	//
	// Returns:
	//   - camera.Pose: the pose for this frame
	Update(dt float32) camera.Pose

	// Done returns a channel that is closed when the animation reaches its end pose.
	//
	// Returns:
	//   - <-chan struct{}: the completion signal
	Done() <-chan struct{}

	// Finished reports whether Done has been closed.
	//
	// Returns:
	//   - bool: true once the end pose has been reached
	Finished() bool

	// From returns the start pose.
	//
	// Returns:
	//   - camera.Pose: the start pose
	From() camera.Pose

	// To returns the end pose.
	//
	// Returns:
	//   - camera.Pose: the end pose
	To() camera.Pose
}

// Driver starts animations. The mode controller depends on this interface so
// tests can substitute a scripted clock.
type Driver interface {
	// Start creates a new animation. The caller owns it and must call Update each frame.
	//
	// Parameters:
	//   - from: the start pose
	//   - to: the end pose
	//   - duration: how long the animation runs
	//   - easing: the easing curve, e.g. ease.InOutQuad
	//
	// Returns:
	//   - Animation: the new animation
	Start(from, to camera.Pose, duration time.Duration, easing ease.TweenFunc) Animation
}

// PowerTwoInOut is the quadratic ease-in-out curve used for all camera transitions.
var PowerTwoInOut ease.TweenFunc = ease.InOutQuad

type gweenDriver struct{}

// NewDriver returns a Driver backed by gween tweens.
//
// Returns:
//   - Driver: the tween driver
func NewDriver() Driver {
	return gweenDriver{}
}

func (gweenDriver) Start(from, to camera.Pose, duration time.Duration, easing ease.TweenFunc) Animation {
	if easing == nil {
		easing = PowerTwoInOut
	}
	seconds := float32(duration.Seconds())

	a := &poseAnimation{
		from: from,
		to:   to,
		done: make(chan struct{}),
	}
	for i := range 3 {
		a.position[i] = gween.New(from.Position[i], to.Position[i], seconds, easing)
		a.lookAt[i] = gween.New(from.LookAt[i], to.LookAt[i], seconds, easing)
	}
	if seconds <= 0 {
		// Zero-length transitions still complete through the normal signal on the first Update.
		a.instant = true
	}
	return a
}

// poseAnimation tweens the six pose components independently with the same
// duration and curve, so they all finish on the same Update.
type poseAnimation struct {
	from, to camera.Pose

	position [3]*gween.Tween
	lookAt   [3]*gween.Tween

	instant  bool
	finished bool
	done     chan struct{}
	once     sync.Once
}

func (a *poseAnimation) Update(dt float32) camera.Pose {
	if a.finished {
		return a.to
	}

	if a.instant {
		a.finish()
		return a.to
	}
	if dt < 0 {
		dt = 0
	}

	var pose camera.Pose
	complete := true
	for i := range 3 {
		var posDone, lookDone bool
		pose.Position[i], posDone = a.position[i].Update(dt)
		pose.LookAt[i], lookDone = a.lookAt[i].Update(dt)
		complete = complete && posDone && lookDone
	}

	if complete {
		a.finish()
		return a.to
	}
	return pose
}

func (a *poseAnimation) finish() {
	a.once.Do(func() {
		a.finished = true
		close(a.done)
	})
}

func (a *poseAnimation) Done() <-chan struct{} {
	return a.done
}

func (a *poseAnimation) Finished() bool {
	return a.finished
}

func (a *poseAnimation) From() camera.Pose {
	return a.from
}

func (a *poseAnimation) To() camera.Pose {
	return a.to
}
