package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is a camera position together with the point it looks at.
type Pose struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
}

// State is the mutable camera record shared by the scroll mapper, the
// transition tweens and the orbit controller.
//
// Target is where the active driver wants the camera to be; Current is what
// gets rendered. Exactly one writer is active per mode, which the mode
// controller enforces, so State carries no lock and must only be touched from
// the frame goroutine.
type State struct {
	target  Pose
	current Pose
}

// NewState creates a State whose target and current pose both start at initial.
//
// Parameters:
//   - initial: the starting pose
//
// Returns:
//   - *State: the new state
func NewState(initial Pose) *State {
	return &State{target: initial, current: initial}
}

// Target returns the pose the camera is heading toward.
func (s *State) Target() Pose {
	return s.target
}

// SetTarget replaces the target pose.
func (s *State) SetTarget(p Pose) {
	s.target = p
}

// Current returns the pose that is rendered this frame.
func (s *State) Current() Pose {
	return s.current
}

// SetCurrent replaces the rendered pose.
func (s *State) SetCurrent(p Pose) {
	s.current = p
}

// Smooth moves the current pose a fixed fraction of the way toward the target:
// current += (target - current) * factor on every axis.
//
// The factor is applied per call, not per second, so the apparent speed
// depends on the frame rate. That matches the motion the camera path was
// authored against and is kept on purpose.
//
// Parameters:
//   - factor: fraction of the remaining distance covered this frame, in (0, 1]
func (s *State) Smooth(factor float32) {
	s.current.Position = s.current.Position.Add(s.target.Position.Sub(s.current.Position).Mul(factor))
	s.current.LookAt = s.current.LookAt.Add(s.target.LookAt.Sub(s.current.LookAt).Mul(factor))
}
