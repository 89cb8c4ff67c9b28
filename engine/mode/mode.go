// Package mode arbitrates who writes the camera: the scroll mapper during the
// narrative, the orbit controller during free exploration, and eased
// transition animations in between.
package mode

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scroll"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode is the camera mode. Narrative and Explore are rest states; the other two
// last exactly as long as their transition animation.
type Mode int

const (
	Narrative Mode = iota
	EnteringExplore
	Explore
	ExitingExplore
)

func (m Mode) String() string {
	switch m {
	case Narrative:
		return "Narrative"
	case EnteringExplore:
		return "EnteringExplore"
	case Explore:
		return "Explore"
	case ExitingExplore:
		return "ExitingExplore"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Transitional reports whether m is one of the animated in-between states.
func (m Mode) Transitional() bool {
	return m == EnteringExplore || m == ExitingExplore
}

// SavedState is the narrative position captured when exploration starts and
// restored when it ends. It exists exactly while the mode is not Narrative.
type SavedState struct {
	CameraTarget mgl32.Vec3
	LookAtTarget mgl32.Vec3
	ScrollOffset float32
}

// Pose returns the saved targets as a camera pose.
func (s SavedState) Pose() camera.Pose {
	return camera.Pose{Position: s.CameraTarget, LookAt: s.LookAtTarget}
}

// Page is the part of the scroll surface the controller needs.
type Page interface {
	Offset() float32
	ScrollTo(offset float32)
	SetScrollLocked(locked bool)
	ScrollableHeight() float32
}

// ScrollMapper is the part of the scroll mapper the controller needs.
type ScrollMapper interface {
	SetEnabled(enabled bool)
	Map(offset, scrollableHeight float32) (scroll.Frame, bool)
}

// ChangedFunc is called after every mode change.
type ChangedFunc func(from, to Mode)
