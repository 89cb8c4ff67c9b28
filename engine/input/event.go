// Package input carries user and window events from the window callbacks to
// the frame goroutine. Callbacks only push; the frame driver drains the queue
// once per frame before it reads any state, so every event that arrived since
// the previous frame is fully applied before the next frame is built.
package input

// Event is a single input message. The concrete types below are the only implementations.
type Event interface {
	event()
}

// ScrollEvent is one mouse wheel movement. DY > 0 means the wheel moved away from the user.
type ScrollEvent struct {
	DX, DY float64
}

// DragEvent is a cursor movement while the rotate button is held, in pixels.
type DragEvent struct {
	DX, DY float64
}

// KeyEvent is a key press. Repeats are not delivered.
type KeyEvent struct {
	Key   int
	Shift bool
}

// ResizeEvent carries the new framebuffer size in pixels.
type ResizeEvent struct {
	Width, Height int
}

// ScrollToEvent jumps the page to an absolute offset, e.g. a navigation link.
type ScrollToEvent struct {
	Offset float32
}

// EnterExploreEvent asks the mode controller to enter free orbit.
type EnterExploreEvent struct{}

// ExitExploreEvent asks the mode controller to return to the narrative.
type ExitExploreEvent struct{}

// ToggleMusicEvent flips background music on or off.
type ToggleMusicEvent struct{}

// QuitEvent asks the engine to stop.
type QuitEvent struct{}

func (ScrollEvent) event()       {}
func (DragEvent) event()         {}
func (KeyEvent) event()          {}
func (ResizeEvent) event()       {}
func (ScrollToEvent) event()     {}
func (EnterExploreEvent) event() {}
func (ExitExploreEvent) event()  {}
func (ToggleMusicEvent) event()  {}
func (QuitEvent) event()         {}
