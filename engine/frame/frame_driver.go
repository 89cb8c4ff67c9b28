// Package frame runs the per-frame tick: it applies queued input, advances the
// mode controller, moves the camera according to the active mode and submits
// the result to the renderer.
package frame

import (
	"log"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/input"
	"github.com/Carmen-Shannon/oxy-scroll/engine/mode"
	"github.com/Carmen-Shannon/oxy-scroll/engine/page"
	"github.com/Carmen-Shannon/oxy-scroll/engine/profiler"
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scroll"
)

// Renderer is the part of the rendering backend the driver submits to.
type Renderer interface {
	SubmitFrame(frame renderer.FrameData) error
	Resize(width, height int)
}

// MusicPlayer is toggled by the music key.
type MusicPlayer interface {
	Toggle() bool
}

// Context bundles the collaborators the driver coordinates. Everything in it is
// owned by the frame goroutine once the driver is running.
type Context struct {
	Queue      input.Queue
	State      *camera.State
	Camera     camera.Camera
	Orbit      camera.OrbitController
	Page       page.Page
	Mapper     scroll.Mapper
	Controller mode.Controller
	Scene      scene.Scene
	Renderer   Renderer
}

// Driver advances the whole engine by one frame per Tick.
type Driver interface {
	// Tick runs one frame: drain input, update the controller, move the camera,
	// advance the scene and submit the frame.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous frame
	Tick(dt float32)

	// Resync re-runs the scroll mapper against the page's current offset.
	Resync()

	// Frames returns the number of ticks run.
	//
	// Returns:
	//   - uint64: the tick count
	Frames() uint64

	// DroppedFrames returns the number of frames the renderer rejected.
	//
	// Returns:
	//   - uint64: the rejected frame count
	DroppedFrames() uint64
}

type driverImpl struct {
	ctx Context

	lerpFactor float32
	scrollStep float32
	zoomStep   float32

	music    MusicPlayer
	profiler *profiler.Profiler
	onQuit   func()

	frames  uint64
	dropped uint64
	failing bool
}

var _ Driver = &driverImpl{}

// NewDriver creates a Driver over the given collaborators and maps the page's
// initial offset so the camera starts with a valid target.
//
// Parameters:
//   - ctx: the collaborators
//   - options: functional options
//
// Returns:
//   - Driver: the new driver
func NewDriver(ctx Context, options ...DriverBuilderOption) Driver {
	d := &driverImpl{
		ctx:        ctx,
		lerpFactor: 0.012,
		scrollStep: 120,
		zoomStep:   0.5,
	}
	for _, option := range options {
		option(d)
	}
	d.Resync()
	return d
}

func (d *driverImpl) Tick(dt float32) {
	for _, e := range d.ctx.Queue.Drain() {
		d.dispatch(e)
	}

	d.ctx.Controller.Update(dt)

	m := d.ctx.Controller.Mode()
	switch {
	case m == mode.Explore:
		d.ctx.Orbit.Update()
		pose := d.ctx.Orbit.Pose()
		d.ctx.State.SetTarget(pose)
		d.ctx.State.SetCurrent(pose)
	case d.ctx.Controller.Animating():
		// the controller already wrote the tweened pose
	default:
		// frame-rate dependent on purpose; changing it would change perceived speed
		d.ctx.State.Smooth(d.lerpFactor)
	}

	d.ctx.Scene.Update(dt)
	d.ctx.Camera.Update(d.ctx.State.Current())

	camUniform := d.ctx.Camera.Uniform()
	sceneUniform := d.ctx.Scene.Uniform()
	err := d.ctx.Renderer.SubmitFrame(renderer.FrameData{Camera: &camUniform, Scene: &sceneUniform})
	if err != nil {
		d.dropped++
		if !d.failing {
			log.Printf("[Frame] frame dropped: %v", err)
		}
	} else if d.failing {
		log.Printf("[Frame] rendering resumed after %d dropped frames", d.dropped)
	}
	d.failing = err != nil

	if d.profiler != nil {
		d.profiler.Tick(m.String())
	}
	d.frames++
}

func (d *driverImpl) Resync() {
	d.ctx.Mapper.Map(d.ctx.Page.Offset(), d.ctx.Page.ScrollableHeight())
}

func (d *driverImpl) Frames() uint64 {
	return d.frames
}

func (d *driverImpl) DroppedFrames() uint64 {
	return d.dropped
}

func (d *driverImpl) dispatch(e input.Event) {
	switch ev := e.(type) {
	case input.ScrollEvent:
		d.wheel(float32(ev.DY))
	case input.DragEvent:
		d.ctx.Orbit.Rotate(float32(ev.DX), float32(ev.DY))
	case input.KeyEvent:
		d.key(ev)
	case input.ResizeEvent:
		d.resize(ev.Width, ev.Height)
	case input.ScrollToEvent:
		if !d.ctx.Page.ScrollLocked() {
			d.ctx.Page.ScrollTo(ev.Offset)
			d.Resync()
		}
	case input.EnterExploreEvent:
		d.ctx.Controller.RequestEnterExplore()
	case input.ExitExploreEvent:
		d.ctx.Controller.RequestExitExplore()
	case input.ToggleMusicEvent:
		d.toggleMusic()
	case input.QuitEvent:
		d.quit()
	}
}

// wheel zooms the orbit while it owns the camera and scrolls the page otherwise.
// Positive dy is the wheel rolled away from the user.
func (d *driverImpl) wheel(dy float32) {
	if d.ctx.Orbit.Enabled() {
		d.ctx.Orbit.Zoom(dy * d.zoomStep)
		return
	}
	d.scrollBy(-dy * d.scrollStep)
}

func (d *driverImpl) scrollBy(delta float32) {
	if d.ctx.Page.ScrollBy(delta) {
		d.Resync()
	}
}

func (d *driverImpl) key(ev input.KeyEvent) {
	switch ev.Key {
	case common.KeyE:
		d.ctx.Controller.RequestEnterExplore()
	case common.KeyEsc:
		d.ctx.Controller.RequestExitExplore()
	case common.KeyM:
		d.toggleMusic()
	case common.KeyQ:
		d.quit()
	case common.KeySpace:
		if ev.Shift {
			d.scrollBy(-d.ctx.Page.ViewportHeight())
		} else {
			d.scrollBy(d.ctx.Page.ViewportHeight())
		}
	case common.KeyPageDown:
		d.scrollBy(d.ctx.Page.ViewportHeight())
	case common.KeyPageUp:
		d.scrollBy(-d.ctx.Page.ViewportHeight())
	case common.KeyHome:
		d.scrollBy(-d.ctx.Page.Offset())
	case common.KeyEnd:
		d.scrollBy(d.ctx.Page.ScrollableHeight() - d.ctx.Page.Offset())
	default:
		if ev.Key >= common.Key1 && ev.Key <= common.Key9 {
			d.jumpToSection(ev.Key - common.Key1)
		}
	}
}

// jumpToSection scrolls to the start of section i, the way a navigation link would.
func (d *driverImpl) jumpToSection(i int) {
	if i >= d.ctx.Page.Sections() {
		return
	}
	d.dispatch(input.ScrollToEvent{Offset: d.ctx.Page.SectionOffset(i)})
}

func (d *driverImpl) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.ctx.Page.Resize(float32(height))
	d.ctx.Camera.SetAspect(float32(width) / float32(height))
	d.ctx.Renderer.Resize(width, height)
	d.Resync()
}

func (d *driverImpl) toggleMusic() {
	if d.music == nil {
		return
	}
	if d.music.Toggle() {
		log.Printf("[Frame] music on")
	} else {
		log.Printf("[Frame] music off")
	}
}

func (d *driverImpl) quit() {
	if d.onQuit != nil {
		d.onQuit()
	}
}
