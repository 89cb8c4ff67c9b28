package mode

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/tween"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"
)

// Controller is the camera mode state machine.
//
// All methods must be called from the frame goroutine. Requests that arrive
// while a transition animation is in flight are dropped, not queued.
type Controller interface {
	// Mode returns the current mode.
	//
	// Returns:
	//   - Mode: the current mode
	Mode() Mode

	// Animating reports whether a transition or fly-in animation is in flight.
	//
	// Returns:
	//   - bool: true while an animation owns the rendered pose
	Animating() bool

	// Saved returns the narrative snapshot taken when exploration began.
	//
	// Returns:
	//   - SavedState: the snapshot
	//   - bool: false in Narrative, where no snapshot exists
	Saved() (SavedState, bool)

	// RequestEnterExplore starts the transition into free orbit.
	// Ignored unless the mode is Narrative and nothing is animating.
	//
	// Returns:
	//   - bool: true if the transition started
	RequestEnterExplore() bool

	// RequestExitExplore starts the transition back to the narrative.
	// Ignored unless the mode is Explore and nothing is animating.
	//
	// Returns:
	//   - bool: true if the transition started
	RequestExitExplore() bool

	// FlyIn animates the rendered pose from the given pose to the current
	// camera target. The mode stays Narrative but explore requests are dropped
	// until the fly-in lands.
	//
	// Parameters:
	//   - from: the pose the camera starts at
	//
	// Returns:
	//   - bool: true if the fly-in started
	FlyIn(from camera.Pose) bool

	// Update advances the in-flight animation by dt seconds, writes the animated
	// pose as the rendered pose, and completes the transition once the animation
	// signals done. With nothing in flight it does nothing.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous frame
	Update(dt float32)
}

type animationKind int

const (
	kindNone animationKind = iota
	kindFlyIn
	kindEnter
	kindExit
)

type controllerImpl struct {
	state  *camera.State
	page   Page
	mapper ScrollMapper
	orbit  camera.OrbitController
	driver tween.Driver

	mode  Mode
	saved *SavedState

	anim     tween.Animation
	animKind animationKind

	duration      time.Duration
	flyInDuration time.Duration
	easing        ease.TweenFunc
	exploreOrigin camera.Pose

	onChanged ChangedFunc
}

var _ Controller = &controllerImpl{}

// NewController creates a Controller in Narrative mode. The orbit controller is
// disabled and the mapper enabled so the starting authority is unambiguous.
//
// Parameters:
//   - state: the camera state all writers share
//   - page: the scroll surface to lock and restore
//   - mapper: the scroll mapper to disable during exploration
//   - orbit: the orbit controller that owns the camera in Explore
//   - driver: the tween driver used for transitions
//   - options: functional options
//
// Returns:
//   - Controller: the new controller
func NewController(state *camera.State, page Page, mapper ScrollMapper, orbit camera.OrbitController, driver tween.Driver, options ...ControllerBuilderOption) Controller {
	c := &controllerImpl{
		state:         state,
		page:          page,
		mapper:        mapper,
		orbit:         orbit,
		driver:        driver,
		mode:          Narrative,
		duration:      1400 * time.Millisecond,
		flyInDuration: 5 * time.Second,
		easing:        tween.PowerTwoInOut,
		exploreOrigin: camera.Pose{Position: mgl32.Vec3{0, 0, 11}, LookAt: mgl32.Vec3{0, 0, 0}},
	}
	for _, option := range options {
		option(c)
	}
	c.orbit.SetEnabled(false)
	c.mapper.SetEnabled(true)
	return c
}

func (c *controllerImpl) Mode() Mode {
	return c.mode
}

func (c *controllerImpl) Animating() bool {
	return c.anim != nil
}

func (c *controllerImpl) Saved() (SavedState, bool) {
	if c.saved == nil {
		return SavedState{}, false
	}
	return *c.saved, true
}

func (c *controllerImpl) RequestEnterExplore() bool {
	if c.mode != Narrative || c.Animating() {
		log.Printf("[Mode] enter explore dropped: mode=%s animating=%t", c.mode, c.Animating())
		return false
	}

	target := c.state.Target()
	c.saved = &SavedState{
		CameraTarget: target.Position,
		LookAtTarget: target.LookAt,
		ScrollOffset: c.page.Offset(),
	}
	c.page.SetScrollLocked(true)
	c.mapper.SetEnabled(false)

	c.start(kindEnter, c.state.Current(), c.exploreOrigin, c.duration)
	c.setMode(EnteringExplore)
	return true
}

func (c *controllerImpl) RequestExitExplore() bool {
	if c.mode != Explore || c.Animating() {
		log.Printf("[Mode] exit explore dropped: mode=%s animating=%t", c.mode, c.Animating())
		return false
	}

	c.orbit.SetEnabled(false)
	c.start(kindExit, c.orbit.Pose(), c.saved.Pose(), c.duration)
	c.setMode(ExitingExplore)
	return true
}

func (c *controllerImpl) FlyIn(from camera.Pose) bool {
	if c.mode != Narrative || c.Animating() {
		return false
	}
	c.state.SetCurrent(from)
	c.start(kindFlyIn, from, c.state.Target(), c.flyInDuration)
	return true
}

func (c *controllerImpl) Update(dt float32) {
	if c.anim == nil {
		return
	}

	c.state.SetCurrent(c.anim.Update(dt))

	select {
	case <-c.anim.Done():
	default:
		return
	}

	kind := c.animKind
	c.anim = nil
	c.animKind = kindNone

	switch kind {
	case kindEnter:
		c.finishEnter()
	case kindExit:
		c.finishExit()
	}
}

func (c *controllerImpl) start(kind animationKind, from, to camera.Pose, duration time.Duration) {
	c.anim = c.driver.Start(from, to, duration, c.easing)
	c.animKind = kind
}

func (c *controllerImpl) finishEnter() {
	c.orbit.Recenter(c.exploreOrigin)
	c.orbit.SetEnabled(true)
	pose := c.orbit.Pose()
	c.state.SetTarget(pose)
	c.state.SetCurrent(pose)
	c.setMode(Explore)
}

func (c *controllerImpl) finishExit() {
	saved := *c.saved
	c.state.SetTarget(saved.Pose())
	c.page.ScrollTo(saved.ScrollOffset)
	c.saved = nil
	c.page.SetScrollLocked(false)
	c.mapper.SetEnabled(true)
	c.setMode(Narrative)

	// The page may have been resized while exploring; resync against where it actually is.
	c.mapper.Map(c.page.Offset(), c.page.ScrollableHeight())
}

func (c *controllerImpl) setMode(m Mode) {
	from := c.mode
	c.mode = m
	log.Printf("[Mode] %s -> %s", from, m)
	if c.onChanged != nil {
		c.onChanged(from, m)
	}
}
