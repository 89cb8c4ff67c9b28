package frame

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/input"
	"github.com/Carmen-Shannon/oxy-scroll/engine/mode"
	"github.com/Carmen-Shannon/oxy-scroll/engine/page"
	"github.com/Carmen-Shannon/oxy-scroll/engine/path"
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scroll"
	"github.com/Carmen-Shannon/oxy-scroll/engine/tween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	frames  []renderer.FrameData
	resized [][2]int
	err     error
}

func (r *recordingRenderer) SubmitFrame(frame renderer.FrameData) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, frame)
	return nil
}

func (r *recordingRenderer) Resize(width, height int) {
	r.resized = append(r.resized, [2]int{width, height})
}

type fakeMusic struct{ playing bool }

func (m *fakeMusic) Toggle() bool {
	m.playing = !m.playing
	return m.playing
}

type rig struct {
	ctx      Context
	table    path.Table
	renderer *recordingRenderer
	driver   Driver
}

func newRig(t *testing.T, options ...DriverBuilderOption) *rig {
	t.Helper()
	table := path.ReferenceTable()
	state := camera.NewState(camera.Pose{})
	pg := page.NewPage(table.Len(), 200) // scrollable height 1000
	mapper := scroll.NewMapper(table, state)
	orbit := camera.NewOrbitController()
	ctrl := mode.NewController(state, pg, mapper, orbit, tween.NewDriver())
	rr := &recordingRenderer{}

	ctx := Context{
		Queue:      input.NewQueue(),
		State:      state,
		Camera:     camera.NewCamera(),
		Orbit:      orbit,
		Page:       pg,
		Mapper:     mapper,
		Controller: ctrl,
		Scene:      scene.NewScene(),
		Renderer:   rr,
	}
	return &rig{ctx: ctx, table: table, renderer: rr, driver: NewDriver(ctx, options...)}
}

func (r *rig) tickFor(seconds float32) {
	const dt = float32(1.0 / 60.0)
	for elapsed := float32(0); elapsed < seconds; elapsed += dt {
		r.driver.Tick(dt)
	}
}

func TestDriver_InitialTargetIsFirstStop(t *testing.T) {
	r := newRig(t)
	assert.Equal(t, r.table.Stop(0).Position, r.ctx.State.Target().Position)
	assert.Equal(t, r.table.Stop(0).LookAt, r.ctx.State.Target().LookAt)
}

func TestDriver_NarrativeSmoothing(t *testing.T) {
	r := newRig(t, WithLerpFactor(0.5))
	r.driver.Tick(1.0 / 60.0)

	want := r.table.Stop(0).Position.Mul(0.5)
	assert.InDelta(t, 0, r.ctx.State.Current().Position.Sub(want).Len(), 1e-5)
	assert.Equal(t, r.ctx.State.Current(), r.ctx.Camera.Pose(), "rendered pose reaches the camera")
	require.Len(t, r.renderer.frames, 1)
}

func TestDriver_SmoothingIgnoresFrameDuration(t *testing.T) {
	a := newRig(t)
	b := newRig(t)
	a.driver.Tick(1.0 / 30.0)
	b.driver.Tick(1.0 / 144.0)
	assert.Equal(t, a.ctx.State.Current(), b.ctx.State.Current())
}

func TestDriver_WheelScrollsPage(t *testing.T) {
	r := newRig(t)
	r.ctx.Queue.Push(input.ScrollEvent{DY: -5}) // toward the user, 600px down
	r.driver.Tick(0.016)

	assert.Equal(t, float32(600), r.ctx.Page.Offset())
	assert.Equal(t, r.table.Stop(3).Position, r.ctx.State.Target().Position)
	assert.Equal(t, 3, r.ctx.Mapper.ActiveSection())
}

func TestDriver_EventsApplyInOrderBeforeFrame(t *testing.T) {
	r := newRig(t)
	r.ctx.Queue.Push(input.ScrollToEvent{Offset: 1000})
	r.ctx.Queue.Push(input.ScrollEvent{DY: 10}) // back up 1200px, clamped to 0
	r.ctx.Queue.Push(input.ScrollEvent{DY: -1})
	r.driver.Tick(0.016)

	assert.Equal(t, float32(120), r.ctx.Page.Offset())
	assert.Equal(t, 0, r.ctx.Queue.Len())
}

func TestDriver_ExploreRoundTrip(t *testing.T) {
	r := newRig(t)
	r.ctx.Queue.Push(input.ScrollToEvent{Offset: 400})
	r.tickFor(0.1)
	before := r.ctx.State.Target()

	r.ctx.Queue.Push(input.KeyEvent{Key: common.KeyE})
	r.tickFor(2)
	require.Equal(t, mode.Explore, r.ctx.Controller.Mode())

	// wheel zooms instead of scrolling while orbiting
	radius := r.ctx.Orbit.Radius()
	r.ctx.Queue.Push(input.ScrollEvent{DY: 2})
	r.ctx.Queue.Push(input.DragEvent{DX: 40})
	r.driver.Tick(0.016)
	assert.Less(t, r.ctx.Orbit.Radius(), radius)
	assert.Equal(t, float32(400), r.ctx.Page.Offset())
	assert.Equal(t, r.ctx.Orbit.Pose(), r.ctx.State.Target(), "orbit owns the camera")
	assert.Equal(t, r.ctx.Orbit.Pose(), r.ctx.State.Current())

	r.ctx.Queue.Push(input.KeyEvent{Key: common.KeyEsc})
	r.tickFor(2)
	assert.Equal(t, mode.Narrative, r.ctx.Controller.Mode())
	assert.Equal(t, before, r.ctx.State.Target())
	assert.Equal(t, float32(400), r.ctx.Page.Offset())
}

func TestDriver_ScrollDuringTransitionIsDropped(t *testing.T) {
	r := newRig(t)
	r.ctx.Queue.Push(input.EnterExploreEvent{})
	r.driver.Tick(0.1)
	require.Equal(t, mode.EnteringExplore, r.ctx.Controller.Mode())
	target := r.ctx.State.Target()

	r.ctx.Queue.Push(input.ScrollEvent{DY: -3})
	r.ctx.Queue.Push(input.ScrollToEvent{Offset: 900})
	r.driver.Tick(0.1)
	assert.Equal(t, float32(0), r.ctx.Page.Offset())
	assert.Equal(t, target, r.ctx.State.Target())
}

func TestDriver_StalledClockKeepsRendering(t *testing.T) {
	r := newRig(t)
	r.ctx.Queue.Push(input.EnterExploreEvent{})
	for range 500 {
		r.driver.Tick(0)
	}
	assert.Equal(t, mode.EnteringExplore, r.ctx.Controller.Mode())
	assert.Len(t, r.renderer.frames, 500)
	assert.Equal(t, uint64(500), r.driver.Frames())
}

func TestDriver_Resize(t *testing.T) {
	r := newRig(t)
	r.ctx.Queue.Push(input.ScrollToEvent{Offset: 500})
	r.ctx.Queue.Push(input.ResizeEvent{Width: 1600, Height: 400})
	r.ctx.Queue.Push(input.ResizeEvent{Width: 0, Height: 0})
	r.driver.Tick(0.016)

	assert.Equal(t, [][2]int{{1600, 400}}, r.renderer.resized)
	assert.Equal(t, float32(4), r.ctx.Camera.Aspect())
	assert.Equal(t, float32(2000), r.ctx.Page.ScrollableHeight())

	expect := camera.NewState(camera.Pose{})
	scroll.NewMapper(r.table, expect).Map(500, 2000)
	assert.Equal(t, expect.Target(), r.ctx.State.Target())
}

func TestDriver_Keys(t *testing.T) {
	music := &fakeMusic{}
	quits := 0
	r := newRig(t, WithMusic(music), WithQuit(func() { quits++ }))

	r.ctx.Queue.Push(input.KeyEvent{Key: common.KeyPageDown})
	r.driver.Tick(0.016)
	assert.Equal(t, float32(200), r.ctx.Page.Offset())

	r.ctx.Queue.Push(input.KeyEvent{Key: common.KeySpace})
	r.ctx.Queue.Push(input.KeyEvent{Key: common.KeySpace, Shift: true})
	r.ctx.Queue.Push(input.KeyEvent{Key: common.KeyEnd})
	r.driver.Tick(0.016)
	assert.Equal(t, float32(1000), r.ctx.Page.Offset())

	r.ctx.Queue.Push(input.KeyEvent{Key: common.KeyHome})
	r.ctx.Queue.Push(input.KeyEvent{Key: common.KeyM})
	r.ctx.Queue.Push(input.ToggleMusicEvent{})
	r.ctx.Queue.Push(input.KeyEvent{Key: common.KeyM})
	r.ctx.Queue.Push(input.KeyEvent{Key: common.KeyQ})
	r.ctx.Queue.Push(input.QuitEvent{})
	r.driver.Tick(0.016)
	assert.Equal(t, float32(0), r.ctx.Page.Offset())
	assert.True(t, music.playing)
	assert.Equal(t, 2, quits)
}

func TestDriver_NumberKeysJumpToSections(t *testing.T) {
	r := newRig(t)

	r.ctx.Queue.Push(input.KeyEvent{Key: common.Key1 + 2})
	r.driver.Tick(0.016)
	assert.Equal(t, float32(400), r.ctx.Page.Offset())
	assert.Equal(t, r.table.Stop(2).Position, r.ctx.State.Target().Position)
	assert.Equal(t, 2, r.ctx.Mapper.ActiveSection())

	r.ctx.Queue.Push(input.KeyEvent{Key: common.Key9}) // only six sections
	r.driver.Tick(0.016)
	assert.Equal(t, float32(400), r.ctx.Page.Offset())

	r.ctx.Queue.Push(input.KeyEvent{Key: common.Key1 + 5})
	r.driver.Tick(0.016)
	assert.Equal(t, float32(1000), r.ctx.Page.Offset())
	assert.Equal(t, r.table.Stop(5).Position, r.ctx.State.Target().Position)
}

func TestDriver_NumberKeysIgnoredWhileExploring(t *testing.T) {
	r := newRig(t)
	r.ctx.Queue.Push(input.KeyEvent{Key: common.KeyE})
	r.tickFor(2)
	require.Equal(t, mode.Explore, r.ctx.Controller.Mode())

	r.ctx.Queue.Push(input.KeyEvent{Key: common.Key1 + 4})
	r.driver.Tick(0.016)
	assert.Equal(t, float32(0), r.ctx.Page.Offset())
	assert.Equal(t, mode.Explore, r.ctx.Controller.Mode())
}

func TestDriver_DroppedFramesCounted(t *testing.T) {
	r := newRig(t)
	r.renderer.err = errors.New("surface outdated")
	r.driver.Tick(0.016)
	r.driver.Tick(0.016)
	assert.Equal(t, uint64(2), r.driver.DroppedFrames())

	r.renderer.err = nil
	r.driver.Tick(0.016)
	assert.Equal(t, uint64(2), r.driver.DroppedFrames())
	assert.Equal(t, uint64(3), r.driver.Frames())
}

func TestDriver_SubmitsSceneAndCamera(t *testing.T) {
	r := newRig(t)
	r.driver.Tick(0.5)
	require.Len(t, r.renderer.frames, 1)

	frame := r.renderer.frames[0]
	cam, ok := frame.Camera.(*camera.GPUCameraUniform)
	require.True(t, ok)
	assert.Equal(t, [3]float32(r.ctx.State.Current().Position), cam.CameraPosition)

	sc, ok := frame.Scene.(*scene.GPUSceneUniform)
	require.True(t, ok)
	assert.Equal(t, float32(0.5), sc.Elapsed)
	assert.InDelta(t, 0.05, float64(r.ctx.Scene.EarthRotation()), 1e-6)
}
