package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/engine/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	onUpdate func()
	onResize func(width, height int)
	onScroll func(dx, dy float64)
	onKey    func(keyCode uint32, shift bool)
	onDrag   func(dx, dy float64)
	onClose  func()

	closed     atomic.Bool
	closeCalls atomic.Int32
}

func (f *fakeWindow) SetUpdateCallback(cb func())                        { f.onUpdate = cb }
func (f *fakeWindow) SetResizeCallback(cb func(width, height int))       { f.onResize = cb }
func (f *fakeWindow) SetScrollCallback(cb func(dx, dy float64))          { f.onScroll = cb }
func (f *fakeWindow) SetKeyDownCallback(cb func(keyCode uint32, s bool)) { f.onKey = cb }
func (f *fakeWindow) SetDragCallback(cb func(dx, dy float64))            { f.onDrag = cb }
func (f *fakeWindow) SetCloseCallback(cb func())                         { f.onClose = cb }

func (f *fakeWindow) ProcessMessages() {
	for !f.closed.Load() {
		if f.onUpdate != nil {
			f.onUpdate()
		}
		time.Sleep(time.Millisecond)
	}
}

func (f *fakeWindow) Close() error {
	f.closeCalls.Add(1)
	f.closed.Store(true)
	return nil
}

type countingDriver struct {
	ticks atomic.Int64
	panic bool
}

func (d *countingDriver) Tick(dt float32) {
	if d.panic {
		panic("boom")
	}
	d.ticks.Add(1)
}

func runAsync(e Engine) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	return done
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for engine")
	}
}

func TestEngine_WindowCallbacksFeedQueue(t *testing.T) {
	w := &fakeWindow{}
	e := NewEngine(WithWindow(w))

	w.onScroll(0, -1)
	w.onKey(69, false)
	w.onKey(32, true)
	w.onDrag(3, -2)
	w.onResize(800, 600)

	events := e.Queue().Drain()
	require.Len(t, events, 5)
	assert.Equal(t, input.ScrollEvent{DX: 0, DY: -1}, events[0])
	assert.Equal(t, input.KeyEvent{Key: 69}, events[1])
	assert.Equal(t, input.KeyEvent{Key: 32, Shift: true}, events[2])
	assert.Equal(t, input.DragEvent{DX: 3, DY: -2}, events[3])
	assert.Equal(t, input.ResizeEvent{Width: 800, Height: 600}, events[4])
}

func TestEngine_UsesSharedQueue(t *testing.T) {
	q := input.NewQueue()
	w := &fakeWindow{}
	e := NewEngine(WithWindow(w), WithQueue(q))

	assert.Same(t, q, e.Queue())
	w.onScroll(0, 1)
	assert.Equal(t, 1, q.Len())
}

func TestEngine_QuitStopsRunAndClosesWindowOnce(t *testing.T) {
	w := &fakeWindow{}
	d := &countingDriver{}
	hooks := 0
	e := NewEngine(WithWindow(w), WithFrameDriver(d), WithRenderFrameLimit(500), WithShutdownHook(func() { hooks++ }))

	done := runAsync(e)
	require.Eventually(t, func() bool { return d.ticks.Load() > 2 }, time.Second, time.Millisecond)

	e.Quit()
	e.Quit()
	waitFor(t, done)

	assert.Equal(t, int32(1), w.closeCalls.Load())
	assert.Equal(t, 1, hooks)
	waitFor(t, e.Done())
}

func TestEngine_WindowCloseSignalsQuit(t *testing.T) {
	w := &fakeWindow{}
	e := NewEngine(WithWindow(w), WithFrameDriver(&countingDriver{}), WithRenderFrameLimit(500))

	done := runAsync(e)
	w.onClose()
	waitFor(t, done)
	waitFor(t, e.Done())
}

func TestEngine_RenderPanicQuits(t *testing.T) {
	w := &fakeWindow{}
	e := NewEngine(WithWindow(w), WithFrameDriver(&countingDriver{panic: true}))

	done := runAsync(e)
	waitFor(t, done)
	assert.True(t, w.closed.Load())
}

func TestEngine_RunWithoutWindow(t *testing.T) {
	d := &countingDriver{}
	e := NewEngine(WithFrameDriver(d), WithRenderFrameLimit(1000))

	done := runAsync(e)
	require.Eventually(t, func() bool { return d.ticks.Load() > 0 }, time.Second, time.Millisecond)
	e.Quit()
	waitFor(t, done)
}

func TestFrameDuration(t *testing.T) {
	assert.Zero(t, frameDuration(0))
	assert.Zero(t, frameDuration(-30))
	assert.Equal(t, 20*time.Millisecond, frameDuration(50))
}
