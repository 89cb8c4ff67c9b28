package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/engine/input"
)

// Window is the part of the platform window the engine drives.
// window.Window satisfies it.
type Window interface {
	SetUpdateCallback(callback func())
	SetResizeCallback(callback func(width, height int))
	SetScrollCallback(callback func(dx, dy float64))
	SetKeyDownCallback(callback func(keyCode uint32, shift bool))
	SetDragCallback(callback func(dx, dy float64))
	SetCloseCallback(callback func())
	ProcessMessages()
	Close() error
}

// FrameDriver advances the scene by one frame. frame.Driver satisfies it.
type FrameDriver interface {
	Tick(dt float32)
}

// engine implements the Engine interface.
// Coordinates the render goroutine with the window message loop on the main thread.
type engine struct {
	wg sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once
	closeOnce   sync.Once // Ensures shutdown hooks and window close run once

	window Window
	queue  input.Queue
	driver FrameDriver

	shutdownHooks []func()

	renderFrameLimit atomic.Int64 // minimum frame duration in nanoseconds; 0 = uncapped
}

// Engine is the main entry point for the engine.
// It routes window input into the event queue and runs the frame driver in the render loop.
type Engine interface {
	// Queue returns the event queue window callbacks push into.
	//
	// Returns:
	//   - input.Queue: the event queue
	Queue() input.Queue

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the render loop and the window message loop (blocks until the window closes or Quit is called).
	Run()

	// Quit signals the render goroutine to stop and closes the window from the message loop.
	// Safe to call multiple times and from any goroutine; subsequent calls are no-ops.
	Quit()

	// Done returns a channel that is closed once Quit has been signalled.
	//
	// Returns:
	//   - <-chan struct{}: the quit signal
	Done() <-chan struct{}
}

// NewEngine creates a new Engine instance with the provided options and registers
// the window callbacks that feed the event queue.
//
// Parameters:
//   - options: functional options for engine configuration (window, driver, frame limit, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel: make(chan struct{}),
		wg:          sync.WaitGroup{},
	}

	for _, opt := range options {
		opt(e)
	}
	if e.queue == nil {
		e.queue = input.NewQueue()
	}

	if e.window != nil {
		e.bindWindow()
	}

	return e
}

// bindWindow translates window callbacks into queued events.
// Callbacks run on the main thread; the frame driver consumes the queue on the render goroutine.
func (e *engine) bindWindow() {
	e.window.SetResizeCallback(func(width, height int) {
		e.queue.Push(input.ResizeEvent{Width: width, Height: height})
	})
	e.window.SetScrollCallback(func(dx, dy float64) {
		e.queue.Push(input.ScrollEvent{DX: dx, DY: dy})
	})
	e.window.SetKeyDownCallback(func(keyCode uint32, shift bool) {
		e.queue.Push(input.KeyEvent{Key: int(keyCode), Shift: shift})
	})
	e.window.SetDragCallback(func(dx, dy float64) {
		e.queue.Push(input.DragEvent{DX: dx, DY: dy})
	})
	e.window.SetCloseCallback(e.signalQuit)
	e.window.SetUpdateCallback(func() {
		select {
		case <-e.quitChannel:
			e.shutdown()
		default:
		}
	})
}

func (e *engine) Queue() input.Queue {
	return e.queue
}

func (e *engine) Done() <-chan struct{} {
	return e.quitChannel
}

func (e *engine) Run() {
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
	} else {
		<-e.quitChannel
	}
	e.shutdown()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		log.Println("[Engine] quit requested")
		close(e.quitChannel)
	})
}

// shutdown stops the render goroutine, runs the shutdown hooks and closes the window.
// Must run on the main thread since it destroys the window.
func (e *engine) shutdown() {
	e.closeOnce.Do(func() {
		e.signalQuit()
		e.wg.Wait()

		for _, hook := range e.shutdownHooks {
			hook()
		}
		if e.window != nil {
			if err := e.window.Close(); err != nil {
				log.Printf("[Engine] failed to close window: %v", err)
			}
		}
	})
}

// handle launches the render goroutine, tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(1)
	go e.handleRender()
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Each iteration hands the elapsed time to the frame driver, which owns input, camera and submission.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	// Recover from panics inside the render goroutine to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.driver != nil {
				e.driver.Tick(dt)
			}

			// Frame rate limiting
			if limit := time.Duration(e.renderFrameLimit.Load()); limit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := limit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			} else if e.driver == nil {
				time.Sleep(time.Millisecond)
			}
		}
	}
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit.Store(int64(frameDuration(fps)))
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
