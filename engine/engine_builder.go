package engine

import (
	"github.com/Carmen-Shannon/oxy-scroll/engine/input"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithWindow sets the window whose message loop Run drives and whose input feeds the queue.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithQueue sets the event queue shared with the frame driver.
// Without it the engine creates its own, available through Queue.
//
// Parameters:
//   - q: the event queue
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithQueue(q input.Queue) EngineBuilderOption {
	return func(e *engine) {
		e.queue = q
	}
}

// WithFrameDriver sets the driver ticked once per render frame.
//
// Parameters:
//   - d: the frame driver
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameDriver(d FrameDriver) EngineBuilderOption {
	return func(e *engine) {
		e.driver = d
	}
}

// WithShutdownHook adds a function run on the main thread after the render loop has stopped
// and before the window is closed. Hooks run in the order they were added.
//
// Parameters:
//   - hook: the function to run
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithShutdownHook(hook func()) EngineBuilderOption {
	return func(e *engine) {
		if hook != nil {
			e.shutdownHooks = append(e.shutdownHooks, hook)
		}
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit.Store(int64(frameDuration(fps)))
	}
}
