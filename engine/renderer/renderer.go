package renderer

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lucasb-eyer/go-colorful"
)

// Uniform is a GPU-ready block of data, e.g. camera.GPUCameraUniform.
type Uniform interface {
	Size() int
	Marshal() []byte
}

// FrameData is everything the backend needs to draw one frame.
type FrameData struct {
	Camera Uniform
	Scene  Uniform
}

// SurfaceSource is anything a WebGPU surface can be created from, normally the window.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	width, height int
	frames        uint64

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	clearColor           colorful.Color
}

// Renderer submits one frame per call: it uploads the camera and scene
// uniforms, clears the surface and presents it.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// Zero sizes (a minimised window) are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Size returns the configured surface size.
	//
	// Returns:
	//   - width, height: the surface size in pixels
	Size() (width, height int)

	// SetPresentMode changes the present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the background colour.
	//
	// Parameters:
	//   - c: the colour, in sRGB
	SetClearColor(c colorful.Color)

	// SubmitFrame uploads the frame's uniforms and draws it.
	//
	// Parameters:
	//   - frame: the uniforms for this frame
	//
	// Returns:
	//   - error: error if the surface texture could not be acquired or a buffer write failed
	SubmitFrame(frame FrameData) error

	// Frames returns the number of frames presented so far.
	//
	// Returns:
	//   - uint64: the presented frame count
	Frames() uint64

	// Release frees the backend's GPU objects.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing into the surface of the given source.
// GPU bring-up failures panic.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - source: the window to create the surface from
//   - options: functional options
//
// Returns:
//   - Renderer: the new renderer
func NewRenderer(backendType RendererBackendType, source SurfaceSource, options ...RendererBuilderOption) Renderer {
	r := newRenderer(backendType, options...)

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(source.SurfaceDescriptor(), r.forceFallbackAdapter)
	}

	r.configure(source.Width(), source.Height())
	return r
}

// newRenderer applies options without touching the GPU. The caller sets the backend.
func newRenderer(backendType RendererBackendType, options ...RendererBuilderOption) *renderer {
	black, _ := colorful.Hex("#000011")
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		clearColor:  black,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *renderer) configure(width, height int) {
	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	lr, lg, lb := r.clearColor.LinearRgb()
	r.backend.SetClearColor(lr, lg, lb, 1)
	r.Resize(width, height)
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
	w, h := r.Size()
	if w > 0 && h > 0 {
		r.backend.ConfigureSurface(w, h)
	}
}

func (r *renderer) SetClearColor(c colorful.Color) {
	r.mu.Lock()
	r.clearColor = c
	r.mu.Unlock()
	lr, lg, lb := c.LinearRgb()
	r.backend.SetClearColor(lr, lg, lb, 1)
}

func (r *renderer) SubmitFrame(frame FrameData) error {
	if frame.Camera != nil {
		if err := r.backend.WriteUniform(UniformSlotCamera, frame.Camera.Marshal()); err != nil {
			return fmt.Errorf("failed to write camera uniform: %w", err)
		}
	}
	if frame.Scene != nil {
		if err := r.backend.WriteUniform(UniformSlotScene, frame.Scene.Marshal()); err != nil {
			return fmt.Errorf("failed to write scene uniform: %w", err)
		}
	}

	if err := r.backend.BeginFrame(); err != nil {
		return fmt.Errorf("failed to begin frame: %w", err)
	}
	r.backend.EndFrame()
	r.backend.Present()

	r.mu.Lock()
	r.frames++
	r.mu.Unlock()
	return nil
}

func (r *renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *renderer) Release() {
	r.backend.Release()
}
