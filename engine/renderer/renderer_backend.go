package renderer

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// UniformSlot names one of the per-frame uniform buffers.
type UniformSlot int

const (
	// UniformSlotCamera holds the camera view-projection and eye position.
	UniformSlotCamera UniformSlot = iota
	// UniformSlotScene holds the globe transform, sun and atmosphere.
	UniformSlotScene
)

func (s UniformSlot) String() string {
	switch s {
	case UniformSlotCamera:
		return "Camera Uniform"
	case UniformSlotScene:
		return "Scene Uniform"
	default:
		return "Uniform"
	}
}

// RendererBackend is the GPU side of the Renderer. The frontend sequences the
// calls; the backend owns the device objects.
type RendererBackend interface {
	// ConfigureSurface (re)configures the swapchain for the given pixel size.
	ConfigureSurface(width, height int)

	// SetPresentMode selects the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the colour the frame is cleared to, in linear RGB.
	SetClearColor(r, g, b, a float64)

	// WriteUniform uploads data into the buffer for slot, growing it if needed.
	WriteUniform(slot UniformSlot, data []byte) error

	// BeginFrame acquires the next surface texture and opens the render pass.
	BeginFrame() error

	// EndFrame closes the render pass and submits the command buffer.
	EndFrame()

	// Present shows the acquired surface texture and releases frame resources.
	Present()

	// Release frees every GPU object.
	Release()
}
