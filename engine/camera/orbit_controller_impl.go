package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// orbitControllerImpl is the spherical-coordinate implementation of OrbitController.
// Rotation input accumulates into pending azimuth/elevation deltas which Update
// drains, either fully or by DampingFactor per frame.
type orbitControllerImpl struct {
	mu *sync.Mutex

	enabled bool

	// Camera position (computed from target + spherical coords)
	position [3]float32
	target   [3]float32

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis
	elevation float32 // Vertical angle from horizontal plane

	// Orbit constraints
	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	// Input scaling
	rotateSensitivity float32
	zoomSpeed         float32
	dampingFactor     float32

	// Rotation queued by Rotate and not yet applied
	pendingAzimuth   float32
	pendingElevation float32
}

var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates a disabled orbit controller. Defaults match the
// explore mode of the earth scene: damping on, distance bounds [5, 18], no pan.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	oc := &orbitControllerImpl{
		mu:     &sync.Mutex{},
		target: [3]float32{0, 0, 0},

		radius:    11.0,
		azimuth:   0.0,
		elevation: 0.0,

		minRadius:    5.0,
		maxRadius:    18.0,
		minElevation: float32(-math.Pi/2 + 0.01),
		maxElevation: float32(math.Pi/2 - 0.01),

		rotateSensitivity: 0.005,
		zoomSpeed:         1.0,
		dampingFactor:     0.05,
	}

	for _, option := range options {
		option(oc)
	}

	oc.clampRadius()
	oc.clampElevation()
	oc.updatePosition()
	return oc
}

// --- internal helpers ---

// updatePosition recomputes the camera position from spherical coordinates.
// Caller must hold the mutex.
func (oc *orbitControllerImpl) updatePosition() {
	cosElev := float32(math.Cos(float64(oc.elevation)))
	sinElev := float32(math.Sin(float64(oc.elevation)))
	cosAzim := float32(math.Cos(float64(oc.azimuth)))
	sinAzim := float32(math.Sin(float64(oc.azimuth)))

	oc.position[0] = oc.target[0] + oc.radius*cosElev*sinAzim
	oc.position[1] = oc.target[1] + oc.radius*sinElev
	oc.position[2] = oc.target[2] + oc.radius*cosElev*cosAzim
}

// Caller must hold the mutex.
func (oc *orbitControllerImpl) clampRadius() {
	if oc.radius < oc.minRadius {
		oc.radius = oc.minRadius
	}
	if oc.radius > oc.maxRadius {
		oc.radius = oc.maxRadius
	}
}

// Caller must hold the mutex.
func (oc *orbitControllerImpl) clampElevation() {
	if oc.elevation < oc.minElevation {
		oc.elevation = oc.minElevation
	}
	if oc.elevation > oc.maxElevation {
		oc.elevation = oc.maxElevation
	}
}

func (oc *orbitControllerImpl) Enabled() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.enabled
}

func (oc *orbitControllerImpl) SetEnabled(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.enabled = enabled
	if !enabled {
		oc.pendingAzimuth = 0
		oc.pendingElevation = 0
	}
}

func (oc *orbitControllerImpl) Recenter(pose Pose) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	oc.target = pose.LookAt
	offset := pose.Position.Sub(pose.LookAt)
	r := offset.Len()
	if r < 1e-6 {
		// Position on the pivot has no direction; keep the current angles.
		oc.clampRadius()
		oc.updatePosition()
		return
	}

	oc.radius = r
	oc.azimuth = float32(math.Atan2(float64(offset[0]), float64(offset[2])))
	oc.elevation = float32(math.Asin(float64(offset[1] / r)))
	oc.pendingAzimuth = 0
	oc.pendingElevation = 0

	oc.clampRadius()
	oc.clampElevation()
	oc.updatePosition()
}

func (oc *orbitControllerImpl) Pose() Pose {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return Pose{
		Position: mgl32.Vec3(oc.position),
		LookAt:   mgl32.Vec3(oc.target),
	}
}

func (oc *orbitControllerImpl) Rotate(dx, dy float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled {
		return
	}
	// Dragging right swings the camera left around the pivot, like grabbing the globe.
	oc.pendingAzimuth -= dx * oc.rotateSensitivity
	oc.pendingElevation += dy * oc.rotateSensitivity
}

func (oc *orbitControllerImpl) Zoom(delta float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled {
		return
	}
	oc.radius -= delta * oc.zoomSpeed
	oc.clampRadius()
	oc.updatePosition()
}

func (oc *orbitControllerImpl) Update() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled {
		return
	}

	step := oc.dampingFactor
	if step <= 0 || step > 1 {
		step = 1
	}

	oc.azimuth += oc.pendingAzimuth * step
	oc.elevation += oc.pendingElevation * step
	oc.pendingAzimuth *= 1 - step
	oc.pendingElevation *= 1 - step

	oc.clampElevation()
	oc.updatePosition()
}

func (oc *orbitControllerImpl) Radius() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.radius
}

func (oc *orbitControllerImpl) MinRadius() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.minRadius
}

func (oc *orbitControllerImpl) MaxRadius() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.maxRadius
}

func (oc *orbitControllerImpl) Azimuth() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.azimuth
}

func (oc *orbitControllerImpl) Elevation() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.elevation
}

func (oc *orbitControllerImpl) DampingFactor() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.dampingFactor
}
