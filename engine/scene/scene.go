package scene

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Scene is the earth the camera flies around: a slowly rotating globe, a sun
// direction and the atmosphere tint. It is built once at startup and only its
// clock moves afterwards. Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Update advances the scene clock by dt seconds.
	//
	// Parameters:
	//   - dt: elapsed seconds since the last frame
	Update(dt float32)

	// Elapsed returns the total time the scene has been updated for, in seconds.
	Elapsed() float32

	// EarthRotation returns the globe's rotation about the Y axis in radians.
	EarthRotation() float32

	// SunDirection returns the unit vector pointing toward the sun.
	SunDirection() mgl32.Vec3

	// SetSun places the sun on the unit sphere. Phi is the polar angle from +Y,
	// theta the azimuth around Y measured from +Z.
	//
	// Parameters:
	//   - phi: polar angle in radians
	//   - theta: azimuth in radians
	SetSun(phi, theta float32)

	// CloudsMix returns the cloud layer blend factor.
	CloudsMix() float32

	// SetCloudsMix sets the cloud layer blend factor.
	//
	// Parameters:
	//   - mix: the blend factor
	SetCloudsMix(mix float32)

	// AtmosphereColors returns the day-side and twilight atmosphere colours.
	AtmosphereColors() (day, twilight colorful.Color)

	// SetAtmosphereColors replaces the atmosphere colours.
	//
	// Parameters:
	//   - day: the day-side colour
	//   - twilight: the twilight colour
	SetAtmosphereColors(day, twilight colorful.Color)

	// EarthModelMatrix returns the globe's model matrix (rotation about Y) in column-major order.
	EarthModelMatrix() [16]float32

	// Uniform packs the scene state for GPU upload.
	//
	// Returns:
	//   - GPUSceneUniform: the scene uniform for this frame
	Uniform() GPUSceneUniform
}

type scene struct {
	mu *sync.Mutex

	name   string
	active bool

	elapsed       float32
	rotationSpeed float32

	sunPhi   float32
	sunTheta float32

	cloudsMix         float32
	atmosphereScale   float32
	atmosphereDay     colorful.Color
	atmosphereTwilight colorful.Color
}

var _ Scene = &scene{}

// Default atmosphere colours of the earth scene.
var (
	DefaultAtmosphereDay, _      = colorful.Hex("#009dff")
	DefaultAtmosphereTwilight, _ = colorful.Hex("#0008ff")
)

// NewScene creates the earth scene with its default look: rotation 0.1 rad/s,
// sun at (phi pi/2, theta 0.5), clouds mix 0.09334, atmosphere shell 1.04x.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:                &sync.Mutex{},
		name:              "earth",
		active:            true,
		rotationSpeed:     0.1,
		sunPhi:            math.Pi * 0.5,
		sunTheta:          0.5,
		cloudsMix:         0.09334,
		atmosphereScale:   1.04,
		atmosphereDay:     DefaultAtmosphereDay,
		atmosphereTwilight: DefaultAtmosphereTwilight,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Update(dt float32) {
	if dt <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elapsed += dt
}

func (s *scene) Elapsed() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

func (s *scene) EarthRotation() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed * s.rotationSpeed
}

func (s *scene) SunDirection() mgl32.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sunDirection()
}

func (s *scene) SetSun(phi, theta float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sunPhi = phi
	s.sunTheta = theta
}

func (s *scene) CloudsMix() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloudsMix
}

func (s *scene) SetCloudsMix(mix float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cloudsMix = mix
}

func (s *scene) AtmosphereColors() (day, twilight colorful.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.atmosphereDay, s.atmosphereTwilight
}

func (s *scene) SetAtmosphereColors(day, twilight colorful.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.atmosphereDay = day
	s.atmosphereTwilight = twilight
}

func (s *scene) EarthModelMatrix() [16]float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mgl32.HomogRotate3DY(s.elapsed * s.rotationSpeed)
}

func (s *scene) Uniform() GPUSceneUniform {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GPUSceneUniform{
		EarthModel:         mgl32.HomogRotate3DY(s.elapsed * s.rotationSpeed),
		SunDirection:       s.sunDirection(),
		CloudsMix:          s.cloudsMix,
		AtmosphereDay:      linear(s.atmosphereDay),
		Elapsed:            s.elapsed,
		AtmosphereTwilight: linear(s.atmosphereTwilight),
		AtmosphereScale:    s.atmosphereScale,
	}
}

// sunDirection converts the sun's spherical angles to a unit vector.
// Caller must hold the mutex.
func (s *scene) sunDirection() mgl32.Vec3 {
	phi, theta := float64(s.sunPhi), float64(s.sunTheta)
	sinPhi := math.Sin(phi)
	return mgl32.Vec3{
		float32(sinPhi * math.Sin(theta)),
		float32(math.Cos(phi)),
		float32(sinPhi * math.Cos(theta)),
	}
}

// linear converts an sRGB colour to the linear values shaders blend in.
func linear(c colorful.Color) [3]float32 {
	r, g, b := c.LinearRgb()
	return [3]float32{float32(r), float32(g), float32(b)}
}
