// Package config loads runtime settings for the scroll engine from environment variables.
package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/path"
	"github.com/caarlos0/env/v11"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Config holds every tunable of the engine, already converted to engine types.
type Config struct {
	WindowTitle string
	Width       int
	Height      int

	// MinWidth, MinHeight, MaxWidth and MaxHeight bound user resizing of the window.
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int

	// PathFile is a YAML path table. Empty selects the built-in reference table.
	PathFile string

	LerpFactor         float32
	TransitionDuration time.Duration
	FlyInDuration      time.Duration
	FlyInFrom          mgl32.Vec3

	// ScrollStep is the page distance in pixels of one wheel notch.
	ScrollStep float32
	// SectionHeight is the virtual page height of one section. Zero means one viewport.
	SectionHeight float32

	ExploreOrigin camera.Pose

	Profiling  bool
	Music      bool
	VSync      bool
	FrameLimit float64
	ClearColor colorful.Color
}

// rawEnv mirrors Config with the variable names and string forms read from the environment.
type rawEnv struct {
	WindowTitle        string        `env:"OXY_SCROLL_WINDOW_TITLE"         envDefault:"Oxy Scroll"`
	Width              int           `env:"OXY_SCROLL_WIDTH"                envDefault:"1280"`
	Height             int           `env:"OXY_SCROLL_HEIGHT"               envDefault:"720"`
	MinWidth           int           `env:"OXY_SCROLL_MIN_WIDTH"            envDefault:"600"`
	MinHeight          int           `env:"OXY_SCROLL_MIN_HEIGHT"           envDefault:"200"`
	MaxWidth           int           `env:"OXY_SCROLL_MAX_WIDTH"            envDefault:"1600"`
	MaxHeight          int           `env:"OXY_SCROLL_MAX_HEIGHT"           envDefault:"1200"`
	PathFile           string        `env:"OXY_SCROLL_PATH_FILE"`
	LerpFactor         float32       `env:"OXY_SCROLL_LERP_FACTOR"          envDefault:"0.012"`
	TransitionDuration time.Duration `env:"OXY_SCROLL_TRANSITION_DURATION"  envDefault:"1.4s"`
	FlyInDuration      time.Duration `env:"OXY_SCROLL_FLY_IN_DURATION"      envDefault:"5s"`
	FlyInFrom          []float32     `env:"OXY_SCROLL_FLY_IN_FROM"          envDefault:"1,0,0"  envSeparator:","`
	ScrollStep         float32       `env:"OXY_SCROLL_SCROLL_STEP"          envDefault:"120"`
	SectionHeight      float32       `env:"OXY_SCROLL_SECTION_HEIGHT"       envDefault:"0"`
	ExploreOrigin      []float32     `env:"OXY_SCROLL_EXPLORE_ORIGIN"       envDefault:"0,0,11" envSeparator:","`
	ExploreLookAt      []float32     `env:"OXY_SCROLL_EXPLORE_LOOK_AT"      envDefault:"0,0,0"  envSeparator:","`
	Profiling          bool          `env:"OXY_SCROLL_PROFILING"            envDefault:"false"`
	Music              bool          `env:"OXY_SCROLL_MUSIC"                envDefault:"true"`
	VSync              bool          `env:"OXY_SCROLL_VSYNC"                envDefault:"true"`
	FrameLimit         float64       `env:"OXY_SCROLL_FRAME_LIMIT"          envDefault:"0"`
	ClearColor         string        `env:"OXY_SCROLL_CLEAR_COLOR"          envDefault:"#000011"`
}

// Load reads the configuration from the environment and validates it.
//
// Returns:
//   - Config: the parsed configuration
//   - error: error if a variable cannot be parsed or a value is out of range
func Load() (Config, error) {
	var raw rawEnv
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg, err := raw.convert()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	log.Printf("[Config] loaded: %dx%d, lerp %.3f, transition %s, fly-in %s",
		cfg.Width, cfg.Height, cfg.LerpFactor, cfg.TransitionDuration, cfg.FlyInDuration)
	return cfg, nil
}

func (r rawEnv) convert() (Config, error) {
	flyInFrom, err := vec3("OXY_SCROLL_FLY_IN_FROM", r.FlyInFrom)
	if err != nil {
		return Config{}, err
	}
	origin, err := vec3("OXY_SCROLL_EXPLORE_ORIGIN", r.ExploreOrigin)
	if err != nil {
		return Config{}, err
	}
	lookAt, err := vec3("OXY_SCROLL_EXPLORE_LOOK_AT", r.ExploreLookAt)
	if err != nil {
		return Config{}, err
	}
	clearColor, err := colorful.Hex(r.ClearColor)
	if err != nil {
		return Config{}, fmt.Errorf("OXY_SCROLL_CLEAR_COLOR: %w", err)
	}

	return Config{
		WindowTitle:        r.WindowTitle,
		Width:              r.Width,
		Height:             r.Height,
		MinWidth:           r.MinWidth,
		MinHeight:          r.MinHeight,
		MaxWidth:           r.MaxWidth,
		MaxHeight:          r.MaxHeight,
		PathFile:           r.PathFile,
		LerpFactor:         r.LerpFactor,
		TransitionDuration: r.TransitionDuration,
		FlyInDuration:      r.FlyInDuration,
		FlyInFrom:          flyInFrom,
		ScrollStep:         r.ScrollStep,
		SectionHeight:      r.SectionHeight,
		ExploreOrigin:      camera.Pose{Position: origin, LookAt: lookAt},
		Profiling:          r.Profiling,
		Music:              r.Music,
		VSync:              r.VSync,
		FrameLimit:         r.FrameLimit,
		ClearColor:         clearColor,
	}, nil
}

func vec3(name string, values []float32) (mgl32.Vec3, error) {
	if len(values) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%s: expected 3 comma separated values, got %d", name, len(values))
	}
	return mgl32.Vec3{values[0], values[1], values[2]}, nil
}

// Validate checks value ranges the engine relies on.
//
// Returns:
//   - error: a joined error listing every out-of-range value, or nil
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.MinWidth <= 0 || c.MinHeight <= 0 {
		errs = append(errs, fmt.Errorf("minimum window size must be positive, got %dx%d", c.MinWidth, c.MinHeight))
	}
	if c.MinWidth > c.MaxWidth || c.MinHeight > c.MaxHeight {
		errs = append(errs, fmt.Errorf("minimum window size %dx%d exceeds maximum %dx%d",
			c.MinWidth, c.MinHeight, c.MaxWidth, c.MaxHeight))
	} else if c.Width < c.MinWidth || c.Width > c.MaxWidth || c.Height < c.MinHeight || c.Height > c.MaxHeight {
		errs = append(errs, fmt.Errorf("window size %dx%d outside limits %dx%d..%dx%d",
			c.Width, c.Height, c.MinWidth, c.MinHeight, c.MaxWidth, c.MaxHeight))
	}
	if !(c.LerpFactor > 0 && c.LerpFactor <= 1) {
		errs = append(errs, fmt.Errorf("lerp factor must be in (0, 1], got %v", c.LerpFactor))
	}
	if c.TransitionDuration <= 0 {
		errs = append(errs, fmt.Errorf("transition duration must be positive, got %s", c.TransitionDuration))
	}
	if c.FlyInDuration <= 0 {
		errs = append(errs, fmt.Errorf("fly-in duration must be positive, got %s", c.FlyInDuration))
	}
	if !(c.ScrollStep > 0) {
		errs = append(errs, fmt.Errorf("scroll step must be positive, got %v", c.ScrollStep))
	}
	if c.SectionHeight < 0 || math.IsNaN(float64(c.SectionHeight)) {
		errs = append(errs, fmt.Errorf("section height must not be negative, got %v", c.SectionHeight))
	}
	if c.FrameLimit < 0 {
		errs = append(errs, fmt.Errorf("frame limit must not be negative, got %v", c.FrameLimit))
	}
	return errors.Join(errs...)
}

// PathTable returns the configured path table.
//
// Returns:
//   - path.Table: the table from PathFile, or the reference table when PathFile is empty
//   - error: error if PathFile cannot be loaded
func (c Config) PathTable() (path.Table, error) {
	if c.PathFile == "" {
		return path.ReferenceTable(), nil
	}
	t, err := path.LoadTable(c.PathFile)
	if err != nil {
		return nil, fmt.Errorf("load path table %q: %w", c.PathFile, err)
	}
	return t, nil
}

// SectionHeightFor resolves the virtual section height for a viewport.
//
// Parameters:
//   - viewportHeight: the current viewport height in pixels
//
// Returns:
//   - float32: SectionHeight, or the viewport height when SectionHeight is zero
func (c Config) SectionHeightFor(viewportHeight int) float32 {
	return common.Coalesce(c.SectionHeight, float32(viewportHeight))
}
