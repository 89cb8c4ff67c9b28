// Package scroll maps a page scroll offset onto the authored camera path.
package scroll

import (
	"math"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/path"
)

// Frame is the result of mapping one scroll offset against the path table.
type Frame struct {
	// Progress is offset / scrollable height clamped to [0, 1].
	Progress float32
	// FromIndex and ToIndex are the stops being blended, 0 <= FromIndex <= ToIndex <= N-1.
	FromIndex int
	ToIndex   int
	// LocalFraction is the linear position between FromIndex and ToIndex, before easing.
	LocalFraction float32
	// Eased is LocalFraction passed through smoothstep; this is the blend factor used.
	Eased float32
}

// SectionChangedFunc is called when the nearest stop to the scroll position changes.
type SectionChangedFunc func(index int, stop path.Stop)

// Mapper converts scroll offsets into camera targets while narrative mode owns the camera.
type Mapper interface {
	// Map computes the frame for the given offset and writes the blended stop into
	// the camera state targets. Disabled mappers and a non-positive scrollable height
	// leave everything untouched and return the previous frame.
	//
	// Parameters:
	//   - offset: the page scroll offset in pixels
	//   - scrollableHeight: the total scrollable height in pixels
	//
	// Returns:
	//   - Frame: the current frame
	//   - bool: true if the camera targets were written
	Map(offset, scrollableHeight float32) (Frame, bool)

	// Enabled reports whether scroll input currently drives the camera.
	//
	// Returns:
	//   - bool: true when enabled
	Enabled() bool

	// SetEnabled turns the mapper on or off. Calls to Map while off are dropped, not queued.
	//
	// Parameters:
	//   - enabled: the new state
	SetEnabled(enabled bool)

	// Frame returns the last frame produced by Map.
	//
	// Returns:
	//   - Frame: the last frame
	Frame() Frame

	// ActiveSection returns the index of the nearest stop, or -1 before the first Map.
	//
	// Returns:
	//   - int: the active section index
	ActiveSection() int
}

type mapperImpl struct {
	table path.Table
	state *camera.State

	enabled       bool
	frame         Frame
	activeSection int

	onSectionChanged SectionChangedFunc
}

var _ Mapper = &mapperImpl{}

// NewMapper creates a Mapper that writes targets into state from the stops in table.
// The mapper starts enabled.
//
// Parameters:
//   - table: the authored path
//   - state: the camera state whose targets the mapper writes
//   - options: functional options
//
// Returns:
//   - Mapper: the new mapper
func NewMapper(table path.Table, state *camera.State, options ...MapperBuilderOption) Mapper {
	m := &mapperImpl{
		table:         table,
		state:         state,
		enabled:       true,
		activeSection: -1,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *mapperImpl) Map(offset, scrollableHeight float32) (Frame, bool) {
	if !m.enabled || !(scrollableHeight > 0) {
		return m.frame, false
	}

	frame := Compute(m.table.Len(), offset, scrollableHeight)
	from := m.table.Stop(frame.FromIndex)
	to := m.table.Stop(frame.ToIndex)

	m.state.SetTarget(camera.Pose{
		Position: common.LerpVec3(from.Position, to.Position, frame.Eased),
		LookAt:   common.LerpVec3(from.LookAt, to.LookAt, frame.Eased),
	})
	m.frame = frame

	raw := frame.Progress * float32(m.table.Len()-1)
	section := int(math.Round(float64(raw)))
	if section != m.activeSection {
		m.activeSection = section
		if m.onSectionChanged != nil {
			m.onSectionChanged(section, m.table.Stop(section))
		}
	}
	return frame, true
}

func (m *mapperImpl) Enabled() bool {
	return m.enabled
}

func (m *mapperImpl) SetEnabled(enabled bool) {
	m.enabled = enabled
}

func (m *mapperImpl) Frame() Frame {
	return m.frame
}

func (m *mapperImpl) ActiveSection() int {
	return m.activeSection
}

// Compute maps an offset onto a table of n stops without touching any state.
// scrollableHeight must be positive and n at least 1.
//
// Parameters:
//   - n: the number of stops
//   - offset: the scroll offset in pixels
//   - scrollableHeight: the scrollable height in pixels
//
// Returns:
//   - Frame: the mapped frame
func Compute(n int, offset, scrollableHeight float32) Frame {
	last := n - 1
	progress := common.Clamp(offset/scrollableHeight, 0, 1)
	if progress != progress {
		progress = 0
	}
	raw := progress * float32(last)

	from := int(math.Floor(float64(raw)))
	from = max(0, min(from, last))
	to := min(from+1, last)
	local := common.Clamp(raw-float32(from), 0, 1)

	return Frame{
		Progress:      progress,
		FromIndex:     from,
		ToIndex:       to,
		LocalFraction: local,
		Eased:         common.Smoothstep(local),
	}
}
