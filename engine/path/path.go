// Package path holds the authored camera path: an ordered, immutable list of
// camera stops, one per narrative section.
package path

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrEmptyTable is returned when a path table has no stops.
var ErrEmptyTable = errors.New("path table has no stops")

// Stop is one authored camera pose: where the camera sits and what it looks at.
type Stop struct {
	Name     string
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
}

// Table is an ordered, read-only sequence of stops indexed 0..N-1.
// It is built once at startup and never mutated afterwards.
type Table interface {
	// Len returns the number of stops N.
	//
	// Returns:
	//   - int: the stop count, always >= 1
	Len() int

	// Stop returns the stop at index i. Indices outside [0, N-1] are clamped.
	//
	// Parameters:
	//   - i: the stop index
	//
	// Returns:
	//   - Stop: a copy of the authored stop
	Stop(i int) Stop

	// Stops returns a copy of every stop in order.
	//
	// Returns:
	//   - []Stop: the stops
	Stops() []Stop
}

type tableImpl struct {
	stops []Stop
}

var _ Table = &tableImpl{}

// NewTable builds a Table from the given stops after validating them.
// The slice is copied so later changes by the caller do not leak in.
//
// Parameters:
//   - stops: the authored stops, in narrative order
//
// Returns:
//   - Table: the immutable table
//   - error: ErrEmptyTable, or an error naming the first stop with a non-finite component
func NewTable(stops []Stop) (Table, error) {
	if len(stops) == 0 {
		return nil, ErrEmptyTable
	}
	for i, s := range stops {
		if !finite(s.Position) || !finite(s.LookAt) {
			return nil, fmt.Errorf("stop %d (%q) has a non-finite component", i, s.Name)
		}
	}
	cp := make([]Stop, len(stops))
	copy(cp, stops)
	return &tableImpl{stops: cp}, nil
}

// ReferenceTable returns the six-stop earth tour the demo scene ships with.
//
// Returns:
//   - Table: the reference table
func ReferenceTable() Table {
	t, err := NewTable([]Stop{
		{Name: "intro", Position: mgl32.Vec3{12, 5, 1}, LookAt: mgl32.Vec3{0, 0, 0}},
		{Name: "atmosphere", Position: mgl32.Vec3{6, 1.5, 6}, LookAt: mgl32.Vec3{0, 0.5, 0}},
		{Name: "daylight", Position: mgl32.Vec3{0, 2, 8}, LookAt: mgl32.Vec3{0, 0, 0}},
		{Name: "twilight", Position: mgl32.Vec3{-7, 0.5, 4}, LookAt: mgl32.Vec3{-0.5, 0, 0}},
		{Name: "night", Position: mgl32.Vec3{-5, -2, -6}, LookAt: mgl32.Vec3{0, 0, 0}},
		{Name: "outro", Position: mgl32.Vec3{0, 9, 14}, LookAt: mgl32.Vec3{0, 0, 0}},
	})
	if err != nil {
		panic(fmt.Sprintf("reference path table is invalid: %v", err))
	}
	return t
}

func (t *tableImpl) Len() int {
	return len(t.stops)
}

func (t *tableImpl) Stop(i int) Stop {
	if i < 0 {
		i = 0
	}
	if i > len(t.stops)-1 {
		i = len(t.stops) - 1
	}
	return t.stops[i]
}

func (t *tableImpl) Stops() []Stop {
	cp := make([]Stop, len(t.stops))
	copy(cp, t.stops)
	return cp
}

func finite(v mgl32.Vec3) bool {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
