package scroll

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/path"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMapper(t *testing.T, options ...MapperBuilderOption) (Mapper, *camera.State, path.Table) {
	t.Helper()
	table := path.ReferenceTable()
	require.Equal(t, 6, table.Len())
	state := camera.NewState(camera.Pose{})
	return NewMapper(table, state, options...), state, table
}

func TestMapper_MidpointBetweenStops(t *testing.T) {
	m, state, table := newMapper(t)

	frame, wrote := m.Map(500, 1000)
	require.True(t, wrote)
	assert.InDelta(t, 0.5, frame.Progress, 1e-6)
	assert.Equal(t, 2, frame.FromIndex)
	assert.Equal(t, 3, frame.ToIndex)
	assert.InDelta(t, 0.5, frame.LocalFraction, 1e-6)
	assert.InDelta(t, 0.5, frame.Eased, 1e-6)

	a, b := table.Stop(2), table.Stop(3)
	wantPos := a.Position.Add(b.Position).Mul(0.5)
	wantLook := a.LookAt.Add(b.LookAt).Mul(0.5)
	assert.InDelta(t, 0, state.Target().Position.Sub(wantPos).Len(), 1e-5, "got %v", state.Target().Position)
	assert.InDelta(t, 0, state.Target().LookAt.Sub(wantLook).Len(), 1e-5, "got %v", state.Target().LookAt)
}

func TestMapper_ZeroHeightIsNoOp(t *testing.T) {
	m, state, _ := newMapper(t)
	prior := camera.Pose{Position: mgl32.Vec3{1, 2, 3}, LookAt: mgl32.Vec3{4, 5, 6}}
	state.SetTarget(prior)

	frame, wrote := m.Map(0, 0)
	assert.False(t, wrote)
	assert.Equal(t, Frame{}, frame)
	assert.Equal(t, prior, state.Target())

	_, wrote = m.Map(300, -10)
	assert.False(t, wrote)
	_, wrote = m.Map(300, float32(math.NaN()))
	assert.False(t, wrote)
	assert.Equal(t, prior, state.Target())
}

func TestMapper_ZeroHeightKeepsPriorFrame(t *testing.T) {
	m, _, _ := newMapper(t)
	first, _ := m.Map(250, 1000)

	frame, wrote := m.Map(900, 0)
	assert.False(t, wrote)
	assert.Equal(t, first, frame)
}

func TestMapper_EndpointsAreExact(t *testing.T) {
	m, state, table := newMapper(t)

	m.Map(0, 1000)
	assert.Equal(t, table.Stop(0).Position, state.Target().Position)
	assert.Equal(t, table.Stop(0).LookAt, state.Target().LookAt)

	frame, _ := m.Map(1000, 1000)
	assert.Equal(t, 5, frame.FromIndex)
	assert.Equal(t, 5, frame.ToIndex)
	assert.Equal(t, table.Stop(5).Position, state.Target().Position)
	assert.Equal(t, table.Stop(5).LookAt, state.Target().LookAt)
}

func TestMapper_ClampsOutOfRangeOffsets(t *testing.T) {
	m, state, table := newMapper(t)

	frame, _ := m.Map(-400, 1000)
	assert.Equal(t, float32(0), frame.Progress)
	assert.Equal(t, table.Stop(0).Position, state.Target().Position)

	frame, _ = m.Map(5000, 1000)
	assert.Equal(t, float32(1), frame.Progress)
	assert.Equal(t, table.Stop(5).Position, state.Target().Position)
}

func TestMapper_IndicesStayOrdered(t *testing.T) {
	m, _, table := newMapper(t)
	last := table.Len() - 1

	for offset := float32(-50); offset <= 1250; offset += 7 {
		frame, _ := m.Map(offset, 1200)
		assert.GreaterOrEqual(t, frame.FromIndex, 0)
		assert.LessOrEqual(t, frame.FromIndex, frame.ToIndex)
		assert.LessOrEqual(t, frame.ToIndex, last)
		assert.GreaterOrEqual(t, frame.LocalFraction, float32(0))
		assert.LessOrEqual(t, frame.LocalFraction, float32(1))
	}
}

func TestMapper_Idempotent(t *testing.T) {
	m, state, _ := newMapper(t)

	a, _ := m.Map(733, 1000)
	targetA := state.Target()
	b, _ := m.Map(733, 1000)

	assert.Equal(t, a, b)
	assert.Equal(t, targetA, state.Target())
}

func TestMapper_DisabledDropsInput(t *testing.T) {
	m, state, _ := newMapper(t)
	m.Map(100, 1000)
	before := state.Target()

	m.SetEnabled(false)
	assert.False(t, m.Enabled())
	_, wrote := m.Map(900, 1000)
	assert.False(t, wrote)
	assert.Equal(t, before, state.Target())

	m.SetEnabled(true)
	frame, wrote := m.Map(900, 1000)
	assert.True(t, wrote)
	assert.Equal(t, 4, frame.FromIndex, "nothing was buffered while disabled")
}

func TestMapper_SectionChangedFiresOnRoundedIndex(t *testing.T) {
	var got []int
	m, _, _ := newMapper(t, WithSectionChanged(func(index int, stop path.Stop) {
		got = append(got, index)
	}))

	m.Map(0, 1000)   // raw 0
	m.Map(50, 1000)  // raw 0.25, still section 0
	m.Map(120, 1000) // raw 0.6, rounds to 1
	m.Map(130, 1000) // still 1
	m.Map(1000, 1000)

	assert.Equal(t, []int{0, 1, 5}, got)
	assert.Equal(t, 5, m.ActiveSection())
}

func TestMapper_SingleStopTable(t *testing.T) {
	table, err := path.NewTable([]path.Stop{{Position: mgl32.Vec3{0, 0, 11}}})
	require.NoError(t, err)
	state := camera.NewState(camera.Pose{})
	m := NewMapper(table, state)

	frame, wrote := m.Map(400, 1000)
	require.True(t, wrote)
	assert.Equal(t, 0, frame.FromIndex)
	assert.Equal(t, 0, frame.ToIndex)
	assert.Equal(t, mgl32.Vec3{0, 0, 11}, state.Target().Position)
}

func TestCompute_SmoothstepAtSegmentEnds(t *testing.T) {
	frame := Compute(6, 199.9, 1000)
	assert.Equal(t, 0, frame.FromIndex)
	assert.Greater(t, frame.Eased, float32(0.99))

	frame = Compute(6, 200, 1000)
	assert.Equal(t, 1, frame.FromIndex)
	assert.InDelta(t, 0, frame.Eased, 1e-4)
}
