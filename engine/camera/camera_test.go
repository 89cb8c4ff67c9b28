package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_SmoothMovesFixedFraction(t *testing.T) {
	s := NewState(Pose{})
	s.SetTarget(Pose{Position: mgl32.Vec3{100, 0, -50}, LookAt: mgl32.Vec3{0, 10, 0}})

	s.Smooth(0.012)

	cur := s.Current()
	assert.InDelta(t, 1.2, cur.Position[0], 1e-5)
	assert.InDelta(t, -0.6, cur.Position[2], 1e-5)
	assert.InDelta(t, 0.12, cur.LookAt[1], 1e-6)
	assert.Equal(t, mgl32.Vec3{100, 0, -50}, s.Target().Position, "smoothing never touches the target")
}

func TestState_SmoothConverges(t *testing.T) {
	s := NewState(Pose{Position: mgl32.Vec3{12, 5, 1}})
	goal := Pose{Position: mgl32.Vec3{0, 0, 11}}
	s.SetTarget(goal)

	for range 2000 {
		s.Smooth(0.012)
	}
	assert.InDelta(t, 0, s.Current().Position.Sub(goal.Position).Len(), 1e-3)
}

func TestOrbitController_StartsDisabled(t *testing.T) {
	oc := NewOrbitController()
	assert.False(t, oc.Enabled())

	before := oc.Pose()
	oc.Rotate(300, 120)
	oc.Zoom(4)
	oc.Update()
	assert.Equal(t, before, oc.Pose(), "a disabled controller ignores input")
}

func TestOrbitController_RecenterAtExploreOrigin(t *testing.T) {
	oc := NewOrbitController()
	oc.Recenter(Pose{Position: mgl32.Vec3{0, 0, 11}, LookAt: mgl32.Vec3{0, 0, 0}})

	assert.InDelta(t, 11, oc.Radius(), 1e-6)
	assert.InDelta(t, 0, oc.Azimuth(), 1e-6)
	assert.InDelta(t, 0, oc.Elevation(), 1e-6)
	assert.InDelta(t, 0, oc.Pose().Position.Sub(mgl32.Vec3{0, 0, 11}).Len(), 1e-5)
}

func TestOrbitController_RecenterRoundTripsPosition(t *testing.T) {
	oc := NewOrbitController()
	pose := Pose{Position: mgl32.Vec3{4, 3, -7}, LookAt: mgl32.Vec3{1, 0, 1}}
	oc.Recenter(pose)

	got := oc.Pose()
	assert.InDelta(t, 0, got.Position.Sub(pose.Position).Len(), 1e-4, "got %v", got.Position)
	assert.Equal(t, pose.LookAt, got.LookAt)
}

func TestOrbitController_RecenterClampsRadius(t *testing.T) {
	oc := NewOrbitController(WithRadiusBounds(5, 18))
	oc.Recenter(Pose{Position: mgl32.Vec3{0, 0, 40}})
	assert.Equal(t, float32(18), oc.Radius())

	oc.Recenter(Pose{Position: mgl32.Vec3{0, 0, 1}})
	assert.Equal(t, float32(5), oc.Radius())
}

func TestOrbitController_DampedRotation(t *testing.T) {
	oc := NewOrbitController(WithDamping(0.05), WithRotateSensitivity(0.01), WithEnabled(true))
	oc.Recenter(Pose{Position: mgl32.Vec3{0, 0, 11}})

	oc.Rotate(-100, 0) // one radian of azimuth queued
	oc.Update()
	assert.InDelta(t, 0.05, oc.Azimuth(), 1e-5, "first frame applies the damping fraction")

	for range 500 {
		oc.Update()
	}
	assert.InDelta(t, 1.0, oc.Azimuth(), 1e-3, "queued rotation is eventually fully applied")
	assert.InDelta(t, 11, oc.Pose().Position.Sub(oc.Pose().LookAt).Len(), 1e-4, "radius preserved")
}

func TestOrbitController_UndampedRotationAppliesOnNextUpdate(t *testing.T) {
	oc := NewOrbitController(WithDamping(0), WithRotateSensitivity(0.01), WithEnabled(true))
	oc.Rotate(0, 50)
	oc.Update()
	assert.InDelta(t, 0.5, oc.Elevation(), 1e-6)

	oc.Update()
	assert.InDelta(t, 0.5, oc.Elevation(), 1e-6, "nothing left to apply")
}

func TestOrbitController_DisableDropsPendingRotation(t *testing.T) {
	oc := NewOrbitController(WithEnabled(true))
	oc.Rotate(400, 0)
	oc.Update()
	az := oc.Azimuth()

	oc.SetEnabled(false)
	oc.SetEnabled(true)
	oc.Update()
	assert.Equal(t, az, oc.Azimuth())
}

func TestOrbitController_ElevationClamped(t *testing.T) {
	oc := NewOrbitController(WithDamping(0), WithRotateSensitivity(1), WithEnabled(true))
	oc.Rotate(0, 10)
	oc.Update()
	assert.Less(t, oc.Elevation(), float32(math.Pi/2))
}

func TestOrbitController_ZoomClamped(t *testing.T) {
	oc := NewOrbitController(WithEnabled(true), WithRadius(11), WithZoomSpeed(1))
	oc.Zoom(100)
	assert.Equal(t, oc.MinRadius(), oc.Radius())
	oc.Zoom(-100)
	assert.Equal(t, oc.MaxRadius(), oc.Radius())
}

func TestCamera_UniformCarriesPose(t *testing.T) {
	c := NewCamera(WithAspect(16.0 / 9.0))
	pose := Pose{Position: mgl32.Vec3{0, 2, 8}, LookAt: mgl32.Vec3{0, 0, 0}}
	c.Update(pose)

	u := c.Uniform()
	assert.Equal(t, [3]float32{0, 2, 8}, u.CameraPosition)
	assert.Equal(t, c.ViewProjectionMatrix(), u.ViewProj)
	assert.Equal(t, pose, c.Pose())

	buf := u.Marshal()
	require.Len(t, buf, 80)
	assert.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(buf[68:])))
}

func TestCamera_ProjectsLookAtToScreenCentre(t *testing.T) {
	c := NewCamera()
	c.Update(Pose{Position: mgl32.Vec3{6, 1.5, 6}, LookAt: mgl32.Vec3{0, 0.5, 0}})

	vp := mgl32.Mat4(c.ViewProjectionMatrix())
	clip := vp.Mul4x1(mgl32.Vec4{0, 0.5, 0, 1})
	require.Greater(t, clip[3], float32(0))
	assert.InDelta(t, 0, clip[0]/clip[3], 1e-5)
	assert.InDelta(t, 0, clip[1]/clip[3], 1e-5)
}
