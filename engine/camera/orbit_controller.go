package camera

// OrbitController defines the free-orbit control used in explore mode.
// The controller owns a pivot (look-at point) and spherical coordinates
// (radius, azimuth, elevation) around it. It only reacts to input while
// enabled; a disabled controller drops rotate and zoom requests and its
// Update step does nothing.
type OrbitController interface {
	// Enabled reports whether the controller currently accepts input.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled turns input handling on or off.
	// Disabling also discards any rotation still being damped out, so the
	// camera stops moving the instant control is taken away.
	//
	// Parameters:
	//   - enabled: the new state
	SetEnabled(enabled bool)

	// Recenter anchors the controller at the given pose: the pivot becomes
	// pose.LookAt and the spherical coordinates are derived from pose.Position.
	// Radius and elevation are clamped to the controller bounds.
	//
	// Parameters:
	//   - pose: the pose to anchor at
	Recenter(pose Pose)

	// Pose returns the controller's live camera position and pivot.
	//
	// Returns:
	//   - Pose: the current orbit pose
	Pose() Pose

	// Rotate queues a drag rotation. dx and dy are pointer deltas in pixels,
	// scaled by the rotate sensitivity. The rotation lands on the next Update,
	// or is spread over the following Updates when damping is enabled.
	//
	// Parameters:
	//   - dx: horizontal pointer movement
	//   - dy: vertical pointer movement
	Rotate(dx, dy float32)

	// Zoom changes the orbit radius. Positive delta moves toward the pivot.
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float32)

	// Update applies one frame of queued rotation. Call once per frame while
	// the controller is the active camera driver.
	Update()

	// Radius returns the current distance from the pivot.
	//
	// Returns:
	//   - float32: the orbit radius
	Radius() float32

	// MinRadius returns the minimum allowed orbit radius.
	//
	// Returns:
	//   - float32: minimum zoom distance
	MinRadius() float32

	// MaxRadius returns the maximum allowed orbit radius.
	//
	// Returns:
	//   - float32: maximum zoom distance
	MaxRadius() float32

	// Azimuth returns the horizontal angle around the Y axis (0 = +Z).
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// Elevation returns the vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// DampingFactor returns the fraction of queued rotation applied per Update.
	// Zero means damping is disabled and rotation applies immediately.
	//
	// Returns:
	//   - float32: the damping factor
	DampingFactor() float32
}
