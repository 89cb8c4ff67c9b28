package common

// Smoothstep eases a normalized progress value with the cubic 3t² − 2t³.
// It maps 0 to 0, 0.5 to 0.5 and 1 to 1, with zero slope at both ends so
// consecutive path segments join without a velocity jump.
//
// Inputs outside [0, 1] are not clamped here; callers clamp first.
//
// Parameters:
//   - t: progress in [0, 1]
//
// Returns:
//   - float32: eased progress in [0, 1]
func Smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}
