package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RadianHalf is a quarter turn. The default camera looks along yaw = RadianHalf, pitch = -RadianHalf.
const RadianHalf = math32.Pi / 2

// epsilon below which a direction is treated as degenerate.
const epsilon = 1e-8

// World-space basis. The engine is Y-up and an unrotated camera faces -Z.
var (
	WorldUp      = mgl32.Vec3{0, 1, 0}
	WorldRight   = mgl32.Vec3{1, 0, 0}
	WorldForward = mgl32.Vec3{0, 0, -1}
)

// YawPitch builds the two axis rotations that make up a first-person orientation:
// yaw about the world Y axis and pitch about the X axis.
//
// Parameters:
//   - yaw: rotation about world Y in radians
//   - pitch: rotation about X in radians
//
// Returns:
//   - qx: the yaw rotation
//   - qz: the pitch rotation
func YawPitch(yaw, pitch float32) (qx, qz mgl32.Quat) {
	qx = mgl32.QuatRotate(yaw, WorldUp)
	qz = mgl32.QuatRotate(pitch, WorldRight)
	return qx, qz
}

// Horizontal drops the vertical component of v and renormalises what is left.
// Without the renormalisation horizontal speed would shrink as the camera pitches
// toward the poles.
//
// Parameters:
//   - v: the direction to flatten
//
// Returns:
//   - mgl32.Vec3: unit vector in the XZ plane, or the zero vector
//   - bool: false if v had no horizontal component
func Horizontal(v mgl32.Vec3) (mgl32.Vec3, bool) {
	v[1] = 0
	l := v.Len()
	if l < epsilon {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// Lift offsets pos along the world vertical axis.
//
// Parameters:
//   - pos: the position to move
//   - dy: signed vertical offset
//
// Returns:
//   - mgl32.Vec3: the offset position
func Lift(pos mgl32.Vec3, dy float32) mgl32.Vec3 {
	return pos.Add(WorldUp.Mul(dy))
}

// AngleDelta converts a pointer delta in pixels into radians for the given sensitivity.
func AngleDelta(pixels, sensitivity float32) float32 {
	if math32.IsNaN(pixels) || math32.IsInf(pixels, 0) {
		return 0
	}
	return pixels * sensitivity
}
