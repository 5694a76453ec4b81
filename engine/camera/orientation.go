package camera

import (
	"github.com/Carmen-Shannon/oxy-fpscam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// UpdateOrientation points cam using first-person yaw and pitch angles.
// The rotation is yaw about world Y followed by pitch about the yawed X axis,
// so pitching never rolls the horizon.
//
// Parameters:
//   - cam: the camera to rotate
//   - yaw: horizontal angle in radians
//   - pitch: vertical angle in radians
func UpdateOrientation(cam Camera, yaw, pitch float32) {
	qx, qz := common.YawPitch(yaw, pitch)
	cam.SetRotation(mgl32.QuatIdent().Mul(qx).Mul(qz))
}
