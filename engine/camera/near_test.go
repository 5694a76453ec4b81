package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// floatNear is an absolute comparison; mgl32's threshold helpers go relative and
// collapse to eps² when either side is exactly zero.
func floatNear(a, b, eps float32) bool {
	return math32.Abs(a-b) < eps
}

// vecNear reports whether a and b are within eps of each other.
func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() < eps
}

// matNear compares two matrices element by element with an absolute tolerance.
func matNear(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if !floatNear(a[i], b[i], eps) {
			return false
		}
	}
	return true
}
