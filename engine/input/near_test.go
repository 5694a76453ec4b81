package input

import "github.com/chewxy/math32"

// floatNear is an absolute comparison; mgl32's threshold helpers go relative and
// collapse to eps² when either side is exactly zero.
func floatNear(a, b, eps float32) bool {
	return math32.Abs(a-b) < eps
}
