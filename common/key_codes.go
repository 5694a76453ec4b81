package common

// Virtual key codes for the first-person bindings.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW        = 87  // forward
	KeyA        = 65  // strafe left
	KeyS        = 83  // back
	KeyD        = 68  // strafe right
	KeyE        = 69  // fly up
	KeyQ        = 81  // fly down
	KeyG        = 71  // toggle gravity
	KeySpace    = 32  // jump
	KeyEsc      = 256 // quit (GLFW)
	KeyLeftCtrl = 341 // hold to move slowly (GLFW)
)

// MoveKeys lists the keys that drive continuous movement while held.
var MoveKeys = []uint32{KeyW, KeyA, KeyS, KeyD, KeyE, KeyQ}
