package camera

// Default step magnitudes used by callers that have no step of their own.
const (
	// DefaultStep is the horizontal step for forward/back/left/right moves.
	DefaultStep float32 = 0.05

	// DefaultVerticalStep is the step for up/down moves.
	DefaultVerticalStep float32 = 0.04
)

// StepTransform rewrites a step magnitude before it is applied, for example to scale or clamp it.
type StepTransform func(step float32) float32

// Mover is the movement capability shared by the plain controller and every decorator around it.
// Each primitive translates by a signed step; forward/back, left/right and up/down are
// exact inverses of each other for the same step.
type Mover interface {
	// MoveForward translates along the camera's facing direction flattened onto the XZ plane.
	//
	// Parameters:
	//   - step: signed distance
	MoveForward(step float32)

	// MoveBack is the inverse of MoveForward.
	//
	// Parameters:
	//   - step: signed distance
	MoveBack(step float32)

	// MoveLeft translates along the camera's local -X axis.
	//
	// Parameters:
	//   - step: signed distance
	MoveLeft(step float32)

	// MoveRight translates along the camera's local +X axis.
	//
	// Parameters:
	//   - step: signed distance
	MoveRight(step float32)

	// MoveUp translates along world +Y.
	//
	// Parameters:
	//   - step: signed distance
	MoveUp(step float32)

	// MoveDown is the inverse of MoveUp.
	//
	// Parameters:
	//   - step: signed distance
	MoveDown(step float32)
}

// CameraController is the plain movement controller: it applies the six Mover
// primitives directly to a Camera with no collision handling. Hooks let the host
// rewrite step sizes before a move and observe every completed move.
type CameraController interface {
	Mover

	// Camera returns the camera this controller moves.
	//
	// Returns:
	//   - Camera: the controlled camera
	Camera() Camera

	// SetPreMove installs the step transform applied before every move.
	// Passing nil restores the identity transform.
	//
	// Parameters:
	//   - fn: the step transform
	SetPreMove(fn StepTransform)

	// SetOnMove installs the hook invoked after every move.
	// Passing nil restores the no-op hook.
	//
	// Parameters:
	//   - fn: the post-move hook
	SetOnMove(fn func())

	// CanMove reports whether moves are currently applied.
	//
	// Returns:
	//   - bool: false if movement is locked
	CanMove() bool

	// SetCanMove locks or unlocks movement. While locked every primitive is a no-op
	// and the post-move hook does not fire.
	//
	// Parameters:
	//   - canMove: false to lock movement
	SetCanMove(canMove bool)
}
