package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPreMove sets the step transform applied before every move.
//
// Parameters:
//   - fn: transform from requested step to applied step
//
// Returns:
//   - CameraControllerOption: functional option to set the pre-move transform
func WithPreMove(fn StepTransform) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.SetPreMove(fn)
	}
}

// WithOnMove sets the hook invoked after every move, typically used to keep a
// separate player body in sync with the camera.
//
// Parameters:
//   - fn: the post-move hook
//
// Returns:
//   - CameraControllerOption: functional option to set the post-move hook
func WithOnMove(fn func()) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.SetOnMove(fn)
	}
}

// WithCanMove sets whether the controller starts unlocked.
//
// Parameters:
//   - canMove: false to start with movement locked
//
// Returns:
//   - CameraControllerOption: functional option to set the movement lock
func WithCanMove(canMove bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.canMove = canMove
	}
}
