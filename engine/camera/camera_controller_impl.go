package camera

import (
	"github.com/Carmen-Shannon/oxy-fpscam/common"
)

// cameraControllerImpl is the single implementation of CameraController.
// Inverse primitives negate the transformed step rather than transforming a
// negated step, so apply followed by inverse restores the position exactly
// whatever the pre-move transform does.
type cameraControllerImpl struct {
	camera  Camera
	preMove StepTransform
	onMove  func()
	canMove bool
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a movement controller for cam with an identity
// pre-move transform and a no-op post-move hook.
//
// Parameters:
//   - cam: the camera to move
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam Camera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		camera:  cam,
		preMove: identityStep,
		onMove:  func() {},
		canMove: true,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func identityStep(step float32) float32 { return step }

func (cc *cameraControllerImpl) Camera() Camera {
	return cc.camera
}

func (cc *cameraControllerImpl) SetPreMove(fn StepTransform) {
	if fn == nil {
		fn = identityStep
	}
	cc.preMove = fn
}

func (cc *cameraControllerImpl) SetOnMove(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	cc.onMove = fn
}

func (cc *cameraControllerImpl) CanMove() bool {
	return cc.canMove
}

func (cc *cameraControllerImpl) SetCanMove(canMove bool) {
	cc.canMove = canMove
}

func (cc *cameraControllerImpl) MoveForward(step float32) { cc.moveHorizontal(step, 1) }
func (cc *cameraControllerImpl) MoveBack(step float32)    { cc.moveHorizontal(step, -1) }
func (cc *cameraControllerImpl) MoveLeft(step float32)    { cc.moveLateral(step, -1) }
func (cc *cameraControllerImpl) MoveRight(step float32)   { cc.moveLateral(step, 1) }
func (cc *cameraControllerImpl) MoveUp(step float32)      { cc.moveVertical(step, 1) }
func (cc *cameraControllerImpl) MoveDown(step float32)    { cc.moveVertical(step, -1) }

// moveHorizontal moves along the facing direction with its vertical component removed.
// Looking straight up or down leaves no horizontal direction, so nothing moves.
func (cc *cameraControllerImpl) moveHorizontal(step, sign float32) {
	if !cc.canMove {
		return
	}
	s := cc.preMove(step) * sign
	if dir, ok := common.Horizontal(cc.camera.WorldDirection()); ok {
		cc.camera.SetPosition(cc.camera.Position().Add(dir.Mul(s)))
	}
	cc.onMove()
}

func (cc *cameraControllerImpl) moveLateral(step, sign float32) {
	if !cc.canMove {
		return
	}
	cc.camera.TranslateX(cc.preMove(step) * sign)
	cc.onMove()
}

func (cc *cameraControllerImpl) moveVertical(step, sign float32) {
	if !cc.canMove {
		return
	}
	cc.camera.SetPosition(common.Lift(cc.camera.Position(), cc.preMove(step)*sign))
	cc.onMove()
}
