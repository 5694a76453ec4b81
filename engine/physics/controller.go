package physics

import (
	"github.com/Carmen-Shannon/oxy-fpscam/engine/camera"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/input"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/loop"
	"github.com/sirupsen/logrus"
)

// Controller is the first-person controller a host scene talks to. It composes the
// plain camera controller, the collision resolver around it, the look state, and the
// gravity and jump loops, all sharing one Tuning.
//
// Movement methods (MoveForward and friends) come from the embedded Resolver and are
// collision-resolved. Use Movement() for unresolved moves.
type Controller struct {
	*Resolver

	movement camera.CameraController
	look     *input.Look
	gravity  *Gravity
	jump     *Jump
	tuning   Tuning
	log      logrus.FieldLogger

	// binds holds collaborator options until the Resolver exists; cleared after construction.
	binds []func(*Resolver)
}

// NewController builds a Controller around movement. Gravity and jump tasks register
// with sched while running; sched may be nil when the host ticks them by hand.
//
// Parameters:
//   - movement: the plain camera controller to make collision-safe
//   - sched: the frame clock driving the gravity and jump loops
//   - options: functional options
//
// Returns:
//   - *Controller: the controller, with gravity disabled and no jump in progress
func NewController(movement camera.CameraController, sched loop.Scheduler, options ...ControllerOption) *Controller {
	c := &Controller{
		movement: movement,
		tuning:   DefaultTuning(),
	}
	for _, opt := range options {
		opt(c)
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}
	if c.look == nil {
		c.look = input.NewLook()
	}

	c.Resolver = NewResolver(movement, c.log)
	for _, bind := range c.binds {
		bind(c.Resolver)
	}
	c.binds = nil
	c.gravity = newGravity(c.Resolver, sched, &c.tuning, c.log.WithField("loop", "gravity"))
	c.jump = newJump(c.Resolver, c.gravity, sched, &c.tuning, c.log.WithField("loop", "jump"))
	return c
}

// Movement returns the wrapped camera controller.
func (c *Controller) Movement() camera.CameraController {
	return c.movement
}

// Camera returns the controlled camera.
func (c *Controller) Camera() camera.Camera {
	return c.movement.Camera()
}

// Look returns the yaw/pitch state driven by pointer input.
func (c *Controller) Look() *input.Look {
	return c.look
}

// Gravity returns the gravity loop.
func (c *Controller) Gravity() *Gravity {
	return c.gravity
}

// JumpLoop returns the jump loop.
func (c *Controller) JumpLoop() *Jump {
	return c.jump
}

// EnableGravity starts the gravity loop.
//
// Returns:
//   - error: a missing-collaborator error; gravity stays disabled
func (c *Controller) EnableGravity() error {
	return c.gravity.Enable()
}

// DisableGravity stops the gravity loop.
func (c *Controller) DisableGravity() {
	c.gravity.Disable()
}

// GravityEnabled reports whether the gravity loop is running.
func (c *Controller) GravityEnabled() bool {
	return c.gravity.Enabled()
}

// Inertia returns the gravity inertia.
func (c *Controller) Inertia() float32 {
	return c.gravity.Inertia()
}

// TotalGravity returns the fall distance of the latest gravity tick.
func (c *Controller) TotalGravity() float32 {
	return c.gravity.TotalGravity()
}

// Jump starts a jump if the body is grounded. See Jump.Jump.
func (c *Controller) Jump() (bool, error) {
	return c.jump.Jump()
}

// Jumping reports whether a jump is in progress.
func (c *Controller) Jumping() bool {
	return c.jump.Jumping()
}

// Impulse returns the upward step the next jump tick will apply.
func (c *Controller) Impulse() float32 {
	return c.jump.Impulse()
}

// Tuning returns the active schedule.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// SetTuning replaces the schedule. Running loops pick it up on their next tick; an
// idle jump is rearmed with the new impulse.
//
// Parameters:
//   - t: the new schedule
//
// Returns:
//   - error: the validation error; the old schedule is kept
func (c *Controller) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.tuning = t
	if !c.jump.Jumping() {
		c.jump.impulse = t.JumpImpulse
	}
	c.log.WithFields(logrus.Fields{
		"impulse": t.JumpImpulse,
		"cap":     t.InertiaCap,
	}).Debug("physics tuning updated")
	return nil
}

// SetDefault sets the starting yaw and pitch and points the camera at them immediately.
//
// Parameters:
//   - yaw: horizontal angle in radians
//   - pitch: vertical angle in radians
func (c *Controller) SetDefault(yaw, pitch float32) {
	c.look.SetDefault(yaw, pitch)
	c.Orient()
}

// Pan turns the look state by a pointer delta. It does nothing while panning is disabled.
//
// Parameters:
//   - d: the pointer delta in pixels
func (c *Controller) Pan(d input.PointerDelta) {
	c.look.Apply(d)
}

// Orient applies the current yaw and pitch to the camera.
func (c *Controller) Orient() {
	yaw, pitch := c.look.Angles()
	camera.UpdateOrientation(c.movement.Camera(), yaw, pitch)
}
