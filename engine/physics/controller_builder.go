package physics

import (
	"github.com/Carmen-Shannon/oxy-fpscam/engine/input"
	"github.com/sirupsen/logrus"
)

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger used by the controller and its loops.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - ControllerOption: functional option to set the logger
func WithLogger(log logrus.FieldLogger) ControllerOption {
	return func(c *Controller) {
		c.log = log
	}
}

// WithTuning sets the gravity and jump schedule. An invalid schedule is ignored and
// the defaults are kept.
//
// Parameters:
//   - t: the schedule
//
// Returns:
//   - ControllerOption: functional option to set the schedule
func WithTuning(t Tuning) ControllerOption {
	return func(c *Controller) {
		if t.Validate() == nil {
			c.tuning = t
		}
	}
}

// WithCollision binds the collision index at construction.
//
// Parameters:
//   - index: the collision index
//
// Returns:
//   - ControllerOption: functional option to bind the index
func WithCollision(index CollisionIndex) ControllerOption {
	return func(c *Controller) {
		c.binds = append(c.binds, func(r *Resolver) { r.BindCollision(index) })
	}
}

// WithBody binds the player body at construction.
//
// Parameters:
//   - body: the player body
//
// Returns:
//   - ControllerOption: functional option to bind the body
func WithBody(body Body) ControllerOption {
	return func(c *Controller) {
		c.binds = append(c.binds, func(r *Resolver) { r.BindBody(body) })
	}
}

// WithLook shares an existing look state with the controller.
//
// Parameters:
//   - look: the look state
//
// Returns:
//   - ControllerOption: functional option to set the look state
func WithLook(look *input.Look) ControllerOption {
	return func(c *Controller) {
		c.look = look
	}
}
