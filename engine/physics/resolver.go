package physics

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-fpscam/engine/camera"
	"github.com/sirupsen/logrus"
)

// Resolver wraps any camera.Mover so that no move leaves the body inside an obstacle.
// Each primitive delegates to the wrapped mover, probes the collision index with the
// bound body and, on overlap, applies the inverse primitive with the same step.
// A single discrete probe is made against the post-move pose, so a step larger than
// an obstacle's thickness can pass through it.
type Resolver struct {
	mover camera.Mover
	index CollisionIndex
	body  Body
	log   logrus.FieldLogger
}

var _ camera.Mover = &Resolver{}

// NewResolver wraps mover. Collision index and body must be bound before the first move.
//
// Parameters:
//   - mover: the movement primitives to make collision-safe
//   - log: logger for precondition violations; nil uses the logrus standard logger
//
// Returns:
//   - *Resolver: the unbound resolver
func NewResolver(mover camera.Mover, log logrus.FieldLogger) *Resolver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Resolver{mover: mover, log: log}
}

// BindCollision sets the collision index probed after every move.
func (r *Resolver) BindCollision(index CollisionIndex) {
	r.index = index
}

// BindBody sets the body probed after every move.
func (r *Resolver) BindBody(body Body) {
	r.body = body
}

// Body returns the bound body, or nil.
func (r *Resolver) Body() Body {
	return r.body
}

// Validate reports the first missing collaborator.
func (r *Resolver) Validate() error {
	if r.index == nil {
		return ErrCollisionUnbound
	}
	if r.body == nil {
		return ErrBodyUnbound
	}
	return nil
}

// Collided reports whether the bound body currently overlaps any obstacle.
// It panics if a collaborator is unbound.
func (r *Resolver) Collided() bool {
	r.mustBeBound()
	return len(r.index.Query(r.body)) != 0
}

func (r *Resolver) MoveForward(step float32) { r.resolve(r.mover.MoveForward, r.mover.MoveBack, step) }
func (r *Resolver) MoveBack(step float32)    { r.resolve(r.mover.MoveBack, r.mover.MoveForward, step) }
func (r *Resolver) MoveLeft(step float32)    { r.resolve(r.mover.MoveLeft, r.mover.MoveRight, step) }
func (r *Resolver) MoveRight(step float32)   { r.resolve(r.mover.MoveRight, r.mover.MoveLeft, step) }
func (r *Resolver) MoveUp(step float32)      { r.resolve(r.mover.MoveUp, r.mover.MoveDown, step) }
func (r *Resolver) MoveDown(step float32)    { r.resolve(r.mover.MoveDown, r.mover.MoveUp, step) }

// resolve applies a primitive and reverts it with its inverse if the body ends up overlapping.
func (r *Resolver) resolve(apply, undo func(float32), step float32) {
	r.mustBeBound()
	apply(step)
	if len(r.index.Query(r.body)) != 0 {
		undo(step)
	}
}

// mustBeBound panics when a collaborator is missing. Moving before binding is a
// programming error in the host, not a runtime condition to recover from.
func (r *Resolver) mustBeBound() {
	if err := r.Validate(); err != nil {
		r.log.WithError(err).Error("collision-resolved move before binding")
		panic(fmt.Errorf("move: %w", err))
	}
}
