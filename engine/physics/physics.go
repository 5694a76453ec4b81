// Package physics makes first-person movement collision-safe and runs the two
// autonomous per-frame behaviours built on top of it: falling under gravity and
// jumping.
//
// Every move is speculative. The underlying mover applies it, the collision index
// is probed with the player body, and if the body now overlaps anything the exact
// inverse move is applied with the same step. Collision is a normal outcome and is
// never reported as an error; only a missing collaborator is.
package physics

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-fpscam/common"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrUnbound is wrapped by every missing-collaborator error.
	ErrUnbound = errors.New("physics: collaborator not bound")
	// ErrCollisionUnbound reports that no collision index was bound.
	ErrCollisionUnbound = fmt.Errorf("%w: collision index", ErrUnbound)
	// ErrBodyUnbound reports that no player body was bound.
	ErrBodyUnbound = fmt.Errorf("%w: player body", ErrUnbound)
)

// Body is the entity probed against the collision index. It may be the camera itself
// or a separate object the host keeps in sync with it.
type Body interface {
	common.Collider

	// Position returns the body's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the current position
	Position() mgl32.Vec3

	// SetPosition moves the body.
	//
	// Parameters:
	//   - pos: world-space position
	SetPosition(pos mgl32.Vec3)
}

// CollisionIndex answers which obstacles currently overlap a collider.
type CollisionIndex interface {
	// Query returns the obstacles overlapping c. An empty result means no collision.
	//
	// Parameters:
	//   - c: the collider to test, normally the player body
	//
	// Returns:
	//   - []common.Collider: overlapping obstacles
	Query(c common.Collider) []common.Collider
}

// IndexFunc adapts a plain function to CollisionIndex.
type IndexFunc func(c common.Collider) []common.Collider

// Query calls f(c).
func (f IndexFunc) Query(c common.Collider) []common.Collider {
	return f(c)
}
