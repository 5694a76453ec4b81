package game_object

import "github.com/go-gl/mathgl/mgl32"

// GameObjectBuilderOption is a functional option for configuring a GameObject.
type GameObjectBuilderOption func(*gameObject)

// WithPosition sets the object's initial centre.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.position = mgl32.Vec3{x, y, z}
	}
}

// WithHalfExtents sets the half size of the object's box.
//
// Parameters:
//   - x, y, z: half extents along each axis
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithHalfExtents(x, y, z float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.halfExtents = mgl32.Vec3{x, y, z}
	}
}

// WithSize sets the full size of the object's box.
//
// Parameters:
//   - x, y, z: edge lengths along each axis
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithSize(x, y, z float32) GameObjectBuilderOption {
	return WithHalfExtents(x/2, y/2, z/2)
}

// WithEnabled sets whether the object starts enabled.
//
// Parameters:
//   - enabled: false to start disabled
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.enabled.Store(enabled)
	}
}
