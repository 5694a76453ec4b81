package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-fpscam/common"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// objectCount is an atomic counter used to hand out unique object IDs.
var objectCount atomic.Uint64

type gameObject struct {
	id          uint64
	enabled     atomic.Bool
	position    mgl32.Vec3
	halfExtents mgl32.Vec3
}

// GameObject is a box-shaped scene entity. It serves both as an obstacle stored in
// the collision index and as a player body whose position the physics layer probes
// and moves.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object takes part in collision.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object takes part in collision.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Position returns the centre of the object's box.
	//
	// Returns:
	//   - mgl32.Vec3: world-space centre
	Position() mgl32.Vec3

	// SetPosition moves the object's centre.
	//
	// Parameters:
	//   - pos: world-space centre
	SetPosition(pos mgl32.Vec3)

	// HalfExtents returns the half size of the object's box.
	//
	// Returns:
	//   - mgl32.Vec3: half extents along each axis
	HalfExtents() mgl32.Vec3

	// BBox returns the object's world-space box.
	//
	// Returns:
	//   - cube.BBox: the axis-aligned bounds
	BBox() cube.BBox
}

var _ GameObject = &gameObject{}

// NewGameObject creates an enabled unit cube at the origin.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the new object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	g := &gameObject{
		id:          objectCount.Add(1),
		halfExtents: mgl32.Vec3{0.5, 0.5, 0.5},
	}
	g.enabled.Store(true)
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Position() mgl32.Vec3 {
	return g.position
}

func (g *gameObject) SetPosition(pos mgl32.Vec3) {
	g.position = pos
}

func (g *gameObject) HalfExtents() mgl32.Vec3 {
	return g.halfExtents
}

func (g *gameObject) BBox() cube.BBox {
	return common.BoxAround(g.position, g.halfExtents)
}
