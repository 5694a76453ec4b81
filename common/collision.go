package common

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Collider is anything occupying an axis-aligned box in world space.
// Collision indexes store Colliders and answer overlap queries against them.
type Collider interface {
	// BBox returns the collider's current world-space bounding box.
	//
	// Returns:
	//   - cube.BBox: the axis-aligned bounds
	BBox() cube.BBox
}

// BoxAround returns the box with the given half extents centred on pos.
// Zero half extents produce a point box, which still intersects any box it lies strictly inside.
//
// Parameters:
//   - pos: centre of the box
//   - half: half extents along each axis
//
// Returns:
//   - cube.BBox: the resulting box
func BoxAround(pos, half mgl32.Vec3) cube.BBox {
	lo := pos.Sub(half)
	hi := pos.Add(half)
	return cube.Box(lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
}

// Contains reports whether inner lies entirely within outer (touching faces count).
func Contains(outer, inner cube.BBox) bool {
	oMin, oMax := outer.Min(), outer.Max()
	iMin, iMax := inner.Min(), inner.Max()
	for i := range 3 {
		if iMin[i] < oMin[i] || iMax[i] > oMax[i] {
			return false
		}
	}
	return true
}
