package octree

import (
	"github.com/Carmen-Shannon/oxy-fpscam/common"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Octree is a spatial collision index over axis-aligned boxes.
// Each collider lives in the deepest node whose bounds fully contain it; colliders
// that straddle a split plane stay in the parent, and colliders outside the root
// bounds are kept at the root. Not safe for concurrent use.
type Octree struct {
	root     *node
	maxDepth int
	maxItems int
	owner    map[common.Collider]*node
}

type node struct {
	bounds   cube.BBox
	depth    int
	items    []common.Collider
	children *[8]*node
}

// New creates an empty octree covering bounds.
func New(bounds cube.BBox, options ...OctreeOption) *Octree {
	t := &Octree{
		maxDepth: 6,
		maxItems: 8,
		owner:    make(map[common.Collider]*node),
	}
	for _, option := range options {
		option(t)
	}
	t.root = &node{bounds: bounds}
	return t
}

// Len returns the number of stored colliders.
func (t *Octree) Len() int {
	return len(t.owner)
}

// Insert adds c to the tree. Inserting a collider twice is a no-op.
func (t *Octree) Insert(c common.Collider) {
	if _, ok := t.owner[c]; ok {
		return
	}
	t.insert(t.root, c, c.BBox())
}

// Remove deletes c from the tree and reports whether it was present.
func (t *Octree) Remove(c common.Collider) bool {
	n, ok := t.owner[c]
	if !ok {
		return false
	}
	for i, it := range n.items {
		if it == c {
			n.items = append(n.items[:i], n.items[i+1:]...)
			break
		}
	}
	delete(t.owner, c)
	return true
}

// Update re-files c after its box has changed.
func (t *Octree) Update(c common.Collider) {
	t.Remove(c)
	t.Insert(c)
}

// Query returns every stored collider overlapping c's box, excluding c itself.
// An empty result means c collides with nothing.
func (t *Octree) Query(c common.Collider) []common.Collider {
	return t.QueryBox(c.BBox(), c)
}

// QueryBox returns every stored collider overlapping box. skip, if non-nil, is left out of the result.
func (t *Octree) QueryBox(box cube.BBox, skip common.Collider) []common.Collider {
	var out []common.Collider
	t.query(t.root, box, skip, &out)
	return out
}

func (t *Octree) query(n *node, box cube.BBox, skip common.Collider, out *[]common.Collider) {
	for _, it := range n.items {
		if it != skip && it.BBox().IntersectsWith(box) {
			*out = append(*out, it)
		}
	}
	if n.children == nil {
		return
	}
	for _, child := range n.children {
		if touches(child.bounds, box) {
			t.query(child, box, skip, out)
		}
	}
}

func (t *Octree) insert(n *node, c common.Collider, box cube.BBox) {
	for {
		if n.children == nil {
			if len(n.items) < t.maxItems || n.depth >= t.maxDepth {
				break
			}
			t.split(n)
		}
		child := n.childContaining(box)
		if child == nil {
			break
		}
		n = child
	}
	n.items = append(n.items, c)
	t.owner[c] = n
}

// split creates the eight children of n and pushes down every item that fits in one.
func (t *Octree) split(n *node) {
	lo, hi := n.bounds.Min(), n.bounds.Max()
	mid := lo.Add(hi).Mul(0.5)
	var children [8]*node
	for i := range children {
		cLo, cHi := lo, mid
		for axis := range 3 {
			if i&(1<<axis) != 0 {
				cLo[axis], cHi[axis] = mid[axis], hi[axis]
			}
		}
		children[i] = &node{
			bounds: cube.Box(cLo[0], cLo[1], cLo[2], cHi[0], cHi[1], cHi[2]),
			depth:  n.depth + 1,
		}
	}
	n.children = &children

	kept := n.items[:0]
	for _, it := range n.items {
		if child := n.childContaining(it.BBox()); child != nil {
			child.items = append(child.items, it)
			t.owner[it] = child
			continue
		}
		kept = append(kept, it)
	}
	n.items = kept
}

func (n *node) childContaining(box cube.BBox) *node {
	if n.children == nil {
		return nil
	}
	for _, child := range n.children {
		if common.Contains(child.bounds, box) {
			return child
		}
	}
	return nil
}

// touches is an inclusive overlap test used for node pruning, so boxes lying on a
// split plane still reach the nodes on both sides.
func touches(a, b cube.BBox) bool {
	aLo, aHi := a.Min(), a.Max()
	bLo, bHi := b.Min(), b.Max()
	return overlaps(aLo, aHi, bLo, bHi)
}

func overlaps(aLo, aHi, bLo, bHi mgl32.Vec3) bool {
	for i := range 3 {
		if aHi[i] < bLo[i] || bHi[i] < aLo[i] {
			return false
		}
	}
	return true
}
