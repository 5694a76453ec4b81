package octree

// OctreeOption is a functional option for configuring an Octree.
type OctreeOption func(*Octree)

// WithMaxDepth limits how many times a node may split.
func WithMaxDepth(depth int) OctreeOption {
	return func(t *Octree) {
		t.maxDepth = max(depth, 0)
	}
}

// WithMaxItems sets how many colliders a leaf holds before it splits.
func WithMaxItems(n int) OctreeOption {
	return func(t *Octree) {
		t.maxItems = max(n, 1)
	}
}
