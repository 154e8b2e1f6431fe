package geometry

import (
	"sort"

	"github.com/df07/go-raycore/pkg/core"
)

// BVHConfig controls how a BVH subdivides its primitives
type BVHConfig struct {
	LeafSize int // Maximum primitives per leaf before splitting
	MaxDepth int // Depth at which nodes become leaves regardless of size
}

// DefaultBVHConfig returns sensible default BVH settings
func DefaultBVHConfig() BVHConfig {
	return BVHConfig{
		LeafSize: 4,
		MaxDepth: 32,
	}
}

// BVHOption adjusts a BVHConfig
type BVHOption func(*BVHConfig)

// WithLeafSize sets the maximum number of primitives in a leaf (minimum 1)
func WithLeafSize(n int) BVHOption {
	return func(c *BVHConfig) {
		if n < 1 {
			n = 1
		}
		c.LeafSize = n
	}
}

// WithMaxDepth sets the maximum tree depth (minimum 0, a single leaf)
func WithMaxDepth(n int) BVHOption {
	return func(c *BVHConfig) {
		if n < 0 {
			n = 0
		}
		c.MaxDepth = n
	}
}

// bvhNode is a node in the flattened hierarchy. Leaves have count > 0 and
// reference shapes[start:start+count]; internal nodes reference two children.
type bvhNode struct {
	bbox        core.AABB
	left, right int
	start       int
	count       int
}

func (n *bvhNode) isLeaf() bool {
	return n.count > 0
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Nodes live in a single slice with the root at index 0. Shapes whose bounding
// box is not finite (planes, for example) cannot be partitioned and are tested
// on every query.
type BVH struct {
	nodes      []bvhNode
	shapes     []Shape // Bounded shapes, reordered so each leaf owns a contiguous range
	background []Shape // Unbounded shapes
	bbox       core.AABB
	config     BVHConfig
}

// bvhItem caches a shape's bounds during construction
type bvhItem struct {
	shape    Shape
	bbox     core.AABB
	centroid core.Vec3
}

// NewBVH constructs a BVH from a slice of shapes. The input slice is not modified.
func NewBVH(shapes []Shape, opts ...BVHOption) *BVH {
	config := DefaultBVHConfig()
	for _, opt := range opts {
		opt(&config)
	}

	bvh := &BVH{
		bbox:   core.EmptyAABB(),
		config: config,
	}

	items := make([]bvhItem, 0, len(shapes))
	for _, shape := range shapes {
		bbox := shape.BoundingBox()
		bvh.bbox = bvh.bbox.Union(bbox)
		if !bbox.IsFinite() {
			bvh.background = append(bvh.background, shape)
			continue
		}
		items = append(items, bvhItem{shape: shape, bbox: bbox, centroid: bbox.Center()})
	}

	if len(items) > 0 {
		bvh.nodes = make([]bvhNode, 0, 2*len(items)/config.LeafSize+1)
		bvh.shapes = make([]Shape, 0, len(items))
		bvh.build(items, 0)
	}

	return bvh
}

// NewBVHFromTriMesh builds a BVH over the triangles of a validated mesh
func NewBVHFromTriMesh(mesh *TriMesh, opts ...BVHOption) *BVH {
	return NewBVH(mesh.Triangles(), opts...)
}

// build appends the subtree for items and returns its node index
func (bvh *BVH) build(items []bvhItem, depth int) int {
	bbox := core.EmptyAABB()
	centroids := core.EmptyAABB()
	for _, item := range items {
		bbox = bbox.Union(item.bbox)
		centroids.ExpandByPoint(item.centroid)
	}

	index := len(bvh.nodes)
	bvh.nodes = append(bvh.nodes, bvhNode{bbox: bbox})

	if len(items) <= bvh.config.LeafSize || depth >= bvh.config.MaxDepth {
		bvh.nodes[index].start = len(bvh.shapes)
		bvh.nodes[index].count = len(items)
		for _, item := range items {
			bvh.shapes = append(bvh.shapes, item.shape)
		}
		return index
	}

	axis := splitAxis(centroids, bbox)
	sort.Slice(items, func(i, j int) bool {
		return core.Component(items[i].centroid, axis) < core.Component(items[j].centroid, axis)
	})

	// Object median: both halves are non-empty whenever len(items) >= 2
	mid := len(items) / 2
	left := bvh.build(items[:mid], depth+1)
	right := bvh.build(items[mid:], depth+1)

	bvh.nodes[index].left = left
	bvh.nodes[index].right = right
	return index
}

// splitAxis picks the axis along which centroids are most spread out,
// falling back to the longest axis of the bounds when they all coincide
func splitAxis(centroids, bbox core.AABB) int {
	size := centroids.Size()
	if size.X == 0 && size.Y == 0 && size.Z == 0 {
		return bbox.LongestAxis()
	}
	return centroids.LongestAxis()
}

// Hit returns the closest intersection among all shapes in the BVH
func (bvh *BVH) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord

	for _, shape := range bvh.background {
		if hit, isHit := shape.Hit(ray, interval); isHit {
			closest = hit
			interval = interval.WithMax(hit.T)
		}
	}

	if len(bvh.nodes) == 0 {
		return closest, closest != nil
	}

	var stackBuf [64]int
	stack := append(stackBuf[:0], 0)

	for len(stack) > 0 {
		node := &bvh.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]

		// The interval may have narrowed since this node was pushed
		if !node.bbox.IntersectRay(ray, interval) {
			continue
		}

		if node.isLeaf() {
			for _, shape := range bvh.shapes[node.start : node.start+node.count] {
				if hit, isHit := shape.Hit(ray, interval); isHit {
					closest = hit
					interval = interval.WithMax(hit.T)
				}
			}
			continue
		}

		tLeft, hitLeft := bvh.nodes[node.left].bbox.Entry(ray, interval)
		tRight, hitRight := bvh.nodes[node.right].bbox.Entry(ray, interval)

		// Push the farther child first so the nearer one is visited next
		switch {
		case hitLeft && hitRight:
			if tLeft <= tRight {
				stack = append(stack, node.right, node.left)
			} else {
				stack = append(stack, node.left, node.right)
			}
		case hitLeft:
			stack = append(stack, node.left)
		case hitRight:
			stack = append(stack, node.right)
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all shape bounds, infinite if any shape is unbounded
func (bvh *BVH) BoundingBox() core.AABB {
	return bvh.bbox
}

// Config returns the settings the BVH was built with
func (bvh *BVH) Config() BVHConfig {
	return bvh.config
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes  int
	LeafNodes   int
	MaxDepth    int
	AvgDepth    float64 // Mean leaf depth
	TotalShapes int     // Shapes stored in leaves
	Background  int     // Unbounded shapes tested on every query
}

// Stats walks the hierarchy and reports its shape
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{Background: len(bvh.background)}
	if len(bvh.nodes) == 0 {
		return stats
	}

	bvh.collectStats(0, 0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(index, depth int, stats *BVHStats) {
	node := &bvh.nodes[index]
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.isLeaf() {
		stats.LeafNodes++
		stats.TotalShapes += node.count
		stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
		return
	}

	bvh.collectStats(node.left, depth+1, stats)
	bvh.collectStats(node.right, depth+1, stats)
}
