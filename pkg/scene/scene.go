package scene

import (
	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
)

// Scene is a named collection of shapes with its acceleration structure
type Scene struct {
	Name   string
	Shapes []geometry.Shape // Objects in the scene
	BVH    *geometry.BVH    // Built by Preprocess
}

// NewGroundQuad creates a large horizontal quad centered at center with its
// normal pointing up (0,1,0). Unlike a plane it has finite bounds.
func NewGroundQuad(center core.Vec3, size float64) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) points along +Y
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v)
}

// Preprocess builds the BVH over the scene's shapes
func (s *Scene) Preprocess(opts ...geometry.BVHOption) {
	s.BVH = geometry.NewBVH(s.Shapes, opts...)
}

// Hitable returns the BVH when the scene has been preprocessed, or a brute
// force list otherwise
func (s *Scene) Hitable() core.Hitable {
	if s.BVH != nil {
		return s.BVH
	}
	return s.List()
}

// List returns the shapes as a brute force list, used to check BVH results
func (s *Scene) List() *geometry.List {
	return geometry.NewList(s.Shapes...)
}

// Bounds returns the union of the finite shape bounds. Unbounded shapes such
// as planes are skipped so the result can be used to aim sample rays.
func (s *Scene) Bounds() core.AABB {
	bounds := core.EmptyAABB()
	for _, shape := range s.Shapes {
		if bbox := shape.BoundingBox(); bbox.IsFinite() {
			bounds = bounds.Union(bbox)
		}
	}
	return bounds
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, handling composite objects
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.TriMesh:
		return obj.TriangleCount()
	case *geometry.BVH:
		stats := obj.Stats()
		return stats.TotalShapes + stats.Background
	case *geometry.Instance:
		return countPrimitivesInShape(obj.Object)
	case *geometry.List:
		count := 0
		for _, child := range obj.Shapes {
			count += countPrimitivesInShape(child)
		}
		return count
	default:
		return 1
	}
}
