package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-raycore/pkg/core"
)

var (
	// ErrInvalidIndexCount is returned when a mesh index list is not a multiple of three
	ErrInvalidIndexCount = errors.New("index count is not a multiple of 3")
	// ErrIndexOutOfBounds is returned when a mesh index does not name a vertex
	ErrIndexOutOfBounds = errors.New("vertex index out of bounds")
)

// TriMesh is an indexed triangle mesh. Every consecutive triple of Indices
// names the three vertices of one triangle.
//
// Construct meshes freely, but call Validate before intersecting them or
// building a BVH over them; Triangle panics on an out-of-range index.
type TriMesh struct {
	Vertices []core.Vec3
	Indices  []int
}

// NewTriMesh creates a mesh over the given vertex and index slices without copying them
func NewTriMesh(vertices []core.Vec3, indices []int) *TriMesh {
	return &TriMesh{Vertices: vertices, Indices: indices}
}

// Validate checks the index list. It reports ErrInvalidIndexCount before
// looking at individual indices, then the first index outside [0, len(Vertices)).
func (m *TriMesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: got %d indices", ErrInvalidIndexCount, len(m.Indices))
	}
	for i, index := range m.Indices {
		if index < 0 || index >= len(m.Vertices) {
			return fmt.Errorf("%w: indices[%d] = %d with %d vertices", ErrIndexOutOfBounds, i, index, len(m.Vertices))
		}
	}
	return nil
}

// TriangleCount returns the number of triangles in the mesh
func (m *TriMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the i-th triangle of the mesh
func (m *TriMesh) Triangle(i int) *Triangle {
	return NewTriangle(
		m.Vertices[m.Indices[i*3]],
		m.Vertices[m.Indices[i*3+1]],
		m.Vertices[m.Indices[i*3+2]],
	)
}

// Triangles expands the mesh into individual triangles as shapes
func (m *TriMesh) Triangles() []Shape {
	triangles := make([]Shape, m.TriangleCount())
	for i := range triangles {
		triangles[i] = m.Triangle(i)
	}
	return triangles
}

// BoundingBox returns the box around all referenced vertices
func (m *TriMesh) BoundingBox() core.AABB {
	bbox := core.EmptyAABB()
	for _, index := range m.Indices {
		bbox.ExpandByPoint(m.Vertices[index])
	}
	return bbox
}

// Hit tests every triangle in turn and returns the closest hit.
// This is linear in the triangle count; wrap the mesh with NewBVHFromTriMesh
// for repeated queries.
func (m *TriMesh) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	for i := 0; i < m.TriangleCount(); i++ {
		if hit, isHit := m.Triangle(i).Hit(ray, interval); isHit {
			closest = hit
			interval = interval.WithMax(hit.T)
		}
	}
	return closest, closest != nil
}
