package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
)

// NewTriangleMeshScene creates a scene with a box, a pyramid and an
// icosahedron built from triangle meshes, each turned about Y by an instance
// transform
func NewTriangleMeshScene() *Scene {
	s := &Scene{
		Name:   "trianglemesh",
		Shapes: make([]geometry.Shape, 0),
	}

	groundPlane := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	s.Shapes = append(s.Shapes, groundPlane)

	boxMesh := CreateBoxMesh(core.NewVec3(1, 1, 1))
	s.Shapes = append(s.Shapes, meshInstance(boxMesh, math.Pi/6, core.NewVec3(-2, 0.5, 0)))

	pyramidMesh := CreatePyramidMesh(1.5, 2.0)
	s.Shapes = append(s.Shapes, meshInstance(pyramidMesh, math.Pi/4, core.NewVec3(0, 1, 0)))

	icosahedronMesh := CreateIcosahedronMesh(0.8)
	s.Shapes = append(s.Shapes, meshInstance(icosahedronMesh, math.Pi/3, core.NewVec3(2, 0.8, 0)))

	return s
}

// NewMeshScene wraps a mesh in a scene after validating it. The mesh's
// triangles are added individually so the BVH can partition them.
func NewMeshScene(name string, mesh *geometry.TriMesh) (*Scene, error) {
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("mesh scene %s: %w", name, err)
	}
	return &Scene{
		Name:   name,
		Shapes: mesh.Triangles(),
	}, nil
}

// meshInstance places a mesh with its own BVH into the world.
// It panics on an invalid mesh; callers pass the built-in meshes below.
func meshInstance(mesh *geometry.TriMesh, rotationY float64, center core.Vec3) *geometry.Instance {
	if err := mesh.Validate(); err != nil {
		panic(fmt.Sprintf("built-in mesh: %v", err))
	}
	return geometry.NewInstance(geometry.NewBVHFromTriMesh(mesh), core.NewTransform(rotationY, center))
}

// CreateBoxMesh creates a box mesh of the given size centered on the origin
func CreateBoxMesh(size core.Vec3) *geometry.TriMesh {
	h := size.Mul(0.5)
	vertices := []core.Vec3{
		core.NewVec3(-h.X, -h.Y, -h.Z), // 0: left-bottom-back
		core.NewVec3(+h.X, -h.Y, -h.Z), // 1: right-bottom-back
		core.NewVec3(+h.X, +h.Y, -h.Z), // 2: right-top-back
		core.NewVec3(-h.X, +h.Y, -h.Z), // 3: left-top-back
		core.NewVec3(-h.X, -h.Y, +h.Z), // 4: left-bottom-front
		core.NewVec3(+h.X, -h.Y, +h.Z), // 5: right-bottom-front
		core.NewVec3(+h.X, +h.Y, +h.Z), // 6: right-top-front
		core.NewVec3(-h.X, +h.Y, +h.Z), // 7: left-top-front
	}

	// 2 triangles per face, wound counter-clockwise seen from outside
	indices := []int{
		0, 2, 1, 0, 3, 2, // back (Z-)
		4, 5, 6, 4, 6, 7, // front (Z+)
		0, 7, 3, 0, 4, 7, // left (X-)
		1, 2, 6, 1, 6, 5, // right (X+)
		0, 1, 5, 0, 5, 4, // bottom (Y-)
		3, 6, 2, 3, 7, 6, // top (Y+)
	}

	return geometry.NewTriMesh(vertices, indices)
}

// CreatePyramidMesh creates a square pyramid centered on the origin
func CreatePyramidMesh(baseSize, height float64) *geometry.TriMesh {
	halfBase := baseSize * 0.5
	halfHeight := height * 0.5

	vertices := []core.Vec3{
		core.NewVec3(-halfBase, -halfHeight, -halfBase), // 0: left-back
		core.NewVec3(+halfBase, -halfHeight, -halfBase), // 1: right-back
		core.NewVec3(+halfBase, -halfHeight, +halfBase), // 2: right-front
		core.NewVec3(-halfBase, -halfHeight, +halfBase), // 3: left-front
		core.NewVec3(0, +halfHeight, 0),                 // 4: apex
	}

	indices := []int{
		0, 1, 2, 0, 2, 3, // base
		0, 4, 1, // back
		1, 4, 2, // right
		2, 4, 3, // front
		3, 4, 0, // left
	}

	return geometry.NewTriMesh(vertices, indices)
}

// CreateIcosahedronMesh creates an icosahedron whose vertices lie on a sphere
// of the given radius around the origin
func CreateIcosahedronMesh(radius float64) *geometry.TriMesh {
	phi := (1.0 + math.Sqrt(5)) / 2.0
	scale := radius / math.Sqrt(1+phi*phi)

	vertices := []core.Vec3{
		core.NewVec3(-1, phi, 0).Mul(scale),
		core.NewVec3(1, phi, 0).Mul(scale),
		core.NewVec3(-1, -phi, 0).Mul(scale),
		core.NewVec3(1, -phi, 0).Mul(scale),
		core.NewVec3(0, -1, phi).Mul(scale),
		core.NewVec3(0, 1, phi).Mul(scale),
		core.NewVec3(0, -1, -phi).Mul(scale),
		core.NewVec3(0, 1, -phi).Mul(scale),
		core.NewVec3(phi, 0, -1).Mul(scale),
		core.NewVec3(phi, 0, 1).Mul(scale),
		core.NewVec3(-phi, 0, -1).Mul(scale),
		core.NewVec3(-phi, 0, 1).Mul(scale),
	}

	indices := []int{
		// 5 faces around vertex 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around vertex 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return geometry.NewTriMesh(vertices, indices)
}
