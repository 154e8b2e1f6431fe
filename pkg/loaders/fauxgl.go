package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
	"github.com/fogleman/fauxgl"
)

// LoadFauxGL loads an .obj, .stl or .ply file through fauxgl
func LoadFauxGL(path string) (*geometry.TriMesh, error) {
	var (
		mesh *fauxgl.Mesh
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		mesh, err = fauxgl.LoadOBJ(path)
	case ".stl":
		mesh, err = fauxgl.LoadSTL(path)
	case ".ply":
		mesh, err = fauxgl.LoadPLY(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	return FromFauxGLMesh(mesh), nil
}

// FromFauxGLMesh converts fauxgl's triangle soup into an indexed mesh,
// sharing vertices whose positions are exactly equal
func FromFauxGLMesh(mesh *fauxgl.Mesh) *geometry.TriMesh {
	vertices := make([]core.Vec3, 0, len(mesh.Triangles))
	indices := make([]int, 0, len(mesh.Triangles)*3)
	seen := make(map[core.Vec3]int, len(mesh.Triangles))

	index := func(v fauxgl.Vertex) int {
		p := core.NewVec3(v.Position.X, v.Position.Y, v.Position.Z)
		if i, ok := seen[p]; ok {
			return i
		}
		seen[p] = len(vertices)
		vertices = append(vertices, p)
		return len(vertices) - 1
	}

	for _, t := range mesh.Triangles {
		indices = append(indices, index(t.V1), index(t.V2), index(t.V3))
	}

	return geometry.NewTriMesh(vertices, indices)
}
