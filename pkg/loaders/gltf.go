package loaders

import (
	"fmt"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a .gltf or .glb file into a single mesh
func LoadGLTF(path string) (*geometry.TriMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return FromGLTFDocument(doc)
}

// FromGLTFDocument merges the triangle primitives of every mesh in doc.
// Positions are taken in mesh space; node transforms are not applied.
// Primitives without indices are read as consecutive vertex triples.
func FromGLTFDocument(doc *gltf.Document) (*geometry.TriMesh, error) {
	mesh := geometry.NewTriMesh(nil, nil)

	for _, m := range doc.Meshes {
		for i, prim := range m.Primitives {
			if err := appendPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: %w", m.Name, i, err)
			}
		}
	}

	return mesh, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *geometry.TriMesh) error {
	if prim.Mode != gltf.PrimitiveTriangles {
		// Skip non-triangle primitives (lines, points, strips)
		return nil
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}
	if posIdx < 0 || posIdx >= len(doc.Accessors) {
		return fmt.Errorf("position accessor %d out of range", posIdx)
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	baseVertex := len(mesh.Vertices)
	for _, p := range positions {
		mesh.Vertices = append(mesh.Vertices, core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2])))
	}

	if prim.Indices == nil {
		for i := 0; i+2 < len(positions); i += 3 {
			mesh.Indices = append(mesh.Indices, baseVertex+i, baseVertex+i+1, baseVertex+i+2)
		}
		return nil
	}

	if *prim.Indices < 0 || *prim.Indices >= len(doc.Accessors) {
		return fmt.Errorf("index accessor %d out of range", *prim.Indices)
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return fmt.Errorf("read indices: %w", err)
	}
	for _, index := range indices {
		mesh.Indices = append(mesh.Indices, baseVertex+int(index))
	}

	return nil
}
