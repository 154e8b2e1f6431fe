package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raycore/pkg/core"
)

// quadMesh returns a unit square in the XY plane made of two triangles
func quadMesh() *TriMesh {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0), // 0
		core.NewVec3(1, 0, 0), // 1
		core.NewVec3(1, 1, 0), // 2
		core.NewVec3(0, 1, 0), // 3
	}
	indices := []int{
		0, 1, 2, // first triangle
		0, 2, 3, // second triangle
	}
	return NewTriMesh(vertices, indices)
}

// pyramidMesh returns a closed square pyramid with its apex at y=1
func pyramidMesh() *TriMesh {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),     // 0 - base corner
		core.NewVec3(1, 0, 0),     // 1 - base corner
		core.NewVec3(1, 0, 1),     // 2 - base corner
		core.NewVec3(0, 0, 1),     // 3 - base corner
		core.NewVec3(0.5, 1, 0.5), // 4 - apex
	}
	indices := []int{
		// Base (2 triangles)
		0, 1, 2,
		0, 2, 3,
		// Sides (4 triangles)
		0, 4, 1,
		1, 4, 2,
		2, 4, 3,
		3, 4, 0,
	}
	return NewTriMesh(vertices, indices)
}

func TestTriMesh_Creation(t *testing.T) {
	mesh := quadMesh()

	if err := mesh.Validate(); err != nil {
		t.Fatalf("Expected valid mesh, got %v", err)
	}

	if mesh.TriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", mesh.TriangleCount())
	}

	bbox := mesh.BoundingBox()
	assertVec(t, "min", core.NewVec3(0, 0, 0), bbox.Min)
	assertVec(t, "max", core.NewVec3(1, 1, 0), bbox.Max)

	second := mesh.Triangle(1)
	assertVec(t, "triangle 1 vertex A", core.NewVec3(0, 0, 0), second.A)
	assertVec(t, "triangle 1 vertex C", core.NewVec3(0, 1, 0), second.C)

	if got := len(mesh.Triangles()); got != 2 {
		t.Errorf("Expected 2 expanded triangles, got %d", got)
	}
}

func TestTriMesh_Validate(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	}

	tests := []struct {
		name    string
		indices []int
		wantErr error
	}{
		{"valid", []int{0, 1, 2}, nil},
		{"empty", []int{}, nil},
		{"two indices", []int{0, 1}, ErrInvalidIndexCount},
		{"four indices", []int{0, 1, 2, 0}, ErrInvalidIndexCount},
		{"index equal to vertex count", []int{0, 1, 3}, ErrIndexOutOfBounds},
		{"negative index", []int{0, -1, 2}, ErrIndexOutOfBounds},
		{"count checked before bounds", []int{0, 7}, ErrInvalidIndexCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTriMesh(vertices, tt.indices).Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTriMesh_Hit(t *testing.T) {
	mesh := quadMesh()

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
	}{
		{
			name: "Ray hits first triangle",
			ray: core.NewRay(
				core.NewVec3(0.7, 0.2, -1), // origin
				core.NewVec3(0, 0, 1),      // direction
			),
			shouldHit: true,
		},
		{
			name: "Ray hits second triangle",
			ray: core.NewRay(
				core.NewVec3(0.2, 0.7, -1),
				core.NewVec3(0, 0, 1),
			),
			shouldHit: true,
		},
		{
			name: "Ray hits corner",
			ray: core.NewRay(
				core.NewVec3(0, 0, -1),
				core.NewVec3(0, 0, 1),
			),
			shouldHit: true,
		},
		{
			name: "Ray misses quad",
			ray: core.NewRay(
				core.NewVec3(2, 2, -1), // origin (outside quad)
				core.NewVec3(0, 0, 1),
			),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := mesh.Hit(tt.ray, core.NewInterval(0.001, 10.0))

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}

			if tt.shouldHit && math.Abs(hit.T-1.0) > 1e-9 {
				t.Errorf("Expected t=1, got t=%f", hit.T)
			}
		})
	}
}

func TestTriMesh_Hit_Closest(t *testing.T) {
	mesh := pyramidMesh()

	if mesh.TriangleCount() != 6 {
		t.Errorf("Expected 6 triangles in pyramid, got %d", mesh.TriangleCount())
	}

	// From below the ray crosses the base first, then a side face
	ray := core.NewRay(core.NewVec3(0.3, -1, 0.6), core.NewVec3(0, 1, 0))
	hit, isHit := mesh.Hit(ray, defaultInterval)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected base hit at t=1, got t=%f", hit.T)
	}
	assertVec(t, "point", core.NewVec3(0.3, 0, 0.6), hit.Point)

	// Excluding the base finds the side face instead
	hit, isHit = mesh.Hit(ray, core.NewInterval(1.5, 100))
	if !isHit {
		t.Fatal("Expected side hit, but got miss")
	}
	if hit.T <= 1.5 {
		t.Errorf("Expected side hit beyond t=1.5, got t=%f", hit.T)
	}

	// Ray misses pyramid completely
	if _, isHit := mesh.Hit(core.NewRay(core.NewVec3(2, 0.5, 0.5), core.NewVec3(1, 0, 0)), defaultInterval); isHit {
		t.Error("Expected miss")
	}
}

func TestTriMesh_Empty(t *testing.T) {
	mesh := NewTriMesh(nil, nil)

	if err := mesh.Validate(); err != nil {
		t.Errorf("Expected empty mesh to be valid, got %v", err)
	}
	if !mesh.BoundingBox().IsEmpty() {
		t.Errorf("Expected empty bounding box, got %v", mesh.BoundingBox())
	}
	if _, isHit := mesh.Hit(core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)), defaultInterval); isHit {
		t.Error("Expected empty mesh to never hit")
	}
}
