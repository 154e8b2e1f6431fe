package scene

import (
	"math"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
)

// NewSphereGridScene creates a scene with a gridSize x gridSize grid of spheres
// on a ground plane. The grid always covers the same area; larger grids use
// smaller spheres.
func NewSphereGridScene(gridSize int) *Scene {
	if gridSize < 1 {
		gridSize = 1
	}

	s := &Scene{
		Name:   "spheregrid",
		Shapes: make([]geometry.Shape, 0, gridSize*gridSize+1),
	}

	groundPlane := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	s.Shapes = append(s.Shapes, groundPlane)

	// Target area: roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea
	if gridSize > 1 {
		spacing = targetArea / float64(gridSize-1)
	}

	sphereRadius := spacing * 0.35
	sphereRadius = math.Max(0.02, math.Min(0.35, sphereRadius))

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			// Centered around (4.5, 4.5) in XZ
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			center := core.NewVec3(x, sphereRadius, z)
			s.Shapes = append(s.Shapes, geometry.NewSphere(center, sphereRadius))
		}
	}

	return s
}
