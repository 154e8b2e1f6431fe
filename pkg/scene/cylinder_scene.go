package scene

import (
	"fmt"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
)

// NewCylinderScene creates a scene with open and capped cylinders at several
// orientations and a capped cone, standing on a finite ground quad
func NewCylinderScene() *Scene {
	s := &Scene{
		Name:   "cylinders",
		Shapes: make([]geometry.Shape, 0),
	}

	groundQuad := NewGroundQuad(core.NewVec3(0, 0, 0), 100.0)

	// Tilted tube pointing toward the viewer, open at both ends
	tube := geometry.NewCylinder(
		core.NewVec3(-0.3, 1.0, -1.5),
		core.NewVec3(0, 1.2, 2.0),
		0.35,
	)

	s.Shapes = append(s.Shapes, groundQuad, tube)
	s.Shapes = append(s.Shapes, cappedCylinder(core.NewVec3(1.8, 0, 0), core.NewVec3(1.8, 2, 0), 0.5)...)
	s.Shapes = append(s.Shapes, cappedCylinder(core.NewVec3(-2.5, 0.3, 0), core.NewVec3(-1.5, 0.3, 0), 0.3)...)
	s.Shapes = append(s.Shapes, cappedCylinder(core.NewVec3(0.5, 0, 1), core.NewVec3(0.5, 0.6, 1), 0.2)...)

	// Pointed cone only needs a base cap
	cone, err := geometry.NewCone(core.NewVec3(-0.8, 0, 1.2), 0.4, core.NewVec3(-0.8, 1.0, 1.2), 0)
	if err != nil {
		panic(fmt.Sprintf("cylinder scene cone: %v", err))
	}
	s.Shapes = append(s.Shapes, cone, geometry.NewCircle(cone.BaseCenter, cone.BaseRadius, core.NewVec3(0, -1, 0)))

	return s
}

// cappedCylinder returns a cylinder closed by a disc at each end
func cappedCylinder(base, top core.Vec3, radius float64) []geometry.Shape {
	axis := top.Sub(base)
	return []geometry.Shape{
		geometry.NewCylinder(base, top, radius),
		geometry.NewCircle(base, radius, axis.Mul(-1)),
		geometry.NewCircle(top, radius, axis),
	}
}
