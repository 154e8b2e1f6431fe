package scene

import (
	"math"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
)

// NewDefaultScene creates a default scene with spheres, a box and an
// infinite ground plane
func NewDefaultScene() *Scene {
	s := &Scene{
		Name:   "default",
		Shapes: make([]geometry.Shape, 0),
	}

	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5)
	sphereRight := geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5)
	smallSphere := geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25)

	// Nested spheres share a center
	hollowOuter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25)
	hollowInner := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20)

	ground := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	// Unit box turned 30° and set down behind the spheres
	box := geometry.NewAxisAlignedBox(core.NewVec3(-0.25, 0, -0.25), core.NewVec3(0.25, 0.5, 0.25))
	turnedBox := geometry.NewInstance(box, core.NewTransform(math.Pi/6, core.NewVec3(0, 0, -2.2)))

	s.Shapes = append(s.Shapes,
		ground,
		sphereCenter,
		sphereLeft,
		sphereRight,
		smallSphere,
		hollowOuter,
		hollowInner,
		turnedBox,
	)

	return s
}
