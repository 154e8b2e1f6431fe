package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycore/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, defaultInterval)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      2.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, defaultInterval)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			assertVec(t, "normal", tt.expectedNormal, hit.Normal)
		})
	}
}

func TestSphere_Hit_Example(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, core.NewInterval(0, 100))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
	assertVec(t, "point", core.NewVec3(0, 0, 1), hit.Point)
	assertVec(t, "normal", core.NewVec3(0, 0, 1), hit.Normal)
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, defaultInterval)
	if isHit {
		t.Errorf("Expected tangent ray to miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Both roots (1 and 3) beyond Max
	hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 0.5))
	if isHit {
		t.Errorf("Expected miss due to interval max, but got hit at t=%f", hit.T)
	}

	// Both roots before Min
	hit, isHit = sphere.Hit(ray, core.NewInterval(3.5, 1000.0))
	if isHit {
		t.Errorf("Expected miss due to interval min, but got hit at t=%f", hit.T)
	}

	// Max is exclusive
	hit, isHit = sphere.Hit(ray, core.NewInterval(0.001, 1.0))
	if isHit {
		t.Errorf("Expected miss at exclusive max, but got hit at t=%f", hit.T)
	}

	// Min is inclusive
	hit, isHit = sphere.Hit(ray, core.NewInterval(1.0, 2.0))
	if !isHit || math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected hit at inclusive min t=1, got %v %v", hit, isHit)
	}
}

func TestSphere_Hit_FarRootWhenNearExcluded(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, core.NewInterval(1.5, 1000.0))
	if !isHit {
		t.Fatal("Expected hit on far side, but got miss")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected t=3, got t=%f", hit.T)
	}
	if hit.FrontFace {
		t.Error("Expected back face hit on the far side")
	}
}

func TestSphere_UV(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	// Straight down onto the north pole
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	hit, isHit := sphere.Hit(ray, defaultInterval)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.V-1.0) > 1e-9 {
		t.Errorf("Expected v=1 at north pole, got %f", hit.V)
	}
	if hit.U < 0 || hit.U > 1 {
		t.Errorf("Expected u in [0,1], got %f", hit.U)
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5)
	bbox := sphere.BoundingBox()

	assertVec(t, "min", core.NewVec3(0.5, 1.5, 2.5), bbox.Min)
	assertVec(t, "max", core.NewVec3(1.5, 2.5, 3.5), bbox.Max)
}
