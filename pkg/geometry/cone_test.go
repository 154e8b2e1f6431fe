package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-raycore/pkg/core"
)

func mustCone(t *testing.T, baseCenter core.Vec3, baseRadius float64, topCenter core.Vec3, topRadius float64) *Cone {
	t.Helper()
	cone, err := NewCone(baseCenter, baseRadius, topCenter, topRadius)
	if err != nil {
		t.Fatalf("NewCone failed: %v", err)
	}
	return cone
}

func TestNewCone_Errors(t *testing.T) {
	tests := []struct {
		name       string
		baseRadius float64
		topRadius  float64
		topCenter  core.Vec3
	}{
		{"zero base radius", 0, 0, core.NewVec3(0, 1, 0)},
		{"negative top radius", 1, -0.5, core.NewVec3(0, 1, 0)},
		{"top as wide as base", 1, 1, core.NewVec3(0, 1, 0)},
		{"zero height", 1, 0, core.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cone, err := NewCone(core.NewVec3(0, 0, 0), tt.baseRadius, tt.topCenter, tt.topRadius)
			if err == nil {
				t.Error("Expected error, got nil")
			}
			if cone != nil {
				t.Error("Expected nil cone on error")
			}
		})
	}
}

func TestCone_BoundingBox(t *testing.T) {
	tests := []struct {
		name    string
		cone    *Cone
		wantMin core.Vec3
		wantMax core.Vec3
	}{
		{
			name:    "pointed along Y",
			cone:    mustCone(t, core.NewVec3(0, 0, 0), 1, core.NewVec3(0, 2, 0), 0),
			wantMin: core.NewVec3(-1, 0, -1),
			wantMax: core.NewVec3(1, 2, 1),
		},
		{
			name:    "frustum along -X",
			cone:    mustCone(t, core.NewVec3(3, 1, 1), 2, core.NewVec3(0, 1, 1), 0.5),
			wantMin: core.NewVec3(0, -1, -1),
			wantMax: core.NewVec3(3, 3, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bbox := tt.cone.BoundingBox()
			assertVec(t, "min", tt.wantMin, bbox.Min)
			assertVec(t, "max", tt.wantMax, bbox.Max)
		})
	}
}

func TestCone_Hit(t *testing.T) {
	pointed := mustCone(t, core.NewVec3(0, 0, 0), 1, core.NewVec3(0, 2, 0), 0)
	frustum := mustCone(t, core.NewVec3(0, 0, 0), 1, core.NewVec3(0, 2, 0), 0.5)

	tests := []struct {
		name       string
		cone       *Cone
		ray        core.Ray
		shouldHit  bool
		expectedT  float64
		frontFace  bool
		wantNormal core.Vec3
	}{
		{
			name:       "side of pointed cone at half height",
			cone:       pointed,
			ray:        core.NewRay(core.NewVec3(0, 1, 5), core.NewVec3(0, 0, -1)),
			shouldHit:  true,
			expectedT:  4.5,
			frontFace:  true,
			wantNormal: core.NewVec3(0, 0.5, 1).Normalize(),
		},
		{
			name:       "side of frustum at half height",
			cone:       frustum,
			ray:        core.NewRay(core.NewVec3(0, 1, 5), core.NewVec3(0, 0, -1)),
			shouldHit:  true,
			expectedT:  4.25,
			frontFace:  true,
			wantNormal: core.NewVec3(0, 0.25, 1).Normalize(),
		},
		{
			name:       "inside wall from the axis",
			cone:       pointed,
			ray:        core.NewRay(core.NewVec3(0, 0.5, 0), core.NewVec3(1, 0, 0)),
			shouldHit:  true,
			expectedT:  0.75,
			frontFace:  false,
			wantNormal: core.NewVec3(-1, -0.5, 0).Normalize(),
		},
		{
			name:      "above the frustum top",
			cone:      frustum,
			ray:       core.NewRay(core.NewVec3(0, 3, 5), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "mirrored nappe beyond the apex",
			cone:      pointed,
			ray:       core.NewRay(core.NewVec3(0, 3, 5), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "below the base",
			cone:      pointed,
			ray:       core.NewRay(core.NewVec3(0, -0.5, 5), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "passes beside the cone",
			cone:      pointed,
			ray:       core.NewRay(core.NewVec3(2, 0.5, 5), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.cone.Hit(tt.ray, defaultInterval)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.frontFace {
				t.Errorf("Expected frontFace=%t, got %t", tt.frontFace, hit.FrontFace)
			}
			assertVec(t, "normal", tt.wantNormal, hit.Normal)
		})
	}
}

func TestCone_Hit_OnSurface(t *testing.T) {
	cone := mustCone(t, core.NewVec3(1, -1, 0), 1.5, core.NewVec3(-1, 2, 1), 0.4)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(5)))
	bbox := cone.BoundingBox()

	hits := 0
	for i := 0; i < 1000; i++ {
		ray := core.SampleRayThrough(bbox, sampler)
		hit, isHit := cone.Hit(ray, defaultInterval)
		if !isHit {
			continue
		}
		hits++

		h := hit.Point.Sub(cone.BaseCenter).Dot(cone.axis)
		if h < -1e-9 || h > cone.height+1e-9 {
			t.Fatalf("ray %d: hit height %f outside [0, %f]", i, h, cone.height)
		}
		radius := cone.BaseRadius - h*cone.tanAngle
		distance := hit.Point.Sub(cone.BaseCenter.Add(cone.axis.Mul(h))).Norm()
		if math.Abs(distance-radius) > 1e-6 {
			t.Fatalf("ray %d: point %f from axis, want %f", i, distance, radius)
		}
		if !bbox.Expand(1e-9).ContainsPoint(hit.Point) {
			t.Fatalf("ray %d: hit point %v outside bounding box", i, hit.Point)
		}
		if hit.U < 0 || hit.U > 1 || hit.V < 0 || hit.V > 1 {
			t.Errorf("ray %d: UV (%f, %f) out of range", i, hit.U, hit.V)
		}
	}

	if hits == 0 {
		t.Error("Expected some rays to hit the cone")
	}
}

// tiltedFrustum is a valid frustum off every axis
func tiltedFrustum() *Cone {
	cone, err := NewCone(core.NewVec3(0, 0, 0), 1, core.NewVec3(1, 2, -1), 0.3)
	if err != nil {
		panic(err)
	}
	return cone
}
