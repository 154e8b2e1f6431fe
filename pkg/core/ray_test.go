package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// planeZ is a minimal Hitable: the z=0 plane with outward normal +Z
type planeZ struct{}

func (planeZ) Hit(ray Ray, interval Interval) (*HitRecord, bool) {
	if ray.Direction.Z == 0 {
		return nil, false
	}
	tHit := -ray.Origin.Z / ray.Direction.Z
	if !interval.Contains(tHit) {
		return nil, false
	}
	hit := &HitRecord{T: tHit, Point: ray.At(tHit)}
	hit.SetFaceNormal(ray, NewVec3(0, 0, 1))
	return hit, true
}

func (planeZ) BoundingBox() AABB {
	return InfiniteAABB()
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	if diff := cmp.Diff(NewVec3(1, 2, -1), ray.At(2)); diff != "" {
		t.Errorf("At mismatch (-want +got):\n%s", diff)
	}
}

func TestRay_Hit_NoTransform(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))

	hit, isHit := ray.Hit(planeZ{}, NewInterval(0, 100), nil)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-5) > 1e-9 || !hit.FrontFace {
		t.Errorf("Expected front hit at t=5, got t=%f front=%t", hit.T, hit.FrontFace)
	}
}

func TestRay_Hit_WithTransform(t *testing.T) {
	// Rotating the z=0 plane by 90 degrees about Y turns it into the x=0 plane
	// (normal +Z becomes +X), then translating by 3 along X moves it to x=3.
	xf := NewTransform(math.Pi/2, NewVec3(3, 0, 0))
	ray := NewRay(NewVec3(10, 1, 2), NewVec3(-1, 0, 0))

	hit, isHit := ray.Hit(planeZ{}, NewInterval(0, 100), xf)
	if !isHit {
		t.Fatal("Expected hit")
	}

	if math.Abs(hit.T-7) > 1e-9 {
		t.Errorf("Expected t=7, got t=%f", hit.T)
	}
	if diff := cmp.Diff(NewVec3(3, 1, 2), hit.Point, approx); diff != "" {
		t.Errorf("Point mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewVec3(1, 0, 0), hit.Normal, approx); diff != "" {
		t.Errorf("Normal mismatch (-want +got):\n%s", diff)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit")
	}
	if diff := cmp.Diff(ray.At(hit.T), hit.Point, approx); diff != "" {
		t.Errorf("ray.At(T) does not match point (-want +got):\n%s", diff)
	}
}

func TestInterval_HalfOpen(t *testing.T) {
	interval := NewInterval(1, 2)
	if !interval.Contains(1) {
		t.Error("Expected Min to be included")
	}
	if interval.Contains(2) {
		t.Error("Expected Max to be excluded")
	}
	if !NewInterval(3, 3).IsEmpty() {
		t.Error("Expected [3,3) to be empty")
	}
	if got := interval.WithMax(1.5); got.Min != 1 || got.Max != 1.5 {
		t.Errorf("Unexpected WithMax result %v", got)
	}
}
