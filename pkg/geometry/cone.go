package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raycore/pkg/core"
)

// Cone represents a finite cone or frustum side (no caps).
// Caps can be added with a Circle at each end.
type Cone struct {
	BaseCenter core.Vec3
	BaseRadius float64
	TopCenter  core.Vec3
	TopRadius  float64 // 0 for pointed cone, >0 for frustum

	// Cached derived values
	axis     core.Vec3 // Unit vector from base to top
	height   float64   // Distance between base and top
	tanAngle float64   // (BaseRadius - TopRadius) / height
	apex     core.Vec3 // Apex of the infinite cone extended from the frustum
	right    core.Vec3 // Basis perpendicular to axis, used for U
	up       core.Vec3
}

// NewCone creates a new cone or frustum. The base must be wider than the top;
// use Cylinder for equal radii.
func NewCone(baseCenter core.Vec3, baseRadius float64, topCenter core.Vec3, topRadius float64) (*Cone, error) {
	if baseRadius <= 0 {
		return nil, fmt.Errorf("base radius must be positive, got %f", baseRadius)
	}
	if topRadius < 0 {
		return nil, fmt.Errorf("top radius must be non-negative, got %f", topRadius)
	}
	if baseRadius <= topRadius {
		return nil, fmt.Errorf("base radius must be greater than top radius (got base=%f, top=%f)", baseRadius, topRadius)
	}

	axisVector := topCenter.Sub(baseCenter)
	height := axisVector.Norm()
	if height <= 0 {
		return nil, fmt.Errorf("height must be positive (base and top centers cannot be the same)")
	}

	axis := axisVector.Mul(1 / height)
	right, up := perpendicularBasis(axis)

	// Beyond the top by topRadius / tan(angle); the top itself for a pointed cone
	apex := topCenter.Add(axis.Mul(topRadius * height / (baseRadius - topRadius)))

	return &Cone{
		BaseCenter: baseCenter,
		BaseRadius: baseRadius,
		TopCenter:  topCenter,
		TopRadius:  topRadius,
		axis:       axis,
		height:     height,
		tanAngle:   (baseRadius - topRadius) / height,
		apex:       apex,
		right:      right,
		up:         up,
	}, nil
}

// BoundingBox returns the box around the base and top circles
func (c *Cone) BoundingBox() core.AABB {
	// A circle of radius r around axis a extends r*sqrt(1 - a²) along each world axis
	spread := core.NewVec3(
		math.Sqrt(math.Max(0, 1-c.axis.X*c.axis.X)),
		math.Sqrt(math.Max(0, 1-c.axis.Y*c.axis.Y)),
		math.Sqrt(math.Max(0, 1-c.axis.Z*c.axis.Z)),
	)
	base := spread.Mul(c.BaseRadius)
	top := spread.Mul(c.TopRadius)
	return core.NewAABBFromPoints(
		c.BaseCenter.Sub(base), c.BaseCenter.Add(base),
		c.TopCenter.Sub(top), c.TopCenter.Add(top),
	)
}

// Hit tests if a ray intersects with the cone side
func (c *Cone) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	co := ray.Origin.Sub(c.apex)

	dv := ray.Direction.Dot(c.axis)
	cov := co.Dot(c.axis)
	k := 1 + c.tanAngle*c.tanAngle

	// Quadratic for |P - apex|² = (1 + tan²)((P - apex)·V)² with halfB
	a := ray.Direction.Norm2() - k*dv*dv
	halfB := ray.Direction.Dot(co) - k*dv*cov
	cc := co.Norm2() - k*cov*cov

	// Ray parallel to the surface
	if math.Abs(a) < parallelEpsilon {
		return nil, false
	}

	discriminant := halfB*halfB - a*cc
	if discriminant <= 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	t0, t1 := (-halfB-sqrtD)/a, (-halfB+sqrtD)/a
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	// Height bounds also reject the mirrored nappe, which lies beyond the apex
	for _, t := range [2]float64{t0, t1} {
		if !interval.Contains(t) {
			continue
		}

		point := ray.At(t)
		h := point.Sub(c.BaseCenter).Dot(c.axis)
		if h < 0 || h > c.height {
			continue
		}

		radial := point.Sub(c.BaseCenter.Add(c.axis.Mul(h)))
		outwardNormal := radial.Normalize().Add(c.axis.Mul(c.tanAngle)).Normalize()

		hitRecord := &core.HitRecord{
			T:     t,
			Point: point,
			U:     (math.Atan2(radial.Dot(c.up), radial.Dot(c.right)) + math.Pi) / (2 * math.Pi),
			V:     h / c.height,
		}
		hitRecord.SetFaceNormal(ray, outwardNormal)
		return hitRecord, true
	}

	return nil, false
}
