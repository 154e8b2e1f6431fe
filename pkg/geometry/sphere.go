package geometry

import (
	"math"

	"github.com/df07/go-raycore/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Sub(s.Center)

	// Quadratic equation coefficients: at² + 2(halfB)t + c = 0
	a := ray.Direction.Norm2()
	halfB := oc.Dot(ray.Direction)
	c := oc.Norm2() - s.Radius*s.Radius

	// A grazing ray (discriminant exactly zero) counts as a miss
	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !interval.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !interval.Contains(root) {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:     root,
		Point: ray.At(root),
	}

	outwardNormal := hitRecord.Point.Sub(s.Center).Mul(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.U, hitRecord.V = sphereUV(outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to (u, v) in [0,1]²,
// u around the Y axis starting at -X and v from the south pole
func sphereUV(p core.Vec3) (float64, float64) {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.Splat(math.Abs(s.Radius))
	return core.NewAABB(
		s.Center.Sub(radius),
		s.Center.Add(radius),
	)
}
