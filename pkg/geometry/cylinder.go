package geometry

import (
	"math"

	"github.com/df07/go-raycore/pkg/core"
)

// Cylinder represents a finite cylinder shape (open-ended, no caps)
type Cylinder struct {
	BaseCenter core.Vec3
	TopCenter  core.Vec3
	Radius     float64

	// Cached derived values
	axis   core.Vec3 // Unit vector from base to top
	height float64   // Distance between base and top
	right  core.Vec3 // Basis perpendicular to axis, used for U
	up     core.Vec3
}

// NewCylinder creates a new cylinder
func NewCylinder(baseCenter, topCenter core.Vec3, radius float64) *Cylinder {
	axisVector := topCenter.Sub(baseCenter)
	axis := axisVector.Normalize()
	right, up := perpendicularBasis(axis)

	return &Cylinder{
		BaseCenter: baseCenter,
		TopCenter:  topCenter,
		Radius:     radius,
		axis:       axis,
		height:     axisVector.Norm(),
		right:      right,
		up:         up,
	}
}

// BoundingBox returns the axis-aligned bounding box for this cylinder.
// Each end cap circle extends radius*sqrt(1 - a²) along an axis with axis component a.
func (c *Cylinder) BoundingBox() core.AABB {
	extent := core.NewVec3(
		c.Radius*math.Sqrt(math.Max(0, 1-c.axis.X*c.axis.X)),
		c.Radius*math.Sqrt(math.Max(0, 1-c.axis.Y*c.axis.Y)),
		c.Radius*math.Sqrt(math.Max(0, 1-c.axis.Z*c.axis.Z)),
	)
	return core.NewAABBFromPoints(
		c.BaseCenter.Sub(extent), c.BaseCenter.Add(extent),
		c.TopCenter.Sub(extent), c.TopCenter.Add(extent),
	)
}

// Hit tests if a ray intersects with the cylinder side
func (c *Cylinder) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	// Vector from base center to ray origin
	delta := ray.Origin.Sub(c.BaseCenter)

	dv := ray.Direction.Dot(c.axis)
	deltaV := delta.Dot(c.axis)

	// Quadratic in t for the distance from the axis, with components along the axis removed:
	// a = |D|² - (D·V)², halfB = Δ·D - (Δ·V)(D·V), cc = |Δ|² - (Δ·V)² - r²
	a := ray.Direction.Norm2() - dv*dv
	halfB := delta.Dot(ray.Direction) - deltaV*dv
	cc := delta.Norm2() - deltaV*deltaV - c.Radius*c.Radius

	// Ray is parallel to the axis and can only graze the side
	if math.Abs(a) < parallelEpsilon {
		return nil, false
	}

	discriminant := halfB*halfB - a*cc
	if discriminant <= 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Roots in increasing order; the nearer one may fall outside the height
	for _, t := range [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
		if !interval.Contains(t) {
			continue
		}

		point := ray.At(t)
		h := point.Sub(c.BaseCenter).Dot(c.axis)
		if h < 0 || h > c.height {
			continue
		}

		// Normal points radially outward from the axis point at the same height
		radial := point.Sub(c.BaseCenter.Add(c.axis.Mul(h)))
		outwardNormal := radial.Mul(1.0 / c.Radius)

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
