package geometry

import (
	"math"

	"github.com/df07/go-raycore/pkg/core"
)

// Circle represents a flat circular disc in 3D space
type Circle struct {
	Center core.Vec3 // Center of the circle
	Radius float64   // Radius of the circle
	Normal core.Vec3 // Unit normal (pointing "up" from the circle)
	plane  Plane     // Supporting plane
	right  core.Vec3 // In-plane basis vector used for UV
	up     core.Vec3 // In-plane basis vector perpendicular to right
}

// NewCircle creates a new circle
func NewCircle(center core.Vec3, radius float64, normal core.Vec3) *Circle {
	normalNormalized := normal.Normalize()
	right, up := perpendicularBasis(normalNormalized)

	return &Circle{
		Center: center,
		Radius: radius,
		Normal: normalNormalized,
		plane:  Plane{Point: center, Normal: normalNormalized},
		right:  right,
		up:     up,
	}
}

// perpendicularBasis returns two unit vectors spanning the plane perpendicular to n
func perpendicularBasis(n core.Vec3) (core.Vec3, core.Vec3) {
	// Pick any vector not parallel to n to seed the basis
	var seed core.Vec3
	if math.Abs(n.X) > 0.1 {
		seed = core.NewVec3(0, 1, 0)
	} else {
		seed = core.NewVec3(1, 0, 0)
	}
	right := seed.Cross(n).Normalize()
	up := n.Cross(right).Normalize()
	return right, up
}

// Hit tests if a ray intersects with the circle
func (c *Circle) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	hit, isHit := c.plane.Hit(ray, interval)
	if !isHit {
		return nil, false
	}

	centerToHit := hit.Point.Sub(c.Center)
	if centerToHit.Norm2() > c.Radius*c.Radius {
		return nil, false
	}

	// Map the disc onto [0,1]² through its in-plane basis
	hit.U = 0.5 + 0.5*centerToHit.Dot(c.right)/c.Radius
	hit.V = 0.5 + 0.5*centerToHit.Dot(c.up)/c.Radius

	return hit, true
}

// BoundingBox returns the tight axis-aligned box of the disc. Along each axis
// the disc extends radius*sqrt(1 - n²) where n is that normal component.
func (c *Circle) BoundingBox() core.AABB {
	extent := core.NewVec3(
		c.Radius*math.Sqrt(math.Max(0, 1-c.Normal.X*c.Normal.X)),
		c.Radius*math.Sqrt(math.Max(0, 1-c.Normal.Y*c.Normal.Y)),
		c.Radius*math.Sqrt(math.Max(0, 1-c.Normal.Z*c.Normal.Z)),
	)
	return core.NewAABB(c.Center.Sub(extent), c.Center.Add(extent))
}
