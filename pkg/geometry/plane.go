package geometry

import (
	"math"

	"github.com/df07/go-raycore/pkg/core"
)

// parallelEpsilon is the |n·d| below which a ray counts as parallel to a plane
const parallelEpsilon = 1e-8

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal vector
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never meet the plane; this also keeps the division below finite
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	t := p.Point.Sub(ray.Origin).Dot(p.Normal) / denominator
	if !interval.Contains(t) {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:     t,
		Point: ray.At(t),
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// BoundingBox returns an infinite box. A plane has no finite bound, so BVH
// construction keeps it outside the tree and tests it on every query.
func (p *Plane) BoundingBox() core.AABB {
	return core.InfiniteAABB()
}
