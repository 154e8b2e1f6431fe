package geometry

import (
	"math"

	"github.com/df07/go-raycore/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors.
// N, D and W are derived from Q, U and V by NewQuad; build quads through the
// constructor and do not change the fields afterwards.
type Quad struct {
	Q core.Vec3 // One corner of the quad
	U core.Vec3 // First edge vector
	V core.Vec3 // Second edge vector
	N core.Vec3 // Unit normal (U × V normalized)
	D float64   // Plane equation constant: N·p = D
	W core.Vec3 // (U × V) / |U × V|², used for planar coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(q, u, v core.Vec3) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Q: q,
		U: u,
		V: v,
		N: normal,
		D: normal.Dot(q),
		W: cross.Mul(1.0 / cross.Norm2()),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.N)
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.N)) / denominator
	if !interval.Contains(t) {
		return nil, false
	}

	hitPoint := ray.At(t)

	// Express the hit point in the (U, V) frame of the parallelogram
	planar := hitPoint.Sub(q.Q)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:     t,
		Point: hitPoint,
		U:     alpha,
		V:     beta,
	}
	hitRecord.SetFaceNormal(ray, q.N)

	return hitRecord, true
}

// BoundingBox returns the box around the four corners
func (q *Quad) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(
		q.Q,
		q.Q.Add(q.U),
		q.Q.Add(q.V),
		q.Q.Add(q.U).Add(q.V),
	)
}
