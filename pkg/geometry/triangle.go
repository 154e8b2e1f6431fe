package geometry

import "github.com/df07/go-raycore/pkg/core"

// triangleEpsilon is the |det| below which a ray counts as parallel to a triangle
const triangleEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	A, B, C core.Vec3 // The three vertices
	normal  core.Vec3 // Cached unit normal, (B-A) × (C-A)
	bbox    core.AABB // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices.
// Degenerate (zero-area) triangles produce a zero normal and never report hits
// from rays outside their plane.
func NewTriangle(a, b, c core.Vec3) *Triangle {
	return &Triangle{
		A:      a,
		B:      b,
		C:      c,
		normal: b.Sub(a).Cross(c.Sub(a)).Normalize(),
		bbox:   core.NewAABBFromPoints(a, b, c),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	edge1 := t.B.Sub(t.A)
	edge2 := t.C.Sub(t.A)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if det > -triangleEpsilon && det < triangleEpsilon {
		return nil, false
	}

	f := 1.0 / det
	s := ray.Origin.Sub(t.A)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tHit := f * edge2.Dot(q)
	if !interval.Contains(tHit) {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:     tHit,
		Point: ray.At(tHit),
		U:     u,
		V:     v,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's unit normal vector
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Centroid returns the average of the three vertices
func (t *Triangle) Centroid() core.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}
