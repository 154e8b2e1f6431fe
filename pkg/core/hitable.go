package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3    // Point of intersection
	Normal    Vec3    // Unit surface normal, facing the incoming ray
	T         float64 // Parameter t along the ray
	FrontFace bool    // Whether the ray hit the outward-facing side
	U, V      float64 // Surface coordinates of the hit
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Mul(-1)
	}
}

// OutwardNormal returns the geometric normal of the surface, undoing the flip
// SetFaceNormal applies to back-face hits
func (h *HitRecord) OutwardNormal() Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Mul(-1)
}

// Hitable is implemented by everything a ray can be intersected with.
//
// Hit must only report intersections with T inside interval and must not
// modify the receiver, so a built scene can be queried from many goroutines
// at once without locking.
type Hitable interface {
	Hit(ray Ray, interval Interval) (*HitRecord, bool)
	BoundingBox() AABB
}
