package core

// Ray represents a ray with an origin and direction.
// Direction does not need to be normalized; t values are measured in
// multiples of its length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit intersects the ray with target. When xf is non-nil the target is treated
// as living in the local frame described by xf: the ray is moved into that
// frame for the test and the resulting point and normal are moved back out.
func (r Ray) Hit(target Hitable, interval Interval, xf *Transform) (*HitRecord, bool) {
	if xf == nil {
		return target.Hit(r, interval)
	}

	hit, isHit := target.Hit(xf.RayToLocal(r), interval)
	if !isHit {
		return nil, false
	}

	// Rotation preserves lengths and angles, so T, FrontFace and UV carry over
	hit.Point = xf.PointToWorld(hit.Point)
	hit.Normal = xf.VectorToWorld(hit.Normal)
	return hit, true
}
