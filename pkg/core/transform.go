package core

import "github.com/go-gl/mathgl/mgl64"

// Transform places an object in world space by a rotation about the +Y axis
// followed by a translation. Only rigid motions are supported, so hit
// distances and normals survive the round trip without rescaling.
type Transform struct {
	Rotation    float64 // Radians about +Y
	Translation Vec3
}

// NewTransform creates a new transform
func NewTransform(rotation float64, translation Vec3) *Transform {
	return &Transform{Rotation: rotation, Translation: translation}
}

func rotateY(angle float64, v Vec3) Vec3 {
	r := mgl64.Rotate3DY(angle).Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return NewVec3(r[0], r[1], r[2])
}

// PointToWorld maps a local-space point into world space
func (xf *Transform) PointToWorld(p Vec3) Vec3 {
	return rotateY(xf.Rotation, p).Add(xf.Translation)
}

// PointToLocal maps a world-space point into local space
func (xf *Transform) PointToLocal(p Vec3) Vec3 {
	return rotateY(-xf.Rotation, p.Sub(xf.Translation))
}

// VectorToWorld rotates a direction or normal into world space
func (xf *Transform) VectorToWorld(v Vec3) Vec3 {
	return rotateY(xf.Rotation, v)
}

// VectorToLocal rotates a direction or normal into local space
func (xf *Transform) VectorToLocal(v Vec3) Vec3 {
	return rotateY(-xf.Rotation, v)
}

// RayToLocal expresses a world-space ray in local space
func (xf *Transform) RayToLocal(ray Ray) Ray {
	return NewRay(xf.PointToLocal(ray.Origin), xf.VectorToLocal(ray.Direction))
}

// BoxToWorld returns the world-space box enclosing a local-space box
func (xf *Transform) BoxToWorld(box AABB) AABB {
	if !box.IsFinite() {
		// Rotating an infinite or empty box would mix Inf and -Inf into NaN
		if box.IsEmpty() {
			return box
		}
		return InfiniteAABB()
	}

	result := EmptyAABB()
	for _, corner := range box.Corners() {
		result.ExpandByPoint(xf.PointToWorld(corner))
	}
	return result
}
