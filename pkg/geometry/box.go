package geometry

import "github.com/df07/go-raycore/pkg/core"

// boxFaceEpsilon is the distance from a slab plane within which a hit point
// is considered to lie on that face
const boxFaceEpsilon = 1e-4

// AxisAlignedBox represents a solid box whose faces are perpendicular to the axes
type AxisAlignedBox struct {
	Min core.Vec3 // Minimum corner
	Max core.Vec3 // Maximum corner
}

// NewAxisAlignedBox creates a box from two opposite corners, in any order
func NewAxisAlignedBox(a, b core.Vec3) *AxisAlignedBox {
	return &AxisAlignedBox{
		Min: core.MinVec3(a, b),
		Max: core.MaxVec3(a, b),
	}
}

// Hit tests if a ray intersects with the box surface.
// The entry distance is preferred; a ray starting inside the box hits the exit face.
func (b *AxisAlignedBox) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	tNear, tFar, ok := b.BoundingBox().Slabs(ray)
	if !ok {
		return nil, false
	}

	t := tNear
	if !interval.Contains(t) {
		t = tFar
		if !interval.Contains(t) {
			return nil, false
		}
	}

	point := ray.At(t)
	normal, u, v := b.faceAt(point)

	hitRecord := &core.HitRecord{
		T:     t,
		Point: point,
		U:     u,
		V:     v,
	}
	hitRecord.SetFaceNormal(ray, normal)

	return hitRecord, true
}

// faceAt returns the outward normal of the face containing point, along with
// the point's normalized position across that face. Faces are checked X, then
// Y, then Z, so edges and corners resolve to the first matching axis.
func (b *AxisAlignedBox) faceAt(point core.Vec3) (core.Vec3, float64, float64) {
	size := b.Max.Sub(b.Min)
	rel := point.Sub(b.Min)

	switch {
	case nearly(point.X, b.Min.X):
		return core.NewVec3(-1, 0, 0), ratio(rel.Z, size.Z), ratio(rel.Y, size.Y)
	case nearly(point.X, b.Max.X):
		return core.NewVec3(1, 0, 0), ratio(rel.Z, size.Z), ratio(rel.Y, size.Y)
	case nearly(point.Y, b.Min.Y):
		return core.NewVec3(0, -1, 0), ratio(rel.X, size.X), ratio(rel.Z, size.Z)
	case nearly(point.Y, b.Max.Y):
		return core.NewVec3(0, 1, 0), ratio(rel.X, size.X), ratio(rel.Z, size.Z)
	case nearly(point.Z, b.Min.Z):
		return core.NewVec3(0, 0, -1), ratio(rel.X, size.X), ratio(rel.Y, size.Y)
	default:
		return core.NewVec3(0, 0, 1), ratio(rel.X, size.X), ratio(rel.Y, size.Y)
	}
}

func nearly(a, b float64) bool {
	d := a - b
	return d > -boxFaceEpsilon && d < boxFaceEpsilon
}

func ratio(offset, extent float64) float64 {
	if extent == 0 {
		return 0
	}
	return offset / extent
}

// BoundingBox returns the box itself
func (b *AxisAlignedBox) BoundingBox() core.AABB {
	return core.NewAABB(b.Min, b.Max)
}
