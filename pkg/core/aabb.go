package core

import "math"

// AABB represents an axis-aligned bounding box.
// The empty box has Min=+Inf and Max=-Inf on every axis, so expanding it by a
// point or unioning it with another box yields that point or box unchanged.
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// EmptyAABB returns the canonical empty box
func EmptyAABB() AABB {
	return AABB{
		Min: Splat(math.Inf(1)),
		Max: Splat(math.Inf(-1)),
	}
}

// InfiniteAABB returns a box covering all of space
func InfiniteAABB() AABB {
	return AABB{
		Min: Splat(math.Inf(-1)),
		Max: Splat(math.Inf(1)),
	}
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromCenterSize creates an AABB centered on center with the given full extent
func NewAABBFromCenterSize(center, size Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
// With no points it returns the empty box.
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box.ExpandByPoint(point)
	}
	return box
}

// ContainsPoint reports whether p lies inside the box, boundary included
func (aabb AABB) ContainsPoint(p Vec3) bool {
	return aabb.Min.X <= p.X && p.X <= aabb.Max.X &&
		aabb.Min.Y <= p.Y && p.Y <= aabb.Max.Y &&
		aabb.Min.Z <= p.Z && p.Z <= aabb.Max.Z
}

// ExpandByPoint grows the box in place so that it contains p
func (aabb *AABB) ExpandByPoint(p Vec3) {
	aabb.Min = MinVec3(aabb.Min, p)
	aabb.Max = MaxVec3(aabb.Max, p)
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: MinVec3(aabb.Min, other.Min),
		Max: MaxVec3(aabb.Max, other.Max),
	}
}

// Slabs runs the slab test and returns the entry and exit distances of the
// infinite line through the ray. Zero direction components divide to ±Inf;
// a ray lying exactly in a slab boundary plane produces 0*Inf = NaN for that
// axis, and NaN bounds never win the comparisons below, so such a slab does
// not constrain the span.
func (aabb AABB) Slabs(ray Ray) (tNear, tFar float64, ok bool) {
	if aabb.IsEmpty() {
		return 0, 0, false
	}

	invDirection := Reciprocal(ray.Direction)
	t0 := MulVec(aabb.Min.Sub(ray.Origin), invDirection)
	t1 := MulVec(aabb.Max.Sub(ray.Origin), invDirection)

	// Componentwise min/max sorts each slab pair regardless of direction sign
	near := MinVec3(t0, t1)
	far := MaxVec3(t0, t1)

	tNear, tFar = math.Inf(-1), math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		if n := Component(near, axis); n > tNear {
			tNear = n
		}
		if f := Component(far, axis); f < tFar {
			tFar = f
		}
	}

	return tNear, tFar, tNear <= tFar
}

// IntersectRay tests if the ray crosses the box anywhere inside interval.
// The slab span [tNear, tFar] only has to overlap the interval; neither end
// needs to lie in it. A ray starting inside the box therefore hits even when
// both walls are out of range, so a BVH never prunes a node that still holds
// a primitive reachable within the interval.
func (aabb AABB) IntersectRay(ray Ray, interval Interval) bool {
	_, ok := aabb.Entry(ray, interval)
	return ok
}

// Entry returns the smallest t in interval at which the ray is inside the box
func (aabb AABB) Entry(ray Ray, interval Interval) (float64, bool) {
	tNear, tFar, ok := aabb.Slabs(ray)
	if !ok || tNear >= interval.Max || tFar < interval.Min {
		return 0, false
	}
	return math.Max(tNear, interval.Min), true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Mul(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Sub(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0 // X axis
	}
	if size.Y > size.Z {
		return 1 // Y axis
	}
	return 2 // Z axis
}

// IsEmpty returns true if min > max on any axis
func (aabb AABB) IsEmpty() bool {
	return aabb.Min.X > aabb.Max.X ||
		aabb.Min.Y > aabb.Max.Y ||
		aabb.Min.Z > aabb.Max.Z
}

// IsFinite returns true if the box is non-empty and every bound is finite
func (aabb AABB) IsFinite() bool {
	if aabb.IsEmpty() {
		return false
	}
	for axis := 0; axis < 3; axis++ {
		if math.IsInf(Component(aabb.Min, axis), 0) || math.IsInf(Component(aabb.Max, axis), 0) {
			return false
		}
	}
	return true
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := Splat(amount)
	return AABB{
		Min: aabb.Min.Sub(expansion),
		Max: aabb.Max.Add(expansion),
	}
}

// Corners returns the eight corners of the box
func (aabb AABB) Corners() [8]Vec3 {
	lo, hi := aabb.Min, aabb.Max
	return [8]Vec3{
		NewVec3(lo.X, lo.Y, lo.Z),
		NewVec3(lo.X, lo.Y, hi.Z),
		NewVec3(lo.X, hi.Y, lo.Z),
		NewVec3(lo.X, hi.Y, hi.Z),
		NewVec3(hi.X, lo.Y, lo.Z),
		NewVec3(hi.X, lo.Y, hi.Z),
		NewVec3(hi.X, hi.Y, lo.Z),
		NewVec3(hi.X, hi.Y, hi.Z),
	}
}
