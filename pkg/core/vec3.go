package core

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vec3 represents a 3D vector. It is the r3 vector type, so the usual
// Add/Sub/Mul/Dot/Cross/Norm/Normalize operations come from golang/geo.
type Vec3 = r3.Vector

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns a vector with all three components set to s
func Splat(s float64) Vec3 {
	return Vec3{X: s, Y: s, Z: s}
}

// MinVec3 returns the componentwise minimum of two vectors
func MinVec3(a, b Vec3) Vec3 {
	return Vec3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxVec3 returns the componentwise maximum of two vectors
func MaxVec3(a, b Vec3) Vec3 {
	return Vec3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// MulVec returns the componentwise product of two vectors
func MulVec(a, b Vec3) Vec3 {
	return Vec3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// Reciprocal returns 1/v per component. Zero components become +Inf or -Inf
// following IEEE division, which the slab tests rely on.
func Reciprocal(v Vec3) Vec3 {
	return Vec3{X: 1.0 / v.X, Y: 1.0 / v.Y, Z: 1.0 / v.Z}
}

// Component returns the component of v along axis (0=X, 1=Y, 2=Z)
func Component(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
