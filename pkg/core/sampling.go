package core

import (
	"math"
	"math/rand"
)

// Sampler provides random numbers for generating query rays
// Can be swapped out for deterministic testing
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SamplePointInBox returns a uniformly distributed point inside a finite box
func SamplePointInBox(box AABB, sample Vec3) Vec3 {
	return box.Min.Add(MulVec(box.Size(), sample))
}

// SampleRayThrough generates a ray that starts on a sphere enclosing box and
// points at a random point inside it. Most such rays cross the box, which makes
// them useful for exercising acceleration structures. box must be finite and
// non-empty.
func SampleRayThrough(box AABB, sampler Sampler) Ray {
	center := box.Center()
	radius := math.Max(box.Size().Norm(), 1e-3)

	origin := center.Add(SampleOnUnitSphere(sampler.Get2D()).Mul(radius))
	target := SamplePointInBox(box, sampler.Get3D())
	return NewRay(origin, target.Sub(origin))
}
