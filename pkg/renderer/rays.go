package renderer

import (
	"math/rand"

	"github.com/df07/go-raycore/pkg/core"
)

// RandomRays generates count rays aimed through bounds from a deterministic
// seed. bounds must be finite and non-empty.
func RandomRays(bounds core.AABB, count int, seed int64) []core.Ray {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
	rays := make([]core.Ray, count)
	for i := range rays {
		rays[i] = core.SampleRayThrough(bounds, sampler)
	}
	return rays
}
