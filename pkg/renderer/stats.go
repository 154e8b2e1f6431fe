package renderer

import (
	"math"
	"time"

	"github.com/df07/go-raycore/pkg/core"
)

// CastStats contains statistics about one batch cast
type CastStats struct {
	Rays     int           // Rays in the batch
	Hits     int           // Rays that hit something
	Chunks   int           // Work units scheduled
	Workers  int           // Parallel workers available
	Duration time.Duration // Wall time for the batch
}

// HitRate returns the fraction of rays that hit
func (s CastStats) HitRate() float64 {
	if s.Rays == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Rays)
}

// RaysPerSecond returns the batch throughput
func (s CastStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Rays) / s.Duration.Seconds()
}

// CountMismatches compares two result sets ray by ray. Results disagree when
// exactly one of them is a hit, or when their distances differ by more than
// tolerance.
func CountMismatches(got, want []*core.HitRecord, tolerance float64) int {
	mismatches := 0
	for i := range got {
		if i >= len(want) {
			mismatches += len(got) - len(want)
			break
		}
		a, b := got[i], want[i]
		switch {
		case a == nil && b == nil:
		case a == nil || b == nil:
			mismatches++
		case math.Abs(a.T-b.T) > tolerance:
			mismatches++
		}
	}
	if len(want) > len(got) {
		mismatches += len(want) - len(got)
	}
	return mismatches
}
