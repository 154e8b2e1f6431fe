package core

import "math"

// Interval is a half-open range [Min, Max) of ray parameters.
// Traversals narrow Max as closer hits are found.
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval [min, max)
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// UnboundedInterval returns [0, +Inf)
func UnboundedInterval() Interval {
	return Interval{Min: 0, Max: math.Inf(1)}
}

// Contains reports whether t lies in [Min, Max)
func (i Interval) Contains(t float64) bool {
	return i.Min <= t && t < i.Max
}

// WithMax returns a copy of the interval with its upper bound replaced
func (i Interval) WithMax(max float64) Interval {
	return Interval{Min: i.Min, Max: max}
}

// IsEmpty reports whether no value satisfies the interval
func (i Interval) IsEmpty() bool {
	return !(i.Min < i.Max)
}
