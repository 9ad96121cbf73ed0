package core

import "math"

// Interval is a closed range of real values [Min, Max].
// An interval with Min > Max is empty and contains nothing.
// The zero value is [0, 0], which contains 0: use EmptyInterval for a range
// that contains nothing, never Interval{}.
type Interval struct {
	Min, Max float64
}

// NewInterval creates the interval [min, max]
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval returns an interval that contains no values
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// IsEmpty reports whether no value can satisfy membership
func (i Interval) IsEmpty() bool {
	return !(i.Min <= i.Max)
}

// Size returns Max - Min, or 0 for an empty interval
func (i Interval) Size() float64 {
	if i.IsEmpty() {
		return 0
	}
	return i.Max - i.Min
}

// Contains reports whether min <= x <= max
func (i Interval) Contains(x float64) bool {
	return !i.IsEmpty() && i.Min <= x && x <= i.Max
}

// Clamp limits x to the interval. An empty interval returns x unchanged.
func (i Interval) Clamp(x float64) float64 {
	if i.IsEmpty() {
		return x
	}
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// WithMax returns a copy of the interval with a new upper bound
func (i Interval) WithMax(max float64) Interval {
	return Interval{Min: i.Min, Max: max}
}
