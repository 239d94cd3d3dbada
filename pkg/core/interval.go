package core

import "math"

// IntervalBounds selects the inclusion convention at each end of an Interval
type IntervalBounds int

const (
	Open IntervalBounds = iota
	Closed
	LeftOpenRightClosed
	LeftClosedRightOpen
)

// Interval is a numeric range [min, max] with a selectable inclusion
// convention at each end. Invariant: min <= max.
type Interval struct {
	min    float64
	max    float64
	bounds IntervalBounds
}

// NewInterval creates an interval with the given endpoints and bounds
func NewInterval(min, max float64, bounds IntervalBounds) Interval {
	return Interval{min: min, max: max, bounds: bounds}
}

// AllReals returns an interval spanning (-MaxFloat64, MaxFloat64)
func AllReals(bounds IntervalBounds) Interval {
	return Interval{min: -math.MaxFloat64, max: math.MaxFloat64, bounds: bounds}
}

// PositiveReals returns an interval spanning (0, MaxFloat64)
func PositiveReals(bounds IntervalBounds) Interval {
	return Interval{min: 0, max: math.MaxFloat64, bounds: bounds}
}

// EmptyInterval returns the degenerate open interval (0, 0)
func EmptyInterval() Interval {
	return Interval{min: 0, max: 0, bounds: Open}
}

// Min returns the lower endpoint
func (i Interval) Min() float64 { return i.min }

// Max returns the upper endpoint
func (i Interval) Max() float64 { return i.max }

// Bounds returns the inclusion convention
func (i Interval) Bounds() IntervalBounds { return i.bounds }

// Size returns the distance between the endpoints
func (i Interval) Size() float64 {
	return i.max - i.min
}

// Contains tests whether num lies within the interval under its
// inclusion convention
func (i Interval) Contains(num float64) bool {
	switch i.bounds {
	case Closed:
		return i.min <= num && num <= i.max
	case LeftOpenRightClosed:
		return i.min < num && num <= i.max
	case LeftClosedRightOpen:
		return i.min <= num && num < i.max
	default: // Open
		return i.min < num && num < i.max
	}
}
