package surface

import "github.com/softglow/raylight/pkg/core"

// Set is an ordered collection of surfaces: the scene. Insertion order
// does not affect which intersection time wins, but it does order the
// tie set reported for surfaces hit at exactly the same time.
type Set struct {
	surfaces []core.Surface
}

// NewSet creates an empty surface set
func NewSet() *Set {
	return &Set{}
}

// Add appends a surface to the set
func (s *Set) Add(surface core.Surface) {
	s.surfaces = append(s.surfaces, surface)
}

// Clear removes all surfaces, for reuse between independent renders
func (s *Set) Clear() {
	s.surfaces = nil
}

// Len returns the number of surfaces in the set
func (s *Set) Len() int {
	return len(s.surfaces)
}

// Intersection is the nearest hit across the whole set: the smallest
// valid t, together with every surface achieving exactly that t, in
// insertion order.
type Intersection struct {
	T        float64
	Surfaces []core.Surface
}

// Intersection scans all surfaces for the globally nearest hit within
// the window. After each hit the scan window's upper bound shrinks to
// the hit time, with its upper end closed so a later surface hitting at
// exactly that time still registers as a tie rather than being dropped.
func (s *Set) Intersection(ray core.Ray, window core.Interval) (*Intersection, bool) {
	// Preserve the original lower-bound convention; force the upper
	// bound closed for follow-up probes so exact ties stay detectable.
	var followUpBounds core.IntervalBounds
	switch window.Bounds() {
	case core.Open, core.LeftOpenRightClosed:
		followUpBounds = core.LeftOpenRightClosed
	default: // Closed, LeftClosedRightOpen
		followUpBounds = core.Closed
	}

	var nearest *Intersection
	for _, surface := range s.surfaces {
		t, hit := surface.Intersection(ray, window)
		if !hit {
			continue
		}
		if nearest != nil && t == window.Max() {
			// Exact tie with the running minimum: enumerate, don't replace
			nearest.Surfaces = append(nearest.Surfaces, surface)
		} else {
			nearest = &Intersection{T: t, Surfaces: []core.Surface{surface}}
		}
		window = core.NewInterval(window.Min(), t, followUpBounds)
	}

	if nearest == nil {
		return nil, false
	}
	return nearest, true
}
