package geometry

import (
	"fmt"
	"math"

	"github.com/softglow/raylight/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere. The radius must be strictly positive;
// a degenerate sphere is a programming error and fails fast.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	if radius <= 0 {
		panic(fmt.Sprintf("geometry: sphere radius must be positive, got %g", radius))
	}
	return &Sphere{Center: center, Radius: radius}
}

// Intersection returns the first time at which the ray meets the sphere
// within the window, preferring the closer of the two quadratic roots.
func (s *Sphere) Intersection(ray core.Ray, window core.Interval) (float64, bool) {
	oc := s.Center.Subtract(ray.Origin)

	// Quadratic at² - 2ht + c = 0 with h = D·oc
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	for _, root := range [2]float64{(h - sqrtD) / a, (h + sqrtD) / a} {
		if window.Contains(root) {
			return root, true
		}
	}
	return 0, false
}

// OutwardNormal returns the unit normal pointing out of the sphere.
// The point is assumed to lie on the sphere.
func (s *Sphere) OutwardNormal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Divide(s.Radius)
}
