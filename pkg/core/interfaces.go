package core

import "math/rand"

// Shape is a geometric primitive supporting ray intersection and
// surface-normal queries.
type Shape interface {
	// Intersection returns the first time at which the ray meets the
	// shape within the window, under the window's own boundary rule.
	Intersection(ray Ray, window Interval) (float64, bool)

	// OutwardNormal returns the unit normal at a point on the shape,
	// pointing out of the object. Behaviour is unspecified for points
	// not on the shape.
	OutwardNormal(point Vec3) Vec3
}

// Material maps an incident ray direction and surface normal to a
// scattered direction and colour attenuation, or to absorption.
type Material interface {
	// Scatter receives the unit incident direction and the rebound
	// normal (the surface normal flipped to point against the ray).
	// The entering probe reports whether the ray is passing into the
	// shape; it may cost an extra geometric query, so materials must
	// only call it when they need the answer. Returns false when the
	// ray is absorbed.
	Scatter(rayDirection, reboundNormal Vec3, entering func() bool, random *rand.Rand) (Reflection, bool)
}

// Reflection is an attenuated scatter direction produced by a Material.
// The direction is unit length.
type Reflection struct {
	Attenuation Vec3
	Direction   Vec3
}

// Surface is a renderable unit: a shape bound to a material.
type Surface interface {
	// Intersection returns the first time at which the ray meets the
	// surface within the window.
	Intersection(ray Ray, window Interval) (float64, bool)

	// Scatter returns a random scattered ray off the surface at the
	// given point, or false if the ray is absorbed.
	Scatter(point Vec3, ray Ray, random *rand.Rand) (ScatteredRay, bool)
}

// ScatteredRay is an attenuated, scattered ray. It is produced per
// bounce and consumed immediately by the integrator.
type ScatteredRay struct {
	Attenuation Vec3
	Ray         Ray
}

// NormalAgainstRay flips an outward surface normal, if necessary, so it
// points against the incident ray direction.
func NormalAgainstRay(outward Vec3, rayDirection Vec3) Vec3 {
	if outward.Dot(rayDirection) > 0 {
		return outward.Negate()
	}
	return outward
}
