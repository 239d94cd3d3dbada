// Package surface binds shapes to materials and aggregates them into a
// scene queried for the nearest intersection along a ray.
package surface

import (
	"math/rand"

	"github.com/softglow/raylight/pkg/core"
)

// UniformSurface couples one shape with one material applied uniformly
// across it.
type UniformSurface struct {
	shape    core.Shape
	material core.Material
}

// NewUniformSurface creates a surface from a shape and a material
func NewUniformSurface(shape core.Shape, material core.Material) *UniformSurface {
	return &UniformSurface{shape: shape, material: material}
}

// Intersection delegates to the underlying shape
func (s *UniformSurface) Intersection(ray core.Ray, window core.Interval) (float64, bool) {
	return s.shape.Intersection(ray, window)
}

// Scatter translates the shape-local normal into ray-relative scattering
// and defers the physics to the material. The entering probe costs a
// normal query, so it is passed lazily; only materials that need to know
// whether the ray passes into the shape evaluate it.
func (s *UniformSurface) Scatter(point core.Vec3, ray core.Ray, random *rand.Rand) (core.ScatteredRay, bool) {
	outward := s.shape.OutwardNormal(point)
	rebound := core.NormalAgainstRay(outward, ray.Direction)
	entering := func() bool {
		return outward.Dot(ray.Direction) < 0
	}

	reflection, scattered := s.material.Scatter(ray.Direction.Normalize(), rebound, entering, random)
	if !scattered {
		return core.ScatteredRay{}, false
	}
	return core.ScatteredRay{
		Attenuation: reflection.Attenuation,
		Ray:         core.NewRay(point, reflection.Direction),
	}, true
}
