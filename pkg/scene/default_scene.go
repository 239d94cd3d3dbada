package scene

import (
	"github.com/softglow/raylight/pkg/core"
	"github.com/softglow/raylight/pkg/geometry"
	"github.com/softglow/raylight/pkg/material"
	"github.com/softglow/raylight/pkg/renderer"
	"github.com/softglow/raylight/pkg/surface"
)

// NewDefaultScene creates the classic two-sphere world: a small diffuse
// sphere resting on a very large ground sphere.
func NewDefaultScene(width, height int) *Scene {
	s := newScene(renderer.DefaultCameraConfig(width, height))

	grey := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Surfaces.Add(surface.NewUniformSurface(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5), grey))
	s.Surfaces.Add(surface.NewUniformSurface(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100.0), grey))

	return s
}

// NewShowcaseScene lines up one sphere of each material over a diffuse
// ground sphere.
func NewShowcaseScene(width, height int) *Scene {
	s := newScene(renderer.DefaultCameraConfig(width, height))

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	left := material.NewDielectric(1.5)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2))

	s.Surfaces.Add(surface.NewUniformSurface(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100.0), ground))
	s.Surfaces.Add(surface.NewUniformSurface(
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5), center))
	s.Surfaces.Add(surface.NewUniformSurface(
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5), left))
	s.Surfaces.Add(surface.NewUniformSurface(
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5), right))

	return s
}
