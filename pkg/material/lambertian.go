package material

import (
	"math/rand"

	"github.com/softglow/raylight/pkg/core"
)

// Lambertian represents a perfectly diffuse material. Scattered
// directions follow a cosine-weighted distribution about the rebound
// normal: the normal plus a random unit vector, renormalized.
type Lambertian struct {
	Albedo core.Vec3
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for diffuse scattering.
// Lambertian surfaces never absorb and never consult the entering probe.
func (l *Lambertian) Scatter(rayDirection, reboundNormal core.Vec3, entering func() bool, random *rand.Rand) (core.Reflection, bool) {
	direction := reboundNormal.Add(core.RandomUnitVector(random)).Normalize()
	return core.Reflection{
		Attenuation: l.Albedo,
		Direction:   direction,
	}, true
}
