package material

import (
	"math"
	"math/rand"

	"github.com/softglow/raylight/pkg/core"
)

// Dielectric represents a refractive material such as glass. It always
// refracts the incident ray according to Snell's law; there is no total
// internal reflection or Fresnel-weighted reflect/refract branch.
type Dielectric struct {
	RefractionIndex float64
}

// NewDielectric creates a new dielectric material. Indices above 1
// give typical glass-like behaviour.
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter implements the Material interface for refraction. This is
// the only material that evaluates the entering probe: the relative
// index depends on whether the ray is passing into or out of the shape.
func (d *Dielectric) Scatter(rayDirection, reboundNormal core.Vec3, entering func() bool, random *rand.Rand) (core.Reflection, bool) {
	relativeIndex := d.RefractionIndex
	if !entering() {
		relativeIndex = 1.0 / d.RefractionIndex
	}

	// Snell's law in vector form against the rebound normal
	n := reboundNormal
	perpendicular := rayDirection.Subtract(n.Multiply(rayDirection.Dot(n))).Divide(relativeIndex)
	parallel := n.Multiply(-math.Sqrt(1.0 - perpendicular.LengthSquared()))

	return core.Reflection{
		Attenuation: core.NewVec3(1, 1, 1),
		Direction:   perpendicular.Add(parallel).Normalize(),
	}, true
}
