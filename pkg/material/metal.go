package material

import (
	"math/rand"

	"github.com/softglow/raylight/pkg/core"
)

// Metal represents a specular material with perfect mirror reflection
type Metal struct {
	Albedo core.Vec3
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3) *Metal {
	return &Metal{Albedo: albedo}
}

// Scatter implements the Material interface for specular reflection.
// Metals never absorb and never consult the entering probe.
func (m *Metal) Scatter(rayDirection, reboundNormal core.Vec3, entering func() bool, random *rand.Rand) (core.Reflection, bool) {
	return core.Reflection{
		Attenuation: m.Albedo,
		Direction:   reflect(rayDirection, reboundNormal).Normalize(),
	}, true
}

// reflect calculates the mirror reflection of v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
