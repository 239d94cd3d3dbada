package surface

import (
	"math/rand"
	"testing"

	"github.com/softglow/raylight/pkg/core"
	"github.com/softglow/raylight/pkg/geometry"
)

func TestUniformSurface_ScatterFlipsNormalAgainstRay(t *testing.T) {
	tests := []struct {
		name           string
		rayDirection   core.Vec3
		expectedNormal core.Vec3
	}{
		{
			name:           "ray against outward normal keeps it",
			rayDirection:   core.NewVec3(-2, 3, 4),
			expectedNormal: core.NewVec3(1, 0, 0),
		},
		{
			name:           "ray along outward normal flips it",
			rayDirection:   core.NewVec3(2, 3, 4),
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mat := &recordingMaterial{}
			surface := NewUniformSurface(borderShape{border: 3.0}, mat)
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.rayDirection)
			random := rand.New(rand.NewSource(42))

			if _, scattered := surface.Scatter(ray.At(3.0), ray, random); !scattered {
				t.Fatal("Expected scatter")
			}
			if mat.reboundNormal != tt.expectedNormal {
				t.Errorf("Expected rebound normal %v, got %v", tt.expectedNormal, mat.reboundNormal)
			}
		})
	}
}

func TestUniformSurface_ScatterNormalizesRayDirection(t *testing.T) {
	mat := &recordingMaterial{}
	surface := NewUniformSurface(borderShape{border: 1.0}, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(-10, 0, 0))
	random := rand.New(rand.NewSource(42))

	surface.Scatter(ray.At(1.0), ray, random)
	if mat.rayDirection != core.NewVec3(-1, 0, 0) {
		t.Errorf("Expected unit incident direction, got %v", mat.rayDirection)
	}
}

func TestUniformSurface_EnteringProbe(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -3), 1.0)
	random := rand.New(rand.NewSource(42))

	// From outside: ray opposes the outward normal at the near point
	outside := &recordingMaterial{}
	s := NewUniformSurface(sphere, outside)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	s.Scatter(core.NewVec3(0, 0, -2), ray, random)
	if !outside.entering {
		t.Error("Expected entering=true for a ray hitting the near side from outside")
	}

	// From inside: ray agrees with the outward normal at the far point
	inside := &recordingMaterial{}
	s = NewUniformSurface(sphere, inside)
	ray = core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, -1))
	s.Scatter(core.NewVec3(0, 0, -4), ray, random)
	if inside.entering {
		t.Error("Expected entering=false for a ray leaving through the far side")
	}
}

func TestUniformSurface_AbsorptionPropagates(t *testing.T) {
	mat := &recordingMaterial{absorb: true}
	surface := NewUniformSurface(borderShape{border: 1.0}, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	random := rand.New(rand.NewSource(42))

	if _, scattered := surface.Scatter(ray.At(1.0), ray, random); scattered {
		t.Error("Expected absorption to propagate as a non-scatter")
	}
}

func TestUniformSurface_ScatteredRayOriginatesAtPoint(t *testing.T) {
	mat := &recordingMaterial{}
	surface := NewUniformSurface(borderShape{border: 2.0}, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	random := rand.New(rand.NewSource(42))

	point := ray.At(2.0)
	scattered, ok := surface.Scatter(point, ray, random)
	if !ok {
		t.Fatal("Expected scatter")
	}
	if scattered.Ray.Origin != point {
		t.Errorf("Expected scattered ray origin %v, got %v", point, scattered.Ray.Origin)
	}
}
