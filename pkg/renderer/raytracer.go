package renderer

import (
	"math"
	"math/rand"

	"github.com/softglow/raylight/pkg/core"
	"github.com/softglow/raylight/pkg/surface"
)

// selfIntersectionEpsilon keeps scattered rays from re-hitting the
// surface they just left ("shadow acne").
const selfIntersectionEpsilon = 0.001

// Scene is what the raytracer needs from a scene. Declared here to
// avoid a circular import with the scene package.
type Scene interface {
	World() *surface.Set
	CameraConfig() CameraConfig
	BackgroundColors() (top, bottom core.Vec3)
}

// RenderConfig controls how a render executes
type RenderConfig struct {
	Workers int   // worker goroutines; <= 0 means NumCPU
	Seed    int64 // base seed; each row derives its own generator
}

// DefaultRenderConfig returns the default execution parameters
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{Workers: 0, Seed: 42}
}

// Raytracer traces a scene into a grid of colour samples
type Raytracer struct {
	scene  Scene
	camera *Camera
	config RenderConfig
}

// NewRaytracer creates a raytracer for the scene
func NewRaytracer(scene Scene, config RenderConfig) *Raytracer {
	return &Raytracer{
		scene:  scene,
		camera: NewCamera(scene.CameraConfig()),
		config: config,
	}
}

// RayColor computes the radiance along a ray, recursing through
// scattering events until the bounce budget runs out, the ray is
// absorbed, or it escapes to the background.
func (rt *Raytracer) RayColor(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	window := core.NewInterval(selfIntersectionEpsilon, math.MaxFloat64, core.Open)
	hit, isHit := rt.scene.World().Intersection(ray, window)
	if !isHit {
		return rt.backgroundGradient(ray)
	}

	// Among exact ties the first surface added wins
	point := ray.At(hit.T)
	scattered, didScatter := hit.Surfaces[0].Scatter(point, ray, random)
	if !didScatter {
		return core.Vec3{}
	}

	return scattered.Attenuation.MultiplyVec(rt.RayColor(scattered.Ray, depth-1, random))
}

// backgroundGradient interpolates between the scene's bottom and top
// colours based on the ray direction's vertical component.
func (rt *Raytracer) backgroundGradient(ray core.Ray) core.Vec3 {
	top, bottom := rt.scene.BackgroundColors()

	// Map the unit direction's y from [-1,1] to [0,1]
	t := (ray.Direction.Normalize().Y + 1.0) / 2.0
	return bottom.Multiply(1.0 - t).Add(top.Multiply(t))
}

// renderPixel averages one ray through the pixel center with the
// configured number of jittered antialiasing samples.
func (rt *Raytracer) renderPixel(x, y int, random *rand.Rand) core.Vec3 {
	config := rt.camera.Config()

	direct := rt.camera.BuildRay(x, y, core.EmptyInterval(), random)
	sum := rt.RayColor(direct, config.MaxBounces, random)

	jitter := core.NewInterval(-0.5, 0.5, core.Closed)
	for sample := 0; sample < config.Antialiasing; sample++ {
		ray := rt.camera.BuildRay(x, y, jitter, random)
		sum = sum.Add(rt.RayColor(ray, config.MaxBounces, random))
	}

	return sum.Divide(float64(config.Antialiasing) + 1.0)
}
