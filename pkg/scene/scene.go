// Package scene assembles worlds of material-bound shapes for rendering.
package scene

import (
	"fmt"
	"sort"

	"github.com/softglow/raylight/pkg/core"
	"github.com/softglow/raylight/pkg/renderer"
	"github.com/softglow/raylight/pkg/surface"
)

// Scene contains everything needed for a render: the world of surfaces,
// the camera configuration and the background gradient colours.
type Scene struct {
	Surfaces *surface.Set
	Camera   renderer.CameraConfig
	Top      core.Vec3 // background colour straight up
	Bottom   core.Vec3 // background colour straight down
}

// World returns the surface set
func (s *Scene) World() *surface.Set {
	return s.Surfaces
}

// CameraConfig returns the camera configuration
func (s *Scene) CameraConfig() renderer.CameraConfig {
	return s.Camera
}

// BackgroundColors returns the gradient endpoint colours
func (s *Scene) BackgroundColors() (top, bottom core.Vec3) {
	return s.Top, s.Bottom
}

// newScene creates an empty scene with the sky-blue over white gradient
func newScene(camera renderer.CameraConfig) *Scene {
	return &Scene{
		Surfaces: surface.NewSet(),
		Camera:   camera,
		Top:      core.NewVec3(0.5, 0.7, 1.0),
		Bottom:   core.NewVec3(1.0, 1.0, 1.0),
	}
}

var registry = map[string]func(width, height int) *Scene{
	"default":  NewDefaultScene,
	"showcase": NewShowcaseScene,
}

// Names lists the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named scene at the given image size
func ByName(name string, width, height int) (*Scene, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return build(width, height), nil
}
