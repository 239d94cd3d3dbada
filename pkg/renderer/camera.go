package renderer

import (
	"math/rand"

	"github.com/softglow/raylight/pkg/core"
)

// CameraConfig describes the image and viewport geometry plus the
// sampling parameters of a render.
type CameraConfig struct {
	ImageWidth     int     // image width in pixels
	ImageHeight    int     // image height in pixels
	ViewportWidth  float64 // viewport width in scene units
	ViewportHeight float64 // viewport height in scene units
	FocalLength    float64 // eye-to-viewport distance
	Antialiasing   int     // additional jittered samples per pixel
	MaxBounces     int     // bounce budget per ray
}

// DefaultCameraConfig returns sensible defaults for the given image
// size: a 2-unit-high viewport matching the image aspect ratio.
func DefaultCameraConfig(width, height int) CameraConfig {
	viewportHeight := 2.0
	return CameraConfig{
		ImageWidth:     width,
		ImageHeight:    height,
		ViewportWidth:  viewportHeight * float64(width) / float64(height),
		ViewportHeight: viewportHeight,
		FocalLength:    1.0,
		Antialiasing:   7,
		MaxBounces:     50,
	}
}

// Camera converts pixel coordinates into primary rays
type Camera struct {
	config      CameraConfig
	eyePoint    core.Vec3
	pixelDeltaU core.Vec3
	pixelDeltaV core.Vec3
	pixel00     core.Vec3
}

// NewCamera creates a camera at the origin looking down -z. Pixels are
// spaced linearly across the viewport with half a pixel's gap between
// the viewport edge and the outermost pixel centers.
func NewCamera(config CameraConfig) *Camera {
	eyePoint := core.NewVec3(0, 0, 0)
	viewportU := core.NewVec3(config.ViewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -config.ViewportHeight, 0)

	pixelDeltaU := viewportU.Divide(float64(config.ImageWidth))
	pixelDeltaV := viewportV.Divide(float64(config.ImageHeight))

	viewportUpperLeft := eyePoint.
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Divide(2))

	return &Camera{
		config:      config,
		eyePoint:    eyePoint,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		pixel00:     pixel00,
	}
}

// Config returns the camera's configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// BuildRay generates a ray through pixel (x, y), with the pixel
// coordinates jittered by an offset drawn uniformly from sampleSpace in
// each axis. Pass an empty interval for a ray through the exact pixel
// center.
func (c *Camera) BuildRay(x, y int, sampleSpace core.Interval, random *rand.Rand) core.Ray {
	px := float64(x) + sampleSpace.Min() + sampleSpace.Size()*random.Float64()
	py := float64(y) + sampleSpace.Min() + sampleSpace.Size()*random.Float64()
	target := c.pixel00.
		Add(c.pixelDeltaU.Multiply(px)).
		Add(c.pixelDeltaV.Multiply(py))
	return core.NewRayThrough(c.eyePoint, target)
}
