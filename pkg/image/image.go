// Package image holds the quantized pixel grid produced by a render and
// the encoders that persist it.
package image

import (
	"math"

	"github.com/softglow/raylight/pkg/core"
)

// Pixel is an 8-bit RGB triple
type Pixel struct {
	R, G, B uint8
}

// NewPixel creates a pixel from its channel values
func NewPixel(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// Black returns the zero pixel
func Black() Pixel {
	return Pixel{}
}

// RGB32 packs the channels into a uint32 with a leading zero byte
func (p Pixel) RGB32() uint32 {
	return uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// Image is a width x height grid of pixels stored row-major,
// left-to-right and top-to-bottom.
type Image struct {
	Width  int
	Height int
	Pixels []Pixel
}

// FromPixels builds an image by calling the generator for each pixel.
// The generator receives the column index first, then the row index.
func FromPixels(height, width int, colour func(x, y int) Pixel) *Image {
	pixels := make([]Pixel, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels = append(pixels, colour(x, y))
		}
	}
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// FromVectors builds an image from a generator returning colours with
// components in [0, 1]. Gamma correction approximates the sRGB transfer
// function with a per-channel square root, applied before quantization.
func FromVectors(height, width int, colour func(x, y int) core.Vec3, gammaCorrect bool) *Image {
	return FromPixels(height, width, func(x, y int) Pixel {
		return quantize(colour(x, y), gammaCorrect)
	})
}

// FromVectorGrid builds an image from pre-computed rows of colours, the
// form a parallel renderer produces.
func FromVectorGrid(rows [][]core.Vec3, gammaCorrect bool) *Image {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	return FromVectors(height, width, func(x, y int) core.Vec3 {
		return rows[y][x]
	}, gammaCorrect)
}

// At returns the pixel at column x, row y
func (img *Image) At(x, y int) Pixel {
	return img.Pixels[y*img.Width+x]
}

func quantize(v core.Vec3, gammaCorrect bool) Pixel {
	if gammaCorrect {
		v = v.Map(math.Sqrt)
	}
	v = v.Multiply(255.0)
	return Pixel{R: uint8(v.X), G: uint8(v.Y), B: uint8(v.Z)}
}
