package image

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// WritePNG encodes the image onto w using the standard PNG encoder
func WritePNG(w io.Writer, img *Image) error {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			pixel := img.At(x, y)
			rgba.SetRGBA(x, y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 255})
		}
	}
	return png.Encode(w, rgba)
}
