package image

import (
	"bufio"
	"fmt"
	"io"
)

// PPMFormatter encodes an image as netpbm PPM, either ASCII (P3) or
// binary (P6).
type PPMFormatter struct {
	ASCII bool
}

// NewPPMFormatter creates a PPM formatter
func NewPPMFormatter(ascii bool) *PPMFormatter {
	return &PPMFormatter{ASCII: ascii}
}

func (f *PPMFormatter) header(img *Image) string {
	magic := "P6"
	if f.ASCII {
		magic = "P3"
	}
	return fmt.Sprintf("%s\n%d %d\n255\n", magic, img.Width, img.Height)
}

// Len returns the encoded size in bytes
func (f *PPMFormatter) Len(img *Image) int64 {
	pixelBytes := int64(img.Width) * int64(img.Height) * 3
	if f.ASCII {
		// Each channel value is up to 3 chars plus a separator
		pixelBytes *= 4
	}
	return int64(len(f.header(img))) + pixelBytes
}

// WriteTo encodes the image onto w
func (f *PPMFormatter) WriteTo(w io.Writer, img *Image) error {
	buffered := bufio.NewWriter(w)
	if _, err := buffered.WriteString(f.header(img)); err != nil {
		return err
	}
	for _, pixel := range img.Pixels {
		var err error
		if f.ASCII {
			_, err = fmt.Fprintf(buffered, "%d %d %d\n", pixel.R, pixel.G, pixel.B)
		} else {
			_, err = buffered.Write([]byte{pixel.R, pixel.G, pixel.B})
		}
		if err != nil {
			return err
		}
	}
	return buffered.Flush()
}
