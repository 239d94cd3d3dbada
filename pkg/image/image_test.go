package image

import (
	"testing"

	"github.com/softglow/raylight/pkg/core"
)

func TestPixel_RGB32(t *testing.T) {
	tests := []struct {
		name     string
		pixel    Pixel
		expected uint32
	}{
		{"crimson", NewPixel(220, 20, 60), 0xdc143c},
		{"red", NewPixel(255, 0, 0), 0x00ff0000},
		{"green", NewPixel(0, 255, 0), 0x0000ff00},
		{"blue", NewPixel(0, 0, 255), 0x000000ff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pixel.RGB32(); got != tt.expected {
				t.Errorf("Expected 0x%06x, got 0x%06x", tt.expected, got)
			}
		})
	}
}

func TestPixel_RGB32LeadingByteIsZero(t *testing.T) {
	white := NewPixel(255, 255, 255)
	if white.RGB32()>>24 != 0 {
		t.Error("Expected leading byte zero")
	}
}

func TestFromPixels_RowMajorOrder(t *testing.T) {
	img := FromPixels(2, 3, func(x, y int) Pixel {
		return NewPixel(0, uint8(100*y), uint8(50*x))
	})

	if len(img.Pixels) != 6 {
		t.Fatalf("Expected 6 pixels, got %d", len(img.Pixels))
	}
	if img.Pixels[0] != Black() {
		t.Errorf("Expected black at index 0, got %v", img.Pixels[0])
	}
	// Index 4 is column 1 of row 1
	if img.Pixels[4] != NewPixel(0, 100, 50) {
		t.Errorf("Expected (0, 100, 50) at index 4, got %v", img.Pixels[4])
	}
	if img.At(1, 1) != img.Pixels[4] {
		t.Error("At(1, 1) should address index 4")
	}
}

func TestFromVectors_Quantization(t *testing.T) {
	colour := func(x, y int) core.Vec3 {
		return core.NewVec3(0.0, 0.25, 1.0)
	}

	linear := FromVectors(1, 1, colour, false)
	if linear.Pixels[0] != NewPixel(0, 63, 255) {
		t.Errorf("Expected (0, 63, 255) without gamma, got %v", linear.Pixels[0])
	}

	// sqrt(0.25) = 0.5 -> 127 after truncation
	corrected := FromVectors(1, 1, colour, true)
	if corrected.Pixels[0] != NewPixel(0, 127, 255) {
		t.Errorf("Expected (0, 127, 255) with gamma, got %v", corrected.Pixels[0])
	}
}

func TestFromVectorGrid(t *testing.T) {
	rows := [][]core.Vec3{
		{core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0)},
		{core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)},
	}
	img := FromVectorGrid(rows, false)

	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("Expected 2x2 image, got %dx%d", img.Width, img.Height)
	}
	if img.At(0, 0) != NewPixel(255, 255, 255) || img.At(1, 1) != NewPixel(255, 255, 255) {
		t.Error("Expected white on the diagonal")
	}
	if img.At(1, 0) != Black() || img.At(0, 1) != Black() {
		t.Error("Expected black off the diagonal")
	}
}
