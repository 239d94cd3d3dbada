package renderer_test

import (
	"context"
	"testing"

	"github.com/softglow/raylight/pkg/renderer"
	"github.com/softglow/raylight/pkg/scene"
)

func smallScene() *scene.Scene {
	s := scene.NewShowcaseScene(64, 36)
	s.Camera.Antialiasing = 1
	s.Camera.MaxBounces = 4
	return s
}

func TestRenderDeterministicAcrossWorkerCounts(t *testing.T) {
	serial := renderer.NewRaytracer(smallScene(), renderer.RenderConfig{Workers: 1, Seed: 42})
	parallel := renderer.NewRaytracer(smallScene(), renderer.RenderConfig{Workers: 8, Seed: 42})

	serialImage, _, err := serial.Render(context.Background())
	if err != nil {
		t.Fatalf("serial render failed: %v", err)
	}
	parallelImage, _, err := parallel.Render(context.Background())
	if err != nil {
		t.Fatalf("parallel render failed: %v", err)
	}

	if len(serialImage.Pixels) != len(parallelImage.Pixels) {
		t.Fatalf("image sizes differ: %d vs %d", len(serialImage.Pixels), len(parallelImage.Pixels))
	}
	for i := range serialImage.Pixels {
		if serialImage.Pixels[i] != parallelImage.Pixels[i] {
			t.Fatalf("pixel %d differs across worker counts: %v vs %v",
				i, serialImage.Pixels[i], parallelImage.Pixels[i])
		}
	}
}

func TestRenderSeedChangesOutput(t *testing.T) {
	first := renderer.NewRaytracer(smallScene(), renderer.RenderConfig{Workers: 2, Seed: 1})
	second := renderer.NewRaytracer(smallScene(), renderer.RenderConfig{Workers: 2, Seed: 2})

	firstImage, _, err := first.Render(context.Background())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	secondImage, _, err := second.Render(context.Background())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for i := range firstImage.Pixels {
		if firstImage.Pixels[i] != secondImage.Pixels[i] {
			return
		}
	}
	t.Error("expected different seeds to produce different images")
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rt := renderer.NewRaytracer(smallScene(), renderer.DefaultRenderConfig())
	img, _, err := rt.Render(ctx)

	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("expected no image from a cancelled render")
	}
}
