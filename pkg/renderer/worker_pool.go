package renderer

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/softglow/raylight/pkg/core"
	"github.com/softglow/raylight/pkg/image"
	"github.com/softglow/raylight/pkg/log"
)

var logger = log.New("renderer")

// Render traces the whole image across a pool of workers, one row per
// task. Rows are disjoint and the scene is read-only, so no locking is
// needed. Each row seeds its own generator from the base seed, making
// the output identical for any worker count.
//
// Cancellation is cooperative and is only checked between pixels: a
// single pixel's cost is small and bounded by the bounce budget.
func (rt *Raytracer) Render(ctx context.Context) (*image.Image, RenderStats, error) {
	config := rt.camera.Config()
	workers := rt.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rows := make([][]core.Vec3, config.ImageHeight)
	tasks := make(chan int, config.ImageHeight)
	for y := 0; y < config.ImageHeight; y++ {
		tasks <- y
	}
	close(tasks)

	logger.Infof("rendering %dx%d with %d workers, %d samples/pixel, %d bounces",
		config.ImageWidth, config.ImageHeight, workers, config.Antialiasing+1, config.MaxBounces)

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range tasks {
				if ctx.Err() != nil {
					return
				}
				rows[y] = rt.renderRow(ctx, y)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		Width:       config.ImageWidth,
		Height:      config.ImageHeight,
		Samples:     config.Antialiasing + 1,
		MaxBounces:  config.MaxBounces,
		Workers:     workers,
		PrimaryRays: int64(config.ImageWidth) * int64(config.ImageHeight) * int64(config.Antialiasing+1),
		Duration:    time.Since(start),
	}
	logger.Noticef("render completed in %v", stats.Duration)

	return image.FromVectorGrid(rows, true), stats, nil
}

// renderRow traces one row of pixels with a row-deterministic generator.
// It bails out early when the context is cancelled; the partial row is
// discarded with the render.
func (rt *Raytracer) renderRow(ctx context.Context, y int) []core.Vec3 {
	config := rt.camera.Config()
	random := rand.New(rand.NewSource(rt.config.Seed + int64(y)))

	row := make([]core.Vec3, config.ImageWidth)
	for x := 0; x < config.ImageWidth; x++ {
		if ctx.Err() != nil {
			return row
		}
		row[x] = rt.renderPixel(x, y, random)
	}
	return row
}
