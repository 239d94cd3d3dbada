package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/softglow/raylight/pkg/image"
	"github.com/softglow/raylight/pkg/renderer"
	"github.com/softglow/raylight/pkg/scene"
)

// RenderScene traces the selected scene and writes the image to disk.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.ByName(ctx.String("scene"), ctx.Int("width"), ctx.Int("height"))
	if err != nil {
		return err
	}
	if ctx.IsSet("aa") {
		sc.Camera.Antialiasing = ctx.Int("aa")
	}
	if ctx.IsSet("bounces") {
		sc.Camera.MaxBounces = ctx.Int("bounces")
	}
	if sc.Camera.Antialiasing < 0 {
		return fmt.Errorf("aa must be >= 0, got %d", sc.Camera.Antialiasing)
	}
	if sc.Camera.MaxBounces < 1 {
		return fmt.Errorf("bounces must be >= 1, got %d", sc.Camera.MaxBounces)
	}

	config := renderer.DefaultRenderConfig()
	config.Workers = ctx.Int("workers")
	if ctx.IsSet("seed") {
		config.Seed = ctx.Int64("seed")
	}

	// Ctrl-C abandons the render instead of leaving a truncated file
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt := renderer.NewRaytracer(sc, config)
	img, stats, err := rt.Render(renderCtx)
	if err != nil {
		return fmt.Errorf("render aborted: %v", err)
	}
	logger.Notice("\n" + stats.Table())

	out := ctx.String("out")
	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format := ctx.String("format"); format {
	case "ppm-ascii":
		err = image.NewPPMFormatter(true).WriteTo(file, img)
	case "ppm":
		err = image.NewPPMFormatter(false).WriteTo(file, img)
	case "png":
		err = image.WritePNG(file, img)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}

	logger.Noticef("wrote %s", out)
	return nil
}
