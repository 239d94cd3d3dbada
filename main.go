package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/softglow/raylight/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raylight"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image file",
			Description: `
Trace one of the built-in scenes and write the result as PPM or PNG.
Output is deterministic for a given seed regardless of worker count.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "image width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 225,
					Usage: "image height in pixels",
				},
				cli.IntFlag{
					Name:  "aa",
					Value: 7,
					Usage: "extra antialiasing samples per pixel",
				},
				cli.IntFlag{
					Name:  "bounces",
					Value: 50,
					Usage: "maximum ray bounces",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "base random seed",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "worker goroutines (0 = all CPUs)",
				},
				cli.StringFlag{
					Name:  "format, f",
					Value: "ppm-ascii",
					Usage: "output format: ppm-ascii, ppm or png",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.ppm",
					Usage: "output filename",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
