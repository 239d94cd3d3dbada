// Package cmd implements the CLI command actions.
package cmd

import (
	"github.com/urfave/cli"

	"github.com/softglow/raylight/pkg/log"
)

var logger = log.New("raylight")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
