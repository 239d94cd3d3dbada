package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/softglow/raylight/pkg/scene"
)

// ListScenes prints the registered scene names.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Scene"})
	for _, name := range scene.Names() {
		table.Append([]string{name})
	}
	table.Render()
	return nil
}
