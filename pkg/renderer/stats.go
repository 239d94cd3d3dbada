package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats summarizes a completed render
type RenderStats struct {
	Width       int
	Height      int
	Samples     int // rays per pixel, including the direct ray
	MaxBounces  int
	Workers     int
	PrimaryRays int64
	Duration    time.Duration
}

// Table renders the stats as a text table suitable for logging
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/pixel", "Max bounces", "Workers", "Primary rays", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", s.Width, s.Height),
		fmt.Sprintf("%d", s.Samples),
		fmt.Sprintf("%d", s.MaxBounces),
		fmt.Sprintf("%d", s.Workers),
		fmt.Sprintf("%d", s.PrimaryRays),
		s.Duration.String(),
	})
	table.Render()
	return buf.String()
}
