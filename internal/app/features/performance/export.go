// internal/app/features/performance/export.go
package performance

import (
	"io"
	"strings"

	"github.com/dalemusser/stratadash/internal/app/system/timefmt"
	"github.com/dalemusser/stratadash/internal/domain/models"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderPNG writes a raster copy of the chart for d, suitable for download.
// The y axis uses the same ticks and labels as the inline chart.
func (c ChartConfig) RenderPNG(w io.Writer, d models.Dataset) error {
	if len(d.Points) == 0 {
		return ErrEmptyDataset
	}

	top, ticks := valueAxis(d.MaxValue())

	yTicks := make([]chart.Tick, 0, len(ticks))
	for _, v := range ticks {
		yTicks = append(yTicks, chart.Tick{Value: v, Label: timefmt.Minutes(v)})
	}

	bars := make([]chart.Value, 0, len(d.Points))
	for _, p := range d.Points {
		col := drawing.ColorFromHex(strings.TrimPrefix(d.BarColor(p), "#"))
		bars = append(bars, chart.Value{
			Value: p.Value(),
			Label: p.Category(),
			Style: chart.Style{
				FillColor:   col,
				StrokeColor: col,
				StrokeWidth: 1,
			},
		})
	}

	bc := chart.BarChart{
		Title:  d.Title,
		Width:  c.Width,
		Height: c.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: marginLeft, Right: marginRight, Bottom: marginBottom + 10},
		},
		BarWidth: pngBarWidth(c, len(d.Points)),
		YAxis: chart.YAxis{
			Name:           d.YLabel,
			Range:          &chart.ContinuousRange{Min: 0, Max: top},
			Ticks:          yTicks,
			ValueFormatter: timefmt.Value,
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}

func pngBarWidth(c ChartConfig, n int) int {
	band := c.plot().w / n
	w := band * 3 / 5
	if w > maxBarWidth {
		w = maxBarWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}
