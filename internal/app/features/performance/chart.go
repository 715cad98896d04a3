// internal/app/features/performance/chart.go
package performance

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"html/template"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/dalemusser/stratadash/internal/app/system/timefmt"
	"github.com/dalemusser/stratadash/internal/domain/models"
)

// ErrEmptyDataset is returned when asked to chart a dataset with no points.
var ErrEmptyDataset = errors.New("dataset has no points")

// ChartConfig sizes the rendered charts.
type ChartConfig struct {
	Width  int
	Height int
}

// DefaultChartConfig matches the dashboard layout: full width, 400px tall.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{Width: 900, Height: 400}
}

// Chart margins and reserved bands, in pixels.
const (
	marginTop    = 20
	marginRight  = 30
	marginBottom = 5
	marginLeft   = 20

	yAxisWidth   = 64
	xAxisHeight  = 28
	legendHeight = 28

	maxBarWidth = 140
	barRadius   = 4
)

const (
	colorGrid  = "#e5e7eb"
	colorAxis  = "#9ca3af"
	colorTick  = "#6b7280"
	colorLabel = "#374151"
)

// axisSteps are the candidate tick intervals, in minutes.
var axisSteps = []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 15, 30, 60, 90, 120, 180, 240, 360, 480, 720, 1440}

// maxTickIntervals bounds the number of gaps between y-axis ticks.
const maxTickIntervals = 4

// valueAxis returns the axis top and tick values for a maximum bar value.
// Ticks start at zero and use the smallest step that covers max in at most
// maxTickIntervals intervals.
func valueAxis(max float64) (top float64, ticks []float64) {
	if max <= 0 || math.IsNaN(max) || math.IsInf(max, 0) {
		max = 1
	}

	step := 0.0
	for _, s := range axisSteps {
		if math.Ceil(max/s) <= maxTickIntervals {
			step = s
			break
		}
	}
	if step == 0 {
		day := axisSteps[len(axisSteps)-1]
		step = math.Ceil(max/maxTickIntervals/day) * day
	}

	n := int(math.Ceil(max / step))
	ticks = make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, float64(i)*step)
	}
	return float64(n) * step, ticks
}

// plotArea is the rectangle bars are drawn in.
type plotArea struct {
	x, y, w, h int
}

func (c ChartConfig) plot() plotArea {
	x := marginLeft + yAxisWidth
	y := marginTop
	return plotArea{
		x: x,
		y: y,
		w: c.Width - x - marginRight,
		h: c.Height - y - marginBottom - xAxisHeight - legendHeight,
	}
}

// yFor maps a value onto the plot's vertical pixel range.
func (p plotArea) yFor(v, top float64) int {
	return p.y + p.h - int(math.Round(v/top*float64(p.h)))
}

// RenderSVG draws the bar chart for d: grid, axes, one bar series keyed to
// the dataset's value field with a hover tooltip per bar, and a legend.
func (c ChartConfig) RenderSVG(w io.Writer, d models.Dataset) error {
	if len(d.Points) == 0 {
		return ErrEmptyDataset
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid chart size %dx%d", c.Width, c.Height)
	}

	top, ticks := valueAxis(d.MaxValue())
	area := c.plot()
	band := float64(area.w) / float64(len(d.Points))

	canvas := svg.New(w)
	canvas.Start(c.Width, c.Height,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, c.Width, c.Height),
		`class="chart"`,
		fmt.Sprintf(`data-tab="%s"`, html.EscapeString(string(d.Tab))),
		fmt.Sprintf(`data-key="%s"`, html.EscapeString(d.YKey)),
	)
	canvas.Title(d.Title)

	drawGrid(canvas, area, top, ticks, band, len(d.Points))
	drawBars(canvas, area, top, band, d)
	drawXAxis(canvas, area, band, d)
	drawYAxis(canvas, area, top, ticks, d.YLabel)
	drawLegend(canvas, c, d)

	canvas.End()
	return nil
}

// InlineSVG renders the chart for embedding in an HTML page.
func (c ChartConfig) InlineSVG(d models.Dataset) (template.HTML, error) {
	var buf bytes.Buffer
	if err := c.RenderSVG(&buf, d); err != nil {
		return "", err
	}
	doc := buf.String()
	if i := strings.Index(doc, "<svg"); i > 0 {
		doc = doc[i:]
	}
	return template.HTML(doc), nil
}

func drawGrid(canvas *svg.SVG, area plotArea, top float64, ticks []float64, band float64, n int) {
	style := fmt.Sprintf("stroke:%s;stroke-dasharray:3 3", colorGrid)
	canvas.Group(`class="grid"`)
	for _, v := range ticks {
		y := area.yFor(v, top)
		canvas.Line(area.x, y, area.x+area.w, y, style)
	}
	for i := 0; i <= n; i++ {
		x := area.x + int(math.Round(float64(i)*band))
		canvas.Line(x, area.y, x, area.y+area.h, style)
	}
	canvas.Gend()
}

func drawBars(canvas *svg.SVG, area plotArea, top float64, band float64, d models.Dataset) {
	barW := int(math.Min(band*0.6, maxBarWidth))
	if barW < 1 {
		barW = 1
	}
	base := area.y + area.h

	canvas.Group(`class="series"`, fmt.Sprintf(`data-name="%s"`, html.EscapeString(d.SeriesName)))
	for i, p := range d.Points {
		x := area.x + int(math.Round(float64(i)*band+(band-float64(barW))/2))
		y := area.yFor(p.Value(), top)
		rec := p.Record()

		canvas.Group(
			`class="bar"`,
			fmt.Sprintf(`data-label="%s"`, html.EscapeString(p.Category())),
			fmt.Sprintf(`data-casos="%d"`, rec.Cases),
			fmt.Sprintf(`data-tiempo="%s"`, strconv.FormatFloat(p.Value(), 'f', -1, 64)),
		)
		canvas.Title(TooltipFor(p).String())
		canvas.Path(barPath(x, y, barW, base-y), fmt.Sprintf("fill:%s", d.BarColor(p)))
		canvas.Gend()
	}
	canvas.Gend()
}

// barPath outlines a bar with rounded top corners.
func barPath(x, y, w, h int) string {
	if h <= 0 {
		return fmt.Sprintf("M%d %dh%dv0h%dz", x, y, w, -w)
	}
	r := barRadius
	if r*2 > w {
		r = w / 2
	}
	if r > h {
		r = h
	}
	return fmt.Sprintf("M%d %d"+
		"v%d"+
		"q0 %d %d %d"+
		"h%d"+
		"q%d 0 %d %d"+
		"v%d"+
		"z",
		x, y+h,
		-(h - r),
		-r, r, -r,
		w-2*r,
		r, r, r,
		h-r,
	)
}

func drawXAxis(canvas *svg.SVG, area plotArea, band float64, d models.Dataset) {
	base := area.y + area.h
	canvas.Group(`class="x-axis"`, fmt.Sprintf(`data-key="%s"`, html.EscapeString(d.XKey)))
	canvas.Line(area.x, base, area.x+area.w, base, fmt.Sprintf("stroke:%s", colorAxis))
	for i, p := range d.Points {
		cx := area.x + int(math.Round(float64(i)*band+band/2))
		canvas.Line(cx, base, cx, base+6, fmt.Sprintf("stroke:%s", colorAxis))
		canvas.Text(cx, base+20, p.Category(),
			fmt.Sprintf("text-anchor:middle;font-size:12px;fill:%s", colorLabel))
	}
	canvas.Gend()
}

func drawYAxis(canvas *svg.SVG, area plotArea, top float64, ticks []float64, label string) {
	canvas.Group(`class="y-axis"`)
	canvas.Line(area.x, area.y, area.x, area.y+area.h, fmt.Sprintf("stroke:%s", colorAxis))
	for _, v := range ticks {
		y := area.yFor(v, top)
		canvas.Line(area.x-6, y, area.x, y, fmt.Sprintf("stroke:%s", colorAxis))
		canvas.Text(area.x-9, y+4, timefmt.Minutes(v),
			fmt.Sprintf("text-anchor:end;font-size:12px;fill:%s", colorTick))
	}
	if label != "" {
		canvas.TranslateRotate(marginLeft, area.y+area.h/2, -90)
		canvas.Text(0, 0, label, fmt.Sprintf("text-anchor:middle;font-size:12px;fill:%s", colorTick))
		canvas.Gend()
	}
	canvas.Gend()
}

func drawLegend(canvas *svg.SVG, c ChartConfig, d models.Dataset) {
	y := c.Height - marginBottom - legendHeight/2
	textW := len([]rune(d.SeriesName)) * 7
	x := (c.Width - (14 + 6 + textW)) / 2

	canvas.Group(`class="legend"`)
	canvas.Rect(x, y-7, 14, 10, fmt.Sprintf("fill:%s", d.Color))
	canvas.Text(x+20, y+2, d.SeriesName, fmt.Sprintf("font-size:12px;fill:%s", d.Color))
	canvas.Gend()
}
