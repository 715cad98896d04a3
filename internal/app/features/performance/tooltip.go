// internal/app/features/performance/tooltip.go
package performance

import (
	"strconv"
	"strings"

	"github.com/dalemusser/stratadash/internal/domain/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PayloadEntry is one series value under the pointer when a bar is hovered.
type PayloadEntry struct {
	Value  float64
	Record *models.TooltipRecord
}

// Tooltip is the text block shown while hovering a bar.
type Tooltip struct {
	Label string
	Cases string // "Casos: 40,000"
	Time  string // "Tiempo: 45 min"
}

// Lines returns the tooltip rows in display order.
func (t *Tooltip) Lines() []string {
	if t == nil {
		return nil
	}
	return []string{t.Label, t.Cases, t.Time}
}

// String joins the rows with newlines.
func (t *Tooltip) String() string {
	return strings.Join(t.Lines(), "\n")
}

// BuildTooltip builds the hover content for a bar. It returns nil when the
// hover is inactive or there is no payload.
func BuildTooltip(active bool, payload []PayloadEntry, label string) *Tooltip {
	if !active || len(payload) == 0 {
		return nil
	}

	first := payload[0]
	var rec models.TooltipRecord
	if first.Record != nil {
		rec = *first.Record
	}

	cases := "N/A"
	if rec.Cases != 0 {
		cases = FormatCases(rec.Cases)
	}

	var timeText string
	switch {
	case rec.TimeDisplay != "":
		timeText = rec.TimeDisplay
	case rec.TimeHours != "":
		timeText = rec.TimeHours
	default:
		timeText = strconv.FormatFloat(first.Value, 'f', -1, 64) + " min"
	}

	return &Tooltip{
		Label: label,
		Cases: "Casos: " + cases,
		Time:  "Tiempo: " + timeText,
	}
}

// PayloadFor returns the hover payload for a data point.
func PayloadFor(p models.Point) []PayloadEntry {
	rec := p.Record()
	return []PayloadEntry{{Value: p.Value(), Record: &rec}}
}

// TooltipFor returns the tooltip shown while hovering p.
func TooltipFor(p models.Point) *Tooltip {
	return BuildTooltip(true, PayloadFor(p), p.Category())
}

// FormatCases groups a case count with en-US separators (40000 -> "40,000").
func FormatCases(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}
