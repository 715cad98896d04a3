// internal/app/features/performance/types.go
package performance

import (
	"html/template"

	"github.com/dalemusser/stratadash/internal/app/system/viewdata"
	"github.com/dalemusser/stratadash/internal/domain/models"
)

// TabVM is one button of the tab bar.
type TabVM struct {
	Key    string
	Label  string
	URL    string
	Active bool
}

// ChartVM is the single chart section shown for the active tab.
type ChartVM struct {
	Tab        models.Tab
	Heading    string
	SVG        template.HTML // inline SVG document
	SeriesName string
	Color      string
	SVGURL     string
	PNGURL     string
	JSONURL    string
}

// SummaryCardVM is one of the per-process summary cards.
type SummaryCardVM struct {
	Title string
	Theme string // blue, green, purple
	Body  template.HTML
}

// CalloutVM is a titled block of short statements.
type CalloutVM struct {
	Title string
	Lead  template.HTML
	Items []string
}

// SummaryVM is the static improvements summary below the chart.
type SummaryVM struct {
	Title   string
	Cards   []SummaryCardVM
	Impact  CalloutVM
	Pending CalloutVM
}

// PageVM is the view model for the dashboard page.
type PageVM struct {
	viewdata.BaseVM
	Heading string
	Tabs    []TabVM
	Chart   ChartVM
	Summary SummaryVM
}
