// internal/app/features/performance/view.go
package performance

import (
	"fmt"
	"net/url"

	perfstore "github.com/dalemusser/stratadash/internal/app/store/performance"
	"github.com/dalemusser/stratadash/internal/app/system/viewdata"
	"github.com/dalemusser/stratadash/internal/domain/models"
)

// PageTitle is the browser title of the dashboard page.
const PageTitle = "Rendimiento"

// BuildView composes the dashboard for the selected tab: heading, tab bar,
// the active chart and the static summary. It is a pure function of its
// inputs.
func BuildView(base viewdata.BaseVM, state *TabState, store *perfstore.Store, charts ChartConfig) (PageVM, error) {
	current := state.Current()

	ds, err := store.Get(current)
	if err != nil {
		return PageVM{}, err
	}

	svgDoc, err := charts.InlineSVG(ds)
	if err != nil {
		return PageVM{}, fmt.Errorf("render %s chart: %w", current, err)
	}

	tabs := make([]TabVM, 0, len(models.AllTabs()))
	for _, t := range models.AllTabs() {
		tabs = append(tabs, TabVM{
			Key:    string(t),
			Label:  t.Label(),
			URL:    "?tab=" + url.QueryEscape(string(t)),
			Active: state.IsActive(t),
		})
	}

	return PageVM{
		BaseVM:  base,
		Heading: "📊 " + base.SiteName,
		Tabs:    tabs,
		Chart: ChartVM{
			Tab:        current,
			Heading:    ds.Heading(),
			SVG:        svgDoc,
			SeriesName: ds.SeriesName,
			Color:      ds.Color,
			SVGURL:     chartURL(current, "svg"),
			PNGURL:     chartURL(current, "png"),
			JSONURL:    "/api/performance/" + url.PathEscape(string(current)),
		},
		Summary: Summary(),
	}, nil
}

func chartURL(t models.Tab, ext string) string {
	return "/performance/" + url.PathEscape(string(t)) + "/chart." + ext
}
