// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"time"

	"github.com/dalemusser/stratadash/internal/app/features/performance"
	"github.com/dalemusser/stratadash/internal/domain/models"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
type AppConfig struct {
	// Page chrome
	SiteName   string // Heading and <title> suffix
	FooterHTML string // Footer markup, sanitized before rendering

	// Dashboard behavior
	DefaultTab  string // Tab shown when ?tab= is missing or unknown (aps, noConsiderados, pgu)
	ChartWidth  int    // Chart viewBox width in pixels (default: 900)
	ChartHeight int    // Chart viewBox height in pixels (default: 400)

	// HTTP behavior
	RequestTimeout time.Duration // Per-request timeout (default: 30s)
	CacheMaxAge    time.Duration // Cache-Control max-age for pages, charts and API (0 sends no-cache)
}

// siteSettings returns the page chrome settings used by viewdata.
func (c AppConfig) siteSettings() models.SiteSettings {
	s := models.SiteSettings{
		SiteName:   c.SiteName,
		FooterHTML: c.FooterHTML,
	}
	if t, ok := models.ParseTab(c.DefaultTab); ok {
		s.DefaultTab = t
	}
	return s.WithDefaults()
}

// performanceOptions returns the dashboard handler options.
func (c AppConfig) performanceOptions() performance.Options {
	return performance.Options{
		DefaultTab:  c.siteSettings().DefaultTab,
		Charts:      performance.ChartConfig{Width: c.ChartWidth, Height: c.ChartHeight},
		CacheMaxAge: c.CacheMaxAge,
	}
}
