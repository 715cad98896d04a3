// internal/domain/models/sitesettings.go
package models

// SiteSettings holds the site-wide display settings. They come from
// configuration; nothing here is persisted.
type SiteSettings struct {
	SiteName   string // Name shown in the page header
	FooterHTML string // Footer markup, sanitized before rendering
	DefaultTab Tab    // Tab shown when the request does not select one
}

// DefaultSiteName is the default site name used when none is configured.
const DefaultSiteName = "Comparativo de Rendimiento del Sistema"

// DefaultFooterHTML is the default footer text.
const DefaultFooterHTML = "Datos de referencia de las pruebas de rendimiento"

// DefaultSiteSettings returns the settings used when configuration leaves them blank.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:   DefaultSiteName,
		FooterHTML: DefaultFooterHTML,
		DefaultTab: DefaultTab,
	}
}

// WithDefaults fills blank fields from DefaultSiteSettings.
func (s SiteSettings) WithDefaults() SiteSettings {
	d := DefaultSiteSettings()
	if s.SiteName == "" {
		s.SiteName = d.SiteName
	}
	if s.FooterHTML == "" {
		s.FooterHTML = d.FooterHTML
	}
	if !s.DefaultTab.IsValid() {
		s.DefaultTab = d.DefaultTab
	}
	return s
}
