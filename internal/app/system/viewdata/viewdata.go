// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/dalemusser/stratadash/internal/app/system/htmlsanitize"
	"github.com/dalemusser/stratadash/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title"),
//	}
type BaseVM struct {
	// Site settings (from configuration)
	SiteName   string
	FooterHTML template.HTML

	// Page context
	Title       string
	CurrentPath string
}

var (
	mu       sync.RWMutex
	settings = models.DefaultSiteSettings()
)

// Init sets the site settings used by New and NewBaseVM.
// Call this once at startup from bootstrap.
func Init(s models.SiteSettings) {
	mu.Lock()
	defer mu.Unlock()
	settings = s.WithDefaults()
}

// Settings returns the current site settings.
func Settings() models.SiteSettings {
	mu.RLock()
	defer mu.RUnlock()
	return settings
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	vm := New(r)
	vm.Title = title
	return vm
}

// New creates a BaseVM with the configured site settings.
// This is the standard way to create a BaseVM for most handlers.
func New(r *http.Request) BaseVM {
	s := Settings()
	return BaseVM{
		SiteName:    s.SiteName,
		FooterHTML:  htmlsanitize.SanitizeToHTML(s.FooterHTML),
		CurrentPath: httpnav.CurrentPath(r),
	}
}
