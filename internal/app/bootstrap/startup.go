// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/stratadash/internal/app/resources"
	"github.com/dalemusser/stratadash/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after the catalog is built and validated, but before
// the HTTP handler is built and requests are served.
//
// It registers the shared layout templates and installs the site settings
// every page view model is built from. Returning a non-nil error aborts
// startup.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	settings := appCfg.siteSettings()
	viewdata.Init(settings)

	logger.Info("dashboard settings applied",
		zap.String("site_name", settings.SiteName),
		zap.String("default_tab", string(settings.DefaultTab)),
	)
	return nil
}
