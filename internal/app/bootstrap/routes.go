// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/stratadash/internal/app/features/errors"
	healthfeature "github.com/dalemusser/stratadash/internal/app/features/health"
	performancefeature "github.com/dalemusser/stratadash/internal/app/features/performance"
	appresources "github.com/dalemusser/stratadash/internal/app/resources"
	"github.com/dalemusser/stratadash/internal/app/system/apicors"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, catalog setup and Startup have
// completed. It boots the template engine, installs the global middleware
// and mounts the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	r.Use(chimw.Timeout(appCfg.RequestTimeout))
	r.Use(middleware.CORSFromConfig(coreCfg))
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	mountRoutes(r, appCfg, deps, logger)
	return r, nil
}

// mountRoutes registers every feature route on r.
func mountRoutes(r chi.Router, appCfg AppConfig, deps DBDeps, logger *zap.Logger) {
	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	// Health checks
	healthHandler := healthfeature.NewHandler(deps.Datasets, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Embedded stylesheet
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))

	// Dashboard, charts and dataset API
	perfHandler := performancefeature.NewHandler(deps.Datasets, appCfg.performanceOptions(), errLog, logger)
	r.Get("/", perfHandler.ServeDashboard)
	r.Mount("/performance", performancefeature.Routes(perfHandler))
	r.Route("/api/performance", func(r chi.Router) {
		r.Use(apicors.Middleware())
		r.Mount("/", performancefeature.APIRoutes(perfHandler))
	})

	r.NotFound(errorsHandler.NotFound)
}
