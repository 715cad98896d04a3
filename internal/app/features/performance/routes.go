// internal/app/features/performance/routes.go
package performance

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the dashboard page and chart routes.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ServeDashboard)
	r.Get("/{tab}/chart.svg", h.ServeChartSVG)
	r.Get("/{tab}/chart.png", h.ServeChartPNG)
	return r
}

// APIRoutes returns the read-only dataset API.
func APIRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ServeDatasets)
	r.Get("/{tab}", h.ServeDataset)
	return r
}
