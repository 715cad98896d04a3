// Package apicors provides CORS middleware for the public, read-only
// dataset API.
//
// The API serves compiled-in reference data without cookies or
// credentials, so any origin may read it. Only safe methods are allowed.
package apicors

import (
	"net/http"
)

// Middleware returns CORS middleware for read-only API endpoints.
//
// This middleware:
//   - Allows any origin (Access-Control-Allow-Origin: *)
//   - Allows GET, HEAD and OPTIONS only
//   - Lets clients send If-None-Match and read the ETag
//   - Answers preflight OPTIONS requests with 204
//
// Usage in routes.go:
//
//	r.Route("/api/performance", func(r chi.Router) {
//	    r.Use(apicors.Middleware())
//	    r.Mount("/", performancefeature.APIRoutes(h))
//	})
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Accept, Content-Type, If-None-Match")
			h.Set("Access-Control-Expose-Headers", "ETag")
			h.Set("Access-Control-Max-Age", "86400") // 24 hours

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
