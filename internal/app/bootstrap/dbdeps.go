// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	perfstore "github.com/dalemusser/stratadash/internal/app/store/performance"
)

// DBDeps holds the backend dependencies for this WAFFLE app.
//
// It is created in ConnectDB and passed to EnsureSchema, Startup and
// BuildHandler. The dashboard has no external database; its only backend
// is the in-memory catalog of performance datasets.
type DBDeps struct {
	Datasets *perfstore.Store
}
