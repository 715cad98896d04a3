// internal/app/bootstrap/hooks.go
package bootstrap

import (
	"github.com/dalemusser/waffle/app"
)

// Hooks wires this app into the WAFFLE lifecycle.
// Each function is called in order by app.Run, from configuration
// loading through catalog setup, one-time startup work, and HTTP handler
// construction. There is nothing to release on shutdown, so Shutdown is nil.
var Hooks = app.Hooks[AppConfig, DBDeps]{
	Name:           "stratadash",   // used only for logging/diagnostics
	LoadConfig:     LoadConfig,     // load core + app config
	ValidateConfig: ValidateConfig, // check tab, chart size and timeouts
	ConnectDB:      ConnectDB,      // build the dataset catalog
	EnsureSchema:   EnsureSchema,   // validate catalog invariants
	Startup:        Startup,        // shared templates, site settings
	BuildHandler:   BuildHandler,   // build the HTTP router + middleware stack
}
