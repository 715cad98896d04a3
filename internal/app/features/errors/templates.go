// internal/app/features/errors/templates.go
package errors

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

// errorPages lists the page templates this feature renders.
var errorPages = []string{
	"templates/not_found.gohtml",
	"templates/internal.gohtml",
}

//go:embed templates/not_found.gohtml templates/internal.gohtml
var pagesFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "errors",
		FS:       pagesFS,
		Patterns: errorPages,
	})
}
