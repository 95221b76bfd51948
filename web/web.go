// Package web embeds the page templates and the static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Templates parses all page templates. Each page is named after its file.
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}

// Static returns the static assets, rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
