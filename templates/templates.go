// Package templates embeds the HTML pages served by the form handler.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every embedded page, ready for gin's SetHTMLTemplate.
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
