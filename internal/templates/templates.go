// Package templates embeds the HTML pages served by the web frontend.
package templates

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed layout/*.html pages/*.html forms/*.html errors/*.html
var files embed.FS

// Load parses every page. Pages are addressed by file name, e.g. "venues.html".
func Load() (*template.Template, error) {
	funcs := template.FuncMap{
		"join": strings.Join,
	}
	return template.New("").Funcs(funcs).ParseFS(files,
		"layout/*.html", "pages/*.html", "forms/*.html", "errors/*.html")
}
