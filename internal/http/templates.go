package http

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}
