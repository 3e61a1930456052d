// Package web provides the HTTP server and web interface for go-frontis
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
)

//go:embed templates/*.html
var EmbeddedTemplatesFS embed.FS

// errorTemplate is the template behind renderError; it is not part of the route table.
const errorTemplate = "error.html"

// loadTemplates parses every page template from the embedded set, each one
// together with base.html. A template that does not parse is a build defect
// and fails startup.
func (s *WebServer) loadTemplates() error {
	sub, err := fs.Sub(EmbeddedTemplatesFS, "templates")
	if err != nil {
		return fmt.Errorf("embedded templates: %w", err)
	}

	names := make([]string, 0, len(pageDefs)+1)
	for _, page := range pageDefs {
		names = append(names, page.Template)
	}
	names = append(names, errorTemplate)

	s.templates = make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.ParseFS(sub, "base.html", name)
		if err != nil {
			return fmt.Errorf("parse embedded template %s: %w", name, err)
		}
		s.templates[name] = tmpl
	}
	return nil
}

// lookupTemplate returns the template set for one page. Release mode serves
// the embedded copy parsed at startup; debug mode re-parses from the
// template dir on every request so edits show up without a restart.
func (s *WebServer) lookupTemplate(name string) (*template.Template, error) {
	if s.Config.Debug {
		return template.ParseFS(os.DirFS(s.Config.TemplateDir), "base.html", name)
	}
	tmpl, ok := s.templates[name]
	if !ok {
		return nil, fmt.Errorf("template not registered: %s", name)
	}
	return tmpl, nil
}
