// Package web provides the HTTP server and web interface for go-frontis
package web

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/frontis-web/go-frontis/internal/config"
	"github.com/gin-gonic/gin"
)

// getBaseTemplateData creates a TemplateData struct with common fields
func (s *WebServer) getBaseTemplateData(title string) TemplateData {
	return TemplateData{
		Title:      template.HTML(title),
		AppVersion: config.AppVersion,
		Port:       s.GetPort(),
		Pages:      visiblePages(),
	}
}

// GetPort returns the configured listen port
func (s *WebServer) GetPort() int {
	return s.Config.ListenPort
}

// errorPageData is TemplateData plus the error page fields. Detail carries
// the underlying error text and is only filled in debug mode.
type errorPageData struct {
	TemplateData
	StatusCode int
	Error      string
	Detail     string
}

// renderTemplate renders a page template wrapped in base.html. The render
// goes through a buffer so a template failing halfway cannot leak a partial
// page under a 200 status.
func (s *WebServer) renderTemplate(c *gin.Context, templateName string, data TemplateData) {
	tmpl, err := s.lookupTemplate(templateName)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		log.Printf("Error rendering template %s: %v", templateName, err)
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// renderError renders the error page with the given status code. The error
// template always comes from the embedded set, never from disk.
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	log.Printf("[ERROR]: web %d: %s (%s)", statusCode, message, errstring)

	data := errorPageData{
		TemplateData: s.getBaseTemplateData("Error"),
		StatusCode:   statusCode,
		Error:        message,
	}
	if s.Config.Debug {
		data.Detail = errstring
	}

	if tmpl, ok := s.templates[errorTemplate]; ok {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err == nil {
			c.Data(statusCode, "text/html; charset=utf-8", buf.Bytes())
			return
		}
	}
	// Last resort if the error template itself is broken
	c.String(statusCode, "Error: %s - %s", message, errstring)
}
