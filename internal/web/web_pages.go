// Package web provides the HTTP server and web interface for go-frontis
package web

import (
	"github.com/gin-gonic/gin"
)

// pageHandler returns the handler serving one route table entry. Pages are
// pure template renders: no request state, no query parameters, no body.
func (s *WebServer) pageHandler(page PageDef) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := s.getBaseTemplateData(page.Title)
		s.renderTemplate(c, page.Template, data)
	}
}

// visiblePages returns the route table entries that belong in the nav.
// Hidden test pages are never linked, even while they are being served.
func visiblePages() []PageDef {
	pages := make([]PageDef, 0, len(pageDefs))
	for _, page := range pageDefs {
		if !page.Hidden {
			pages = append(pages, page)
		}
	}
	return pages
}
