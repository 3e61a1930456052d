// Package web provides the HTTP server and web interface for go-frontis
package web

import (
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strconv"

	"github.com/frontis-web/go-frontis/internal/config"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// WebServer represents the web server
type WebServer struct {
	Router *gin.Engine
	Config *config.WebConfig

	// templates holds the embedded template sets, parsed once at startup.
	// Debug mode bypasses it for page templates and re-parses from
	// Config.TemplateDir on every request; the error page always renders
	// from here so a broken template dir cannot take it down as well.
	templates map[string]*template.Template
}

// PageDef describes one server-rendered page: the route it answers on, the
// template that renders it and its nav title. Hidden pages stay out of the
// nav and are only registered when WebConfig.TestPages is set.
type PageDef struct {
	Route    string
	Template string
	Title    string
	Hidden   bool
}

// pageDefs is the route table. It is fixed at compile time and walked once
// during setupRoutes; nothing registers routes after startup.
var pageDefs = []PageDef{
	{Route: "/", Template: "home.html", Title: "Home"},
	{Route: "/test/", Template: "test.html", Title: "Test", Hidden: true},
	{Route: "/test2/", Template: "test2.html", Title: "Test2", Hidden: true},
}

// TemplateData represents common template data. Every field is fixed at
// process start; handlers never add per-request values.
type TemplateData struct {
	Title      template.HTML
	AppVersion string
	Port       int
	Pages      []PageDef // nav entries, hidden pages excluded
}

// NewServer creates a new web server instance
func NewServer(webconfig *config.WebConfig) (*WebServer, error) {
	if webconfig.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Trust only loopback and RFC1918 proxies for client IP headers
	router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})

	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	// Only set HTTPS-specific headers when we terminate SSL ourselves,
	// not when a reverse proxy in front of us does
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	router.Use(secure.New(secureConfig))

	server := &WebServer{
		Router: router,
		Config: webconfig,
	}
	if err := server.loadTemplates(); err != nil {
		return nil, err
	}

	router.Use(server.ReverseProxyMiddleware())
	server.setupRoutes()

	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	// Static files first (highest priority). Debug mode serves them from
	// disk so stylesheet edits show up without a restart.
	if s.Config.Debug {
		s.Router.Static("/static", s.Config.StaticDir)
	} else {
		s.Router.GET("/static/*filepath", EmbeddedStaticHandler("/static"))
	}
	s.Router.GET("/favicon.ico", EmbeddedFileHandler("static/favicon.svg"))

	s.Router.GET("/robots.txt", func(c *gin.Context) {
		content, err := fs.ReadFile(EmbeddedStaticFS, "static/robots.txt")
		if err != nil {
			// no robots.txt shipped, serve a permissive default
			c.String(http.StatusOK, "User-agent: *\nDisallow:\n")
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", content)
	})

	// Health check endpoint
	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// Server-rendered pages, straight from the route table. Skipping the
	// hidden entries turns the full three-page layout into the reduced
	// home-only one; there is no second registration path.
	for _, page := range pageDefs {
		if page.Hidden && !s.Config.TestPages {
			continue
		}
		s.Router.GET(page.Route, s.pageHandler(page))
	}

	// Everything else falls through to gin's default 404.
}

// ReverseProxyMiddleware handles X-Forwarded headers when running behind a reverse proxy
func (s *WebServer) ReverseProxyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if proto := c.GetHeader("X-Forwarded-Proto"); proto == "https" {
			c.Request.URL.Scheme = "https"
		}
		if host := c.GetHeader("X-Forwarded-Host"); host != "" {
			c.Request.Host = host
		}
		c.Next()
	}
}

// Start starts the web server with SSL support if configured
func (s *WebServer) Start() error {
	addr := ":" + strconv.Itoa(s.Config.ListenPort)

	if s.Config.SSL {
		if s.Config.CertFile == "" || s.Config.KeyFile == "" {
			return errors.New("SSL enabled but cert_file or key_file not specified in config")
		}
		log.Printf("Starting HTTPS server on %s", addr)
		return s.Router.RunTLS(addr, s.Config.CertFile, s.Config.KeyFile)
	}

	log.Printf("Starting HTTP server on %s", addr)
	return s.Router.Run(addr)
}
