package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/frontis-web/go-frontis/internal/config"
)

// newTestServer builds a server on defaults suitable for tests: release
// mode serves the embedded assets, debug mode resolves template and static
// dirs relative to this package.
func newTestServer(t *testing.T, mutate func(*config.WebConfig)) *WebServer {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.TemplateDir = "templates"
	cfg.StaticDir = "static"
	if mutate != nil {
		mutate(cfg)
	}

	server, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func get(s *WebServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.Router.ServeHTTP(w, req)
	return w
}

func TestPageRoutes(t *testing.T) {
	testCases := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, "Welcome to Frontis"},
		{"/test/", http.StatusOK, "Test page"},
		{"/test2/", http.StatusOK, "Test2 page"},
		{"/missing/", http.StatusNotFound, ""},
		{"/admin", http.StatusNotFound, ""},
	}

	// routing must behave the same with and without debug mode
	for _, debug := range []bool{false, true} {
		server := newTestServer(t, func(c *config.WebConfig) { c.Debug = debug })
		for _, tc := range testCases {
			w := get(server, tc.path)
			if w.Code != tc.wantStatus {
				t.Errorf("debug=%t GET %s: expected status %d, got %d", debug, tc.path, tc.wantStatus, w.Code)
			}
			if tc.wantBody != "" && !strings.Contains(w.Body.String(), tc.wantBody) {
				t.Errorf("debug=%t GET %s: expected body to contain %q", debug, tc.path, tc.wantBody)
			}
		}
	}
}

func TestPageContentType(t *testing.T) {
	server := newTestServer(t, nil)

	w := get(server, "/")
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected text/html content type, got %q", ct)
	}
}

func TestHiddenPagesDisabled(t *testing.T) {
	server := newTestServer(t, func(c *config.WebConfig) { c.TestPages = false })

	if w := get(server, "/"); w.Code != http.StatusOK {
		t.Errorf("expected home page to stay up, got status %d", w.Code)
	}
	for _, path := range []string{"/test/", "/test2/", "/test", "/test2"} {
		if w := get(server, path); w.Code != http.StatusNotFound {
			t.Errorf("GET %s with test pages disabled: expected 404, got %d", path, w.Code)
		}
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	server := newTestServer(t, nil)

	w := get(server, "/test")
	if w.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301 for /test, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/test/" {
		t.Errorf("expected redirect to /test/, got %q", loc)
	}
}

func TestMethodNotRegistered(t *testing.T) {
	server := newTestServer(t, nil)

	for _, path := range []string{"/", "/test/", "/test2/"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("x=1"))
		server.Router.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("POST %s: expected 404, got %d", path, w.Code)
		}
	}
}

func TestPingRoute(t *testing.T) {
	server := newTestServer(t, nil)

	w := get(server, "/ping")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for /ping, got %d", w.Code)
	}
	if w.Body.String() != "pong" {
		t.Errorf("expected pong, got %q", w.Body.String())
	}
}

func TestRobotsTxt(t *testing.T) {
	server := newTestServer(t, nil)

	w := get(server, "/robots.txt")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for /robots.txt, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "User-agent:") {
		t.Errorf("expected robots.txt content, got %q", w.Body.String())
	}
}

func TestEmbeddedStaticFiles(t *testing.T) {
	server := newTestServer(t, nil)

	w := get(server, "/static/style.css")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for stylesheet, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("expected text/css content type, got %q", ct)
	}
	if w.Header().Get("Cache-Control") == "" {
		t.Error("expected Cache-Control header on static files")
	}

	if w := get(server, "/static/"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for static root, got %d", w.Code)
	}
	if w := get(server, "/static/nope.css"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing static file, got %d", w.Code)
	}
}

func TestDiskStaticFilesInDebug(t *testing.T) {
	server := newTestServer(t, func(c *config.WebConfig) { c.Debug = true })

	w := get(server, "/static/style.css")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for stylesheet from disk, got %d", w.Code)
	}
}

func TestFavicon(t *testing.T) {
	server := newTestServer(t, nil)

	w := get(server, "/favicon.ico")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for favicon, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("expected image/svg+xml, got %q", ct)
	}
}

func TestSecurityHeaders(t *testing.T) {
	server := newTestServer(t, nil)

	w := get(server, "/")
	if v := w.Header().Get("X-Frame-Options"); v != "DENY" {
		t.Errorf("expected X-Frame-Options DENY, got %q", v)
	}
	if v := w.Header().Get("X-Content-Type-Options"); v != "nosniff" {
		t.Errorf("expected X-Content-Type-Options nosniff, got %q", v)
	}
}

func TestBrokenTemplateDirInDebug(t *testing.T) {
	// an empty template dir breaks page renders but the embedded error
	// page must still answer with a 500
	server := newTestServer(t, func(c *config.WebConfig) {
		c.Debug = true
		c.TemplateDir = t.TempDir()
	})

	w := get(server, "/")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for broken template dir, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Template error") {
		t.Errorf("expected rendered error page, got %q", w.Body.String())
	}

	// release mode never touches the dir, pages come from the embedded set
	server = newTestServer(t, func(c *config.WebConfig) {
		c.TemplateDir = t.TempDir()
	})
	if w := get(server, "/"); w.Code != http.StatusOK {
		t.Errorf("expected 200 from embedded templates in release mode, got %d", w.Code)
	}
}

func TestHiddenPagesNotInNav(t *testing.T) {
	server := newTestServer(t, nil)

	w := get(server, "/")
	body := w.Body.String()
	if strings.Contains(body, `href="/test/"`) || strings.Contains(body, `href="/test2/"`) {
		t.Error("expected hidden pages to stay out of the nav")
	}
	if !strings.Contains(body, `href="/"`) {
		t.Error("expected home link in the nav")
	}
}
