// Web server entry point for go-frontis
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/frontis-web/go-frontis/internal/config"
	"github.com/frontis-web/go-frontis/internal/web"
	prof "github.com/go-while/go-cpu-mem-profiler"
)

var (
	// command-line flags
	settingsPath string
	webport      int
	webssl       bool
	webcertFile  string
	webkeyFile   string
	debugMode    bool
	noTestPages  bool
)

var (
	Prof       *prof.Profiler
	appVersion = "-unset-"
)

// pprof web UI, only bound in debug mode
const profilerAddr = ":51181"

func main() {
	config.AppVersion = appVersion

	flag.StringVar(&settingsPath, "settings", "", "Path to settings file (default: ./settings.toml if present)")
	flag.IntVar(&webport, "webport", 0, "Web server port (default: 8380)")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.BoolVar(&debugMode, "debug", false, "Debug mode: verbose error pages, template auto-reload, pprof endpoint")
	flag.BoolVar(&noTestPages, "notestpages", false, "Do not serve the hidden /test/ and /test2/ pages")
	flag.Parse()

	log.Printf("Starting go-frontis web server (version: %s)", appVersion)

	// Load configuration from file or use defaults
	webConfig, err := config.Load(settingsPath)
	if err != nil {
		log.Fatalf("[WEB]: Failed to load settings: %v", err)
	}

	// Override config with command-line flags if provided
	if webport > 0 {
		webConfig.ListenPort = webport
		log.Printf("[WEB]: Overriding listen port with command-line flag: %d", webConfig.ListenPort)
	}
	if webssl {
		webConfig.SSL = true
		log.Printf("[WEB]: SSL enabled via command-line flag")
	}
	if webcertFile != "" {
		webConfig.CertFile = webcertFile
	}
	if webkeyFile != "" {
		webConfig.KeyFile = webkeyFile
	}
	if debugMode {
		webConfig.Debug = true
	}
	if noTestPages {
		webConfig.TestPages = false
	}

	if err := webConfig.Validate(); err != nil {
		log.Fatalf("[WEB]: Invalid configuration: %v", err)
	}
	log.Printf("[WEB]: Using configuration - port: %d, ssl: %t, debug: %t, test pages: %t",
		webConfig.ListenPort, webConfig.SSL, webConfig.Debug, webConfig.TestPages)

	if webConfig.Debug {
		Prof = prof.NewProf()
		go Prof.PprofWeb(profilerAddr)
		log.Printf("[WEB]: Debug mode enabled, pprof web profiler on %s", profilerAddr)
	}

	server, err := web.NewServer(webConfig)
	if err != nil {
		log.Fatalf("[WEB]: Failed to create web server: %v", err)
	}

	// Set up cross-platform signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt) // Cross-platform (Ctrl+C on both Windows and Linux)

	// Start web server in goroutine to make it non-blocking
	webServerErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			webServerErrChan <- err
		}
	}()

	protocol := "http"
	if webConfig.SSL {
		protocol = "https"
	}
	ready := color.New(color.FgGreen, color.Bold)
	log.Printf("[WEB]: %s", ready.Sprintf("Serving on %s://localhost:%d", protocol, webConfig.ListenPort))
	log.Printf("[WEB]: Press Ctrl+C to gracefully shutdown...")

	// Wait for either shutdown signal or server error
	select {
	case <-sigChan:
		log.Printf("[WEB]: Received shutdown signal, initiating graceful shutdown...")
	case err := <-webServerErrChan:
		log.Fatalf("[WEB]: Failed to start web server: %v", err)
	}

	log.Printf("[WEB]: Graceful shutdown completed")
} // end main
