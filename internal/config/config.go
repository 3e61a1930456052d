// Package config provides configuration management for go-frontis.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var AppVersion = "-unset-" // will be set at build time

const (
	// DefaultSettingsFile is where Load looks when no explicit path is given.
	// The default file is allowed to be absent; an explicit path is not.
	DefaultSettingsFile = "settings.toml"

	// Default web listener port
	DefaultListenPort = 8380

	// Asset locations inside the repository. Debug mode reads templates and
	// static files from these directories on every request so edits show up
	// without a restart; release builds serve the embedded copies.
	DefaultTemplateDir = "internal/web/templates"
	DefaultStaticDir   = "internal/web/static"

	// Valid listener port range
	MinListenPort = 1024
	MaxListenPort = 65535
)

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenPort  int    `toml:"listen_port"`
	SSL         bool   `toml:"ssl"`
	CertFile    string `toml:"cert_file,omitempty"`
	KeyFile     string `toml:"key_file,omitempty"`
	StaticDir   string `toml:"static_dir"`
	TemplateDir string `toml:"template_dir"`
	Debug       bool   `toml:"debug"`      // verbose error pages, template auto-reload, pprof endpoint
	TestPages   bool   `toml:"test_pages"` // serve the hidden /test/ and /test2/ pages
}

// NewDefaultConfig returns a configuration with sensible defaults:
// plain HTTP on DefaultListenPort, debug off, test pages on.
func NewDefaultConfig() *WebConfig {
	return &WebConfig{
		ListenPort:  DefaultListenPort,
		SSL:         false,
		StaticDir:   DefaultStaticDir,
		TemplateDir: DefaultTemplateDir,
		Debug:       false,
		TestPages:   true,
	}
}

// Load reads settings from the given TOML file on top of the defaults, so
// fields missing from the file keep their default values. An empty path
// means DefaultSettingsFile, which may be absent; an explicit path that
// cannot be read or parsed stops startup.
func Load(path string) (*WebConfig, error) {
	cfg := NewDefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultSettingsFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports configuration errors that must stop startup.
func (c *WebConfig) Validate() error {
	if c.ListenPort < MinListenPort || c.ListenPort > MaxListenPort {
		return fmt.Errorf("invalid port number: %d (must be between %d and %d)", c.ListenPort, MinListenPort, MaxListenPort)
	}
	if c.SSL && (c.CertFile == "" || c.KeyFile == "") {
		return errors.New("SSL enabled but cert_file or key_file not specified in config")
	}
	return nil
}
