package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bundle-cli/internal/domain/model"
	"bundle-cli/pkg/env"
)

const (
	// EnvBaseURL is the address of the platform external API claims resolve against.
	EnvBaseURL = "ENTANDO_CLI_BASE_URL"
	// EnvCatalogURL overrides the catalog address derived from EnvBaseURL.
	EnvCatalogURL = "ENTANDO_CLI_CATALOG_URL"
	// EnvCatalogToken is sent as a bearer token to the catalog.
	EnvCatalogToken = "ENTANDO_CLI_CATALOG_TOKEN"
	// EnvCatalogTimeout bounds catalog requests, e.g. "5s".
	EnvCatalogTimeout = "ENTANDO_CLI_CATALOG_TIMEOUT"
)

var (
	// catalogPath can be overridden at build time.
	catalogPath string
)

const (
	defaultLogLevel       = "info"
	defaultCatalogPath    = "/digital-exchange"
	defaultCatalogTimeout = 10 * time.Second
)

// Config holds the application configuration
type Config struct {
	// BundleRoot is the absolute path of the bundle every operation works on.
	BundleRoot string
	// LogLevel specifies the minimum log level to output (debug, info, warn, error).
	LogLevel string
	// BaseURL is empty when the platform is not configured.
	BaseURL        string
	CatalogURL     string
	CatalogToken   string
	CatalogTimeout time.Duration
}

// prepareConfig applies defaults to unset fields
func prepareConfig(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.CatalogURL == "" && cfg.BaseURL != "" {
		path := defaultCatalogPath
		if catalogPath != "" {
			path = catalogPath
		}
		cfg.CatalogURL = cfg.BaseURL + path
	}
	cfg.CatalogURL = strings.TrimSuffix(cfg.CatalogURL, "/")
	if cfg.CatalogTimeout <= 0 {
		cfg.CatalogTimeout = defaultCatalogTimeout
	}
}

// LoadConfig builds the configuration from command line values and the
// process environment. An empty bundleRoot means the working directory.
func LoadConfig(bundleRoot, logLevel string) (*Config, error) {
	root, err := resolveBundleRoot(bundleRoot)
	if err != nil {
		return nil, err
	}

	timeout, err := env.Duration(EnvCatalogTimeout, defaultCatalogTimeout)
	if err != nil {
		return nil, model.NewEnvironmentError("%v", err)
	}

	cfg := &Config{
		BundleRoot:     root,
		LogLevel:       logLevel,
		BaseURL:        env.Get(EnvBaseURL, ""),
		CatalogURL:     env.Get(EnvCatalogURL, ""),
		CatalogToken:   env.Get(EnvCatalogToken, ""),
		CatalogTimeout: timeout,
	}
	prepareConfig(cfg)
	return cfg, nil
}

func resolveBundleRoot(bundleRoot string) (string, error) {
	if bundleRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", model.WrapEnvironmentError(err, "failed to determine the working directory")
		}
		bundleRoot = wd
	}

	root, err := filepath.Abs(bundleRoot)
	if err != nil {
		return "", model.WrapEnvironmentError(err, "invalid bundle root %s", bundleRoot)
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", model.NewEnvironmentError("bundle root %s is not a directory", root)
	}
	return root, nil
}

// GetLayout returns the paths of the bundle.
func (c *Config) GetLayout() model.Layout {
	return model.NewLayout(c.BundleRoot)
}

func (c *Config) GetDescriptorPath() string {
	return c.GetLayout().DescriptorPath()
}

func (c *Config) GetBaseURL() string {
	return c.BaseURL
}

func (c *Config) GetCatalogURL() string {
	return c.CatalogURL
}

func (c *Config) String() string {
	return fmt.Sprintf("bundle_root=%s base_url=%s catalog_url=%s", c.BundleRoot, c.BaseURL, c.CatalogURL)
}
