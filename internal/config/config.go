// Package config loads server configuration from YAML with environment
// variable overrides for the AnythingLLM credentials.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrMissingUpstream = errors.New("anythingllm url and api key must be configured")
	ErrInvalidTimeout  = errors.New("invalid timeout")
	ErrInvalidWorkers  = errors.New("invalid workers value")
)

// Environment variable overrides, names shared with the deployment.
const (
	EnvUpstreamURL = "ANYTHINGLLM_API_URL"
	EnvUpstreamKey = "ANYTHINGLLM_API_KEY"
)

// Defaults applied by Default and for empty fields.
const (
	DefaultListen        = ":8080"
	DefaultFetchTimeout  = "15s"
	DefaultUploadTimeout = "30s"
	DefaultTemplatePath  = "template.docx"
)

// Config holds all configuration for the document service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"anythingllm"`
	Document DocumentConfig `yaml:"document"`
	Upload   UploadConfig   `yaml:"upload"`
}

// ServerConfig defines HTTP listener options.
type ServerConfig struct {
	Listen  string `yaml:"listen"`  // Listen address (default ":8080")
	Workers int    `yaml:"workers"` // Concurrent document builds (0 = auto)
}

// UpstreamConfig defines the AnythingLLM connection.
type UpstreamConfig struct {
	URL     string `yaml:"url"`     // Base URL, e.g. "http://192.168.1.5:3001"
	APIKey  string `yaml:"apiKey"`  // Bearer token
	Timeout string `yaml:"timeout"` // Go duration (default "15s")
}

// DocumentConfig defines rendering options.
type DocumentConfig struct {
	TemplatePath string `yaml:"templatePath"` // DOCX style template (missing file = blank document)
}

// UploadConfig defines file host options.
type UploadConfig struct {
	Timeout string `yaml:"timeout"` // Go duration (default "30s")
}

// Default returns a configuration with working defaults and no upstream
// credentials; those come from the file or the environment.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Listen: DefaultListen},
		Upstream: UpstreamConfig{Timeout: DefaultFetchTimeout},
		Document: DocumentConfig{TemplatePath: DefaultTemplatePath},
		Upload:   UploadConfig{Timeout: DefaultUploadTimeout},
	}
}

// Load reads a YAML config file, applies environment overrides, and
// validates the result. An empty path skips the file and uses defaults
// plus environment, matching the original deployment where credentials
// arrive purely via environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- config path is operator-provided
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv lets environment variables override the upstream connection.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvUpstreamURL); v != "" {
		c.Upstream.URL = v
	}
	if v := os.Getenv(EnvUpstreamKey); v != "" {
		c.Upstream.APIKey = v
	}
}

// Validate checks field values. The upstream connection is required:
// without it the service cannot serve its main endpoint.
func (c *Config) Validate() error {
	if c.Upstream.URL == "" || c.Upstream.APIKey == "" {
		return ErrMissingUpstream
	}
	if c.Server.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Server.Workers)
	}
	if _, err := c.FetchTimeout(); err != nil {
		return err
	}
	if _, err := c.UploadTimeout(); err != nil {
		return err
	}
	return nil
}

// FetchTimeout parses the upstream timeout, empty meaning the default.
func (c *Config) FetchTimeout() (time.Duration, error) {
	return parseTimeout(c.Upstream.Timeout, DefaultFetchTimeout)
}

// UploadTimeout parses the upload timeout, empty meaning the default.
func (c *Config) UploadTimeout() (time.Duration, error) {
	return parseTimeout(c.Upload.Timeout, DefaultUploadTimeout)
}

func parseTimeout(value, fallback string) (time.Duration, error) {
	if value == "" {
		value = fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, value)
	}
	return d, nil
}
