package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeConfig drops YAML content into a temp file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Server.Listen != DefaultListen {
		t.Errorf("listen = %q, want %q", cfg.Server.Listen, DefaultListen)
	}
	if cfg.Document.TemplatePath != DefaultTemplatePath {
		t.Errorf("template path = %q, want %q", cfg.Document.TemplatePath, DefaultTemplatePath)
	}

	d, err := cfg.FetchTimeout()
	if err != nil {
		t.Fatalf("FetchTimeout() error = %v", err)
	}
	if d != 15*time.Second {
		t.Errorf("fetch timeout = %v, want 15s", d)
	}
}

func TestLoad(t *testing.T) {
	// Not parallel: subtests mutate the environment.

	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, `
server:
  listen: ":9090"
  workers: 2
anythingllm:
  url: "http://llm.local:3001"
  apiKey: "secret"
  timeout: "20s"
document:
  templatePath: "styles.docx"
upload:
  timeout: "45s"
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Server.Listen != ":9090" || cfg.Server.Workers != 2 {
			t.Errorf("server config = %+v", cfg.Server)
		}
		if cfg.Upstream.URL != "http://llm.local:3001" {
			t.Errorf("upstream url = %q", cfg.Upstream.URL)
		}
		if d, _ := cfg.UploadTimeout(); d != 45*time.Second {
			t.Errorf("upload timeout = %v, want 45s", d)
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv(EnvUpstreamURL, "http://override:3001")
		t.Setenv(EnvUpstreamKey, "env-key")

		path := writeConfig(t, `
anythingllm:
  url: "http://file:3001"
  apiKey: "file-key"
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Upstream.URL != "http://override:3001" {
			t.Errorf("upstream url = %q, want env override", cfg.Upstream.URL)
		}
		if cfg.Upstream.APIKey != "env-key" {
			t.Errorf("api key = %q, want env override", cfg.Upstream.APIKey)
		}
	})

	t.Run("env only without file", func(t *testing.T) {
		t.Setenv(EnvUpstreamURL, "http://env:3001")
		t.Setenv(EnvUpstreamKey, "env-key")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Server.Listen != DefaultListen {
			t.Errorf("listen = %q, want default", cfg.Server.Listen)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		path := writeConfig(t, `
anythingllm:
  url: "http://x"
  apiKey: "k"
bogus: true
`)
		_, err := Load(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		path := writeConfig(t, `
server:
  listen: ":9090"
`)
		_, err := Load(path)
		if !errors.Is(err, ErrMissingUpstream) {
			t.Errorf("error = %v, want ErrMissingUpstream", err)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Server.Workers = -1 },
			wantErr: ErrInvalidWorkers,
		},
		{
			name:    "bad fetch timeout",
			mutate:  func(c *Config) { c.Upstream.Timeout = "soon" },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative upload timeout",
			mutate:  func(c *Config) { c.Upload.Timeout = "-3s" },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "missing url",
			mutate:  func(c *Config) { c.Upstream.URL = "" },
			wantErr: ErrMissingUpstream,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			cfg.Upstream.URL = "http://llm:3001"
			cfg.Upstream.APIKey = "k"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
