package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/assessor/internal/config"
)

const baseConfig = `
shutdown_timeout = "45s"
version = "1.2.0"

[server]
port = 8080
read_header_timeout = "5s"

[database]
host = "localhost"
port = 5432
name = "assessor"
user = "assessor"

[storage]
container_name = "survey-exports"

[api]
base_path = "/api"
max_body_size = "2MB"

[api.pagination]
default_limit = 25
max_limit = 60

[api.cors]
enabled = true
origins = ["http://localhost:3000"]

[api.openapi]
title = "Assessor"
`

const overlayConfig = `
[server]
port = 9090

[database]
host = "db.staging.internal"
`

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func loadFrom(t *testing.T, files map[string]string) (*config.Config, error) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		writeConfig(t, dir, name, content)
	}
	t.Chdir(dir)
	return config.Load()
}

func TestLoad(t *testing.T) {
	cfg, err := loadFrom(t, map[string]string{"config.toml": baseConfig})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Version != "1.2.0" || cfg.ShutdownTimeoutDuration() != 45*time.Second {
		t.Errorf("root = version %s, shutdown %s", cfg.Version, cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.ReadHeaderTimeoutDuration() != 5*time.Second {
		t.Errorf("read_header_timeout = %s", cfg.Server.ReadHeaderTimeoutDuration())
	}
	if cfg.Server.DrainTimeoutDuration() != 20*time.Second {
		t.Errorf("drain_timeout default = %s", cfg.Server.DrainTimeoutDuration())
	}
	if cfg.Storage.ContainerName != "survey-exports" || cfg.Storage.Enabled() {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.API.Pagination.DefaultLimit != 25 || cfg.API.Pagination.MaxLimit != 60 {
		t.Errorf("pagination = %+v", cfg.API.Pagination)
	}
	if cfg.API.MaxBodySizeBytes() != 2<<20 {
		t.Errorf("MaxBodySizeBytes() = %d", cfg.API.MaxBodySizeBytes())
	}
	if !cfg.API.CORS.Enabled || len(cfg.API.CORS.Origins) != 1 {
		t.Errorf("cors = %+v", cfg.API.CORS)
	}
	if cfg.API.OpenAPI.Title != "Assessor" || cfg.API.OpenAPI.Description == "" {
		t.Errorf("openapi = %+v", cfg.API.OpenAPI)
	}
	if cfg.Env() != "local" {
		t.Errorf("Env() = %q, want local", cfg.Env())
	}
}

func TestLoadOverlay(t *testing.T) {
	t.Setenv("ASSESSOR_ENV", "staging")

	cfg, err := loadFrom(t, map[string]string{
		"config.toml":         baseConfig,
		"config.staging.toml": overlayConfig,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port = %d, want overlay 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.staging.internal" {
		t.Errorf("db host = %q, want overlay", cfg.Database.Host)
	}
	if cfg.Database.Name != "assessor" {
		t.Errorf("db name = %q, want base value kept", cfg.Database.Name)
	}
	if !cfg.API.CORS.Enabled {
		t.Error("overlay without [api.cors] disabled cors")
	}
	if cfg.Env() != "staging" {
		t.Errorf("Env() = %q", cfg.Env())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ASSESSOR_VERSION", "2.0.0")
	t.Setenv("ASSESSOR_SERVER_PORT", "3000")
	t.Setenv("ASSESSOR_API_MAX_BODY_SIZE", "512KB")
	t.Setenv("ASSESSOR_PAGINATION_MAX_LIMIT", "80")
	t.Setenv("ASSESSOR_STORAGE_CONNECTION_STRING", "UseDevelopmentStorage=true")

	cfg, err := loadFrom(t, map[string]string{"config.toml": baseConfig})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Version != "2.0.0" || cfg.Server.Port != 3000 {
		t.Errorf("version %s port %d", cfg.Version, cfg.Server.Port)
	}
	if cfg.API.MaxBodySizeBytes() != 512<<10 {
		t.Errorf("MaxBodySizeBytes() = %d", cfg.API.MaxBodySizeBytes())
	}
	if cfg.API.Pagination.MaxLimit != 80 {
		t.Errorf("max limit = %d", cfg.API.Pagination.MaxLimit)
	}
	if !cfg.Storage.Enabled() {
		t.Error("storage not enabled by env connection string")
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("ASSESSOR_DB_URL", "postgres://assessor@localhost:5432/assessor?sslmode=disable")

	cfg, err := loadFrom(t, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
	if cfg.Database.ConnectionURL() != "postgres://assessor@localhost:5432/assessor?sslmode=disable" {
		t.Errorf("ConnectionURL() = %q", cfg.Database.ConnectionURL())
	}
	if cfg.API.Pagination.DefaultLimit != 50 || cfg.API.Pagination.MaxLimit != 100 {
		t.Errorf("pagination defaults = %+v", cfg.API.Pagination)
	}
	if cfg.API.MaxBodySizeBytes() != 1<<20 {
		t.Errorf("max body default = %d", cfg.API.MaxBodySizeBytes())
	}
}

func TestLoadConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	t.Chdir(t.TempDir())
	t.Setenv("ASSESSOR_CONFIG_DIR", dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Version != "1.2.0" {
		t.Errorf("version = %q, want value from ASSESSOR_CONFIG_DIR", cfg.Version)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		env   map[string]string
	}{
		{"malformed toml", map[string]string{"config.toml": "[server\nport = 1"}, nil},
		{"missing database credentials", nil, nil},
		{"bad port", map[string]string{"config.toml": baseConfig}, map[string]string{"ASSESSOR_SERVER_PORT": "70000"}},
		{"bad timeout", map[string]string{"config.toml": baseConfig}, map[string]string{"ASSESSOR_SERVER_IDLE_TIMEOUT": "forever"}},
		{"bad body size", map[string]string{"config.toml": baseConfig}, map[string]string{"ASSESSOR_API_MAX_BODY_SIZE": "lots"}},
		{"bad shutdown", map[string]string{"config.toml": baseConfig}, map[string]string{"ASSESSOR_SHUTDOWN_TIMEOUT": "soon"}},
		{"limit above max", map[string]string{"config.toml": baseConfig}, map[string]string{"ASSESSOR_PAGINATION_DEFAULT_LIMIT": "500"}},
		{"unknown key", map[string]string{"config.toml": baseConfig + "\n[cache]\nttl = \"1m\"\n"}, nil},
		{"misspelled overlay key", map[string]string{"config.toml": baseConfig, "config.staging.toml": "[server]\nprot = 9090\n"}, map[string]string{"ASSESSOR_ENV": "staging"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := loadFrom(t, tt.files); err == nil {
				t.Fatal("Load() succeeded, want error")
			}
		})
	}
}

func TestLoggingConfig(t *testing.T) {
	t.Setenv("ASSESSOR_LOG_FORMAT", "JSON")

	cfg, err := loadFrom(t, map[string]string{"config.toml": baseConfig + "\n[logging]\nlevel = \"debug\"\n"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}

	var buf bytes.Buffer
	cfg.Logging.NewLogger(&buf).Debug("probe", "system", "test")
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"msg":"probe"`) {
		t.Errorf("debug JSON line not written: %q", buf.String())
	}

	t.Setenv("ASSESSOR_LOG_LEVEL", "verbose")
	if _, err := loadFrom(t, map[string]string{"config.toml": baseConfig}); err == nil {
		t.Error("Load() accepted an unknown log level")
	}
}
