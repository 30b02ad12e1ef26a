package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JaimeStill/assessor/pkg/database"
	"github.com/JaimeStill/assessor/pkg/storage"
	"github.com/pelletier/go-toml/v2"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvAssessorEnv             = "ASSESSOR_ENV"
	EnvAssessorConfigDir       = "ASSESSOR_CONFIG_DIR"
	EnvAssessorShutdownTimeout = "ASSESSOR_SHUTDOWN_TIMEOUT"
	EnvAssessorVersion         = "ASSESSOR_VERSION"
)

var databaseEnv = &database.Env{
	URL:             "ASSESSOR_DB_URL",
	Host:            "ASSESSOR_DB_HOST",
	Port:            "ASSESSOR_DB_PORT",
	Name:            "ASSESSOR_DB_NAME",
	User:            "ASSESSOR_DB_USER",
	Password:        "ASSESSOR_DB_PASSWORD",
	SSLMode:         "ASSESSOR_DB_SSL_MODE",
	MaxOpenConns:    "ASSESSOR_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "ASSESSOR_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "ASSESSOR_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "ASSESSOR_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "ASSESSOR_STORAGE_CONTAINER_NAME",
	ConnectionString: "ASSESSOR_STORAGE_CONNECTION_STRING",
	MaxListSize:      "ASSESSOR_STORAGE_MAX_LIST_SIZE",
}

// Config is the root configuration for the Assessor service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Logging         LoggingConfig   `toml:"logging"`
	Database        database.Config `toml:"database"`
	Storage         storage.Config  `toml:"storage"`
	API             APIConfig       `toml:"api"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the ASSESSOR_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvAssessorEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load builds the configuration from up to two TOML files in Dir(): the
// base config.toml and the config.<env>.toml overlay. Either may be absent.
// Environment variables are applied after both, then every section is
// validated.
func Load() (*Config, error) {
	cfg := &Config{}

	for _, path := range files() {
		layer, err := load(path)
		if err != nil {
			return nil, err
		}
		cfg.Merge(layer)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}
	return cfg, nil
}

// Dir returns ASSESSOR_CONFIG_DIR, or the working directory when unset.
func Dir() string {
	if dir := os.Getenv(EnvAssessorConfigDir); dir != "" {
		return dir
	}
	return "."
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Logging.Merge(&overlay.Logging)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if v := os.Getenv(EnvAssessorShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvAssessorVersion); v != "" {
		c.Version = v
	}
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}

	sections := []struct {
		name     string
		finalize func() error
	}{
		{"server", c.Server.Finalize},
		{"logging", c.Logging.Finalize},
		{"database", func() error { return c.Database.Finalize(databaseEnv) }},
		{"storage", func() error { return c.Storage.Finalize(storageEnv) }},
		{"api", c.API.Finalize},
	}
	for _, s := range sections {
		if err := s.finalize(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// files lists the config files present in Dir(), base first.
func files() []string {
	names := []string{BaseConfigFile}
	if env := os.Getenv(EnvAssessorEnv); env != "" {
		names = append(names, fmt.Sprintf(OverlayConfigPattern, env))
	}

	var paths []string
	for _, name := range names {
		path := filepath.Join(Dir(), name)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	return paths
}

// load decodes one file strictly, so a misspelled key fails loudly instead of
// silently falling back to a default.
func load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
