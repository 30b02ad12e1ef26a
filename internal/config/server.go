package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	EnvServerHost              = "ASSESSOR_SERVER_HOST"
	EnvServerPort              = "ASSESSOR_SERVER_PORT"
	EnvServerReadTimeout       = "ASSESSOR_SERVER_READ_TIMEOUT"
	EnvServerReadHeaderTimeout = "ASSESSOR_SERVER_READ_HEADER_TIMEOUT"
	EnvServerWriteTimeout      = "ASSESSOR_SERVER_WRITE_TIMEOUT"
	EnvServerIdleTimeout       = "ASSESSOR_SERVER_IDLE_TIMEOUT"
	EnvServerDrainTimeout      = "ASSESSOR_SERVER_DRAIN_TIMEOUT"
)

// ServerConfig holds HTTP listener parameters. Timeouts are Go duration strings.
type ServerConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	ReadTimeout       string `toml:"read_timeout"`
	ReadHeaderTimeout string `toml:"read_header_timeout"`
	WriteTimeout      string `toml:"write_timeout"`
	IdleTimeout       string `toml:"idle_timeout"`
	// DrainTimeout bounds how long in-flight requests may finish after shutdown begins.
	DrainTimeout string `toml:"drain_timeout"`
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) ReadTimeoutDuration() time.Duration       { return duration(c.ReadTimeout) }
func (c *ServerConfig) ReadHeaderTimeoutDuration() time.Duration { return duration(c.ReadHeaderTimeout) }
func (c *ServerConfig) WriteTimeoutDuration() time.Duration      { return duration(c.WriteTimeout) }
func (c *ServerConfig) IdleTimeoutDuration() time.Duration       { return duration(c.IdleTimeout) }
func (c *ServerConfig) DrainTimeoutDuration() time.Duration      { return duration(c.DrainTimeout) }

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	theirs := overlay.timeouts()
	for i, f := range c.timeouts() {
		if v := *theirs[i].field; v != "" {
			*f.field = v
		}
	}
}

// timeoutField binds a duration setting to its env override and default.
type timeoutField struct {
	name  string
	env   string
	def   string
	field *string
}

func (c *ServerConfig) timeouts() []timeoutField {
	return []timeoutField{
		{"read_timeout", EnvServerReadTimeout, "1m", &c.ReadTimeout},
		{"read_header_timeout", EnvServerReadHeaderTimeout, "10s", &c.ReadHeaderTimeout},
		{"write_timeout", EnvServerWriteTimeout, "2m", &c.WriteTimeout},
		{"idle_timeout", EnvServerIdleTimeout, "2m", &c.IdleTimeout},
		{"drain_timeout", EnvServerDrainTimeout, "20s", &c.DrainTimeout},
	}
}

func (c *ServerConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	for _, f := range c.timeouts() {
		if *f.field == "" {
			*f.field = f.def
		}
	}
}

func (c *ServerConfig) loadEnv() {
	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	for _, f := range c.timeouts() {
		if v := os.Getenv(f.env); v != "" {
			*f.field = v
		}
	}
}

func (c *ServerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	for _, f := range c.timeouts() {
		if d, err := time.ParseDuration(*f.field); err != nil || d < 0 {
			return fmt.Errorf("invalid %s: %q", f.name, *f.field)
		}
	}
	return nil
}

func duration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
