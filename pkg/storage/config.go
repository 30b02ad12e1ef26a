package storage

import (
	"errors"
	"os"
	"strconv"
)

// MaxListCap is the upper bound on blobs returned by a single List call.
const MaxListCap int32 = 5000

const (
	defaultContainer   = "exports"
	defaultMaxListSize = 50
)

// Config holds Azure Blob Storage connection parameters.
// An empty ConnectionString leaves storage disabled.
type Config struct {
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
	MaxListSize      int32  `toml:"max_list_size"`
}

// Env names the environment variables that override Config.
type Env struct {
	ContainerName    string
	ConnectionString string
	MaxListSize      string
}

func (c *Config) Enabled() bool {
	return c.ConnectionString != ""
}

// Finalize fills defaults, applies env overrides, and validates. List sizes
// above MaxListCap are clamped rather than rejected.
func (c *Config) Finalize(env *Env) error {
	if c.ContainerName == "" {
		c.ContainerName = defaultContainer
	}
	if c.MaxListSize == 0 {
		c.MaxListSize = defaultMaxListSize
	}

	if env != nil {
		if v := getenv(env.ContainerName); v != "" {
			c.ContainerName = v
		}
		if v := getenv(env.ConnectionString); v != "" {
			c.ConnectionString = v
		}
		if n, err := strconv.Atoi(getenv(env.MaxListSize)); err == nil && n > 0 {
			c.MaxListSize = int32(min(n, int(MaxListCap)))
		}
	}

	c.MaxListSize = min(c.MaxListSize, MaxListCap)

	switch {
	case c.ContainerName == "":
		return errors.New("container_name required")
	case c.MaxListSize < 1:
		return errors.New("max_list_size must be positive")
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.ContainerName != "" {
		c.ContainerName = overlay.ContainerName
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
	if overlay.MaxListSize != 0 {
		c.MaxListSize = overlay.MaxListSize
	}
}

func getenv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
