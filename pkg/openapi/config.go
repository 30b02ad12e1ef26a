package openapi

import "os"

// Config holds document metadata. ServerURL overrides the advertised server
// when the API sits behind a proxy that rewrites the base path.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	ServerURL   string `toml:"server_url"`
}

// ConfigEnv names the environment variables that override Config.
type ConfigEnv struct {
	Title       string
	Description string
	ServerURL   string
}

// Finalize applies defaults and environment overrides. Every field is optional.
func (c *Config) Finalize(env *ConfigEnv) error {
	if c.Title == "" {
		c.Title = "Assessor API"
	}
	if c.Description == "" {
		c.Description = "Capability surveys, client needs assessments, and title officer evaluations."
	}
	if env != nil {
		override(&c.Title, env.Title)
		override(&c.Description, env.Description)
		override(&c.ServerURL, env.ServerURL)
	}
	return nil
}

// Server returns ServerURL, or basePath when no override is set.
func (c *Config) Server(basePath string) string {
	if c.ServerURL != "" {
		return c.ServerURL
	}
	return basePath
}

func (c *Config) Merge(overlay *Config) {
	for dst, v := range map[*string]string{
		&c.Title:       overlay.Title,
		&c.Description: overlay.Description,
		&c.ServerURL:   overlay.ServerURL,
	} {
		if v != "" {
			*dst = v
		}
	}
}

func override(dst *string, name string) {
	if name == "" {
		return
	}
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}
