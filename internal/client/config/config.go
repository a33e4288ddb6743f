package config

import "time"

// Config holds runtime settings for the Chunk CLI.
//
// Fields:
//   - APIBaseURL: root URL of the backend REST API.
//   - SocketURL: root URL of the realtime socket endpoint.
//   - DatabasePath: location of the local session database file.
//   - HTTPTimeout: per-request timeout for REST calls.
//   - LogLevel: minimum log level emitted ("debug", "info", "warn", "error").
type Config struct {
	APIBaseURL   string
	SocketURL    string
	DatabasePath string
	HTTPTimeout  time.Duration
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api"
	c.SocketURL = "http://localhost:3000"
	c.DatabasePath = "chunk.db"
	c.HTTPTimeout = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given), environment variables, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
