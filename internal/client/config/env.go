package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is the environment overlay. Only variables that are actually
// set override earlier layers.
type envConfig struct {
	APIBaseURL   string        `env:"CHUNK_API_URL"`
	SocketURL    string        `env:"CHUNK_SOCKET_URL"`
	DatabasePath string        `env:"CHUNK_DB_PATH"`
	HTTPTimeout  time.Duration `env:"CHUNK_HTTP_TIMEOUT"`
	LogLevel     string        `env:"CHUNK_LOG_LEVEL"`
}

// parseEnv overlays cfg with values from CHUNK_* environment variables.
// Panics on unparsable values, matching the JSON layer.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.SocketURL != "" {
		cfg.SocketURL = ec.SocketURL
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.HTTPTimeout != 0 {
		cfg.HTTPTimeout = ec.HTTPTimeout
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
