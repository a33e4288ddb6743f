// Package config loads runtime configuration for the Chunk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed CHUNK_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.chunk.example/api",
//	  "socket_url": "https://api.chunk.example",
//	  "database_path": "/var/lib/chunk/chunk.db",
//	  "http_timeout": "15s",
//	  "log_level": "debug"
//	}
//
// Primary API
//
//   - type Config                   — runtime settings for the CLI
//   - func LoadConfig() *Config     — defaults, then JSON, env, flags
//   - func (*Config) LoadDefaults() — sets sensible defaults
package config
