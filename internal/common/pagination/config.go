// Package pagination provides offset/limit pagination for list endpoints:
// query-parameter parsing with configurable bounds and a generic response
// envelope.
package pagination

import "itemvault/pkg/config"

// Config holds pagination limits.
type Config struct {
	DefaultLimit int // Limit applied when the query omits one
	MaxLimit     int // Upper bound a client may request
}

// DefaultConfig returns the default pagination configuration.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// LoadFromEnv reads pagination configuration from environment variables,
// falling back to defaults for missing or invalid values.
func LoadFromEnv() Config {
	def := DefaultConfig()
	cfg := Config{
		DefaultLimit: config.GetEnvInt("PAGINATION_DEFAULT_LIMIT", def.DefaultLimit),
		MaxLimit:     config.GetEnvInt("PAGINATION_MAX_LIMIT", def.MaxLimit),
	}
	if cfg.DefaultLimit < 1 || cfg.MaxLimit < 1 || cfg.DefaultLimit > cfg.MaxLimit {
		return def
	}
	return cfg
}
