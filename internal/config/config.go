// Package config builds the application settings.
// Settings are constructed once in main and passed by reference to every
// component that needs them; nothing reads ambient globals after startup.
//
// Precedence, lowest to highest: built-in defaults, optional YAML file
// (CONFIG_FILE), environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"itemvault/internal/common/pagination"
	"itemvault/internal/infra/db"
	"itemvault/pkg/config"
)

// Settings holds all application configuration.
type Settings struct {
	Addr     string
	Version  string
	LogLevel string

	Database db.Config

	CORSOrigins []string

	JWTSecret string
	TokenTTL  time.Duration

	// First superuser seeded at startup so a fresh database has a login.
	FirstSuperuser         string
	FirstSuperuserPassword string

	Pagination pagination.Config
}

// fileSettings is the YAML shape of the optional config file.
type fileSettings struct {
	Addr        string   `yaml:"addr"`
	LogLevel    string   `yaml:"log_level"`
	Driver      string   `yaml:"database_driver"`
	DatabaseURL string   `yaml:"database_url"`
	CORSOrigins []string `yaml:"cors_origins"`
	TokenTTL    string   `yaml:"token_ttl"`
}

// Load builds Settings from defaults, the optional YAML file named by
// CONFIG_FILE, and environment variables.
// It fails when a required secret is missing or too weak to run with.
func Load() (*Settings, error) {
	s := &Settings{
		Addr:       ":8080",
		Version:    "dev",
		LogLevel:   "info",
		Database:   db.DefaultPoolConfig(),
		TokenTTL:   30 * time.Minute,
		Pagination: pagination.DefaultConfig(),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := s.applyFile(path); err != nil {
			return nil, err
		}
	}
	s.applyEnv()

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fs fileSettings
	if err := yaml.Unmarshal(raw, &fs); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if fs.Addr != "" {
		s.Addr = fs.Addr
	}
	if fs.LogLevel != "" {
		s.LogLevel = fs.LogLevel
	}
	if fs.Driver != "" {
		s.Database.Driver = fs.Driver
	}
	if fs.DatabaseURL != "" {
		s.Database.DSN = fs.DatabaseURL
	}
	if len(fs.CORSOrigins) > 0 {
		s.CORSOrigins = fs.CORSOrigins
	}
	if fs.TokenTTL != "" {
		ttl, err := time.ParseDuration(fs.TokenTTL)
		if err != nil {
			return fmt.Errorf("parse config file: token_ttl: %w", err)
		}
		s.TokenTTL = ttl
	}
	return nil
}

func (s *Settings) applyEnv() {
	s.Addr = config.GetEnvString("ADDR", s.Addr)
	s.Version = config.GetEnvString("VERSION", s.Version)
	s.LogLevel = config.GetEnvString("LOG_LEVEL", s.LogLevel)

	s.Database.Driver = config.GetEnvString("DATABASE_DRIVER", s.Database.Driver)
	s.Database.DSN = config.GetEnvString("DATABASE_URL", s.Database.DSN)
	s.Database.MaxOpenConns = config.GetEnvInt("DB_MAX_OPEN_CONNS", s.Database.MaxOpenConns)
	s.Database.MaxIdleConns = config.GetEnvInt("DB_MAX_IDLE_CONNS", s.Database.MaxIdleConns)
	s.Database.ConnMaxLifetime = config.GetEnvDuration("DB_CONN_MAX_LIFETIME", s.Database.ConnMaxLifetime)
	s.Database.ConnMaxIdleTime = config.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", s.Database.ConnMaxIdleTime)

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		s.CORSOrigins = splitOrigins(origins)
	}

	s.JWTSecret = config.GetEnvString("JWT_SECRET", s.JWTSecret)
	s.TokenTTL = config.GetEnvDuration("TOKEN_TTL", s.TokenTTL)

	s.FirstSuperuser = config.GetEnvString("FIRST_SUPERUSER", s.FirstSuperuser)
	s.FirstSuperuserPassword = config.GetEnvString("FIRST_SUPERUSER_PASSWORD", s.FirstSuperuserPassword)

	s.Pagination = pagination.LoadFromEnv()
}

func (s *Settings) validate() error {
	if s.Database.DSN == "" {
		return fmt.Errorf("config: DATABASE_URL must be set")
	}
	if s.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET must be set")
	}
	// Enforce a 256-bit minimum and refuse well-known weak values.
	if len(s.JWTSecret) < 32 {
		return fmt.Errorf("config: JWT_SECRET must be at least 32 characters")
	}
	for _, weak := range []string{"secret", "password", "test", "admin", "default", "changethis"} {
		if s.JWTSecret == weak || s.JWTSecret == weak+"123" {
			return fmt.Errorf("config: JWT_SECRET must not be a common weak value")
		}
	}
	if s.FirstSuperuser != "" && s.FirstSuperuserPassword == "" {
		return fmt.Errorf("config: FIRST_SUPERUSER_PASSWORD must be set when FIRST_SUPERUSER is")
	}
	return nil
}

// splitOrigins parses a comma-separated origin list, dropping empty entries.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
