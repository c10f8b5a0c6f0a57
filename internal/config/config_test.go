package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemvault/internal/config"
)

const validSecret = "a-perfectly-reasonable-32-char-secret"

// setBaseEnv sets the minimum environment a successful Load needs.
func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://app:pw@localhost:5432/app")
	t.Setenv("JWT_SECRET", validSecret)
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("FIRST_SUPERUSER", "")
	t.Setenv("FIRST_SUPERUSER_PASSWORD", "")
	t.Setenv("ADDR", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("DATABASE_DRIVER", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	s, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", s.Addr)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "pgx", s.Database.Driver)
	assert.Equal(t, 30*time.Minute, s.TokenTTL)
	assert.Equal(t, 20, s.Pagination.DefaultLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ADDR", ":9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	s, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", s.Addr)
	assert.Equal(t, "sqlite", s.Database.Driver)
	assert.Equal(t, time.Hour, s.TokenTTL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, s.CORSOrigins)
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	setBaseEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7070\"\nlog_level: debug\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("ADDR", ":9090") // env wins over the file

	s, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", s.Addr)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_RejectsWeakJWTSecrets(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"short", "too-short"},
		{"common value padded", "changethis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv("JWT_SECRET", tt.secret)

			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "JWT_SECRET")
		})
	}
}

func TestLoad_SuperuserNeedsPassword(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("FIRST_SUPERUSER", "admin@example.com")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIRST_SUPERUSER_PASSWORD")
}

func TestLoad_BadConfigFile(t *testing.T) {
	setBaseEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := config.Load()
	require.Error(t, err)
}
