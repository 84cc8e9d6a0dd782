package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "SERVER_MODE", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
	"SERVER_SHUTDOWN_TIMEOUT", "CORS_ALLOWED_ORIGINS", "METRICS_ENABLED", "DATABASE_URL", "DB_MAX_CONNS",
	"DB_MIN_CONNS", "DB_CONN_MAX_LIFETIME", "DB_CONNECT_TIMEOUT", "DB_BOOTSTRAP", "API_MISSING_ROW_POLICY",
	"LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv unsets every variable the loader reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func missing(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.yaml")
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(missing(t), "")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, DefaultDatabaseURL, cfg.Database.URL)
	assert.True(t, cfg.Database.Bootstrap)
	assert.Equal(t, MissingRowIgnore, cfg.API.MissingRowPolicy)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://hr:secret@db:5432/hr?sslmode=disable")
	t.Setenv("DB_BOOTSTRAP", "false")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://hr.acme.test,")
	t.Setenv("API_MISSING_ROW_POLICY", "not_found")

	cfg, err := LoadConfig(missing(t), "")
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "postgres://hr:secret@db:5432/hr?sslmode=disable", cfg.Database.URL)
	assert.False(t, cfg.Database.Bootstrap)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{"http://localhost:5173", "https://hr.acme.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, MissingRowNotFound, cfg.API.MissingRowPolicy)
}

func TestLoadConfigFromYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "4000"
  mode: production
  shutdown_timeout: 5s
database:
  url: postgres://localhost/hr_yaml
  max_conns: 4
api:
  missing_row_policy: not_found
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("PORT", "4001")

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)

	assert.Equal(t, "4001", cfg.Server.Port, "environment wins over the file")
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres://localhost/hr_yaml", cfg.Database.URL)
	assert.Equal(t, 4, cfg.Database.MaxConns)
	assert.Equal(t, MissingRowNotFound, cfg.API.MissingRowPolicy)
}

func TestLoadConfigDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=9999\nDB_MAX_CONNS=7\n"), 0o600))
	t.Setenv("PORT", "4000")

	cfg, err := LoadConfig(missing(t), envFile)
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, 7, cfg.Database.MaxConns)
}

func TestLoadConfigMissingDotEnvIsIgnored(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(missing(t), filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"policy":        {"API_MISSING_ROW_POLICY": "explode"},
		"bool":          {"DB_BOOTSTRAP": "maybe"},
		"duration":      {"SERVER_READ_TIMEOUT": "soon"},
		"int":           {"DB_MAX_CONNS": "many"},
		"conns":         {"DB_MAX_CONNS": "1", "DB_MIN_CONNS": "2"},
		"empty url":     {"DATABASE_URL": " "},
		"zero duration": {"SERVER_SHUTDOWN_TIMEOUT": "0s"},
		"cors scheme":   {"CORS_ALLOWED_ORIGINS": "hr.acme.test"},
		"cors mixed":    {"CORS_ALLOWED_ORIGINS": "*,https://hr.acme.test"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(missing(t), "")
			assert.Error(t, err)
		})
	}
}
