package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"breachwatch/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: development\n"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	require.Equal(t, "https://haveibeenpwned.com/api/v3", cfg.BreachSource.BaseURL)
	require.Equal(t, 10*time.Second, cfg.BreachSource.Timeout)
	require.Equal(t, 24*time.Hour, cfg.Worker.Staleness)
}

func TestLoad_OverridesFromFile(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
environment: production
http:
  addr: ":9090"
jwt:
  secret: super-secret
  ttl: 1h
breachSource:
  baseUrl: http://localhost:9999/api/v3
  timeout: 2s
`))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, "super-secret", cfg.JWT.Secret)
	require.Equal(t, time.Hour, cfg.JWT.TTL)
	require.Equal(t, "http://localhost:9999/api/v3", cfg.BreachSource.BaseURL)
	require.Equal(t, 2*time.Second, cfg.BreachSource.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
