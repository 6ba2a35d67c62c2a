package appconf

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	assert.Equal(t, Test, EnvFlagToEnvironment("test"))
	assert.Equal(t, Production, EnvFlagToEnvironment("production"))
	assert.Equal(t, Production, EnvFlagToEnvironment("PROD"))
	assert.Equal(t, Development, EnvFlagToEnvironment("staging"))
	assert.Equal(t, "production", Production.String())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, Development, cfg.Env)
	assert.Equal(t, []string{"test"}, cfg.ApiKeys)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, "incidence", cfg.Thresholds)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tygcalc.yaml")
	content := "port: 8080\nenv: production\napi-keys:\n  - alpha\n  - beta\nlog-level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, Production, cfg.Env)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.ApiKeys)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tygcalc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 8080, "api-keys": "one, two"}`), 0o600))

	t.Setenv("TYGCALC_PORT", "9090")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"one", "two"}, cfg.ApiKeys)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{Port: 4000, RateLimit: 10, LogLevel: "info"}
	require.NoError(t, base.Validate())

	tests := []struct {
		name  string
		mut   func(c *Config)
		field string
	}{
		{"zero port", func(c *Config) { c.Port = 0 }, "port"},
		{"port out of range", func(c *Config) { c.Port = 70000 }, "port"},
		{"negative rate limit", func(c *Config) { c.RateLimit = -1 }, "rate-limit"},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, "log-level"},
		{"unknown thresholds", func(c *Config) { c.Thresholds = "lifetime" }, "thresholds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mut(&cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestSplitAPIKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitAPIKeys(" a, ,b "))
	assert.Nil(t, SplitAPIKeys(""))
}
