package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDatabaseEnv(t *testing.T) {
	t.Helper()
	vars := map[string]string{
		"LIGHTBNB_PRIMARY.ENV":                 "local",
		"LIGHTBNB_DATABASE.HOST":               "localhost",
		"LIGHTBNB_DATABASE.PORT":               "5432",
		"LIGHTBNB_DATABASE.USER":               "vagrant",
		"LIGHTBNB_DATABASE.PASSWORD":           "123",
		"LIGHTBNB_DATABASE.NAME":               "lightbnb",
		"LIGHTBNB_DATABASE.SSL_MODE":           "disable",
		"LIGHTBNB_DATABASE.MAX_OPEN_CONNS":     "10",
		"LIGHTBNB_DATABASE.MAX_IDLE_CONNS":     "2",
		"LIGHTBNB_DATABASE.CONN_MAX_LIFETIME":  "300",
		"LIGHTBNB_DATABASE.CONN_MAX_IDLE_TIME": "60",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults injected", func(t *testing.T) {
		setDatabaseEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "local", cfg.Primary.Env)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "lightbnb", cfg.Database.Name)

		require.NotNil(t, cfg.Search)
		assert.Equal(t, 10, cfg.Search.DefaultLimit)
		assert.False(t, cfg.Search.JoinUnreviewed)

		require.NotNil(t, cfg.Observability)
		assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
		assert.Equal(t, "local", cfg.Observability.Environment)
		assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	})

	t.Run("search overrides", func(t *testing.T) {
		setDatabaseEnv(t)
		t.Setenv("LIGHTBNB_SEARCH.DEFAULT_LIMIT", "25")
		t.Setenv("LIGHTBNB_SEARCH.JOIN_UNREVIEWED", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 25, cfg.Search.DefaultLimit)
		assert.True(t, cfg.Search.JoinUnreviewed)
	})

	t.Run("slow query threshold parsed as duration", func(t *testing.T) {
		setDatabaseEnv(t)
		t.Setenv("LIGHTBNB_OBSERVABILITY.LOGGING.LEVEL", "warn")
		t.Setenv("LIGHTBNB_OBSERVABILITY.LOGGING.SLOW_QUERY_THRESHOLD", "250ms")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
		assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	})

	t.Run("missing database config", func(t *testing.T) {
		t.Setenv("LIGHTBNB_PRIMARY.ENV", "local")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config validation failed")
	})

	t.Run("invalid log level", func(t *testing.T) {
		setDatabaseEnv(t)
		t.Setenv("LIGHTBNB_OBSERVABILITY.LOGGING.LEVEL", "loud")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging level")
	})
}

func TestObservabilityConfig(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		level     string
		wantLevel string
	}{
		{name: "production default", env: "production", wantLevel: "info"},
		{name: "development default", env: "development", wantLevel: "debug"},
		{name: "explicit level wins", env: "production", level: "error", wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultObservabilityConfig()
			cfg.Environment = tt.env
			cfg.Logging.Level = tt.level

			assert.Equal(t, tt.wantLevel, cfg.GetLogLevel())
			assert.Equal(t, tt.env == "production", cfg.IsProduction())
		})
	}

	t.Run("negative slow query threshold", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.Logging.SlowQueryThreshold = -time.Second
		assert.Error(t, cfg.Validate())
	})

	t.Run("new relic disabled without key", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		assert.False(t, cfg.NewRelicEnabled())
		cfg.NewRelic.LicenseKey = "key"
		assert.True(t, cfg.NewRelicEnabled())
	})
}
