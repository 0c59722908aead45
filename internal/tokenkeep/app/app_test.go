package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		st, err := OpenStore(ctx, DatabaseConfig{Driver: DriverMemory})
		require.NoError(t, err)
		require.NoError(t, st.Ping(ctx))
		require.NoError(t, st.Close())
	})

	t.Run("sqlite file", func(t *testing.T) {
		dsn := "file:" + filepath.Join(t.TempDir(), "tokens.db")
		st, err := OpenStore(ctx, DatabaseConfig{Driver: DriverSQLite, DSN: dsn})
		require.NoError(t, err)
		require.NoError(t, st.Ping(ctx))
		require.NoError(t, st.Close())
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := OpenStore(ctx, DatabaseConfig{Driver: "mongodb"})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestApplicationWiring(t *testing.T) {
	application, err := New(Config{
		TokenLifetime:       time.Minute,
		TokenLength:         16,
		Database:            DatabaseConfig{Driver: DriverMemory},
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                0,
		ShutdownGracePeriod: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	_, err = application.clientService.ProvisionClient(context.Background(), "client-a", "s3cret")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/oauth/secret?client_id=client-a&client_secret=s3cret&grant_type=token", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"client_id":"client-a"`)
}

func TestNewRejectsBadLoggerConfig(t *testing.T) {
	base := Config{
		TokenLifetime: time.Minute,
		TokenLength:   16,
		Database:      DatabaseConfig{Driver: DriverMemory},
		LogLevel:      "info",
		LogFormat:     "json",
	}

	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown level", func(c *Config) { c.LogLevel = "verbose-nonsense" }},
		{"unknown format", func(c *Config) { c.LogFormat = "yaml" }},
		{"unwritable log file", func(c *Config) { c.LogFile = filepath.Join(blocker, "tokenkeep.log") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)

			application, err := New(cfg)
			require.Error(t, err)
			require.Nil(t, application)
		})
	}
}
