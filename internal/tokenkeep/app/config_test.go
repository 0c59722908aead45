package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	clearOptional(t)
	t.Setenv("AUTH_TOKEN_LIFE", "1h")
	t.Setenv("AUTH_TOKEN_LENGTH", "32")
	t.Setenv("AUTH_DATABASE_DRIVER", "sqlite")
	t.Setenv("AUTH_DATABASE_DSN", "file:tokenkeep.db")
}

func clearOptional(t *testing.T) {
	for _, key := range []string{"ENV", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "LOG_FILE_MAX_SIZE_MB", "PORT", "SHUTDOWN_GRACE_PERIOD"} {
		t.Setenv(key, "")
	}
}

func load(t *testing.T) (Config, error) {
	t.Helper()
	v, err := NewViper("")
	require.NoError(t, err)
	return LoadConfig(v)
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := load(t)
	require.NoError(t, err)
	require.Equal(t, Config{
		TokenLifetime:       time.Hour,
		TokenLength:         32,
		Database:            DatabaseConfig{Driver: "sqlite", DSN: "file:tokenkeep.db"},
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		LogFileMaxSizeMB:    50,
		Port:                4004,
		ShutdownGracePeriod: 10 * time.Second,
	}, cfg)
}

func TestLoadConfigMillisecondLifetime(t *testing.T) {
	setRequired(t)
	t.Setenv("AUTH_TOKEN_LIFE", "1000")

	cfg, err := load(t)
	require.NoError(t, err)
	require.Equal(t, time.Second, cfg.TokenLifetime)
}

func TestLoadConfigMissing(t *testing.T) {
	for _, key := range []string{"AUTH_TOKEN_LIFE", "AUTH_TOKEN_LENGTH", "AUTH_DATABASE_DRIVER", "AUTH_DATABASE_DSN"} {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")

			_, err := load(t)
			require.ErrorIs(t, err, ErrMissingConfig)
			require.ErrorContains(t, err, key)
		})
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"AUTH_TOKEN_LIFE":      "soon",
		"AUTH_TOKEN_LENGTH":    "-4",
		"AUTH_DATABASE_DRIVER": "mongodb",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, value)

			_, err := load(t)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("zero lifetime", func(t *testing.T) {
		setRequired(t)
		t.Setenv("AUTH_TOKEN_LIFE", "0")

		_, err := load(t)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadConfigReportsEveryProblem(t *testing.T) {
	t.Setenv("AUTH_TOKEN_LIFE", "")
	t.Setenv("AUTH_TOKEN_LENGTH", "")
	t.Setenv("AUTH_DATABASE_DRIVER", "")

	_, err := load(t)
	require.ErrorContains(t, err, "AUTH_TOKEN_LIFE")
	require.ErrorContains(t, err, "AUTH_TOKEN_LENGTH")
	require.ErrorContains(t, err, "AUTH_DATABASE_DRIVER")
}

func TestMemoryDriverNeedsNoDSN(t *testing.T) {
	setRequired(t)
	t.Setenv("AUTH_DATABASE_DRIVER", "memory")
	t.Setenv("AUTH_DATABASE_DSN", "")

	cfg, err := load(t)
	require.NoError(t, err)
	require.Equal(t, DriverMemory, cfg.Database.Driver)
}

func TestLoadConfigFile(t *testing.T) {
	clearOptional(t)
	path := filepath.Join(t.TempDir(), "tokenkeep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
auth_token_life: 30m
auth_token_length: 16
auth_database_driver: memory
port: 9000
log_format: text
`), 0o600))

	t.Setenv("AUTH_TOKEN_LIFE", "")
	t.Setenv("AUTH_TOKEN_LENGTH", "")
	t.Setenv("AUTH_DATABASE_DRIVER", "")
	t.Setenv("PORT", "9100")

	v, err := NewViper(path)
	require.NoError(t, err)

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	require.Equal(t, 30*time.Minute, cfg.TokenLifetime)
	require.Equal(t, 16, cfg.TokenLength)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, 9100, cfg.Port, "environment overrides the file")
}
