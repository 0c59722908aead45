package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingConfig = errors.New("missing required configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Supported AUTH_DATABASE_DRIVER values.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type DatabaseConfig struct {
	Driver string // Required: sqlite, postgres or memory
	DSN    string // Required unless Driver is memory
}

type Config struct {
	TokenLifetime time.Duration // Required: lifetime of issued tokens
	TokenLength   int           // Required: hex characters of random secret per token
	Database      DatabaseConfig

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	LogFile             string        // Optional: also write logs to this rotating file
	LogFileMaxSizeMB    int           // Rotation size for LogFile (default: 50)
	Port                int           // HTTP server port (default: 4004)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// NewViper returns a config source reading the environment and, when
// configFile is set, a config file whose keys are the lowercased variable
// names (auth_token_life, port, ...). The environment wins.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	return v, nil
}

// LoadConfig reads the service configuration. Every missing or unparsable
// required value is reported in the returned error.
func LoadConfig(v *viper.Viper) (Config, error) {
	db, dbErr := LoadDatabaseConfig(v)

	cfg := Config{
		Database:            db,
		Env:                 getEnvOrDefault(v, "ENV", "dev"),
		LogLevel:            getEnvOrDefault(v, "LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault(v, "LOG_FORMAT", "json"),
		LogFile:             getEnvOrDefault(v, "LOG_FILE", ""),
		LogFileMaxSizeMB:    getEnvIntOrDefault(v, "LOG_FILE_MAX_SIZE_MB", 50),
		Port:                getEnvIntOrDefault(v, "PORT", 4004),
		ShutdownGracePeriod: getEnvDurationOrDefault(v, "SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	errs := []error{dbErr}

	lifetime, err := requireTokenLifetime(v, "AUTH_TOKEN_LIFE")
	errs = append(errs, err)
	cfg.TokenLifetime = lifetime

	length, err := requirePositiveInt(v, "AUTH_TOKEN_LENGTH")
	errs = append(errs, err)
	cfg.TokenLength = length

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDatabaseConfig reads only the document store settings. The client
// provisioning command needs nothing else.
func LoadDatabaseConfig(v *viper.Viper) (DatabaseConfig, error) {
	cfg := DatabaseConfig{
		Driver: strings.ToLower(v.GetString("AUTH_DATABASE_DRIVER")),
		DSN:    v.GetString("AUTH_DATABASE_DSN"),
	}

	switch cfg.Driver {
	case "":
		return cfg, fmt.Errorf("%w: AUTH_DATABASE_DRIVER", ErrMissingConfig)
	case DriverMemory:
		return cfg, nil
	case DriverSQLite, DriverPostgres:
		if cfg.DSN == "" {
			return cfg, fmt.Errorf("%w: AUTH_DATABASE_DSN", ErrMissingConfig)
		}
		return cfg, nil
	default:
		return cfg, fmt.Errorf("%w: AUTH_DATABASE_DRIVER %q is not one of sqlite, postgres, memory",
			ErrInvalidConfig, cfg.Driver)
	}
}

// requireTokenLifetime accepts a Go duration ("1h") or a bare integer of
// milliseconds ("3600000").
func requireTokenLifetime(v *viper.Viper, key string) (time.Duration, error) {
	value := v.GetString(key)
	if value == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingConfig, key)
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		ms, convErr := strconv.ParseInt(value, 10, 64)
		if convErr != nil {
			return 0, fmt.Errorf("%w: %s %q is not a duration or millisecond count", ErrInvalidConfig, key, value)
		}
		d = time.Duration(ms) * time.Millisecond
	}

	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, key)
	}
	return d, nil
}

func requirePositiveInt(v *viper.Viper, key string) (int, error) {
	value := v.GetString(key)
	if value == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingConfig, key)
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s %q must be a positive integer", ErrInvalidConfig, key, value)
	}
	return n, nil
}

func getEnvOrDefault(v *viper.Viper, key, defaultValue string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(v *viper.Viper, key string, defaultValue int) int {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
