package slogx

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Service string
	Version string
	Env     string // e.g. "dev", "prod"
	Level   string // e.g. "debug", "info", "warn", "error"
	Format  string // e.g. "json", "text"

	// File, when set, receives a copy of every record. The file is rotated
	// once it reaches FileMaxSizeMB (default 50) and three backups are kept.
	File          string
	FileMaxSizeMB int
}

var (
	ErrInvalidLevel  = errors.New("slogx: invalid log level")
	ErrInvalidFormat = errors.New("slogx: invalid log format")
)

// New returns a configured slog.Logger instance and installs it as the
// default logger. An unknown level or format, or a log file that cannot be
// opened, is an error and leaves the default logger untouched.
func New(cfg Config) (*slog.Logger, error) {
	w, err := output(cfg)
	if err != nil {
		return nil, err
	}
	handler, err := newHandler(cfg, w)
	if err != nil {
		return nil, err
	}

	logger := slog.New(handler).With(
		"service", cfg.Service,
		"version", cfg.Version,
		"env", cfg.Env,
	)

	slog.SetDefault(logger)
	return logger, nil
}

func newHandler(cfg Config, w io.Writer) (slog.Handler, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		AddSource: cfg.Env == "dev", // Add source info in dev mode
		Level:     level,
	}

	switch strings.ToLower(cfg.Format) {
	case "text":
		return slog.NewTextHandler(w, opts), nil
	case "json", "":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}
}

// output picks stdout, optionally teed into a rotating log file. The file is
// opened once up front since lumberjack defers that to the first write.
func output(cfg Config) (io.Writer, error) {
	if cfg.File == "" {
		return os.Stdout, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("slogx: log file: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("slogx: log file: %w", err)
	}
	_ = f.Close()

	maxSize := cfg.FileMaxSizeMB
	if maxSize <= 0 {
		maxSize = 50
	}

	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSize,
		MaxBackups: 3,
		Compress:   true,
	}), nil
}

// parseLevel maps a string to slog.Level. Empty means info.
func parseLevel(lvl string) (slog.Level, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, lvl)
	}
}
