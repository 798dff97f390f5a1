// Package logger configures structured logging.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samdwyer/dungeonwalk/internal/config"
)

// Setup configures the global slog logger and returns it with a function that
// closes the log file, if one was opened.
//
// The terminal belongs to the game screen, so logs go to cfg.LogFile or nowhere.
func Setup(cfg *config.Config) (*slog.Logger, func() error, error) {
	var (
		out     io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := New(out, cfg)
	slog.SetDefault(logger)

	return logger, closeFn, nil
}

// New creates a logger writing to w, JSON in production and text otherwise.
func New(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
