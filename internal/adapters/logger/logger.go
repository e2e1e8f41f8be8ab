// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	cfg    domain.LogConfig
	mu     sync.RWMutex
}

// New creates a Logger writing text at info level to stderr.
func New() ports.Logger {
	return NewWithConfig(domain.LogConfig{Level: domain.LogLevelInfo, Format: "text"})
}

// NewWithConfig creates a Logger honoring the configured level and format.
func NewWithConfig(cfg domain.LogConfig) *Logger {
	return &Logger{
		logger: slog.New(newHandler(os.Stderr, cfg)),
		cfg:    cfg,
	}
}

func newHandler(w io.Writer, cfg domain.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.Level(cfg.Level)}
	if cfg.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	// Text by default, on stderr per 12-factor.
	return slog.NewTextHandler(w, opts)
}

// SetOutput updates the logger's output destination.
// This is thread-safe and updates the underlying slog handler.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(newHandler(w, l.cfg))
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}
