package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stashql/internal/adapters/logger"
	"go.trai.ch/stashql/internal/core/domain"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()
	require.NoError(t, w.Close())
	output := <-done
	require.NoError(t, r.Close())
	return output
}

func TestNew_WritesToStderr(t *testing.T) {
	output := captureStderr(t, func() {
		// The logger binds os.Stderr on construction.
		logger.New().Info("findScenes served from cache")
	})
	assert.Contains(t, output, "findScenes served from cache")
	assert.Contains(t, output, "INFO")
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*logger.Logger)
		level string
		text  string
	}{
		{"info", func(l *logger.Logger) { l.Info("serving metrics") }, "INFO", "serving metrics"},
		{"warn", func(l *logger.Logger) { l.Warn("refetch after invalidation failed") }, "WARN", "refetch after invalidation failed"},
		{"error", func(l *logger.Logger) { l.Error(domain.ErrInvalidationFailed) }, "ERROR", "cache invalidation failed"},
		{"debug", func(l *logger.Logger) { l.Debug("evicted 3 cache keys") }, "DEBUG", "evicted 3 cache keys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lg := logger.NewWithConfig(domain.LogConfig{Level: domain.LogLevelDebug})
			lg.SetOutput(&buf)
			tt.log(lg)

			out := buf.String()
			assert.Contains(t, out, "level="+tt.level)
			assert.Contains(t, out, tt.text)
		})
	}
}

func TestLogger_DebugRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithConfig(domain.LogConfig{Level: domain.LogLevelInfo})
	lg.SetOutput(&buf)
	lg.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug is filtered at info level")
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithConfig(domain.LogConfig{Level: domain.LogLevelInfo, Format: "json"})
	lg.SetOutput(&buf)
	lg.Error(os.ErrNotExist)

	out := buf.String()
	if !strings.HasPrefix(out, "{") {
		t.Fatalf("Expected JSON output, got: %s", out)
	}
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, "file does not exist")
}
