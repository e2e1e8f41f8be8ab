package domain

import "strings"

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a config string to a LogLevel, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// OperationStatus is the terminal state of one client operation, used for metrics and
// progress vertices.
type OperationStatus string

const (
	// OperationStatusCompleted indicates the operation reached the server and succeeded.
	OperationStatusCompleted OperationStatus = "completed"
	// OperationStatusCached indicates the result was served from the cache.
	OperationStatusCached OperationStatus = "cached"
	// OperationStatusFailed indicates a transport or GraphQL failure.
	OperationStatusFailed OperationStatus = "failed"
	// OperationStatusSkipped indicates the helper skipped the request, as for the "new" id.
	OperationStatusSkipped OperationStatus = "skipped"
)
