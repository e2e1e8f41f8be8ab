package domain

import (
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultOrigin is the origin used when none is configured.
	DefaultOrigin = "http://localhost:9999"
	// DefaultPath is the GraphQL endpoint path shared by both transports.
	DefaultPath = "/graphql"
	// DefaultDevelopmentPort is the port development servers listen on.
	DefaultDevelopmentPort = 9999
)

// ClientConfig is the resolved client configuration.
type ClientConfig struct {
	Origin      string
	Path        string
	Development DevelopmentConfig
	Transport   TransportConfig
	Log         LogConfig
	Metrics     MetricsConfig
}

// DevelopmentConfig overrides the origin when running against a development server.
type DevelopmentConfig struct {
	Enabled bool
	Port    int
	HTTPS   bool
}

// TransportConfig tunes both transports.
type TransportConfig struct {
	RequestTimeout   time.Duration
	HandshakeTimeout time.Duration
	Reconnect        bool
	ReconnectDelay   time.Duration
	// MaxReconnects of zero means unlimited attempts.
	MaxReconnects int
	PingInterval  time.Duration
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  LogLevel
	Format string
}

// MetricsConfig toggles metric collection.
type MetricsConfig struct {
	Enabled bool
	Address string
}

// DefaultClientConfig returns the configuration used when no file is present.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Origin: DefaultOrigin,
		Path:   DefaultPath,
		Development: DevelopmentConfig{
			Port: DefaultDevelopmentPort,
		},
		Transport: TransportConfig{
			RequestTimeout:   30 * time.Second,
			HandshakeTimeout: 30 * time.Second,
			Reconnect:        true,
			ReconnectDelay:   2 * time.Second,
			PingInterval:     54 * time.Second,
		},
		Log: LogConfig{
			Level:  LogLevelInfo,
			Format: "text",
		},
	}
}

// Endpoints are the two URLs the transports connect to.
type Endpoints struct {
	HTTP      string
	WebSocket string
}

// DeriveEndpoints builds both endpoints from the origin. In development the port is
// forced to the development port and https may be forced on. The WebSocket scheme
// follows the final HTTP scheme.
func DeriveEndpoints(cfg ClientConfig) (Endpoints, error) {
	origin := cfg.Origin
	if origin == "" {
		origin = DefaultOrigin
	}
	u, err := url.Parse(origin)
	if err != nil {
		return Endpoints{}, zerr.With(ErrInvalidConfig, "origin", origin)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Endpoints{}, zerr.With(zerr.With(ErrInvalidConfig, "origin", origin), "scheme", u.Scheme)
	}
	if u.Host == "" {
		return Endpoints{}, zerr.With(ErrInvalidConfig, "origin", origin)
	}

	if cfg.Development.Enabled {
		port := cfg.Development.Port
		if port == 0 {
			port = DefaultDevelopmentPort
		}
		u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(port))
		if cfg.Development.HTTPS {
			u.Scheme = "https"
		}
	}

	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	base := url.URL{Scheme: u.Scheme, Host: u.Host, Path: path}
	ws := base
	ws.Scheme = "ws"
	if u.Scheme == "https" {
		ws.Scheme = "wss"
	}
	return Endpoints{HTTP: base.String(), WebSocket: ws.String()}, nil
}
