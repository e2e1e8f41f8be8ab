// Package config provides the configuration loader for stashql.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the configuration file looked up when no path is given.
	DefaultFilename = "stashql.yaml"
	// EnvConfigPath names the environment variable holding the configuration path.
	EnvConfigPath = "STASHQL_CONFIG"
	// EnvOrigin overrides the configured origin.
	EnvOrigin = "STASHQL_ORIGIN"
	// EnvMetricsAddr enables metrics and sets their listen address.
	EnvMetricsAddr = "STASHQL_METRICS_ADDR"
)

// FileConfigLoader loads the client configuration from a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configured file. A missing file yields the defaults.
func (l *FileConfigLoader) Load() (*domain.ClientConfig, error) {
	cfg, err := Load(l.Filename)
	if err != nil {
		return nil, err
	}
	if origin := os.Getenv(EnvOrigin); origin != "" {
		cfg.Origin = strings.TrimSuffix(origin, "/")
	}
	if addr := os.Getenv(EnvMetricsAddr); addr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Address = addr
	}
	return cfg, nil
}

// PathFromEnv returns the configuration path from the environment or the default.
func PathFromEnv() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultFilename
}

// Load reads a configuration file from the given path and overlays it on the defaults.
func Load(path string) (*domain.ClientConfig, error) {
	cfg := domain.DefaultClientConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if err := apply(&cfg, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if _, err := domain.DeriveEndpoints(cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return &cfg, nil
}

func apply(cfg *domain.ClientConfig, file *Configfile) error {
	if file.Origin != "" {
		cfg.Origin = strings.TrimSuffix(file.Origin, "/")
	}
	if file.Path != "" {
		cfg.Path = file.Path
	}

	if d := file.Development; d != nil {
		cfg.Development.Enabled = d.Enabled
		cfg.Development.HTTPS = d.HTTPS
		if d.Port != 0 {
			cfg.Development.Port = d.Port
		}
	}

	if t := file.Transport; t != nil {
		durations := []struct {
			key string
			raw string
			dst *time.Duration
		}{
			{"transport.request_timeout", t.RequestTimeout, &cfg.Transport.RequestTimeout},
			{"transport.handshake_timeout", t.HandshakeTimeout, &cfg.Transport.HandshakeTimeout},
			{"transport.reconnect_delay", t.ReconnectDelay, &cfg.Transport.ReconnectDelay},
			{"transport.ping_interval", t.PingInterval, &cfg.Transport.PingInterval},
		}
		for _, d := range durations {
			if d.raw == "" {
				continue
			}
			v, err := time.ParseDuration(d.raw)
			if err != nil || v < 0 {
				return zerr.With(zerr.With(domain.ErrInvalidConfig, "key", d.key), "value", d.raw)
			}
			*d.dst = v
		}
		if t.Reconnect != nil {
			cfg.Transport.Reconnect = *t.Reconnect
		}
		if t.MaxReconnects < 0 {
			return zerr.With(zerr.With(domain.ErrInvalidConfig, "key", "transport.max_reconnects"), "value", t.MaxReconnects)
		}
		cfg.Transport.MaxReconnects = t.MaxReconnects
	}

	if l := file.Log; l != nil {
		if l.Level != "" {
			cfg.Log.Level = domain.ParseLogLevel(l.Level)
		}
		switch l.Format {
		case "":
		case "text", "json":
			cfg.Log.Format = l.Format
		default:
			return zerr.With(zerr.With(domain.ErrInvalidConfig, "key", "log.format"), "value", l.Format)
		}
	}

	if m := file.Metrics; m != nil {
		cfg.Metrics.Enabled = m.Enabled
		cfg.Metrics.Address = m.Address
	}
	return nil
}
