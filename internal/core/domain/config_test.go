package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stashql/internal/core/domain"
)

func TestDeriveEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ClientConfig)
		http   string
		ws     string
	}{
		{
			name:   "plain origin",
			mutate: func(c *domain.ClientConfig) { c.Origin = "http://stash.local:9999" },
			http:   "http://stash.local:9999/graphql",
			ws:     "ws://stash.local:9999/graphql",
		},
		{
			name:   "https origin upgrades websocket",
			mutate: func(c *domain.ClientConfig) { c.Origin = "https://stash.example.com" },
			http:   "https://stash.example.com/graphql",
			ws:     "wss://stash.example.com/graphql",
		},
		{
			name: "development forces port",
			mutate: func(c *domain.ClientConfig) {
				c.Origin = "http://localhost:3000"
				c.Development.Enabled = true
			},
			http: "http://localhost:9999/graphql",
			ws:   "ws://localhost:9999/graphql",
		},
		{
			name: "development https",
			mutate: func(c *domain.ClientConfig) {
				c.Origin = "http://localhost:3000"
				c.Development.Enabled = true
				c.Development.HTTPS = true
			},
			http: "https://localhost:9999/graphql",
			ws:   "wss://localhost:9999/graphql",
		},
		{
			name: "custom path",
			mutate: func(c *domain.ClientConfig) {
				c.Origin = "http://host"
				c.Path = "api/graphql"
			},
			http: "http://host/api/graphql",
			ws:   "ws://host/api/graphql",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultClientConfig()
			tt.mutate(&cfg)
			got, err := domain.DeriveEndpoints(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.http, got.HTTP)
			assert.Equal(t, tt.ws, got.WebSocket)
		})
	}
}

func TestDeriveEndpoints_InvalidOrigin(t *testing.T) {
	for _, origin := range []string{"ftp://host", "http://", "://bad"} {
		cfg := domain.DefaultClientConfig()
		cfg.Origin = origin
		_, err := domain.DeriveEndpoints(cfg)
		if !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("origin %q: expected ErrInvalidConfig, got %v", origin, err)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, domain.LogLevelDebug, domain.ParseLogLevel("DEBUG"))
	assert.Equal(t, domain.LogLevelWarn, domain.ParseLogLevel("warning"))
	assert.Equal(t, domain.LogLevelError, domain.ParseLogLevel("error"))
	assert.Equal(t, domain.LogLevelInfo, domain.ParseLogLevel(""))
}
