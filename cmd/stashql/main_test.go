package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stashql/internal/app"
	"go.trai.ch/stashql/internal/core/domain"
)

func TestRun(t *testing.T) {
	failing := func(context.Context) (*app.Components, error) {
		return nil, errors.Join(domain.ErrInvalidConfig, errors.New("origin has no host"))
	}

	tests := []struct {
		name         string
		args         []string
		expectedExit int
		stderr       string
	}{
		{
			name:         "Version needs no components",
			args:         []string{"version"},
			expectedExit: 0,
		},
		{
			name:         "Rule audit passes",
			args:         []string{"rules", "audit"},
			expectedExit: 0,
		},
		{
			name:         "Initialization error is printed",
			args:         []string{"query", "Stats"},
			expectedExit: 1,
			stderr:       "invalid client configuration",
		},
		{
			name:         "Unknown command",
			args:         []string{"frobnicate"},
			expectedExit: 1,
			stderr:       "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			exitCode := run(context.Background(), tt.args, &stdout, &stderr, failing)
			assert.Equal(t, tt.expectedExit, exitCode)
			if tt.stderr != "" {
				assert.Contains(t, stderr.String(), tt.stderr)
			}
		})
	}
}
