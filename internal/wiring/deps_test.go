package wiring_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stashql/internal/adapters/config"
	"go.trai.ch/stashql/internal/app"
	_ "go.trai.ch/stashql/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name of the
	// type used in Dep[T]. Several nodes here provide interfaces from the shared
	// ports package, which it cannot tell apart.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestGraphResolves(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "stashql.yaml"))
	t.Setenv(config.EnvOrigin, "http://127.0.0.1:1")

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = components.Close() })

	require.NotNil(t, components.Client)
	require.NotNil(t, components.Client.Policy())
	require.Equal(t, "http://127.0.0.1:1", components.Config.Origin)
}
