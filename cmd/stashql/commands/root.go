// Package commands implements the CLI commands for stashql.
package commands

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/stashql/internal/adapters/config" //nolint:depguard // Flags map onto config overrides
	"go.trai.ch/stashql/internal/app"
	"go.trai.ch/stashql/internal/build"
	"go.trai.ch/zerr"
)

// Provider resolves the application components. It is called at most once, by the
// first command that talks to a server.
type Provider func(context.Context) (*app.Components, error)

// CLI represents the command line interface for stashql.
type CLI struct {
	provider   Provider
	components *app.Components
	metricsSrv *http.Server
	rootCmd    *cobra.Command
}

// New creates a new CLI instance resolving its components through provider.
func New(provider Provider) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stashql",
		Short:         "A caching GraphQL client for a Stash media server",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().String("origin", "", "Server origin, overriding the configuration")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address")

	c := &CLI{
		provider: provider,
		rootCmd:  rootCmd,
	}

	rootCmd.AddCommand(c.newQueryCmd())
	rootCmd.AddCommand(c.newMutateCmd())
	rootCmd.AddCommand(c.newSubscribeCmd())
	rootCmd.AddCommand(c.newOperationsCmd())
	rootCmd.AddCommand(c.newRulesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context and releases whatever the
// command resolved.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	return errors.Join(err, c.close())
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

// Components returns the resolved components, or nil when no command needed them.
func (c *CLI) Components() *app.Components {
	return c.components
}

// load applies the global flags and resolves the components once.
func (c *CLI) load(cmd *cobra.Command) (*app.Components, error) {
	if c.components != nil {
		return c.components, nil
	}

	overrides := []struct {
		flag string
		env  string
	}{
		{"config", config.EnvConfigPath},
		{"origin", config.EnvOrigin},
		{"metrics-addr", config.EnvMetricsAddr},
	}
	for _, o := range overrides {
		v, _ := cmd.Flags().GetString(o.flag)
		if v == "" {
			continue
		}
		if err := os.Setenv(o.env, v); err != nil {
			return nil, zerr.Wrap(err, "failed to apply --"+o.flag)
		}
	}

	components, err := c.provider(cmd.Context())
	if err != nil {
		return nil, err
	}
	c.components = components

	if err := c.serveMetrics(components); err != nil {
		return nil, err
	}
	return components, nil
}

// serveMetrics exposes the metrics registry when metrics are enabled.
func (c *CLI) serveMetrics(components *app.Components) error {
	if components.Config == nil || !components.Config.Metrics.Enabled || components.Config.Metrics.Address == "" {
		return nil
	}
	h, ok := components.Metrics.(interface{ Handler() http.Handler })
	if !ok {
		return nil
	}

	ln, err := net.Listen("tcp", components.Config.Metrics.Address)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen for metrics"), "address", components.Config.Metrics.Address)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", h.Handler())
	c.metricsSrv = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := c.metricsSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			components.Logger.Error(zerr.Wrap(err, "metrics server stopped"))
		}
	}()
	components.Logger.Info("serving metrics on http://" + ln.Addr().String() + "/metrics")
	return nil
}

func (c *CLI) close() error {
	var errs []error
	if c.metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		errs = append(errs, c.metricsSrv.Shutdown(ctx))
	}
	if c.components != nil {
		errs = append(errs, c.components.Close())
	}
	return errors.Join(errs...)
}
