package app

import (
	"context"

	"go.trai.ch/stashql/internal/core/domain"
)

// Stats reads library statistics.
func (c *Client) Stats(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "Stats", nil)
}

// Version reads the server version.
func (c *Client) Version(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "Version", nil)
}

// LatestVersion checks for a newer release. The lookup reaches an external
// service, so its errors are dropped and whatever data arrived is returned.
func (c *Client) LatestVersion(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "LatestVersion", nil,
		WithFetchPolicy(domain.NetworkOnly),
		WithErrorPolicy(domain.ErrorPolicyIgnore),
	)
}

// Configuration reads the server configuration.
func (c *Client) Configuration(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "Configuration", nil)
}

// WatchConfiguration keeps the configuration live. Configure mutations refetch it.
func (c *Client) WatchConfiguration(ctx context.Context) (*Watch, error) {
	return c.Watch(ctx, "Configuration", nil)
}

// Directories lists directories below path, or the roots when path is empty.
func (c *Client) Directories(ctx context.Context, path string) (*domain.Result, error) {
	vars := map[string]any{}
	if path != "" {
		vars["path"] = path
	}
	return c.Query(ctx, "Directories", vars)
}

// Logs reads the recent server log. It is never cached.
func (c *Client) Logs(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "Logs", nil, WithFetchPolicy(domain.NoCache))
}

// ConfigureGeneral saves general settings.
func (c *Client) ConfigureGeneral(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "ConfigureGeneral", map[string]any{"input": domain.StripNullInput(input)})
}

// ConfigureInterface saves interface settings.
func (c *Client) ConfigureInterface(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "ConfigureInterface", map[string]any{"input": domain.StripNullInput(input)})
}
