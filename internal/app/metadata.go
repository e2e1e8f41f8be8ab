package app

import (
	"context"

	"go.trai.ch/stashql/internal/core/domain"
)

// Metadata jobs run in the background on the server. Their mutations only queue
// the job, so they evict nothing; follow progress with SubscribeJobStatus.

// MetadataScan queues a library scan.
func (c *Client) MetadataScan(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "MetadataScan", map[string]any{"input": domain.StripNullInput(input)})
}

// MetadataAutoTag queues auto-tagging.
func (c *Client) MetadataAutoTag(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "MetadataAutoTag", map[string]any{"input": domain.StripNullInput(input)})
}

// MetadataGenerate queues generation of previews, sprites and other assets.
func (c *Client) MetadataGenerate(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "MetadataGenerate", map[string]any{"input": domain.StripNullInput(input)})
}

// MetadataClean queues removal of missing files.
func (c *Client) MetadataClean(ctx context.Context) (*domain.Result, error) {
	return c.Mutate(ctx, "MetadataClean", nil)
}

// MetadataExport queues a metadata export.
func (c *Client) MetadataExport(ctx context.Context) (*domain.Result, error) {
	return c.Mutate(ctx, "MetadataExport", nil)
}

// MetadataImport queues a metadata import.
func (c *Client) MetadataImport(ctx context.Context) (*domain.Result, error) {
	return c.Mutate(ctx, "MetadataImport", nil)
}

// StopJob stops the running job.
func (c *Client) StopJob(ctx context.Context) (*domain.Result, error) {
	return c.Mutate(ctx, "StopJob", nil)
}

// JobStatus reads the current job status. It is never cached.
func (c *Client) JobStatus(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "JobStatus", nil, WithFetchPolicy(domain.NoCache))
}

// SubscribeJobStatus streams job progress.
func (c *Client) SubscribeJobStatus(ctx context.Context) (*Subscription, error) {
	return c.Subscribe(ctx, "MetadataUpdate", nil)
}

// SubscribeLogging streams server log entries.
func (c *Client) SubscribeLogging(ctx context.Context) (*Subscription, error) {
	return c.Subscribe(ctx, "LoggingSubscribe", nil)
}
