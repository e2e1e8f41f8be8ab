package app

import (
	"context"

	"go.trai.ch/stashql/internal/core/domain"
)

// Scraper lookups reach external sites, so only the scraper lists are cached.

// ListPerformerScrapers lists the configured performer scrapers.
func (c *Client) ListPerformerScrapers(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "ListPerformerScrapers", nil)
}

// ListSceneScrapers lists the configured scene scrapers.
func (c *Client) ListSceneScrapers(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "ListSceneScrapers", nil)
}

// ScrapePerformerList searches a scraper for performers by name.
func (c *Client) ScrapePerformerList(ctx context.Context, scraperID, query string) (*domain.Result, error) {
	return c.Query(ctx, "ScrapePerformerList", map[string]any{
		"scraper_id": scraperID,
		"query":      query,
	})
}

// ScrapePerformer scrapes one performer.
func (c *Client) ScrapePerformer(ctx context.Context, scraperID string, performer map[string]any) (*domain.Result, error) {
	return c.Query(ctx, "ScrapePerformer", map[string]any{
		"scraper_id":        scraperID,
		"scraped_performer": domain.StripNullInput(performer),
	}, WithFetchPolicy(domain.NetworkOnly))
}

// ScrapePerformerURL scrapes a performer page.
func (c *Client) ScrapePerformerURL(ctx context.Context, url string) (*domain.Result, error) {
	return c.Query(ctx, "ScrapePerformerURL", map[string]any{"url": url}, WithFetchPolicy(domain.NetworkOnly))
}

// ScrapeSceneURL scrapes a scene page.
func (c *Client) ScrapeSceneURL(ctx context.Context, url string) (*domain.Result, error) {
	return c.Query(ctx, "ScrapeSceneURL", map[string]any{"url": url}, WithFetchPolicy(domain.NetworkOnly))
}

// ScrapeScene scrapes one scene with a scraper.
func (c *Client) ScrapeScene(ctx context.Context, scraperID string, scene map[string]any) (*domain.Result, error) {
	return c.Query(ctx, "ScrapeScene", map[string]any{
		"scraper_id": scraperID,
		"scene":      domain.StripNullInput(scene),
	}, WithFetchPolicy(domain.NetworkOnly))
}

// ScrapeFreeones scrapes a performer from Freeones.
func (c *Client) ScrapeFreeones(ctx context.Context, performerName string) (*domain.Result, error) {
	return c.Query(ctx, "ScrapeFreeones", map[string]any{"performer_name": performerName}, WithFetchPolicy(domain.NetworkOnly))
}

// ScrapeFreeonesPerformers searches Freeones performer names.
func (c *Client) ScrapeFreeonesPerformers(ctx context.Context, q string) (*domain.Result, error) {
	return c.Query(ctx, "ScrapeFreeonesPerformers", map[string]any{"q": q})
}
