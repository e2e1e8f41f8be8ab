package app

import (
	"context"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
)

// FindGalleries lists galleries matching the filter.
func (c *Client) FindGalleries(ctx context.Context, filter ports.FilterModel, policy domain.FetchPolicy) (*domain.Result, error) {
	filter = listFilter(filter, domain.FilterModeGalleries)
	return c.Query(ctx, "FindGalleries", map[string]any{"filter": filter.FindFilter()}, WithFetchPolicy(policy))
}

// FindGallery fetches one gallery.
func (c *Client) FindGallery(ctx context.Context, id string) (*domain.Result, error) {
	return c.Query(ctx, "FindGallery", map[string]any{"id": id})
}

// ValidGalleriesForScene lists galleries that can be attached to a scene.
func (c *Client) ValidGalleriesForScene(ctx context.Context, sceneID string) (*domain.Result, error) {
	return c.Query(ctx, "ValidGalleriesForScene", map[string]any{"scene_id": sceneID})
}
