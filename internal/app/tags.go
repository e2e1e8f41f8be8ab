package app

import (
	"context"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
)

// FindTags lists tags matching the filter.
func (c *Client) FindTags(ctx context.Context, filter ports.FilterModel, policy domain.FetchPolicy) (*domain.Result, error) {
	filter = listFilter(filter, domain.FilterModeTags)
	return c.Query(ctx, "FindTags", map[string]any{"filter": filter.FindFilter()}, WithFetchPolicy(policy))
}

// FindTag fetches one tag, skipping the "new" id.
func (c *Client) FindTag(ctx context.Context, id string) (*domain.Result, error) {
	if id == newEntityID {
		return c.skip("FindTag"), nil
	}
	return c.Query(ctx, "FindTag", map[string]any{"id": id})
}

// AllTags lists every tag with its counts.
func (c *Client) AllTags(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "AllTags", nil)
}

// WatchAllTags keeps the tag list live. Tag mutations refetch it.
func (c *Client) WatchAllTags(ctx context.Context) (*Watch, error) {
	return c.Watch(ctx, "AllTags", nil)
}

// AllTagsForFilter lists tag names for filter pickers.
func (c *Client) AllTagsForFilter(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "AllTagsForFilter", nil)
}

// CreateTag creates a tag.
func (c *Client) CreateTag(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "TagCreate", map[string]any{"input": domain.StripNullInput(input)})
}

// UpdateTag edits a tag.
func (c *Client) UpdateTag(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "TagUpdate", map[string]any{"input": domain.StripNullInput(input)})
}

// DestroyTag deletes a tag.
func (c *Client) DestroyTag(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "TagDestroy", map[string]any{"input": domain.StripNullInput(input)})
}
