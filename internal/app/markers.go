package app

import (
	"context"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
)

// FindSceneMarkers lists scene markers matching the filter.
func (c *Client) FindSceneMarkers(ctx context.Context, filter ports.FilterModel, policy domain.FetchPolicy) (*domain.Result, error) {
	filter = listFilter(filter, domain.FilterModeSceneMarkers)
	return c.Query(ctx, "FindSceneMarkers", map[string]any{
		"filter":              filter.FindFilter(),
		"scene_marker_filter": filter.SceneMarkerFilter(),
	}, WithFetchPolicy(policy))
}

// MarkerStrings lists distinct marker titles.
func (c *Client) MarkerStrings(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "MarkerStrings", nil)
}

// CreateSceneMarker adds a marker.
func (c *Client) CreateSceneMarker(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "SceneMarkerCreate", map[string]any{"input": domain.StripNullInput(input)})
}

// UpdateSceneMarker edits a marker.
func (c *Client) UpdateSceneMarker(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "SceneMarkerUpdate", map[string]any{"input": domain.StripNullInput(input)})
}

// DestroySceneMarker deletes a marker.
func (c *Client) DestroySceneMarker(ctx context.Context, id string) (*domain.Result, error) {
	return c.Mutate(ctx, "SceneMarkerDestroy", map[string]any{"id": id})
}
