package app

import (
	"context"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
)

// FindStudios lists studios matching the filter.
func (c *Client) FindStudios(ctx context.Context, filter ports.FilterModel, policy domain.FetchPolicy) (*domain.Result, error) {
	filter = listFilter(filter, domain.FilterModeStudios)
	return c.Query(ctx, "FindStudios", map[string]any{"filter": filter.FindFilter()}, WithFetchPolicy(policy))
}

// FindStudio fetches one studio, skipping the "new" id.
func (c *Client) FindStudio(ctx context.Context, id string) (*domain.Result, error) {
	if id == newEntityID {
		return c.skip("FindStudio"), nil
	}
	return c.Query(ctx, "FindStudio", map[string]any{"id": id})
}

// AllStudiosForFilter lists studio names for filter pickers.
func (c *Client) AllStudiosForFilter(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "AllStudiosForFilter", nil)
}

// CreateStudio creates a studio.
func (c *Client) CreateStudio(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "StudioCreate", map[string]any{"input": domain.StripNullInput(input)})
}

// UpdateStudio edits a studio.
func (c *Client) UpdateStudio(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "StudioUpdate", map[string]any{"input": domain.StripNullInput(input)})
}

// DestroyStudio deletes a studio.
func (c *Client) DestroyStudio(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "StudioDestroy", map[string]any{"input": domain.StripNullInput(input)})
}
