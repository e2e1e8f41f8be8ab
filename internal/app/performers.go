package app

import (
	"context"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
)

// newEntityID is the id detail pages use before an entity is created.
const newEntityID = "new"

// FindPerformers lists performers matching the filter.
func (c *Client) FindPerformers(ctx context.Context, filter ports.FilterModel, policy domain.FetchPolicy) (*domain.Result, error) {
	filter = listFilter(filter, domain.FilterModePerformers)
	return c.Query(ctx, "FindPerformers", map[string]any{
		"filter":           filter.FindFilter(),
		"performer_filter": filter.PerformerFilter(),
	}, WithFetchPolicy(policy))
}

// FindPerformer fetches one performer. The "new" id is answered with an empty
// result without a request.
func (c *Client) FindPerformer(ctx context.Context, id string) (*domain.Result, error) {
	if id == newEntityID {
		return c.skip("FindPerformer"), nil
	}
	return c.Query(ctx, "FindPerformer", map[string]any{"id": id})
}

// AllPerformersForFilter lists performer names for filter pickers.
func (c *Client) AllPerformersForFilter(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "AllPerformersForFilter", nil)
}

// CreatePerformer creates a performer.
func (c *Client) CreatePerformer(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "PerformerCreate", map[string]any{"input": domain.StripNullInput(input)})
}

// UpdatePerformer edits a performer.
func (c *Client) UpdatePerformer(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "PerformerUpdate", map[string]any{"input": domain.StripNullInput(input)})
}

// DestroyPerformer deletes a performer.
func (c *Client) DestroyPerformer(ctx context.Context, id string) (*domain.Result, error) {
	return c.Mutate(ctx, "PerformerDestroy", map[string]any{"id": id})
}
