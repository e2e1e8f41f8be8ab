package app

import (
	"context"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
)

// FindMovies lists movies matching the filter.
func (c *Client) FindMovies(ctx context.Context, filter ports.FilterModel, policy domain.FetchPolicy) (*domain.Result, error) {
	filter = listFilter(filter, domain.FilterModeMovies)
	return c.Query(ctx, "FindMovies", map[string]any{"filter": filter.FindFilter()}, WithFetchPolicy(policy))
}

// FindMovie fetches one movie, skipping the "new" id.
func (c *Client) FindMovie(ctx context.Context, id string) (*domain.Result, error) {
	if id == newEntityID {
		return c.skip("FindMovie"), nil
	}
	return c.Query(ctx, "FindMovie", map[string]any{"id": id})
}

// AllMoviesForFilter lists movie names for filter pickers.
func (c *Client) AllMoviesForFilter(ctx context.Context) (*domain.Result, error) {
	return c.Query(ctx, "AllMoviesForFilter", nil)
}

// CreateMovie creates a movie.
func (c *Client) CreateMovie(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "MovieCreate", map[string]any{"input": domain.StripNullInput(input)})
}

// UpdateMovie edits a movie.
func (c *Client) UpdateMovie(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "MovieUpdate", map[string]any{"input": domain.StripNullInput(input)})
}

// DestroyMovie deletes a movie.
func (c *Client) DestroyMovie(ctx context.Context, input map[string]any) (*domain.Result, error) {
	return c.Mutate(ctx, "MovieDestroy", map[string]any{"input": domain.StripNullInput(input)})
}
